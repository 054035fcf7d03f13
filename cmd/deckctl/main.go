// Package main implements deckctl, the operator CLI for the karuta
// catalog: it validates a content root's referential integrity and
// converts legacy deck lists into the current deck schema.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "deckctl",
	Short: "Tool for validating and converting karuta deck catalogs",
	Long: `Deckctl is a command-line tool for working with the on-disk deck catalog
served by the karuta API. It checks that every asset reference in the
catalog resolves to an existing file, and converts deck lists from the
legacy format into the current deck schema.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(convertCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
