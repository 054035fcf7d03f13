package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/ryotaki/karuta-api/internal/platform/fsstore"
	"github.com/ryotaki/karuta-api/internal/service"
	"github.com/spf13/cobra"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [content-root]",
	Short: "Validate a catalog content root",
	Long: `Validate loads the catalog from the given content root exactly as the
server would at startup, then runs the full referential-integrity scan:
every deck cover, card visual, card audio, and category icon must
resolve to an existing file in its bucket. Deck references to unknown
categories are reported as warnings.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		contentRoot := "decks"
		if len(args) == 1 {
			contentRoot = args[0]
		}

		if _, err := os.Stat(contentRoot); os.IsNotExist(err) {
			return fmt.Errorf("content root not found: %s", contentRoot)
		}

		log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelWarn,
		}))

		assets := fsstore.NewAssetStore(contentRoot, log)
		catalog, err := fsstore.NewLoader(assets, log).Load(cmd.Context())
		if err != nil {
			return fmt.Errorf("catalog load failed: %w", err)
		}

		resolver := service.NewResolutionService(catalog, assets, log)
		report, err := resolver.VerifyIntegrity(cmd.Context())
		if err != nil {
			return fmt.Errorf("integrity scan failed: %w", err)
		}

		fmt.Printf("Checked %d decks and %d asset references.\n",
			report.DecksChecked, report.AssetsChecked)

		if len(report.Warnings) > 0 {
			color.Yellow("Warnings:")
			for i, warning := range report.Warnings {
				fmt.Printf("%d. %s\n", i+1, warning)
			}
		}

		if report.OK() {
			color.Green("Catalog at '%s' is consistent.", contentRoot)
			return nil
		}

		color.Red("Catalog at '%s' has %d dangling references:", contentRoot, len(report.Errors))
		for i, problem := range report.Errors {
			fmt.Printf("%d. %s\n", i+1, problem)
		}
		return fmt.Errorf("validation failed")
	},
}
