package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/ryotaki/karuta-api/internal/legacy"
	"github.com/spf13/cobra"
)

var (
	convertSoundsDir string
	convertOutDir    string
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert <deck-list> <deck-name>",
	Short: "Convert a legacy deck list into the current deck schema",
	Long: `Convert reads a legacy deck list (one song title per line), splits each
title into its anime name and OP/ED label, and writes <deck-name>.json
in the current deck schema. Unless --sounds-dir is set to the empty
string, the matching audio files are renamed in place to the canonical
"<anime> - <label>.mp3" form the generated deck references.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		listPath, deckName := args[0], args[1]

		log := slog.New(slog.NewTextHandler(os.Stderr, nil))
		converter := legacy.NewConverter(convertSoundsDir, log)

		deck, err := converter.Convert(listPath, deckName)
		if err != nil {
			return err
		}

		fmt.Println("Converted songs:")
		for _, card := range deck.Cards {
			fmt.Printf("  %s - %s\n", card.Anime, card.Type)
		}

		outPath := filepath.Join(convertOutDir, deckName+".json")
		data, err := json.MarshalIndent(deck, "", "  ")
		if err != nil {
			return fmt.Errorf("encode deck: %w", err)
		}
		if err := os.WriteFile(outPath, data, 0o644); err != nil {
			return fmt.Errorf("write deck file: %w", err)
		}

		color.Green("Wrote %s with %d cards.", outPath, len(deck.Cards))
		return nil
	},
}

func init() {
	convertCmd.Flags().StringVar(&convertSoundsDir, "sounds-dir", "Sounds",
		"directory holding the audio files to rename (empty to skip renaming)")
	convertCmd.Flags().StringVar(&convertOutDir, "out-dir", ".",
		"directory the generated deck file is written to")
}
