package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ryotaki/karuta-api/internal/store"
)

// IntegrityReport is the result of a full referential-integrity scan
// over the loaded catalog: every cover, card visual, card audio, and
// category icon is resolved against its bucket. Dangling asset
// references are errors; a deck naming an unknown category is only a
// warning because the deck-to-category reference is informational.
type IntegrityReport struct {
	DecksChecked  int
	AssetsChecked int
	Errors        []string
	Warnings      []string
}

// OK reports whether the scan found no errors.
func (r *IntegrityReport) OK() bool {
	return len(r.Errors) == 0
}

// VerifyIntegrity runs the bulk consistency scan. It only returns an
// error when the context is cancelled; everything the scan finds is in
// the report.
func (s *ResolutionService) VerifyIntegrity(ctx context.Context) (*IntegrityReport, error) {
	report := &IntegrityReport{}

	for _, name := range s.catalog.DeckNames() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		deck, err := s.catalog.FindDeck(name)
		if err != nil {
			// DeckNames and FindDeck read the same immutable index, so
			// a miss here means the catalog itself is inconsistent.
			report.addError("deck %q: listed but not found", name)
			continue
		}
		report.DecksChecked++

		report.checkAsset(ctx, s.assets, store.BucketCovers, deck.Cover,
			"deck %q: cover %q", name, deck.Cover)

		if deck.Category != "" {
			if _, err := s.catalog.FindCategory(deck.Category); err != nil {
				report.addWarning("deck %q: unknown category %q", name, deck.Category)
			}
		}

		for i, card := range deck.Cards {
			report.checkAsset(ctx, s.assets, store.BucketVisuals, card.Visual,
				"deck %q card %d: visual %q", name, i, card.Visual)
			report.checkAsset(ctx, s.assets, store.BucketAudio, card.Audio,
				"deck %q card %d: audio %q", name, i, card.Audio)
		}
	}

	for _, category := range s.catalog.Categories() {
		report.checkAsset(ctx, s.assets, store.BucketCategoryIcons, category.Icon,
			"category %q: icon %q", category.Name, category.Icon)
	}

	s.logger.Info("integrity scan finished",
		slog.Int("decks_checked", report.DecksChecked),
		slog.Int("assets_checked", report.AssetsChecked),
		slog.Int("errors", len(report.Errors)),
		slog.Int("warnings", len(report.Warnings)))

	return report, nil
}

func (r *IntegrityReport) checkAsset(
	ctx context.Context,
	assets store.AssetStore,
	bucket store.Bucket,
	name string,
	format string,
	args ...any,
) {
	r.AssetsChecked++
	if _, err := assets.Stat(ctx, bucket, name); err != nil {
		prefix := fmt.Sprintf(format, args...)
		r.Errors = append(r.Errors, fmt.Sprintf("%s: %v", prefix, err))
	}
}

func (r *IntegrityReport) addError(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *IntegrityReport) addWarning(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}
