package legacy

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ryotaki/karuta-api/internal/domain"
)

// Defaults applied to converted decks. The old format carried no
// category, difficulty, or cover information.
const (
	defaultCategory = "KARUTA"
	defaultType     = "NORMAL"
	defaultCover    = "default.png"
)

// Converter builds deck records from legacy deck lists. When soundsDir
// is non-empty, Convert also renames the audio files on disk from the
// raw title form to the canonical "<anime> - <label>.mp3" form.
type Converter struct {
	soundsDir string
	logger    *slog.Logger
}

// NewConverter creates a Converter. Pass an empty soundsDir to convert
// the list without touching audio files.
func NewConverter(soundsDir string, log *slog.Logger) *Converter {
	if log == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for Converter")
	}

	return &Converter{
		soundsDir: soundsDir,
		logger:    log.With(slog.String("component", "legacy_converter")),
	}
}

// Convert reads a newline-separated legacy deck list and produces a
// deck record in the current schema. Visual names keep the raw title;
// audio names are canonicalized, with apostrophes mapped to underscores
// to match the filenames the renamed audio files end up with.
func (c *Converter) Convert(listPath, deckName string) (*domain.Deck, error) {
	titles, err := readDeckList(listPath)
	if err != nil {
		return nil, err
	}

	deck := &domain.Deck{
		Name:     deckName,
		Category: defaultCategory,
		Type:     defaultType,
		Cover:    defaultCover,
		Cards:    make([]domain.Card, 0, len(titles)),
	}

	for _, title := range titles {
		anime, label := ParseTitle(title)
		audio := soundFileName(anime + " - " + label + ".mp3")

		deck.Cards = append(deck.Cards, domain.Card{
			Anime:  anime,
			Type:   label,
			Visual: title + ".png",
			Audio:  audio,
		})

		if c.soundsDir != "" {
			if err := c.renameSound(soundFileName(title+".mp3"), audio); err != nil {
				return nil, err
			}
		}
	}

	if err := deck.Validate(); err != nil {
		return nil, fmt.Errorf("converted deck %q: %w", deckName, err)
	}

	return deck, nil
}

func (c *Converter) renameSound(from, to string) error {
	if from == to {
		return nil
	}

	oldPath := filepath.Join(c.soundsDir, from)
	newPath := filepath.Join(c.soundsDir, to)
	if err := os.Rename(oldPath, newPath); err != nil {
		return fmt.Errorf("rename sound file: %w", err)
	}

	c.logger.Debug("sound file renamed",
		slog.String("from", from),
		slog.String("to", to))
	return nil
}

func readDeckList(listPath string) ([]string, error) {
	f, err := os.Open(listPath)
	if err != nil {
		return nil, fmt.Errorf("open deck list: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	var titles []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		title := strings.TrimSpace(scanner.Text())
		if title == "" {
			continue
		}
		titles = append(titles, title)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read deck list: %w", err)
	}

	return titles, nil
}

// soundFileName maps a logical audio name to the on-disk filename.
// Apostrophes are replaced because the legacy tooling never produced
// them in filenames.
func soundFileName(name string) string {
	return strings.ReplaceAll(name, "'", "_")
}
