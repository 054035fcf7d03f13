package fsstore_test

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// testLogger returns a logger that discards output.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// contentRoot builds a minimal on-disk content root in a temp dir:
// two decks, two categories with icons, the referenced visual/audio/
// cover assets, and a Themes directory holding two themes plus one
// non-theme file.
func contentRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	writeFile(t, root, "Decks/intro.json", `{
		"name": "Intro",
		"category": "Openings",
		"type": "NORMAL",
		"cover": "intro.png",
		"cards": [
			{"anime": "Cowboy Bebop", "type": "OP 1", "visual": "bebop.png", "audio": "Cowboy Bebop - OP 1.mp3"},
			{"anime": "Trigun", "type": "OP 1", "visual": "trigun.png", "audio": "Trigun - OP 1.mp3"}
		]
	}`)
	writeFile(t, root, "Decks/classics.json", `{
		"name": "Classics",
		"category": "Endings",
		"type": "HARD",
		"cover": "classics.png",
		"cards": [
			{"anime": "Akira", "type": "ED 1", "visual": "akira.png", "audio": "Akira - ED 1.mp3"}
		]
	}`)

	writeFile(t, root, "Categories/Categories.json", `{
		"categories": [
			{"name": "Openings", "icon": "openings.png"},
			{"name": "Endings", "icon": "endings.png"}
		],
		"types": ["NORMAL", "HARD", "NORMAL"]
	}`)
	writeFile(t, root, "Categories/openings.png", "icon-bytes")
	writeFile(t, root, "Categories/endings.png", "icon-bytes")

	writeFile(t, root, "Covers/intro.png", "cover-bytes")
	writeFile(t, root, "Covers/classics.png", "cover-bytes")

	writeFile(t, root, "Visuals/bebop.png", "visual-bytes")
	writeFile(t, root, "Visuals/trigun.png", "visual-bytes")
	writeFile(t, root, "Visuals/akira.png", "visual-bytes")

	writeFile(t, root, "Sounds/Cowboy Bebop - OP 1.mp3", "audio-bytes")
	writeFile(t, root, "Sounds/Trigun - OP 1.mp3", "audio-bytes")
	writeFile(t, root, "Sounds/Akira - ED 1.mp3", "audio-bytes")

	writeFile(t, root, "Themes/dark.json", `{"background": "#000"}`)
	writeFile(t, root, "Themes/light.json", `{"background": "#fff"}`)
	writeFile(t, root, "Themes/notes.txt", "not a theme")

	return root
}

func removeFile(root, rel string) error {
	return os.Remove(filepath.Join(root, filepath.FromSlash(rel)))
}

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}
