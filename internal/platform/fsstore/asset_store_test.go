package fsstore_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/ryotaki/karuta-api/internal/platform/fsstore"
	"github.com/ryotaki/karuta-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetStoreOpen(t *testing.T) {
	root := contentRoot(t)
	assets := fsstore.NewAssetStore(root, testLogger())
	ctx := context.Background()

	t.Run("existing asset", func(t *testing.T) {
		asset, err := assets.Open(ctx, store.BucketVisuals, "bebop.png")
		require.NoError(t, err)
		defer func() {
			require.NoError(t, asset.Close())
		}()

		assert.Equal(t, "bebop.png", asset.Name)
		assert.Equal(t, int64(len("visual-bytes")), asset.Size)

		content, err := io.ReadAll(asset.Content)
		require.NoError(t, err)
		assert.Equal(t, "visual-bytes", string(content))
	})

	t.Run("missing asset", func(t *testing.T) {
		asset, err := assets.Open(ctx, store.BucketVisuals, "nope.png")
		require.Error(t, err)
		assert.Nil(t, asset)
		assert.ErrorIs(t, err, store.ErrAssetNotFound)
		assert.True(t, store.IsNotFoundError(err))
	})

	t.Run("wrong bucket", func(t *testing.T) {
		// The file exists in Visuals but must not resolve via Covers.
		_, err := assets.Open(ctx, store.BucketCovers, "bebop.png")
		assert.ErrorIs(t, err, store.ErrAssetNotFound)
	})
}

func TestAssetStoreRejectsTraversal(t *testing.T) {
	root := contentRoot(t)
	assets := fsstore.NewAssetStore(root, testLogger())
	ctx := context.Background()

	// A file outside the bucket that a naive path concatenation would reach.
	writeFile(t, root, "secret.txt", "do not serve")

	names := []string{
		"../secret.txt",
		"../../etc/passwd",
		"..",
		".",
		"sub/child.png",
		"/etc/passwd",
		"",
	}

	for _, name := range names {
		t.Run("name "+name, func(t *testing.T) {
			_, err := assets.Open(ctx, store.BucketVisuals, name)
			assert.ErrorIs(t, err, store.ErrAssetNotFound,
				"traversal name must be indistinguishable from a missing file")

			_, err = assets.Stat(ctx, store.BucketVisuals, name)
			assert.ErrorIs(t, err, store.ErrAssetNotFound)
		})
	}
}

func TestAssetStoreStat(t *testing.T) {
	root := contentRoot(t)
	assets := fsstore.NewAssetStore(root, testLogger())
	ctx := context.Background()

	info, err := assets.Stat(ctx, store.BucketCovers, "intro.png")
	require.NoError(t, err)
	assert.Equal(t, "intro.png", info.Name)
	assert.Equal(t, int64(len("cover-bytes")), info.Size)

	_, err = assets.Stat(ctx, store.BucketCovers, "missing.png")
	assert.ErrorIs(t, err, store.ErrAssetNotFound)
}

func TestAssetStoreDirectoryIsNotAnAsset(t *testing.T) {
	root := contentRoot(t)
	require.NoError(t, os.MkdirAll(filepath.Join(root, "Visuals", "nested.png"), 0o755))

	assets := fsstore.NewAssetStore(root, testLogger())

	_, err := assets.Open(context.Background(), store.BucketVisuals, "nested.png")
	assert.ErrorIs(t, err, store.ErrAssetNotFound)
}

func TestAssetStoreList(t *testing.T) {
	root := contentRoot(t)
	assets := fsstore.NewAssetStore(root, testLogger())
	ctx := context.Background()

	t.Run("sorted filenames, directories skipped", func(t *testing.T) {
		require.NoError(t, os.MkdirAll(filepath.Join(root, "Themes", "drafts"), 0o755))

		names, err := assets.List(ctx, store.BucketThemes)
		require.NoError(t, err)
		assert.Equal(t, []string{"dark.json", "light.json", "notes.txt"}, names)
	})

	t.Run("missing bucket directory", func(t *testing.T) {
		empty := fsstore.NewAssetStore(t.TempDir(), testLogger())
		_, err := empty.List(ctx, store.BucketThemes)
		require.Error(t, err)
		assert.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestAssetStoreUnreadable(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks are bypassed for root")
	}

	root := contentRoot(t)
	locked := filepath.Join(root, "Visuals", "locked.png")
	require.NoError(t, os.WriteFile(locked, []byte("x"), 0o000))

	assets := fsstore.NewAssetStore(root, testLogger())

	_, err := assets.Open(context.Background(), store.BucketVisuals, "locked.png")
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrUnreadable)
	assert.False(t, store.IsNotFoundError(err),
		"a read fault on an existing file must not look like an absence")
}
