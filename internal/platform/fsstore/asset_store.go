package fsstore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ryotaki/karuta-api/internal/store"
)

// AssetStore implements store.AssetStore over a directory tree: one
// subdirectory per bucket under a single content root. Logical names
// must resolve to a direct child of the bucket directory; anything else
// (absolute paths, separators, ".." segments) reports ErrAssetNotFound
// so a traversal attempt is indistinguishable from a missing file.
type AssetStore struct {
	root   string
	logger *slog.Logger
}

// NewAssetStore creates an AssetStore rooted at the given content
// directory.
func NewAssetStore(root string, log *slog.Logger) *AssetStore {
	if log == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for AssetStore")
	}

	return &AssetStore{
		root:   root,
		logger: log.With(slog.String("component", "asset_store")),
	}
}

// resolve maps (bucket, name) to an absolute path, rejecting any name
// that would escape the bucket directory.
func (s *AssetStore) resolve(bucket store.Bucket, name string) (string, error) {
	if name == "" {
		return "", store.ErrAssetNotFound
	}

	dir := filepath.Join(s.root, string(bucket))
	path := filepath.Join(dir, name)

	// filepath.Join cleans the path, so a name carrying separators or
	// ".." segments no longer has dir as its immediate parent.
	if filepath.Dir(path) != dir || filepath.Base(path) != name {
		s.logger.Warn("rejected asset name resolving outside its bucket",
			slog.String("bucket", string(bucket)),
			slog.String("name", name))
		return "", store.ErrAssetNotFound
	}

	return path, nil
}

// Open resolves name within bucket and opens it for reading.
func (s *AssetStore) Open(ctx context.Context, bucket store.Bucket, name string) (*store.Asset, error) {
	path, err := s.resolve(bucket, name)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, store.ErrAssetNotFound
		}
		return nil, fmt.Errorf("%w: stat %s/%s: %v", store.ErrUnreadable, bucket, name, err)
	}
	if info.IsDir() {
		return nil, store.ErrAssetNotFound
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, store.ErrAssetNotFound
		}
		return nil, fmt.Errorf("%w: open %s/%s: %v", store.ErrUnreadable, bucket, name, err)
	}

	return &store.Asset{
		Name:    name,
		Size:    info.Size(),
		Content: f,
	}, nil
}

// Stat resolves name within bucket without opening it.
func (s *AssetStore) Stat(ctx context.Context, bucket store.Bucket, name string) (store.AssetInfo, error) {
	path, err := s.resolve(bucket, name)
	if err != nil {
		return store.AssetInfo{}, err
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return store.AssetInfo{}, store.ErrAssetNotFound
		}
		return store.AssetInfo{}, fmt.Errorf("%w: stat %s/%s: %v", store.ErrUnreadable, bucket, name, err)
	}
	if info.IsDir() {
		// A directory is never a valid asset.
		return store.AssetInfo{}, store.ErrAssetNotFound
	}

	return store.AssetInfo{Name: name, Size: info.Size()}, nil
}

// List returns the sorted filenames present in bucket, skipping
// directories.
func (s *AssetStore) List(ctx context.Context, bucket store.Bucket) ([]string, error) {
	dir := filepath.Join(s.root, string(bucket))

	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: bucket directory %s", store.ErrNotFound, bucket)
		}
		return nil, fmt.Errorf("%w: list %s: %v", store.ErrUnreadable, bucket, err)
	}

	// os.ReadDir returns entries sorted by filename.
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}

	return names, nil
}

// compile-time interface check
var _ store.AssetStore = (*AssetStore)(nil)
