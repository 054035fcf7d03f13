package store

import (
	"context"
	"io"
)

// Bucket names one class of binary asset. Each bucket is bound to
// exactly one base directory under the content root; the string value
// is the directory name and is part of the on-disk contract. A request
// naming one bucket must never resolve inside another bucket's
// directory.
type Bucket string

// The fixed bucket enumeration. Directory names match the original
// content layout (note that the audio bucket directory is "Sounds").
const (
	BucketVisuals       Bucket = "Visuals"
	BucketAudio         Bucket = "Sounds"
	BucketCovers        Bucket = "Covers"
	BucketCategoryIcons Bucket = "Categories"
	BucketThemes        Bucket = "Themes"
	BucketDecks         Bucket = "Decks"
)

// AssetInfo describes an asset without opening it.
type AssetInfo struct {
	Name string
	Size int64
}

// Asset is an opened asset: a readable stream plus enough metadata for
// the caller to label the response. The caller owns Content and must
// close it.
type Asset struct {
	Name    string
	Size    int64
	Content io.ReadCloser
}

// Close closes the underlying content stream.
func (a *Asset) Close() error {
	return a.Content.Close()
}

// AssetStore resolves logical asset names within a bucket to byte
// streams. Logical names come verbatim from client input or catalog
// fields; implementations must reject any name that would resolve
// outside the bucket's base directory, reporting it as ErrAssetNotFound.
type AssetStore interface {
	// Open resolves name within bucket and opens it for reading.
	// Returns ErrAssetNotFound if the file does not exist or the name
	// is rejected, ErrUnreadable if the file exists but cannot be read.
	Open(ctx context.Context, bucket Bucket, name string) (*Asset, error)

	// Stat resolves name within bucket without opening it. Error
	// semantics match Open.
	Stat(ctx context.Context, bucket Bucket, name string) (AssetInfo, error)

	// List returns the sorted filenames present in bucket. Directories
	// are skipped.
	List(ctx context.Context, bucket Bucket) ([]string, error)
}
