// Package assets stores and serves user-provided files (uploads, images,
// attachments) behind a single Store interface with local-disk and S3
// backends.
package assets

import (
	"context"
	"io"
	"time"

	pulseerr "github.com/pulse-ui/pulse/internal/errors"
)

// Store errors.
var (
	ErrNotFound = pulseerr.Newf(pulseerr.CategoryRuntime, "asset not found")
	ErrTooLarge = pulseerr.Newf(pulseerr.CategoryUsage, "asset exceeds size limit")
)

// Asset describes one stored file.
type Asset struct {
	// ID is the storage key, assigned by Put.
	ID string `json:"id"`

	// Filename is the original filename from the client.
	Filename string `json:"filename"`

	// ContentType is the MIME type of the file.
	ContentType string `json:"contentType"`

	// Size is the file size in bytes.
	Size int64 `json:"size"`

	// CreatedAt is when the asset was stored.
	CreatedAt time.Time `json:"createdAt"`
}

// Store is the interface for asset storage backends.
type Store interface {
	// Put stores the file and returns the asset with its assigned ID.
	Put(ctx context.Context, a Asset, r io.Reader) (Asset, error)

	// Open returns the asset metadata and a reader for its contents.
	// The caller closes the reader.
	Open(ctx context.Context, id string) (Asset, io.ReadCloser, error)

	// Delete removes an asset. Deleting a missing asset is not an error.
	Delete(ctx context.Context, id string) error
}
