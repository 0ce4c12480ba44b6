// Package storage wraps the external object-storage capability behind a
// small port: store bytes under a destination path and get back a locator,
// delete bytes by locator. Implementations hold no per-request state.
package storage

import "context"

// Object describes a stored blob. ThumbnailURL is optional and empty when
// the backend does not produce previews.
type Object struct {
	// Key is the opaque locator used for later deletion.
	Key string
	// URL is the public URL of the stored bytes.
	URL string
	// ThumbnailURL is a preview URL, when available.
	ThumbnailURL string
}

// BlobStore is the blob-store adapter consumed by the lifecycle services.
// Both calls are single-attempt network operations; retry policy is the
// caller's concern.
type BlobStore interface {
	// Put stores data under folder+name and returns the resulting object.
	Put(ctx context.Context, data []byte, folder, name, contentType string) (*Object, error)

	// Delete removes the object identified by key.
	Delete(ctx context.Context, key string) error
}
