// Package models defines server-side data models persisted in the database.
package models

import "time"

// Entry is a single row of the user's folder/file tree. The IsFolder flag
// discriminates the two variants: folders never carry a storage key or URLs,
// files always do.
type Entry struct {
	// ID is the opaque unique identifier, generated at creation, immutable.
	ID string
	// UserID is the verified owner; every query is scoped by it.
	UserID string
	// Name is the human-readable label, non-empty after trimming.
	Name string
	// Path is the derived locator prefix: cosmetic for folders, the physical
	// blob destination for files.
	Path string
	// Size and ContentType describe the payload; zero for folders.
	Size        int64
	ContentType string
	// FileURL / ThumbnailURL are public URLs returned by the blob store.
	FileURL      string
	ThumbnailURL string
	// StorageKey is the blob-store locator used for later deletion.
	// Empty for folders.
	StorageKey string
	// ParentID references the containing folder, nil for root-level entries.
	ParentID *string

	IsFolder  bool
	IsStarred bool
	IsTrash   bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
