// Package common defines shared constants and sentinel errors used across
// Droply server layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Hierarchy validation errors.
	ErrorInvalidName    = errors.New("invalid name")
	ErrorParentNotFound = errors.New("parent folder not found")

	// Upload validation errors.
	ErrorFileRequired    = errors.New("file is required")
	ErrorFileTooLarge    = errors.New("file exceeds size limit")
	ErrorUnsupportedType = errors.New("only images and PDFs are supported")

	// Blob store rejected the put; nothing was written to the metadata store.
	ErrorUploadFailed = errors.New("upload failed")

	// Auth errors (invalid or malformed token).
	ErrorInvalidToken = errors.New("invalid token")
)
