package storage

import (
	"context"
	"io"
)

// FileStorage stores uploaded files (avatars) and resolves their public URLs.
type FileStorage interface {
	// Upload stores a file under path and returns the stored path/key
	Upload(ctx context.Context, file io.Reader, path string) (string, error)

	// Delete removes a file; deleting a missing file is not an error
	Delete(ctx context.Context, path string) error

	// URL returns the public URL for a stored path
	URL(path string) string

	// Exists checks if a file exists
	Exists(ctx context.Context, path string) (bool, error)
}
