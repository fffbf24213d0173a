package object

import (
	"context"
	"io"
)

// ObjectStore defines the contract for saving, retrieving and removing
// binary objects. Keys returned by Save are namespaced by company so that a
// tenant's files never collide with another's.
type ObjectStore interface {
	Save(ctx context.Context, companyID string, fileName string, r io.Reader) (storageKey string, sizeBytes int64, mimeType string, err error)
	Open(ctx context.Context, storageKey string) (io.ReadCloser, error)
	Delete(ctx context.Context, storageKey string) error
	// URL returns the externally shareable location of a stored object.
	URL(storageKey string) string
	// KeyFromURL recovers the storage key from a URL previously produced by
	// URL. It is used on delete, where only the persisted URL is available.
	KeyFromURL(fileURL string) (string, error)
}
