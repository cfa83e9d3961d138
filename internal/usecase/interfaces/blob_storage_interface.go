package interfaces

import "context"

// StoredObject locates an uploaded blob: URL is public, Path is the storage key.
type StoredObject struct {
	URL  string
	Path string
}

// IBlobStorage abstracts file storage (S3) for quote photos and catalog images.
type IBlobStorage interface {
	Store(ctx context.Context, data []byte, contentType, suggestedPath string) (StoredObject, error)
	// Delete accepts either a storage key or a URL returned by Store.
	Delete(ctx context.Context, ref string) error
}
