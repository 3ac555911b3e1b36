package storage

import "context"

// Store is an object store with public read access.
type Store interface {
	// Put uploads body under key and returns the public URL.
	Put(ctx context.Context, key string, body []byte, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
	PublicURL(key string) string
}
