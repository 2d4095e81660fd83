package service

import (
	"context"
	"io"

	"github.com/pkg/errors"
)

// ErrObjectNotFound is returned when a stored object does not exist.
var ErrObjectNotFound = errors.New("object not found")

// StoredObject describes an object read back from storage.
type StoredObject struct {
	Body        io.ReadCloser
	ContentType string
	Size        int64
}

// FileStorage persists uploaded files under slash-separated keys.
type FileStorage interface {
	// Put writes content under key.
	Put(ctx context.Context, key string, content []byte, contentType string) error

	// Open returns a reader for key; the caller closes Body.
	Open(ctx context.Context, key string) (*StoredObject, error)

	// URL returns the public URL clients use to fetch key.
	URL(key string) string
}
