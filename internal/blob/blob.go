package blob

import (
	"context"
	"errors"
)

var ErrObjectNotFound = errors.New("blob: object not found")

// Store is the object storage the upload and extract stages share. Keys are
// flat; a later Put to the same key replaces the object.
type Store interface {
	Put(ctx context.Context, key string, body []byte, contentType string) error
	Get(ctx context.Context, key string) ([]byte, error)
}
