package artifacts

import (
	"context"
	"errors"
	"time"
)

var ErrArtifactNotFound = errors.New("artifact not found")

// Store keeps rendered documents. Keys are content addressed, so an object
// already present under a key is never rewritten.
type Store interface {
	PutIfAbsent(ctx context.Context, key, contentType string, body []byte) error
	PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error)
}
