package artifacts

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/patrickmn/go-cache"
)

type memoryObject struct {
	contentType string
	body        []byte
}

// MemoryStore keeps artifacts in process. Download URLs point at the
// memory:// scheme and are only meaningful to tests and local runs.
type MemoryStore struct {
	objects *cache.Cache
	now     func() time.Time
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{objects: cache.New(cache.NoExpiration, 0), now: time.Now}
}

func (s *MemoryStore) PutIfAbsent(_ context.Context, key, contentType string, body []byte) error {
	obj := memoryObject{contentType: contentType, body: append([]byte(nil), body...)}
	// Add fails when the key exists; the stored bytes are identical by construction.
	_ = s.objects.Add(key, obj, cache.NoExpiration)
	return nil
}

func (s *MemoryStore) PresignGet(_ context.Context, key string, ttl time.Duration) (string, error) {
	if _, ok := s.objects.Get(key); !ok {
		return "", fmt.Errorf("%w: %s", ErrArtifactNotFound, key)
	}
	u := url.URL{Scheme: "memory", Host: "artifacts", Path: "/" + key}
	q := u.Query()
	q.Set("expires", s.now().Add(ttl).UTC().Format(time.RFC3339))
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Get returns a stored object's body and content type.
func (s *MemoryStore) Get(key string) ([]byte, string, bool) {
	v, ok := s.objects.Get(key)
	if !ok {
		return nil, "", false
	}
	obj := v.(memoryObject)
	return append([]byte(nil), obj.body...), obj.contentType, true
}

func (s *MemoryStore) Len() int { return s.objects.ItemCount() }
