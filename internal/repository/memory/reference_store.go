package memory

import (
	"time"

	"hr-chatbot-be/internal/entity"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

// ReferenceStore remembers the last structured reference extracted per
// session, so a follow-up like "muestrame el detalle" can resolve against
// the previous answer without re-querying the message history.
type ReferenceStore struct {
	cache *gocache.Cache
}

func NewReferenceStore(ttl time.Duration) *ReferenceStore {
	return &ReferenceStore{
		cache: gocache.New(ttl, 2*ttl),
	}
}

func (s *ReferenceStore) Set(sessionId uuid.UUID, metadata *entity.MessageMetadata) {
	if metadata == nil {
		return
	}
	s.cache.SetDefault(sessionId.String(), metadata)
}

func (s *ReferenceStore) Get(sessionId uuid.UUID) (*entity.MessageMetadata, bool) {
	v, found := s.cache.Get(sessionId.String())
	if !found {
		return nil, false
	}
	metadata, ok := v.(*entity.MessageMetadata)
	return metadata, ok
}

func (s *ReferenceStore) Clear(sessionId uuid.UUID) {
	s.cache.Delete(sessionId.String())
}
