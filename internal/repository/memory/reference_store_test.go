package memory

import (
	"testing"
	"time"

	"hr-chatbot-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReferenceStoreRoundTrip(t *testing.T) {
	store := NewReferenceStore(time.Minute)
	sessionId := uuid.New()

	_, found := store.Get(sessionId)
	assert.False(t, found)

	store.Set(sessionId, &entity.MessageMetadata{Kind: "id_contrato", Ids: []int64{12, 15}})

	ref, found := store.Get(sessionId)
	require.True(t, found)
	assert.Equal(t, "id_contrato", ref.Kind)
	assert.Equal(t, []int64{12, 15}, ref.Ids)

	store.Clear(sessionId)
	_, found = store.Get(sessionId)
	assert.False(t, found)
}

func TestReferenceStoreIgnoresNil(t *testing.T) {
	store := NewReferenceStore(time.Minute)
	sessionId := uuid.New()

	store.Set(sessionId, nil)

	_, found := store.Get(sessionId)
	assert.False(t, found)
}

func TestReferenceStoreExpires(t *testing.T) {
	store := NewReferenceStore(10 * time.Millisecond)
	sessionId := uuid.New()

	store.Set(sessionId, &entity.MessageMetadata{Kind: "id_persona", Ids: []int64{3}})
	time.Sleep(30 * time.Millisecond)

	_, found := store.Get(sessionId)
	assert.False(t, found)
}
