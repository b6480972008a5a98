package entity

import (
	"time"

	"github.com/google/uuid"
)

// MessageMetadata is the structured reference block extracted from an
// assistant answer: the entity kind key (e.g. "id_contrato") and the
// surrogate ids the answer was based on.
type MessageMetadata struct {
	Kind string  `json:"tipo"`
	Ids  []int64 `json:"ids"`
}

// ChatMessage is append-only. Metadata and the result snapshot are attached
// once, at creation, and never mutated afterwards.
type ChatMessage struct {
	Id        uuid.UUID
	SessionId uuid.UUID
	Sender    string
	Content   string
	Metadata  *MessageMetadata
	CreatedAt time.Time
}
