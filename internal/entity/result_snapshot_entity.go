package entity

import (
	"time"

	"github.com/google/uuid"
)

// ResultSnapshot keeps the row set a single executed query returned,
// attached 1:1 to the assistant message that reported it. It backs the
// on-demand source-data view and entity detail cross-referencing.
type ResultSnapshot struct {
	Id        uuid.UUID
	MessageId uuid.UUID
	Rows      []map[string]interface{}
	CreatedAt time.Time
}
