package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChatSession is one conversation thread owned by a user. The state only
// ever moves from active to finalized, never back.
type ChatSession struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Name      string
	State     string
	StartedAt time.Time
	EndedAt   *time.Time
}
