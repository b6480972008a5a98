package entity

import (
	"time"

	"github.com/google/uuid"
)

// BlockedQuestion is an immutable evidentiary record. A session holding at
// least one of these can never be deleted.
type BlockedQuestion struct {
	Id        uuid.UUID
	SessionId uuid.UUID
	Question  string
	Reason    string
	CreatedAt time.Time
}
