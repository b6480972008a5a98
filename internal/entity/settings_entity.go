package entity

import (
	"time"

	"github.com/google/uuid"
)

// ExcludedTerm is a per-user word the generated queries must filter out via
// NOT LIKE conditions. Stored lowercase, unique per (user, term).
type ExcludedTerm struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Term      string
	CreatedAt time.Time
}

// PromptContext is an operator-configurable instruction block appended to
// the answer-composition prompt. At most one context is active at a time;
// activation deactivates every other context in the same transaction.
type PromptContext struct {
	Id           uuid.UUID
	Name         string
	SystemPrompt string
	Active       bool
	CreatedAt    time.Time
}
