package dto

import (
	"time"

	"github.com/google/uuid"
)

// UsageEventMessage is the payload published to the usage topic for every
// processed user message.
type UsageEventMessage struct {
	UserId  uuid.UUID `json:"user_id"`
	Blocked bool      `json:"blocked"`
	At      time.Time `json:"at"`
}
