package entity

import (
	"time"

	"github.com/google/uuid"
)

type SystemLog struct {
	Id        uuid.UUID
	Level     string
	Module    string
	Message   string
	Details   map[string]interface{} // JSONB
	CreatedAt time.Time
}

// UsageStat is a per-user per-day counter, aggregated asynchronously by the
// stats consumer.
type UsageStat struct {
	Id       uuid.UUID
	UserId   uuid.UUID
	Day      time.Time
	Messages int
	Blocked  int
}
