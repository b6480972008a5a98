package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type MessageSnapshot struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	MessageId uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex"`
	Rows      datatypes.JSON `gorm:"type:jsonb;not null"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
}

func (MessageSnapshot) TableName() string {
	return "message_snapshots"
}
