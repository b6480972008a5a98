package model

import (
	"time"

	"github.com/google/uuid"
)

type ChatSession struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index"` // ownership, sessions are never shared
	Name      string    `gorm:"type:text;not null"`
	State     string    `gorm:"type:varchar(20);not null;default:'activa'"`
	StartedAt time.Time `gorm:"autoCreateTime"`
	EndedAt   *time.Time
}

func (ChatSession) TableName() string {
	return "chat_sessions"
}
