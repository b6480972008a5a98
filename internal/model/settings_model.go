package model

import (
	"time"

	"github.com/google/uuid"
)

type ExcludedTerm struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_excluded_user_term"`
	Term      string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_excluded_user_term"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (ExcludedTerm) TableName() string {
	return "excluded_terms"
}

type PromptContext struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name         string    `gorm:"type:varchar(255);not null"`
	SystemPrompt string    `gorm:"type:text;not null"`
	Active       bool      `gorm:"not null;default:false;index"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

func (PromptContext) TableName() string {
	return "prompt_contexts"
}
