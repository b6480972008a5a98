package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type SystemLog struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Level     string         `gorm:"type:varchar(20);not null;index"`
	Module    string         `gorm:"type:varchar(100);not null"`
	Message   string         `gorm:"type:text;not null"`
	Details   datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt time.Time      `gorm:"autoCreateTime;index"`
}

func (SystemLog) TableName() string {
	return "system_logs"
}

type UsageStat struct {
	Id       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_usage_user_day"`
	Day      time.Time `gorm:"type:date;not null;uniqueIndex:idx_usage_user_day"`
	Messages int       `gorm:"not null;default:0"`
	Blocked  int       `gorm:"not null;default:0"`
}

func (UsageStat) TableName() string {
	return "usage_stats"
}
