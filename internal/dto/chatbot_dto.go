package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateSessionResponse struct {
	Id   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type GetAllSessionsResponse struct {
	Id         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	State      string     `json:"state"`
	StartedAt  time.Time  `json:"started_at"`
	EndedAt    *time.Time `json:"ended_at,omitempty"`
	HasBlocked bool       `json:"has_blocked"`
}

type MessageMetadataDTO struct {
	Kind string  `json:"tipo"`
	Ids  []int64 `json:"ids"`
}

type GetChatHistoryResponse struct {
	Id          uuid.UUID           `json:"id"`
	Sender      string              `json:"sender"`
	Content     string              `json:"content"`
	CreatedAt   time.Time           `json:"created_at"`
	Metadata    *MessageMetadataDTO `json:"metadata,omitempty"`
	HasSnapshot bool                `json:"has_snapshot"`
}

type SessionDetailResponse struct {
	Id            uuid.UUID                 `json:"id"`
	Name          string                    `json:"name"`
	State         string                    `json:"state"`
	StartedAt     time.Time                 `json:"started_at"`
	EndedAt       *time.Time                `json:"ended_at,omitempty"`
	ActiveContext string                    `json:"active_context,omitempty"`
	Messages      []*GetChatHistoryResponse `json:"messages"`
}

type SendMessageRequest struct {
	Question string `json:"question" validate:"required"`
}

type SendMessageResponse struct {
	SessionId   uuid.UUID           `json:"session_id"`
	SessionName string              `json:"session_name"`
	Success     bool                `json:"success"`
	Answer      string              `json:"answer"`
	Metadata    *MessageMetadataDTO `json:"metadata,omitempty"`
	HasSnapshot bool                `json:"has_snapshot"`
	MessageId   uuid.UUID           `json:"message_id"`
}

type SourceDataResponse struct {
	MessageId uuid.UUID                `json:"message_id"`
	Rows      []map[string]interface{} `json:"rows"`
}
