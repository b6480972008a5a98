package dto

import (
	"time"

	"github.com/google/uuid"
)

type DashboardResponse struct {
	TotalUsers       int64 `json:"total_users"`
	TotalSessions    int64 `json:"total_sessions"`
	ActiveSessions   int64 `json:"active_sessions"`
	TotalMessages    int64 `json:"total_messages"`
	BlockedQuestions int64 `json:"blocked_questions"`
	MessagesToday    int64 `json:"messages_today"`

	RecentSessions []RecentSessionResponse `json:"recent_sessions"`
	RecentBlocked  []RecentBlockedResponse `json:"recent_blocked"`
	FrequentTerms  []TermFrequencyResponse `json:"frequent_terms"`
	ActiveContext  string                  `json:"active_context,omitempty"`
}

type RecentSessionResponse struct {
	Id        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	State     string    `json:"state"`
	StartedAt time.Time `json:"started_at"`
}

type RecentBlockedResponse struct {
	Question  string    `json:"question"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"created_at"`
}

type TermFrequencyResponse struct {
	Term  string `json:"term"`
	Count int    `json:"count"`
}

type CreatePromptContextRequest struct {
	Name         string `json:"name" validate:"required,max=255"`
	SystemPrompt string `json:"system_prompt" validate:"required"`
}

type PromptContextResponse struct {
	Id           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	SystemPrompt string    `json:"system_prompt"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
}

type SystemLogResponse struct {
	Id        string                 `json:"id"`
	Level     string                 `json:"level"`
	Module    string                 `json:"module"`
	Message   string                 `json:"message"`
	Details   map[string]interface{} `json:"details,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}

type UsageStatResponse struct {
	UserId   uuid.UUID `json:"user_id"`
	Day      time.Time `json:"day"`
	Messages int       `json:"messages"`
	Blocked  int       `json:"blocked"`
}
