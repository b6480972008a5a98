package dto

import (
	"time"

	"github.com/google/uuid"
)

type AddExcludedTermRequest struct {
	Term string `json:"term" validate:"required,max=100"`
}

type ExcludedTermResponse struct {
	Id        uuid.UUID `json:"id"`
	Term      string    `json:"term"`
	CreatedAt time.Time `json:"created_at"`
}
