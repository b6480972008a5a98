package contract

import (
	"context"

	"hr-chatbot-be/internal/entity"
	"hr-chatbot-be/internal/repository/specification"

	"github.com/google/uuid"
)

type SnapshotRepository interface {
	Create(ctx context.Context, snapshot *entity.ResultSnapshot) error
	// DeleteAllBySessionId removes the snapshots of every message in the
	// session. Used only by session deletion.
	DeleteAllBySessionId(ctx context.Context, sessionId uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ResultSnapshot, error)
}
