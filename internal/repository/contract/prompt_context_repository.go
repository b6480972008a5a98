package contract

import (
	"context"

	"hr-chatbot-be/internal/entity"
	"hr-chatbot-be/internal/repository/specification"

	"github.com/google/uuid"
)

type PromptContextRepository interface {
	Create(ctx context.Context, promptContext *entity.PromptContext) error
	Update(ctx context.Context, promptContext *entity.PromptContext) error
	Delete(ctx context.Context, id uuid.UUID) error
	// DeactivateAll clears the active flag on every context. Callers pair it
	// with Update inside one transaction when switching the active context.
	DeactivateAll(ctx context.Context) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.PromptContext, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PromptContext, error)
}
