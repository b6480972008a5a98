package contract

import (
	"context"

	"hr-chatbot-be/internal/entity"
	"hr-chatbot-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ExcludedTermRepository interface {
	Create(ctx context.Context, term *entity.ExcludedTerm) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ExcludedTerm, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ExcludedTerm, error)
}
