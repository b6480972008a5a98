package contract

import (
	"context"

	"hr-chatbot-be/internal/entity"
	"hr-chatbot-be/internal/repository/specification"
)

type BlockedQuestionRepository interface {
	Create(ctx context.Context, blocked *entity.BlockedQuestion) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.BlockedQuestion, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
