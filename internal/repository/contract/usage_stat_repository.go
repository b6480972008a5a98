package contract

import (
	"context"
	"time"

	"hr-chatbot-be/internal/entity"
	"hr-chatbot-be/internal/repository/specification"

	"github.com/google/uuid"
)

type UsageStatRepository interface {
	// Increment upserts the (user, day) counter row, adding the deltas to the
	// existing values.
	Increment(ctx context.Context, userId uuid.UUID, day time.Time, messages, blocked int) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.UsageStat, error)
	SumMessages(ctx context.Context, specs ...specification.Specification) (int64, error)
}
