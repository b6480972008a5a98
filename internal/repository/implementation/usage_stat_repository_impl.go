package implementation

import (
	"context"
	"time"

	"hr-chatbot-be/internal/entity"
	"hr-chatbot-be/internal/mapper"
	"hr-chatbot-be/internal/model"
	"hr-chatbot-be/internal/repository/contract"
	"hr-chatbot-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UsageStatRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AdminMapper
}

func NewUsageStatRepository(db *gorm.DB) contract.UsageStatRepository {
	return &UsageStatRepositoryImpl{
		db:     db,
		mapper: mapper.NewAdminMapper(),
	}
}

func (r *UsageStatRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *UsageStatRepositoryImpl) Increment(ctx context.Context, userId uuid.UUID, day time.Time, messages, blocked int) error {
	stat := &model.UsageStat{
		UserId:   userId,
		Day:      day.Truncate(24 * time.Hour),
		Messages: messages,
		Blocked:  blocked,
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "day"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"messages": gorm.Expr("usage_stats.messages + ?", messages),
			"blocked":  gorm.Expr("usage_stats.blocked + ?", blocked),
		}),
	}).Create(stat).Error
}

func (r *UsageStatRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.UsageStat, error) {
	var models []*model.UsageStat
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.UsageStat, len(models))
	for i, m := range models {
		entities[i] = r.mapper.UsageStatToEntity(m)
	}
	return entities, nil
}

func (r *UsageStatRepositoryImpl) SumMessages(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var total int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.UsageStat{}), specs...)
	if err := query.Select("COALESCE(SUM(messages), 0)").Scan(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
