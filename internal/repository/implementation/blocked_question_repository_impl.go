package implementation

import (
	"context"

	"hr-chatbot-be/internal/entity"
	"hr-chatbot-be/internal/mapper"
	"hr-chatbot-be/internal/model"
	"hr-chatbot-be/internal/repository/contract"
	"hr-chatbot-be/internal/repository/specification"

	"gorm.io/gorm"
)

type BlockedQuestionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChatMapper
}

func NewBlockedQuestionRepository(db *gorm.DB) contract.BlockedQuestionRepository {
	return &BlockedQuestionRepositoryImpl{
		db:     db,
		mapper: mapper.NewChatMapper(),
	}
}

func (r *BlockedQuestionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *BlockedQuestionRepositoryImpl) Create(ctx context.Context, blocked *entity.BlockedQuestion) error {
	m := r.mapper.BlockedQuestionToModel(blocked)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*blocked = *r.mapper.BlockedQuestionToEntity(m)
	return nil
}

func (r *BlockedQuestionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.BlockedQuestion, error) {
	var models []*model.BlockedQuestion
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.BlockedQuestion, len(models))
	for i, m := range models {
		entities[i] = r.mapper.BlockedQuestionToEntity(m)
	}
	return entities, nil
}

func (r *BlockedQuestionRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.BlockedQuestion{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
