package implementation

import (
	"context"
	"errors"

	"hr-chatbot-be/internal/entity"
	"hr-chatbot-be/internal/mapper"
	"hr-chatbot-be/internal/model"
	"hr-chatbot-be/internal/repository/contract"
	"hr-chatbot-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PromptContextRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SettingsMapper
}

func NewPromptContextRepository(db *gorm.DB) contract.PromptContextRepository {
	return &PromptContextRepositoryImpl{
		db:     db,
		mapper: mapper.NewSettingsMapper(),
	}
}

func (r *PromptContextRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *PromptContextRepositoryImpl) Create(ctx context.Context, promptContext *entity.PromptContext) error {
	m := r.mapper.PromptContextToModel(promptContext)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*promptContext = *r.mapper.PromptContextToEntity(m)
	return nil
}

func (r *PromptContextRepositoryImpl) Update(ctx context.Context, promptContext *entity.PromptContext) error {
	m := r.mapper.PromptContextToModel(promptContext)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*promptContext = *r.mapper.PromptContextToEntity(m)
	return nil
}

func (r *PromptContextRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.PromptContext{}, id).Error
}

func (r *PromptContextRepositoryImpl) DeactivateAll(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Model(&model.PromptContext{}).
		Where("active = ?", true).
		Update("active", false).Error
}

func (r *PromptContextRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.PromptContext, error) {
	var m model.PromptContext
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.PromptContextToEntity(&m), nil
}

func (r *PromptContextRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PromptContext, error) {
	var models []*model.PromptContext
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.PromptContext, len(models))
	for i, m := range models {
		entities[i] = r.mapper.PromptContextToEntity(m)
	}
	return entities, nil
}
