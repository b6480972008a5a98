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

type ExcludedTermRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SettingsMapper
}

func NewExcludedTermRepository(db *gorm.DB) contract.ExcludedTermRepository {
	return &ExcludedTermRepositoryImpl{
		db:     db,
		mapper: mapper.NewSettingsMapper(),
	}
}

func (r *ExcludedTermRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ExcludedTermRepositoryImpl) Create(ctx context.Context, term *entity.ExcludedTerm) error {
	m := r.mapper.ExcludedTermToModel(term)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*term = *r.mapper.ExcludedTermToEntity(m)
	return nil
}

func (r *ExcludedTermRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.ExcludedTerm{}, id).Error
}

func (r *ExcludedTermRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ExcludedTerm, error) {
	var m model.ExcludedTerm
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ExcludedTermToEntity(&m), nil
}

func (r *ExcludedTermRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ExcludedTerm, error) {
	var models []*model.ExcludedTerm
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.ExcludedTerm, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ExcludedTermToEntity(m)
	}
	return entities, nil
}
