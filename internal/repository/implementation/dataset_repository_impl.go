package implementation

import (
	"context"
	"errors"

	"hr-chatbot-be/internal/entity"
	"hr-chatbot-be/internal/mapper"
	"hr-chatbot-be/internal/model"
	"hr-chatbot-be/internal/repository/contract"

	"gorm.io/gorm"
)

type DatasetRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.DatasetMapper
}

func NewDatasetRepository(db *gorm.DB) contract.DatasetRepository {
	return &DatasetRepositoryImpl{
		db:     db,
		mapper: mapper.NewDatasetMapper(),
	}
}

func (r *DatasetRepositoryImpl) FindPersonaByID(ctx context.Context, id int64) (*entity.Persona, error) {
	var m model.Persona
	if err := r.db.WithContext(ctx).First(&m, "id_persona = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.PersonaToEntity(&m), nil
}

func (r *DatasetRepositoryImpl) FindFuncionByID(ctx context.Context, id int64) (*entity.Funcion, error) {
	var m model.Funcion
	if err := r.db.WithContext(ctx).First(&m, "id_funcion = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.FuncionToEntity(&m), nil
}

func (r *DatasetRepositoryImpl) FindTiempoByID(ctx context.Context, id int64) (*entity.TiempoContrato, error) {
	var m model.TiempoContrato
	if err := r.db.WithContext(ctx).First(&m, "id_tiempo = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.TiempoToEntity(&m), nil
}

func (r *DatasetRepositoryImpl) FindContratoByID(ctx context.Context, id int64) (*entity.ContratoDetalle, error) {
	var m model.Contrato
	err := r.db.WithContext(ctx).
		Preload("Persona").
		Preload("Funcion").
		Preload("Tiempo").
		First(&m, "id_contrato = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ContratoToDetalle(&m), nil
}

func (r *DatasetRepositoryImpl) FindContratosByIDs(ctx context.Context, ids []int64) ([]*entity.ContratoDetalle, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var models []*model.Contrato
	err := r.db.WithContext(ctx).
		Preload("Persona").
		Preload("Funcion").
		Preload("Tiempo").
		Where("id_contrato IN ?", ids).
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	details := make([]*entity.ContratoDetalle, len(models))
	for i, m := range models {
		details[i] = r.mapper.ContratoToDetalle(m)
	}
	return details, nil
}
