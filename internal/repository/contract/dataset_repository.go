package contract

import (
	"context"

	"hr-chatbot-be/internal/entity"
)

// DatasetRepository reads the fixed HR schema. The dataset is never written
// from this service.
type DatasetRepository interface {
	FindPersonaByID(ctx context.Context, id int64) (*entity.Persona, error)
	FindFuncionByID(ctx context.Context, id int64) (*entity.Funcion, error)
	FindTiempoByID(ctx context.Context, id int64) (*entity.TiempoContrato, error)
	FindContratoByID(ctx context.Context, id int64) (*entity.ContratoDetalle, error)
	FindContratosByIDs(ctx context.Context, ids []int64) ([]*entity.ContratoDetalle, error)
}
