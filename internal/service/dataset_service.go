package service

import (
	"context"

	"hr-chatbot-be/internal/dto"
	"hr-chatbot-be/internal/repository/unitofwork"
	"hr-chatbot-be/pkg/dataset"

	"github.com/gofiber/fiber/v2"
)

type IDatasetService interface {
	GetEntityDetail(ctx context.Context, kind string, ids []int64) (*dto.EntityDetailResponse, error)
}

// datasetService resolves the references extracted from assistant answers
// into the HR rows they point at.
type datasetService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewDatasetService(uowFactory unitofwork.RepositoryFactory) IDatasetService {
	return &datasetService{uowFactory: uowFactory}
}

func (s *datasetService) GetEntityDetail(ctx context.Context, kind string, ids []int64) (*dto.EntityDetailResponse, error) {
	normalized, ok := dataset.Normalize(kind)
	if !ok {
		return nil, fiber.NewError(fiber.StatusBadRequest, "unknown entity kind")
	}
	if len(ids) == 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "no ids provided")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.DatasetRepository()

	items := make([]interface{}, 0, len(ids))
	switch normalized {
	case dataset.KindContrato:
		details, err := repo.FindContratosByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		for _, d := range details {
			items = append(items, &dto.ContratoDetalleResponse{
				IdContrato:          d.IdContrato,
				Persona:             d.Persona,
				Funcion:             d.Funcion,
				Calificacion:        d.Calificacion,
				Mes:                 d.Mes,
				Anho:                d.Anho,
				Region:              d.Region,
				HonorarioTotalBruto: d.HonorarioTotalBruto,
				TipoPago:            d.TipoPago,
				Viaticos:            d.Viaticos,
				Observaciones:       d.Observaciones,
				EnlaceFunciones:     d.EnlaceFunciones,
			})
		}
	case dataset.KindPersona:
		for _, id := range ids {
			p, err := repo.FindPersonaByID(ctx, id)
			if err != nil {
				return nil, err
			}
			if p == nil {
				continue
			}
			items = append(items, &dto.PersonaResponse{
				IdPersona:      p.IdPersona,
				NombreCompleto: p.NombreCompleto,
			})
		}
	case dataset.KindFuncion:
		for _, id := range ids {
			f, err := repo.FindFuncionByID(ctx, id)
			if err != nil {
				return nil, err
			}
			if f == nil {
				continue
			}
			items = append(items, &dto.FuncionResponse{
				IdFuncion:               f.IdFuncion,
				GradoEus:                f.GradoEus,
				DescripcionFuncion:      f.DescripcionFuncion,
				CalificacionProfesional: f.CalificacionProfesional,
			})
		}
	case dataset.KindTiempo:
		for _, id := range ids {
			t, err := repo.FindTiempoByID(ctx, id)
			if err != nil {
				return nil, err
			}
			if t == nil {
				continue
			}
			items = append(items, &dto.TiempoResponse{
				IdTiempo:     t.IdTiempo,
				Anho:         t.Anho,
				Mes:          t.Mes,
				FechaInicio:  t.FechaInicio.Format("2006-01-02"),
				FechaTermino: t.FechaTermino.Format("2006-01-02"),
				Region:       t.Region,
			})
		}
	}

	return &dto.EntityDetailResponse{
		Kind:  normalized,
		Items: items,
	}, nil
}
