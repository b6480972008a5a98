package mapper

import (
	"hr-chatbot-be/internal/entity"
	"hr-chatbot-be/internal/model"
)

type DatasetMapper struct{}

func NewDatasetMapper() *DatasetMapper {
	return &DatasetMapper{}
}

func (m *DatasetMapper) PersonaToEntity(p *model.Persona) *entity.Persona {
	if p == nil {
		return nil
	}
	return &entity.Persona{
		IdPersona:      p.IdPersona,
		NombreCompleto: p.NombreCompleto,
	}
}

func (m *DatasetMapper) FuncionToEntity(f *model.Funcion) *entity.Funcion {
	if f == nil {
		return nil
	}
	return &entity.Funcion{
		IdFuncion:               f.IdFuncion,
		GradoEus:                f.GradoEus,
		DescripcionFuncion:      f.DescripcionFuncion,
		CalificacionProfesional: f.CalificacionProfesional,
	}
}

func (m *DatasetMapper) TiempoToEntity(t *model.TiempoContrato) *entity.TiempoContrato {
	if t == nil {
		return nil
	}
	return &entity.TiempoContrato{
		IdTiempo:     t.IdTiempo,
		Anho:         t.Anho,
		Mes:          t.Mes,
		FechaInicio:  t.FechaInicio,
		FechaTermino: t.FechaTermino,
		Region:       t.Region,
	}
}

func (m *DatasetMapper) ContratoToEntity(c *model.Contrato) *entity.Contrato {
	if c == nil {
		return nil
	}
	return &entity.Contrato{
		IdContrato:          c.IdContrato,
		IdPersona:           c.IdPersona,
		IdFuncion:           c.IdFuncion,
		IdTiempo:            c.IdTiempo,
		HonorarioTotalBruto: c.HonorarioTotalBruto,
		TipoPago:            c.TipoPago,
		Viaticos:            c.Viaticos,
		Observaciones:       c.Observaciones,
		EnlaceFunciones:     c.EnlaceFunciones,
	}
}

// ContratoToDetalle flattens a contract with its preloaded relations into
// the joined projection the detail endpoint returns.
func (m *DatasetMapper) ContratoToDetalle(c *model.Contrato) *entity.ContratoDetalle {
	if c == nil {
		return nil
	}

	detalle := &entity.ContratoDetalle{Contrato: *m.ContratoToEntity(c)}
	if c.Persona != nil {
		detalle.Persona = c.Persona.NombreCompleto
	}
	if c.Funcion != nil {
		detalle.Funcion = c.Funcion.DescripcionFuncion
		detalle.Calificacion = c.Funcion.CalificacionProfesional
	}
	if c.Tiempo != nil {
		detalle.Mes = c.Tiempo.Mes
		detalle.Anho = c.Tiempo.Anho
		detalle.Region = c.Tiempo.Region
	}
	return detalle
}
