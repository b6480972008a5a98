package entity

import "time"

// The HR dataset is a fixed, read-only schema with serial integer keys.
// Table and column names are preserved verbatim because the SQL-generation
// prompt describes them literally.

type Persona struct {
	IdPersona      int64
	NombreCompleto string
}

type Funcion struct {
	IdFuncion               int64
	GradoEus                int
	DescripcionFuncion      string
	CalificacionProfesional string
}

type TiempoContrato struct {
	IdTiempo     int64
	Anho         int
	Mes          string
	FechaInicio  time.Time
	FechaTermino time.Time
	Region       string
}

type Contrato struct {
	IdContrato          int64
	IdPersona           int64
	IdFuncion           int64
	IdTiempo            int64
	HonorarioTotalBruto int64
	TipoPago            string
	Viaticos            string
	Observaciones       string
	EnlaceFunciones     string
}

// ContratoDetalle is a joined projection used by the contract detail view.
type ContratoDetalle struct {
	Contrato
	Persona      string
	Funcion      string
	Calificacion string
	Mes          string
	Anho         int
	Region       string
}
