package model

import "time"

// HR dataset models. These tables pre-exist and are read-only from this
// service; column names match the schema text fed to the language model.

type Persona struct {
	IdPersona      int64  `gorm:"column:id_persona;primaryKey"`
	NombreCompleto string `gorm:"column:nombre_completo"`
}

func (Persona) TableName() string {
	return "persona"
}

type Funcion struct {
	IdFuncion               int64  `gorm:"column:id_funcion;primaryKey"`
	GradoEus                int    `gorm:"column:grado_eus"`
	DescripcionFuncion      string `gorm:"column:descripcion_funcion"`
	CalificacionProfesional string `gorm:"column:calificacion_profesional"`
}

func (Funcion) TableName() string {
	return "funcion"
}

type TiempoContrato struct {
	IdTiempo     int64     `gorm:"column:id_tiempo;primaryKey"`
	Anho         int       `gorm:"column:anho"`
	Mes          string    `gorm:"column:mes"`
	FechaInicio  time.Time `gorm:"column:fecha_inicio"`
	FechaTermino time.Time `gorm:"column:fecha_termino"`
	Region       string    `gorm:"column:region"`
}

func (TiempoContrato) TableName() string {
	return "tiempo_contrato"
}

type Contrato struct {
	IdContrato          int64  `gorm:"column:id_contrato;primaryKey"`
	IdPersona           int64  `gorm:"column:id_persona"`
	IdFuncion           int64  `gorm:"column:id_funcion"`
	IdTiempo            int64  `gorm:"column:id_tiempo"`
	HonorarioTotalBruto int64  `gorm:"column:honorario_total_bruto"`
	TipoPago            string `gorm:"column:tipo_pago"`
	Viaticos            string `gorm:"column:viaticos"`
	Observaciones       string `gorm:"column:observaciones"`
	EnlaceFunciones     string `gorm:"column:enlace_funciones"`

	Persona *Persona        `gorm:"foreignKey:IdPersona;references:IdPersona"`
	Funcion *Funcion        `gorm:"foreignKey:IdFuncion;references:IdFuncion"`
	Tiempo  *TiempoContrato `gorm:"foreignKey:IdTiempo;references:IdTiempo"`
}

func (Contrato) TableName() string {
	return "contrato"
}
