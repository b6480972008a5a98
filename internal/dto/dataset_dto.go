package dto

type PersonaResponse struct {
	IdPersona      int64  `json:"id_persona"`
	NombreCompleto string `json:"nombre_completo"`
}

type FuncionResponse struct {
	IdFuncion               int64  `json:"id_funcion"`
	GradoEus                int    `json:"grado_eus"`
	DescripcionFuncion      string `json:"descripcion_funcion"`
	CalificacionProfesional string `json:"calificacion_profesional"`
}

type TiempoResponse struct {
	IdTiempo     int64  `json:"id_tiempo"`
	Anho         int    `json:"anho"`
	Mes          string `json:"mes"`
	FechaInicio  string `json:"fecha_inicio"`
	FechaTermino string `json:"fecha_termino"`
	Region       string `json:"region"`
}

type ContratoDetalleResponse struct {
	IdContrato          int64  `json:"id_contrato"`
	Persona             string `json:"persona"`
	Funcion             string `json:"funcion"`
	Calificacion        string `json:"calificacion"`
	Mes                 string `json:"mes"`
	Anho                int    `json:"anho"`
	Region              string `json:"region"`
	HonorarioTotalBruto int64  `json:"honorario_total_bruto"`
	TipoPago            string `json:"tipo_pago"`
	Viaticos            string `json:"viaticos"`
	Observaciones       string `json:"observaciones"`
	EnlaceFunciones     string `json:"enlace_funciones"`
}

type EntityDetailResponse struct {
	Kind  string        `json:"kind"`
	Items []interface{} `json:"items"`
}
