package domain

// Paquete is a parcel held by a distribution center on behalf of a cliente.
// Estado is the numeric state code managed by the database procedures.
type Paquete struct {
	ID          int64
	Peso        float64
	Dimensiones string
	Contenido   string
	Estado      int
	ClienteID   int64
	CentroID    int64
}

// PaqueteFilter narrows a package listing. Nil fields are not applied.
type PaqueteFilter struct {
	Estado    *int
	ClienteID *int64
	CentroID  *int64
}

// ProcedureResult carries the informational lines a stored procedure emits.
type ProcedureResult struct {
	Lines []string
}
