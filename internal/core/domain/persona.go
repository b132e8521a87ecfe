package domain

// Persona is a natural person; clientes and empleados reference one.
type Persona struct {
	ID       int64
	Nombre   string
	Cedula   string
	Telefono string
	Edad     int
	Sexo     string
}

// PersonaUpdate holds the mutable fields of a persona.
type PersonaUpdate struct {
	Nombre   string
	Telefono string
	Edad     int
}
