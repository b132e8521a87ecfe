package domain

// Centro is a distribution center.
type Centro struct {
	ID        int64
	Ubicacion string
	Capacidad int
}
