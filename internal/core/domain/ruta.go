package domain

import "time"

// Ruta is a transport leg between two locations.
type Ruta struct {
	ID           int64
	Origen       string
	Destino      string
	FechaSalida  time.Time
	FechaLlegada time.Time
	Estado       string
}
