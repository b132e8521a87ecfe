package domain

import "time"

// Factura is the invoice issued for a single paquete.
type Factura struct {
	ID         int64
	Detalle    string
	EstadoPago string
	MontoTotal float64
	Fecha      time.Time
	MetodoPago string
	IVA        float64
	Descuento  float64
	PaqueteID  int64
}
