package handler

import (
	"time"

	"github.com/paqueteria/logistics-api/internal/core/domain"
)

// --- Request → domain ---

func (r paqueteRequest) toDomain(id int64) domain.Paquete {
	return domain.Paquete{
		ID:          id,
		Peso:        r.Peso,
		Dimensiones: r.Dimensiones,
		Contenido:   r.Contenido,
		Estado:      r.Estado,
		ClienteID:   r.ClienteID,
		CentroID:    r.CentroID,
	}
}

// toDomain assumes the dates were checked by the validator.
func (r createFacturaRequest) toDomain() domain.Factura {
	fecha, _ := time.Parse(dateLayout, r.Fecha)
	return domain.Factura{
		Detalle:    r.Detalle,
		EstadoPago: r.EstadoPago,
		MontoTotal: r.MontoTotal,
		Fecha:      fecha,
		MetodoPago: r.MetodoPago,
		IVA:        r.IVA,
		Descuento:  r.Descuento,
		PaqueteID:  r.PaqueteID,
	}
}

func (r createRutaRequest) toDomain() (domain.Ruta, error) {
	salida, _ := time.Parse(dateLayout, r.FechaSalida)
	llegada, _ := time.Parse(dateLayout, r.FechaLlegada)
	if llegada.Before(salida) {
		return domain.Ruta{}, domain.NewError(domain.ErrInvalidInput, "fecha_llegada no puede ser anterior a fecha_salida")
	}
	return domain.Ruta{
		Origen:       r.Origen,
		Destino:      r.Destino,
		FechaSalida:  salida,
		FechaLlegada: llegada,
		Estado:       r.Estado,
	}, nil
}

// --- Domain → HTTP response ---

func toPersonaResponse(p domain.Persona) personaResponse {
	return personaResponse{
		ID:       p.ID,
		Nombre:   p.Nombre,
		Cedula:   p.Cedula,
		Telefono: p.Telefono,
		Edad:     p.Edad,
		Sexo:     p.Sexo,
	}
}

func toClienteResponse(c domain.Cliente) clienteResponse {
	return clienteResponse{ID: c.ID, Direccion: c.Direccion, PersonaID: c.PersonaID}
}

func toClienteDetailResponse(c domain.ClienteDetail) clienteDetailResponse {
	return clienteDetailResponse{
		ID:        c.ID,
		Direccion: c.Direccion,
		Nombre:    c.Nombre,
		Cedula:    c.Cedula,
		Telefono:  c.Telefono,
	}
}

func toPaqueteResponse(p domain.Paquete) paqueteResponse {
	return paqueteResponse{
		ID:          p.ID,
		Peso:        p.Peso,
		Dimensiones: p.Dimensiones,
		Contenido:   p.Contenido,
		Estado:      p.Estado,
		ClienteID:   p.ClienteID,
		CentroID:    p.CentroID,
	}
}

func toFacturaResponse(f domain.Factura) facturaResponse {
	return facturaResponse{
		ID:         f.ID,
		Detalle:    f.Detalle,
		EstadoPago: f.EstadoPago,
		MontoTotal: f.MontoTotal,
		Fecha:      formatDate(f.Fecha),
		MetodoPago: f.MetodoPago,
		IVA:        f.IVA,
		Descuento:  f.Descuento,
		PaqueteID:  f.PaqueteID,
	}
}

func toRutaResponse(r domain.Ruta) rutaResponse {
	return rutaResponse{
		ID:           r.ID,
		Origen:       r.Origen,
		Destino:      r.Destino,
		FechaSalida:  formatDate(r.FechaSalida),
		FechaLlegada: formatDate(r.FechaLlegada),
		Estado:       r.Estado,
	}
}

func toCentroResponse(c domain.Centro) centroResponse {
	return centroResponse{ID: c.ID, Ubicacion: c.Ubicacion, Capacidad: c.Capacidad}
}

// mapSlice converts every element of in with fn. The result is never nil so
// empty listings encode as [].
func mapSlice[T, R any](in []T, fn func(T) R) []R {
	out := make([]R, 0, len(in))
	for _, v := range in {
		out = append(out, fn(v))
	}
	return out
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

func procedureLines(r *domain.ProcedureResult) []string {
	if r == nil || r.Lines == nil {
		return []string{}
	}
	return r.Lines
}
