package ports

import (
	"context"

	"github.com/paqueteria/logistics-api/internal/core/domain"
)

// CentroRepository persists CENTRO_DISTRIBUCION rows through the database
// functions crear_centro, actualizar_capacidad and eliminar_centro.
type CentroRepository interface {
	List(ctx context.Context) ([]domain.Centro, error)
	FindByID(ctx context.Context, id int64) (*domain.Centro, error)
	Create(ctx context.Context, ubicacion string, capacidad int) (int64, error)
	// Update sets the capacity and, when ubicacion is non-empty, the location
	// in one transaction. It returns the function's result message.
	Update(ctx context.Context, id int64, capacidad int, ubicacion string) (string, error)
	Delete(ctx context.Context, id int64) (string, error)
}
