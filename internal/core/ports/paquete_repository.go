package ports

import (
	"context"

	"github.com/paqueteria/logistics-api/internal/core/domain"
)

// PaqueteRepository persists PAQUETE rows. Create, UpdateEstado and Delete
// go through stored procedures and relay their informational output.
type PaqueteRepository interface {
	Create(ctx context.Context, p domain.Paquete) (*domain.ProcedureResult, error)
	UpdateEstado(ctx context.Context, id int64, estado int) error
	Update(ctx context.Context, p domain.Paquete) error
	List(ctx context.Context, filter domain.PaqueteFilter) ([]domain.Paquete, error)
	FindByID(ctx context.Context, id int64) (*domain.Paquete, error)
	Delete(ctx context.Context, id int64) error
}
