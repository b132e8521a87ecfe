package ports

import (
	"context"

	"github.com/paqueteria/logistics-api/internal/core/domain"
)

type PaqueteService interface {
	Create(ctx context.Context, p domain.Paquete) (*domain.ProcedureResult, error)
	UpdateEstado(ctx context.Context, id int64, estado int) error
	Update(ctx context.Context, p domain.Paquete) error
	List(ctx context.Context, filter domain.PaqueteFilter) ([]domain.Paquete, error)
	Get(ctx context.Context, id int64) (*domain.Paquete, error)
	Delete(ctx context.Context, id int64) error
}
