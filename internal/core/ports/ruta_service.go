package ports

import (
	"context"

	"github.com/paqueteria/logistics-api/internal/core/domain"
)

type RutaService interface {
	Create(ctx context.Context, r domain.Ruta) (*domain.ProcedureResult, error)
	Complete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]domain.Ruta, error)
	Get(ctx context.Context, id int64) (*domain.Ruta, error)
	Delete(ctx context.Context, id int64) error
}
