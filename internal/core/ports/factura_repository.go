package ports

import (
	"context"

	"github.com/paqueteria/logistics-api/internal/core/domain"
)

type FacturaRepository interface {
	Create(ctx context.Context, f domain.Factura) (*domain.ProcedureResult, error)
	Pay(ctx context.Context, id int64) error
	List(ctx context.Context) ([]domain.Factura, error)
	FindByID(ctx context.Context, id int64) (*domain.Factura, error)
	Delete(ctx context.Context, id int64) error
}
