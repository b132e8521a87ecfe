package ports

import (
	"context"

	"github.com/paqueteria/logistics-api/internal/core/domain"
)

type CentroService interface {
	List(ctx context.Context) ([]domain.Centro, error)
	Get(ctx context.Context, id int64) (*domain.Centro, error)
	Create(ctx context.Context, ubicacion string, capacidad int) (int64, error)
	Update(ctx context.Context, id int64, capacidad int, ubicacion string) (string, error)
	Delete(ctx context.Context, id int64) (string, error)
}
