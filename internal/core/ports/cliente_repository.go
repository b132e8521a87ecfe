package ports

import (
	"context"

	"github.com/paqueteria/logistics-api/internal/core/domain"
)

type ClienteRepository interface {
	List(ctx context.Context) ([]domain.ClienteDetail, error)
	FindByID(ctx context.Context, id int64) (*domain.Cliente, error)
	Create(ctx context.Context, c *domain.Cliente) error
	UpdateDireccion(ctx context.Context, id int64, direccion string) error
	Delete(ctx context.Context, id int64) error
}
