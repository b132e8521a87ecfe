package ports

import (
	"context"

	"github.com/paqueteria/logistics-api/internal/core/domain"
)

type PersonaService interface {
	List(ctx context.Context) ([]domain.Persona, error)
	Get(ctx context.Context, id int64) (*domain.Persona, error)
	Create(ctx context.Context, p domain.Persona) (int64, error)
	Update(ctx context.Context, id int64, u domain.PersonaUpdate) error
	Delete(ctx context.Context, id int64) error
}
