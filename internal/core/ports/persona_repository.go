package ports

import (
	"context"

	"github.com/paqueteria/logistics-api/internal/core/domain"
)

// PersonaRepository persists PERSONA rows. Lookups and mutations of a missing
// id return domain.ErrNotFound.
type PersonaRepository interface {
	List(ctx context.Context) ([]domain.Persona, error)
	FindByID(ctx context.Context, id int64) (*domain.Persona, error)
	Create(ctx context.Context, p *domain.Persona) error
	Update(ctx context.Context, id int64, u domain.PersonaUpdate) error
	Delete(ctx context.Context, id int64) error
}
