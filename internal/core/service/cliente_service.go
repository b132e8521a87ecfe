package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/paqueteria/logistics-api/internal/core/domain"
	"github.com/paqueteria/logistics-api/internal/core/ports"
)

const msgPersonaMissing = "La persona no existe"

type clienteService struct {
	repo     ports.ClienteRepository
	personas ports.PersonaRepository
}

func NewClienteService(repo ports.ClienteRepository, personas ports.PersonaRepository) ports.ClienteService {
	return &clienteService{repo: repo, personas: personas}
}

func (s *clienteService) List(ctx context.Context) ([]domain.ClienteDetail, error) {
	clientes, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	return clientes, nil
}

func (s *clienteService) Get(ctx context.Context, id int64) (*domain.Cliente, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, domain.Describe(err, domain.ErrNotFound, "Cliente no encontrado")
	}
	return c, nil
}

// Create checks the persona first so the common mistake gets a clear 400; the
// foreign key still catches a persona deleted in between.
func (s *clienteService) Create(ctx context.Context, c domain.Cliente) (int64, error) {
	if _, err := s.personas.FindByID(ctx, c.PersonaID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return 0, domain.NewError(domain.ErrMissingReference, msgPersonaMissing)
		}
		return 0, fmt.Errorf("create cliente: %w", err)
	}

	if err := s.repo.Create(ctx, &c); err != nil {
		err = domain.Describe(err, domain.ErrMissingReference, msgPersonaMissing)
		return 0, domain.Describe(err, domain.ErrConflictDuplicate, "El cliente ya existe")
	}
	return c.ID, nil
}

func (s *clienteService) UpdateDireccion(ctx context.Context, id int64, direccion string) error {
	if strings.TrimSpace(direccion) == "" {
		return domain.NewError(domain.ErrInvalidInput, "direccion es obligatoria")
	}
	err := s.repo.UpdateDireccion(ctx, id, direccion)
	return domain.Describe(err, domain.ErrNotFound, "Cliente no encontrado")
}

func (s *clienteService) Delete(ctx context.Context, id int64) error {
	err := s.repo.Delete(ctx, id)
	err = domain.Describe(err, domain.ErrNotFound, "Cliente no encontrado")
	return domain.Describe(err, domain.ErrDependencyConflict,
		"No se puede eliminar: cliente tiene paquetes asociados")
}
