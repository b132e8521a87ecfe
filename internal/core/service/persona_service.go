package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/paqueteria/logistics-api/internal/core/domain"
	"github.com/paqueteria/logistics-api/internal/core/ports"
)

type personaService struct {
	repo ports.PersonaRepository
}

func NewPersonaService(repo ports.PersonaRepository) ports.PersonaService {
	return &personaService{repo: repo}
}

func (s *personaService) List(ctx context.Context) ([]domain.Persona, error) {
	personas, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list personas: %w", err)
	}
	return personas, nil
}

func (s *personaService) Get(ctx context.Context, id int64) (*domain.Persona, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, domain.Describe(err, domain.ErrNotFound, "Persona no encontrada")
	}
	return p, nil
}

func (s *personaService) Create(ctx context.Context, p domain.Persona) (int64, error) {
	if strings.TrimSpace(p.Nombre) == "" || strings.TrimSpace(p.Cedula) == "" {
		return 0, domain.NewError(domain.ErrInvalidInput, "nombre_persona y cedula_persona son obligatorios")
	}
	if err := s.repo.Create(ctx, &p); err != nil {
		return 0, domain.Describe(err, domain.ErrConflictDuplicate, "ID_PERSONA o CEDULA ya existen")
	}
	return p.ID, nil
}

func (s *personaService) Update(ctx context.Context, id int64, u domain.PersonaUpdate) error {
	err := s.repo.Update(ctx, id, u)
	return domain.Describe(err, domain.ErrNotFound, "Persona no encontrada")
}

func (s *personaService) Delete(ctx context.Context, id int64) error {
	err := s.repo.Delete(ctx, id)
	err = domain.Describe(err, domain.ErrNotFound, "Persona no encontrada")
	return domain.Describe(err, domain.ErrDependencyConflict,
		"No se puede eliminar: la persona está asociada a un cliente o empleado")
}
