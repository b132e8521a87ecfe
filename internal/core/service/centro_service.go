package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/paqueteria/logistics-api/internal/core/domain"
	"github.com/paqueteria/logistics-api/internal/core/ports"
)

const msgCentroNotFound = "Centro no encontrado"

type centroService struct {
	repo ports.CentroRepository
}

func NewCentroService(repo ports.CentroRepository) ports.CentroService {
	return &centroService{repo: repo}
}

func (s *centroService) List(ctx context.Context) ([]domain.Centro, error) {
	centros, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list centros: %w", err)
	}
	return centros, nil
}

func (s *centroService) Get(ctx context.Context, id int64) (*domain.Centro, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, domain.Describe(err, domain.ErrNotFound, msgCentroNotFound)
	}
	return c, nil
}

func (s *centroService) Create(ctx context.Context, ubicacion string, capacidad int) (int64, error) {
	if strings.TrimSpace(ubicacion) == "" || capacidad <= 0 {
		return 0, domain.NewError(domain.ErrInvalidInput, "ubicacion y una capacidad positiva son obligatorias")
	}
	id, err := s.repo.Create(ctx, ubicacion, capacidad)
	if err != nil {
		return 0, fmt.Errorf("create centro: %w", err)
	}
	return id, nil
}

func (s *centroService) Update(ctx context.Context, id int64, capacidad int, ubicacion string) (string, error) {
	if capacidad <= 0 {
		return "", domain.NewError(domain.ErrInvalidInput, "capacidad debe ser mayor que 0")
	}
	detalle, err := s.repo.Update(ctx, id, capacidad, strings.TrimSpace(ubicacion))
	if err != nil {
		return "", domain.Describe(err, domain.ErrNotFound, msgCentroNotFound)
	}
	return detalle, nil
}

// Delete relays the eliminar_centro result, normalising the success message.
func (s *centroService) Delete(ctx context.Context, id int64) (string, error) {
	result, err := s.repo.Delete(ctx, id)
	if err != nil {
		err = domain.Describe(err, domain.ErrNotFound, msgCentroNotFound)
		return "", domain.Describe(err, domain.ErrDependencyConflict,
			"No se puede eliminar: el centro tiene dependencias")
	}
	if strings.Contains(strings.ToLower(result), "eliminado") {
		return "Centro eliminado exitosamente", nil
	}
	return result, nil
}
