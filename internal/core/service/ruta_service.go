package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/paqueteria/logistics-api/internal/core/domain"
	"github.com/paqueteria/logistics-api/internal/core/ports"
)

const msgRutaNotFound = "Ruta no encontrada"

type rutaService struct {
	repo  ports.RutaRepository
	audit ports.AuditPublisher
}

func NewRutaService(repo ports.RutaRepository, audit ports.AuditPublisher) ports.RutaService {
	return &rutaService{repo: repo, audit: audit}
}

func (s *rutaService) Create(ctx context.Context, r domain.Ruta) (*domain.ProcedureResult, error) {
	if strings.TrimSpace(r.Origen) == "" || strings.TrimSpace(r.Destino) == "" {
		return nil, domain.NewError(domain.ErrInvalidInput, "origen y destino son obligatorios")
	}
	if r.FechaLlegada.Before(r.FechaSalida) {
		return nil, domain.NewError(domain.ErrInvalidInput, "fecha_llegada no puede ser anterior a fecha_salida")
	}
	res, err := s.repo.Create(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("create ruta: %w", err)
	}
	return res, nil
}

// Complete marks the route as finished through the marcar_completada procedure.
func (s *rutaService) Complete(ctx context.Context, id int64) error {
	if err := s.repo.Complete(ctx, id); err != nil {
		return domain.Describe(err, domain.ErrNotFound, msgRutaNotFound)
	}
	s.audit.Publish(auditEvent(ctx, domain.AuditRutaCompleted, "ruta", id, nil))
	return nil
}

func (s *rutaService) List(ctx context.Context) ([]domain.Ruta, error) {
	rutas, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list rutas: %w", err)
	}
	return rutas, nil
}

func (s *rutaService) Get(ctx context.Context, id int64) (*domain.Ruta, error) {
	r, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, domain.Describe(err, domain.ErrNotFound, msgRutaNotFound)
	}
	return r, nil
}

func (s *rutaService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		err = domain.Describe(err, domain.ErrNotFound, msgRutaNotFound)
		return domain.Describe(err, domain.ErrDependencyConflict,
			"No se puede eliminar: la ruta tiene dependencias")
	}
	s.audit.Publish(auditEvent(ctx, domain.AuditRecordDeleted, "ruta", id, nil))
	return nil
}
