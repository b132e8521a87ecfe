package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/paqueteria/logistics-api/internal/core/domain"
	"github.com/paqueteria/logistics-api/internal/core/ports"
)

const msgPaqueteNotFound = "Paquete no encontrado"

type paqueteService struct {
	repo  ports.PaqueteRepository
	audit ports.AuditPublisher
}

func NewPaqueteService(repo ports.PaqueteRepository, audit ports.AuditPublisher) ports.PaqueteService {
	return &paqueteService{repo: repo, audit: audit}
}

func (s *paqueteService) Create(ctx context.Context, p domain.Paquete) (*domain.ProcedureResult, error) {
	if p.Peso <= 0 {
		return nil, domain.NewError(domain.ErrInvalidInput, "peso debe ser mayor que 0")
	}
	res, err := s.repo.Create(ctx, p)
	if err != nil {
		return nil, domain.Describe(err, domain.ErrMissingReference, "El cliente o el centro no existen")
	}
	s.audit.Publish(auditEvent(ctx, domain.AuditPaqueteCreated, "paquete", 0, map[string]string{
		"id_cliente": strconv.FormatInt(p.ClienteID, 10),
		"id_centro":  strconv.FormatInt(p.CentroID, 10),
		"estado":     strconv.Itoa(p.Estado),
	}))
	return res, nil
}

func (s *paqueteService) UpdateEstado(ctx context.Context, id int64, estado int) error {
	if err := s.repo.UpdateEstado(ctx, id, estado); err != nil {
		return domain.Describe(err, domain.ErrNotFound, msgPaqueteNotFound)
	}
	s.audit.Publish(auditEvent(ctx, domain.AuditPaqueteEstado, "paquete", id, map[string]string{
		"estado": strconv.Itoa(estado),
	}))
	return nil
}

func (s *paqueteService) Update(ctx context.Context, p domain.Paquete) error {
	if p.Peso <= 0 {
		return domain.NewError(domain.ErrInvalidInput, "peso debe ser mayor que 0")
	}
	err := s.repo.Update(ctx, p)
	err = domain.Describe(err, domain.ErrNotFound, msgPaqueteNotFound)
	return domain.Describe(err, domain.ErrMissingReference, "El cliente o el centro no existen")
}

func (s *paqueteService) List(ctx context.Context, filter domain.PaqueteFilter) ([]domain.Paquete, error) {
	paquetes, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list paquetes: %w", err)
	}
	return paquetes, nil
}

func (s *paqueteService) Get(ctx context.Context, id int64) (*domain.Paquete, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, domain.Describe(err, domain.ErrNotFound, msgPaqueteNotFound)
	}
	return p, nil
}

func (s *paqueteService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		err = domain.Describe(err, domain.ErrNotFound, msgPaqueteNotFound)
		return domain.Describe(err, domain.ErrDependencyConflict,
			"No se puede eliminar: El paquete tiene rutas asociadas")
	}
	s.audit.Publish(auditEvent(ctx, domain.AuditRecordDeleted, "paquete", id, nil))
	return nil
}
