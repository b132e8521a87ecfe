package service

import (
	"context"
	"fmt"

	"github.com/paqueteria/logistics-api/internal/core/domain"
	"github.com/paqueteria/logistics-api/internal/core/ports"
)

const msgFacturaNotFound = "Factura no encontrada"

type facturaService struct {
	repo  ports.FacturaRepository
	audit ports.AuditPublisher
}

func NewFacturaService(repo ports.FacturaRepository, audit ports.AuditPublisher) ports.FacturaService {
	return &facturaService{repo: repo, audit: audit}
}

func (s *facturaService) Create(ctx context.Context, f domain.Factura) (*domain.ProcedureResult, error) {
	if f.MontoTotal < 0 || f.IVA < 0 || f.Descuento < 0 {
		return nil, domain.NewError(domain.ErrInvalidInput, "monto_total, iva y descuento no pueden ser negativos")
	}
	res, err := s.repo.Create(ctx, f)
	if err != nil {
		return nil, domain.Describe(err, domain.ErrMissingReference, "El paquete no existe")
	}
	return res, nil
}

// Pay marks the invoice as paid through the pagar_factura procedure.
func (s *facturaService) Pay(ctx context.Context, id int64) error {
	if err := s.repo.Pay(ctx, id); err != nil {
		return domain.Describe(err, domain.ErrNotFound, msgFacturaNotFound)
	}
	s.audit.Publish(auditEvent(ctx, domain.AuditFacturaPaid, "factura", id, nil))
	return nil
}

func (s *facturaService) List(ctx context.Context) ([]domain.Factura, error) {
	facturas, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list facturas: %w", err)
	}
	return facturas, nil
}

func (s *facturaService) Get(ctx context.Context, id int64) (*domain.Factura, error) {
	f, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, domain.Describe(err, domain.ErrNotFound, msgFacturaNotFound)
	}
	return f, nil
}

func (s *facturaService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		err = domain.Describe(err, domain.ErrNotFound, msgFacturaNotFound)
		return domain.Describe(err, domain.ErrDependencyConflict,
			"No se puede eliminar: está asociada a un paquete")
	}
	s.audit.Publish(auditEvent(ctx, domain.AuditRecordDeleted, "factura", id, nil))
	return nil
}
