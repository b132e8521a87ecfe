package ports

import (
	"context"

	"github.com/paqueteria/logistics-api/internal/core/domain"
)

// AuditRepository stores audit events.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuditEvent) error
}

// AuditService records a single audit event.
type AuditService interface {
	Record(ctx context.Context, event domain.AuditEvent) error
}

// AuditPublisher hands audit events off for asynchronous recording. Publish
// must not block the calling request.
type AuditPublisher interface {
	Publish(event domain.AuditEvent)
}
