package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/paqueteria/logistics-api/internal/core/domain"
	"github.com/paqueteria/logistics-api/internal/core/ports"
)

type auditService struct {
	repo ports.AuditRepository
}

// NewAuditService returns an AuditService that stamps and stores events.
func NewAuditService(repo ports.AuditRepository) ports.AuditService {
	return &auditService{repo: repo}
}

func (s *auditService) Record(ctx context.Context, event domain.AuditEvent) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}
	if err := s.repo.Insert(ctx, &event); err != nil {
		return fmt.Errorf("record audit event %s: %w", event.Action, err)
	}
	return nil
}

// auditEvent builds an event attributed to the caller found in ctx.
func auditEvent(ctx context.Context, action domain.AuditAction, entity string, id int64, details map[string]string) domain.AuditEvent {
	ev := domain.AuditEvent{
		Action:     action,
		Entity:     entity,
		Details:    details,
		OccurredAt: time.Now().UTC(),
	}
	if id > 0 {
		ev.EntityID = strconv.FormatInt(id, 10)
	}
	if c, ok := domain.ClaimsFromContext(ctx); ok {
		ev.ActorID = c.UserID
		ev.ActorRole = c.Role
	}
	return ev
}
