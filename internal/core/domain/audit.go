package domain

import "time"

// AuditAction names a state-changing operation worth recording.
type AuditAction string

const (
	AuditUserRegistered AuditAction = "user_registered"
	AuditPaqueteCreated AuditAction = "paquete_created"
	AuditPaqueteEstado  AuditAction = "paquete_estado_updated"
	AuditFacturaPaid    AuditAction = "factura_paid"
	AuditRutaCompleted  AuditAction = "ruta_completed"
	AuditRecordDeleted  AuditAction = "record_deleted"
)

// AuditEvent records who did what to which entity.
type AuditEvent struct {
	ID         string            `bson:"_id"`
	Action     AuditAction       `bson:"action"`
	Entity     string            `bson:"entity"`
	EntityID   string            `bson:"entity_id,omitempty"`
	ActorID    int64             `bson:"actor_id,omitempty"`
	ActorRole  Role              `bson:"actor_role,omitempty"`
	Details    map[string]string `bson:"details,omitempty"`
	OccurredAt time.Time         `bson:"occurred_at"`
}
