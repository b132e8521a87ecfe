// Package metrics defines and registers all custom Prometheus metrics for the
// logistics API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics are registered with the default Prometheus registry on package
// initialisation (promauto) and exposed on GET /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "logistics"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginAttemptsTotal counts login outcomes.
// Label:
//   - result: "success", "unknown_user", "wrong_password", "invalid_input" or "error"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by outcome.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts registration outcomes.
// Label:
//   - result: "success", "duplicate", "invalid_input" or "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of self-service registrations, by outcome.",
	},
	[]string{"result"},
)

// GateRejectionsTotal counts requests stopped by the token or role gate.
// Labels:
//   - gate: "token" or "role"
//   - reason: e.g. "missing", "expired", "bad signature", "denied"
var GateRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "gate_rejections_total",
		Help:      "Total number of requests rejected by the authentication or authorization gate.",
	},
	[]string{"gate", "reason"},
)

// ── Workflow metrics ──────────────────────────────────────────────────────────

// WorkflowOperationsTotal counts state-changing workflow operations.
// Labels:
//   - operation: "paquete_create", "paquete_estado", "factura_pay", "ruta_complete"
//   - result: "success" or "error"
var WorkflowOperationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "workflow_operations_total",
		Help:      "Total number of workflow operations, by operation and result.",
	},
	[]string{"operation", "result"},
)

// IdempotentReplaysTotal counts package creations answered from the
// idempotency store instead of the database.
var IdempotentReplaysTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "idempotent_replays_total",
		Help:      "Total number of responses replayed for a repeated Idempotency-Key.",
	},
)

// ── Audit metrics ─────────────────────────────────────────────────────────────

// AuditEventsTotal counts audit events by outcome.
// Label:
//   - result: "recorded", "failed" or "dropped" (queue full)
var AuditEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_events_total",
		Help:      "Total number of audit events, by outcome.",
	},
	[]string{"result"},
)

// AuditQueueDepth tracks the number of events waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of audit events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
