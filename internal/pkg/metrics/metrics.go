// Package metrics defines and registers the custom Prometheus metrics of the
// demo server. It is the single source of truth for metric names, labels,
// and help strings.
//
// All metrics are registered with the default registry through promauto on
// package initialisation; request-level HTTP metrics come from the
// echoprometheus middleware wired in the router.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "demo"

// ── Authentication ────────────────────────────────────────────────────────────

// LoginAttemptsTotal counts login attempts.
// Label:
//   - result: "success", "not_found", "not_active", "invalid_credential" or "error"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ── Accounts ──────────────────────────────────────────────────────────────────

// AccountsCreatedTotal counts registered accounts.
// Label:
//   - status: "active" (created by an Administrator) or "pending" (requested)
var AccountsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "accounts_created_total",
		Help:      "Total number of accounts created, by initial status.",
	},
	[]string{"status"},
)

// AccountTransitionsTotal counts lifecycle operations on existing accounts.
// Label:
//   - action: "approve", "reject", "update" or "delete"
var AccountTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "account_transitions_total",
		Help:      "Total number of account lifecycle operations applied.",
	},
	[]string{"action"},
)

// RoleChangesTotal counts role registry mutations.
// Label:
//   - action: "create", "rename" or "delete"
var RoleChangesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "role_changes_total",
		Help:      "Total number of role registry mutations.",
	},
	[]string{"action"},
)

// ── Store ─────────────────────────────────────────────────────────────────────

// ActivityLogFailuresTotal counts activity log appends that failed. These
// never fail the primary operation.
var ActivityLogFailuresTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activity_log_failures_total",
		Help:      "Total number of activity log appends that failed.",
	},
)

// StoreOperationDuration measures whole-document reads and writes.
// Labels:
//   - driver: "file", "mongo" or "redis"
//   - op: "read" or "write"
var StoreOperationDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "store_operation_duration_seconds",
		Help:      "Duration of whole-document store reads and writes.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"driver", "op"},
)

// ObserveStore records the duration of a store operation that began at start.
func ObserveStore(driver, op string, start time.Time) {
	StoreOperationDuration.WithLabelValues(driver, op).Observe(time.Since(start).Seconds())
}
