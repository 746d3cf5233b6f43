// Package metrics defines and registers all custom Prometheus metrics for
// the rental platform API. It is the single source of truth for metric
// names, labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "rental"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// SignupsTotal counts successful signups.
// Label:
//   - role: "student", "owner", or "admin"
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of successful signups, by role.",
	},
	[]string{"role"},
)

// LoginsTotal counts login attempts that reached credential verification.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ── Property metrics ──────────────────────────────────────────────────────────

// PropertiesCreatedTotal counts newly created property listings.
var PropertiesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "properties_created_total",
		Help:      "Total number of property listings created.",
	},
)

// ── Booking metrics ───────────────────────────────────────────────────────────

// BookingsCreatedTotal counts bookings that entered the pending state.
var BookingsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookings_created_total",
		Help:      "Total number of bookings created.",
	},
)

// BookingTransitionsTotal counts attempted booking status transitions.
// Labels:
//   - target: the requested status ("confirmed" or "cancelled")
//   - result: "applied", "illegal", "forbidden", or "conflict"
var BookingTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "booking_transitions_total",
		Help:      "Total number of booking status transition attempts, by target and result.",
	},
	[]string{"target", "result"},
)

// BookingConflictsTotal counts booking creations rejected for concurrency or
// calendar reasons.
// Label:
//   - reason: "date_overlap" or "hold_busy"
var BookingConflictsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "booking_conflicts_total",
		Help:      "Total number of booking creations rejected, by reason.",
	},
	[]string{"reason"},
)
