// Package metrics defines all custom Prometheus metrics for the billboard
// marketplace. It is the single source of truth for metric names, labels, and
// help strings. Metrics register with the default registry at import time via
// promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "billboard"

// ChangeNotificationsTotal counts change-bus deliveries, i.e. successful store
// saves fanned out to observers.
// Label:
//   - logged_in: "true" when a session was active at save time, else "false"
var ChangeNotificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "change_notifications_total",
		Help:      "Total number of store change notifications delivered.",
	},
	[]string{"logged_in"},
)

// LoginsTotal counts login attempts.
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

// RegistrationsTotal counts completed registrations.
// Label:
//   - role: "owner" or "customer"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of completed registrations, by role.",
	},
	[]string{"role"},
)

// BookingsCreatedTotal counts bookings created through the booking protocol.
var BookingsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookings_created_total",
		Help:      "Total number of bookings created.",
	},
)

// BookingsCancelledTotal counts booking cancellations.
// Label:
//   - source: "customer" (single cancel) or "owner" (cancel-all)
var BookingsCancelledTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookings_cancelled_total",
		Help:      "Total number of bookings cancelled, by source.",
	},
	[]string{"source"},
)

// BillboardsCreatedTotal counts billboards listed by owners.
var BillboardsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "billboards_created_total",
		Help:      "Total number of billboards listed.",
	},
)
