// Package metrics defines and registers all custom Prometheus metrics
// for the Seva Kendra portal API. It is the single source of truth for
// metric names, labels, and help strings. Collectors register with the
// default registry at package init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "sevakendra"

// UsersRegisteredTotal counts successful registrations.
var UsersRegisteredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of successful user registrations.",
	},
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

// RequestsSubmittedTotal counts submitted applications.
// Label:
//   - service: the catalog service name the application targets
var RequestsSubmittedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "requests_submitted_total",
		Help:      "Total number of citizen applications submitted, by service.",
	},
	[]string{"service"},
)

// RequestStatusUpdatesTotal counts status transitions applied to
// applications.
// Label:
//   - status: the new status ("pending", "approved", "rejected", "completed")
var RequestStatusUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "request_status_updates_total",
		Help:      "Total number of application status updates, by new status.",
	},
	[]string{"status"},
)

// TrackingCacheTotal counts tracking-cache lookups.
// Label:
//   - result: "hit" or "miss"
var TrackingCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tracking_cache_total",
		Help:      "Total number of tracking cache lookups, by result (hit/miss).",
	},
	[]string{"result"},
)
