// Package metrics defines the custom Prometheus metrics for the asset
// management API. It is the single source of truth for metric names,
// labels, and help strings; promauto registers everything with the
// default registry at package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "assetmgmt"

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

// AccountsCreatedTotal counts account creations.
// Label:
//   - origin: "self" (registration), "admin" (developer creation), or "bootstrap"
var AccountsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "accounts_created_total",
		Help:      "Total number of accounts created, by origin.",
	},
	[]string{"origin"},
)

// AssetsAssignedTotal counts hardware assignments.
// Label:
//   - type: asset type ("laptop", "monitor", ...)
var AssetsAssignedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "assets_assigned_total",
		Help:      "Total number of assets assigned to developers, by asset type.",
	},
	[]string{"type"},
)

// AssetsRemovedTotal counts asset removals.
var AssetsRemovedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "assets_removed_total",
		Help:      "Total number of assets removed from developers.",
	},
)

// LicensesAssignedTotal counts license assignments.
var LicensesAssignedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "licenses_assigned_total",
		Help:      "Total number of licenses assigned to developers.",
	},
)

// LicensesRemovedTotal counts license removals.
var LicensesRemovedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "licenses_removed_total",
		Help:      "Total number of licenses removed from developers.",
	},
)
