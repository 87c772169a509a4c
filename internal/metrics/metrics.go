// Package metrics defines and registers all custom Prometheus metrics for
// the storefront admin tool. It is the single source of truth for metric
// names, labels, and help strings.
//
// There is no network exposition: the tool is a single-process local
// application, so metrics are written to a textfile on demand via Dump
// (node-exporter textfile collector format).
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storefront"

// ── Auth metrics ──────────────────────────────────────────────────────────────

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

// SignupsTotal counts accounts created through the registration workflow.
// Label:
//   - role: "admin", "agent", or "customer"
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of accounts created via signup, by role.",
	},
	[]string{"role"},
)

// ── Catalog metrics ───────────────────────────────────────────────────────────

// StatusTransitionsTotal counts product lifecycle moves applied by the
// publisher workflow.
// Labels:
//   - from: previous status
//   - to: new status
var StatusTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "status_transitions_total",
		Help:      "Total number of product status transitions, by from/to state.",
	},
	[]string{"from", "to"},
)

// SeededRecordsTotal counts records written by the first-run seeder.
// Label:
//   - collection: "users" or "products"
var SeededRecordsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "seeded_records_total",
		Help:      "Total number of sample records written by the seeder, by collection.",
	},
	[]string{"collection"},
)

// ProductsTotal tracks the current catalog size.
var ProductsTotal = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: namespace,
	Name:      "products_total",
	Help:      "Current number of products in the catalog.",
})

// ProductsLowStock tracks products with 0 < stock <= threshold.
var ProductsLowStock = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: namespace,
	Name:      "products_low_stock",
	Help:      "Current number of products at or below their low-stock threshold (excluding out of stock).",
})

// ProductsOutOfStock tracks products with zero stock.
var ProductsOutOfStock = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: namespace,
	Name:      "products_out_of_stock",
	Help:      "Current number of products with zero stock.",
})

// ProductsPendingApproval tracks products waiting in the approval lane.
var ProductsPendingApproval = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: namespace,
	Name:      "products_pending_approval",
	Help:      "Current number of products in pending_approval status.",
})

// Dump writes the default registry to path in the Prometheus textfile
// collector format.
func Dump(path string) error {
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
