// Package metrics defines and registers all custom Prometheus metrics for the
// storefront API. It is the single source of truth for metric names, labels,
// and help strings. Everything registers with the default registry at package
// init via promauto; the /metrics route exposes it.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storefront"

// ── Order metrics ─────────────────────────────────────────────────────────────

// OrdersCreatedTotal counts orders created, by payment method.
var OrdersCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_created_total",
		Help:      "Total number of orders created, by payment method.",
	},
	[]string{"payment_method"},
)

// OrdersPaidTotal counts orders successfully transitioned to paid.
var OrdersPaidTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_paid_total",
		Help:      "Total number of orders marked paid.",
	},
)

// ── Auth metrics ──────────────────────────────────────────────────────────────

// AuthRejectionsTotal counts requests rejected by the auth gate.
// Label:
//   - reason: "missing_header", "bad_scheme", or "invalid_token"
var AuthRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_rejections_total",
		Help:      "Total number of requests rejected by the bearer-token gate.",
	},
	[]string{"reason"},
)

// ── Catalog metrics ───────────────────────────────────────────────────────────

// ProductCacheTotal counts product cache lookups.
// Label:
//   - result: "hit" or "miss"
var ProductCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "product_cache_total",
		Help:      "Total number of product cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)
