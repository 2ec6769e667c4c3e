// Package metrics declares the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "HTTP requests by method, route and status.",
	}, []string{"method", "route", "status"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency by method and route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	OrdersPlaced = promauto.NewCounter(prometheus.CounterOpts{
		Name: "orders_placed_total",
		Help: "Carts recorded successfully.",
	})

	OrderLines = promauto.NewCounter(prometheus.CounterOpts{
		Name: "order_lines_total",
		Help: "Order lines appended.",
	})

	OrderRevenue = promauto.NewCounter(prometheus.CounterOpts{
		Name: "order_revenue_total",
		Help: "Sum of line totals of recorded carts.",
	})

	PlacementFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "order_placement_failures_total",
		Help: "Carts that failed to record because of a storage error.",
	})
)

// RecordPlacement updates the order counters after a successful placement.
func RecordPlacement(lines int, revenue float64) {
	OrdersPlaced.Inc()
	OrderLines.Add(float64(lines))
	if revenue > 0 {
		OrderRevenue.Add(revenue)
	}
}
