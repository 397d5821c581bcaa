package shop

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	checkoutsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shop_checkouts_total",
			Help: "Checkout attempts by payment method and outcome",
		},
		[]string{"method", "outcome"},
	)

	auditFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "shop_audit_failures_total",
			Help: "Audit sink writes that failed after an order was recorded",
		},
	)
)
