package registry_stats

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "registry_orders_total",
			Help: "Number of orders held by the registry",
		},
	)

	PartnersTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "registry_partners_total",
			Help: "Number of registered delivery partners",
		},
	)

	AssignedOrders = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "registry_assigned_orders",
			Help: "Number of orders assigned to a partner",
		},
	)

	UnassignedOrders = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "registry_unassigned_orders",
			Help: "Number of orders without a partner",
		},
	)
)
