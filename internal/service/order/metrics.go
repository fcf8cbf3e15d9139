package order

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultAssigned              = "assigned"
	resultCustomerNotRegistered = "customer_not_registered"
	resultRestaurantNotFound    = "restaurant_not_found"
	resultCrossCity             = "cross_city"
	resultNoDriver              = "no_driver"
	resultError                 = "error"
)

var (
	OrdersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "walt_orders_total",
			Help: "Total number of order requests by result",
		},
		[]string{"result"},
	)

	DeliveryDistance = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "walt_delivery_distance",
			Help:    "Distance assigned to created deliveries",
			Buckets: prometheus.LinearBuckets(0, 2, 11),
		},
	)

	EventPublishFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "walt_delivery_event_publish_failures_total",
			Help: "Total number of delivery.created events that failed to publish",
		},
	)
)
