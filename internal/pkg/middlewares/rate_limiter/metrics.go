package rate_limiter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var RequestsRejectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "walt_http_requests_rate_limited_total",
		Help: "Total number of requests rejected by the rate limiter",
	},
	[]string{"method", "route"},
)
