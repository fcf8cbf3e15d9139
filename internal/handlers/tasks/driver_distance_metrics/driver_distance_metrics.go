package driver_distance_metrics

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"walt/internal/entities"
	"walt/pkg/logger"
)

var (
	DriverTotalDistance = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "walt_driver_total_distance",
			Help: "Accumulated delivery distance per driver",
		},
		[]string{"driver", "city_id"},
	)

	DriversTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "walt_drivers_total",
			Help: "Number of registered drivers",
		},
	)
)

type Service interface {
	GetDriverRankReport(ctx context.Context) ([]entities.DriverDistance, error)
}

// DriverDistanceMetrics периодически переносит рейтинг водителей в gauge метрики.
type DriverDistanceMetrics struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewDriverDistanceMetrics(log logger.Logger, service Service, interval time.Duration) *DriverDistanceMetrics {
	return &DriverDistanceMetrics{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (d *DriverDistanceMetrics) TTL() time.Duration {
	return d.interval
}

func (d *DriverDistanceMetrics) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, d.interval)
	defer cancel()

	ranked, err := d.service.GetDriverRankReport(ctxWithTimeout)
	if err != nil {
		return err
	}

	DriverTotalDistance.Reset()
	for _, row := range ranked {
		DriverTotalDistance.WithLabelValues(row.DriverName, strconv.FormatInt(row.CityID, 10)).Set(float64(row.TotalDistance))
	}
	DriversTotal.Set(float64(len(ranked)))

	return nil
}

func (d *DriverDistanceMetrics) Info() string {
	return "driver distance metrics"
}
