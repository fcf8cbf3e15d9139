package metrics

import (
	"context"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

var (
	SystemCPUUsage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "walt_system_cpu_usage_percent",
			Help: "Host CPU usage percentage since the previous collection",
		},
	)

	SystemMemoryUsed = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "walt_system_memory_used_bytes",
			Help: "Host memory in use",
		},
	)

	ProcessHeapAlloc = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "walt_process_heap_alloc_bytes",
			Help: "Go heap bytes allocated by the process",
		},
	)

	ProcessGoroutines = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "walt_process_goroutines",
			Help: "Number of goroutines in the process",
		},
	)

	SystemCollectErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "walt_system_metrics_collect_errors_total",
			Help: "Failed host metric reads by source",
		},
		[]string{"source"},
	)
)

// SystemCollector - фоновая задача, снимающая метрики хоста и процесса.
// Ошибки gopsutil только считаются: без /proc сервис должен стартовать.
type SystemCollector struct {
	interval time.Duration
}

func NewSystemCollector(interval time.Duration) *SystemCollector {
	return &SystemCollector{interval: interval}
}

func (c *SystemCollector) TTL() time.Duration {
	return c.interval
}

func (c *SystemCollector) Info() string {
	return "system metrics"
}

func (c *SystemCollector) Do(ctx context.Context) error {
	// интервал 0: процент считается относительно предыдущего вызова, без блокировки
	cpuPercent, err := cpu.PercentWithContext(ctx, 0, false)
	if err != nil || len(cpuPercent) == 0 {
		SystemCollectErrorsTotal.WithLabelValues("cpu").Inc()
	} else {
		SystemCPUUsage.Set(cpuPercent[0])
	}

	vmStat, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		SystemCollectErrorsTotal.WithLabelValues("memory").Inc()
	} else {
		SystemMemoryUsed.Set(float64(vmStat.Used))
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	ProcessHeapAlloc.Set(float64(m.HeapAlloc))
	ProcessGoroutines.Set(float64(runtime.NumGoroutine()))

	return nil
}
