package metrics

import (
	"context"
	"time"
)

type retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

// Execute оборачивает вызов внешней системы: latency -> attempts -> retrier -> fn.
// result переводит ошибку в значение метки, nil ошибка всегда дает "ok".
func Execute(
	ctx context.Context,
	r retrier,
	service, method string,
	result func(error) string,
	fn func(context.Context) error,
) error {
	var attempt uint64
	start := time.Now()

	err := r.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	label := "ok"
	if err != nil {
		label = result(err)
	}

	GatewayRequestDuration.WithLabelValues(service, method, label).Observe(time.Since(start).Seconds())
	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(service, method, label).Inc()
	}

	return err
}
