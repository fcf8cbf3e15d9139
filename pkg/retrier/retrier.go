package retrier

import (
	"context"
	"time"
)

type Retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

type ShouldRetryFunc func(error) bool

// OnRetryFunc получает ошибку неудачной попытки и паузу перед следующей.
type OnRetryFunc func(attempt uint64, err error, next time.Duration)

type Config struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
	Randomization   float64
	Multiplier      float64

	// MaxRetries ограничивает число повторов, 0 - без ограничения (только MaxElapsedTime)
	MaxRetries uint64

	// Если nil - ретраятся все ошибки, если не nil - только те где функция вернула true
	ShouldRetry ShouldRetryFunc

	OnRetry OnRetryFunc
}

// Connect - профиль для установки соединений при старте (БД, Kafka).
func Connect(initialInterval time.Duration, onRetry OnRetryFunc) Config {
	return Config{
		InitialInterval: initialInterval,
		MaxInterval:     30 * time.Second,
		MaxElapsedTime:  2 * time.Minute,
		Randomization:   0.5,
		Multiplier:      2,
		OnRetry:         onRetry,
	}
}

// Serialization - короткие частые повторы для конфликтов serializable транзакций.
func Serialization(shouldRetry ShouldRetryFunc) Config {
	return Config{
		InitialInterval: 10 * time.Millisecond,
		MaxInterval:     200 * time.Millisecond,
		MaxElapsedTime:  5 * time.Second,
		Randomization:   0.5,
		Multiplier:      2,
		MaxRetries:      5,
		ShouldRetry:     shouldRetry,
	}
}
