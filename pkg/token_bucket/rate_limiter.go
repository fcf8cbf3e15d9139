package token_bucket

import (
	"sync"
	"time"
)

/*
Allow возвращает true/false: запрос либо принимается, либо отклоняется, очереди нет.
Ведро вмещает burst токенов и пополняется со скоростью rate в секунду.
Токены копятся дробно, поэтому медленная скорость пополнения не теряет остаток.
*/

type Clock func() time.Time

type Option func(*TokenBucket)

// WithClock подменяет источник времени, нужен тестам.
func WithClock(now Clock) Option {
	return func(t *TokenBucket) {
		t.now = now
	}
}

type TokenBucket struct {
	mu         sync.Mutex
	burst      float64
	tokens     float64
	rate       float64
	lastRefill time.Time
	now        Clock
}

// New создает полное ведро.
func New(rate float64, burst int, opts ...Option) *TokenBucket {
	t := &TokenBucket{
		burst:  float64(burst),
		tokens: float64(burst),
		rate:   rate,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	t.lastRefill = t.now()
	return t
}

func (t *TokenBucket) Allow() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.refill()

	if t.tokens >= 1 {
		t.tokens--
		return true
	}
	return false
}

// Available возвращает текущий запас токенов с учетом пополнения.
func (t *TokenBucket) Available() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.refill()
	return t.tokens
}

func (t *TokenBucket) refill() {
	now := t.now()
	elapsed := now.Sub(t.lastRefill).Seconds()
	if elapsed <= 0 {
		return
	}

	t.tokens = min(t.burst, t.tokens+elapsed*t.rate)
	t.lastRefill = now
}
