package distance

import (
	"fmt"
	"math/rand/v2"

	"walt/internal/entities"
)

type Mode string

const (
	ModeRandom Mode = "random"
	ModeFixed  Mode = "fixed"

	// DefaultMaxDistance - верхняя граница (не включительно) случайной дистанции.
	DefaultMaxDistance int64 = 20
)

type Calculator interface {
	Distance(restaurant entities.Restaurant, customer entities.Customer) int64
}

// Random - заглушка вместо геокодинга: равномерное целое из [0, max).
type Random struct {
	maxDistance int64
}

func NewRandom(maxDistance int64) *Random {
	if maxDistance <= 0 {
		maxDistance = DefaultMaxDistance
	}
	return &Random{maxDistance: maxDistance}
}

func (r *Random) Distance(entities.Restaurant, entities.Customer) int64 {
	return rand.Int64N(r.maxDistance)
}

type Fixed struct {
	value int64
}

func NewFixed(value int64) *Fixed {
	return &Fixed{value: value}
}

func (f *Fixed) Distance(entities.Restaurant, entities.Customer) int64 {
	return f.value
}

func New(mode Mode, maxDistance, fixedValue int64) (Calculator, error) {
	switch mode {
	case ModeRandom, "":
		return NewRandom(maxDistance), nil
	case ModeFixed:
		if fixedValue < 0 {
			return nil, fmt.Errorf("fixed distance must not be negative, got %d", fixedValue)
		}
		return NewFixed(fixedValue), nil
	default:
		return nil, fmt.Errorf("unknown distance mode %q", mode)
	}
}
