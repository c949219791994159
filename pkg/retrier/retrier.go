package retrier

import (
	"context"
	"time"
)

type Retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

type ShouldRetryFunc func(error) bool

type Config struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
	Randomization   float64
	Multiplier      float64

	// MaxRetries ограничивает число повторов; 0 - без ограничения, только MaxElapsedTime.
	MaxRetries uint64

	// nil - повторяются все ошибки, иначе только те, для которых функция вернула true.
	ShouldRetry ShouldRetryFunc
}
