// Package token_bucket - потокобезопасный лимитер запросов по алгоритму token bucket.
package token_bucket

import (
	"math"
	"sync"
	"time"
)

type TokenBucket struct {
	mu sync.Mutex

	capacity   float64
	tokens     float64
	refillRate float64 // токенов в секунду
	lastRefill time.Time
	now        func() time.Time
}

type Option func(*TokenBucket)

// WithClock подменяет источник времени.
func WithClock(now func() time.Time) Option {
	return func(t *TokenBucket) {
		t.now = now
	}
}

// NewTokenBucket создает полный bucket емкостью capacity, пополняемый
// со скоростью refillRate токенов в секунду.
func NewTokenBucket(capacity int, refillRate float64, opts ...Option) *TokenBucket {
	t := &TokenBucket{
		capacity:   float64(max(capacity, 0)),
		refillRate: math.Max(refillRate, 0),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	t.tokens = t.capacity
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

// refill копит дробные токены, чтобы частые вызовы не теряли пополнение.
func (t *TokenBucket) refill() {
	now := t.now()
	elapsed := now.Sub(t.lastRefill).Seconds()
	if elapsed <= 0 {
		return
	}

	t.tokens = math.Min(t.capacity, t.tokens+elapsed*t.refillRate)
	t.lastRefill = now
}
