// Package ratefn rate-limits function invocation: throttling (at most
// once per interval, leading edge) and debouncing (only after a quiet
// period, trailing edge). Wrappers are safe for concurrent use; the
// timer handle and last-fire timestamp live in the wrapper's closure and
// are never shared.
package ratefn

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type config struct {
	logger *zap.Logger
}

// Option configures a wrapper.
type Option func(*config)

// WithLogger emits debug events for dropped and re-armed calls.
func WithLogger(logger *zap.Logger) Option {
	return func(cfg *config) { cfg.logger = logger }
}

func newConfig(opts ...Option) config {
	cfg := config{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// ThrottleI1 wraps fn so it executes at most once per wait interval. The
// first call fires immediately; calls arriving within wait of the last
// executed call are dropped, not queued.
func ThrottleI1[I1 any](fn func(I1), wait time.Duration, opts ...Option) func(I1) {
	cfg := newConfig(opts...)
	id := uuid.New().String()

	var mu sync.Mutex
	var last time.Time
	return func(arg I1) {
		mu.Lock()
		now := time.Now()
		if !last.IsZero() && now.Sub(last) < wait {
			mu.Unlock()
			cfg.logger.Debug("throttled call dropped",
				zap.String("throttle_id", id))
			return
		}
		last = now
		mu.Unlock()
		fn(arg)
	}
}

// Throttle is ThrottleI1 for nullary functions.
func Throttle(fn func(), wait time.Duration, opts ...Option) func() {
	throttled := ThrottleI1(func(struct{}) { fn() }, wait, opts...)
	return func() { throttled(struct{}{}) }
}

// DebounceI1 wraps fn so it only executes once calls have stopped for
// wait. Each call re-arms the single pending timer, so only the last call
// of a burst fires, with that call's argument. The returned stop func
// cancels whatever is pending; call it before discarding the wrapper.
func DebounceI1[I1 any](fn func(I1), wait time.Duration, opts ...Option) (call func(I1), stop func()) {
	cfg := newConfig(opts...)
	id := uuid.New().String()

	var mu sync.Mutex
	var timer *time.Timer
	call = func(arg I1) {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
			cfg.logger.Debug("debounce re-armed",
				zap.String("debounce_id", id))
		}
		timer = time.AfterFunc(wait, func() { fn(arg) })
	}
	stop = func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
			timer = nil
		}
	}
	return call, stop
}

// Debounce is DebounceI1 for nullary functions.
func Debounce(fn func(), wait time.Duration, opts ...Option) (call func(), stop func()) {
	debounced, stop := DebounceI1(func(struct{}) { fn() }, wait, opts...)
	return func() { debounced(struct{}{}) }, stop
}
