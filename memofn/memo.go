package memofn

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// KeyPart is an argument usable as part of a cache key: comparable, or an
// fmt.Stringer identified by its String() form.
type KeyPart any

// Key is a normalized key element: comparable or string.
type Key any

// DefaultTableSize bounds the trie used when no table option is given.
const DefaultTableSize uint32 = 1 << 16

// Table is the cache behind a memoized function. Implementations must be
// safe for concurrent use.
type Table[O any] interface {
	Load(keys []Key) (O, bool)
	Store(keys []Key, value O)
}

type config[O any] struct {
	table  Table[O]
	logger *zap.Logger
	stats  *Stats
}

// Option configures a memoized function.
type Option[O any] func(*config[O])

// WithTable replaces the default trie with the given cache table.
func WithTable[O any](t Table[O]) Option[O] {
	return func(cfg *config[O]) { cfg.table = t }
}

// WithLogger emits debug events for cache hits and misses.
func WithLogger[O any](logger *zap.Logger) Option[O] {
	return func(cfg *config[O]) { cfg.logger = logger }
}

// WithStats counts hits and misses into s.
func WithStats[O any](s *Stats) Option[O] {
	return func(cfg *config[O]) { cfg.stats = s }
}

func newConfig[O any](opts ...Option[O]) config[O] {
	cfg := config[O]{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.table == nil {
		cfg.table = NewTrie[O](DefaultTableSize)
	}
	return cfg
}

// MemoizeI1O1 memoizes a unary function.
func MemoizeI1O1[I1 KeyPart, O1 any](fn func(I1) O1, opts ...Option[O1]) func(I1) O1 {
	memoized := memoize(
		func(args ...KeyPart) O1 {
			return fn(args[0].(I1))
		},
		newConfig(opts...),
	)
	return func(i1 I1) O1 {
		return memoized(i1)
	}
}

// MemoizeI2O1 memoizes a binary function.
func MemoizeI2O1[I1, I2 KeyPart, O1 any](fn func(I1, I2) O1, opts ...Option[O1]) func(I1, I2) O1 {
	memoized := memoize(
		func(args ...KeyPart) O1 {
			return fn(args[0].(I1), args[1].(I2))
		},
		newConfig(opts...),
	)
	return func(i1 I1, i2 I2) O1 {
		return memoized(i1, i2)
	}
}

// MemoizeI3O1 memoizes a ternary function.
func MemoizeI3O1[I1, I2, I3 KeyPart, O1 any](fn func(I1, I2, I3) O1, opts ...Option[O1]) func(I1, I2, I3) O1 {
	memoized := memoize(
		func(args ...KeyPart) O1 {
			return fn(args[0].(I1), args[1].(I2), args[2].(I3))
		},
		newConfig(opts...),
	)
	return func(i1 I1, i2 I2, i3 I3) O1 {
		return memoized(i1, i2, i3)
	}
}

// MemoizeI4O1 memoizes a quaternary function.
func MemoizeI4O1[I1, I2, I3, I4 KeyPart, O1 any](fn func(I1, I2, I3, I4) O1, opts ...Option[O1]) func(I1, I2, I3, I4) O1 {
	memoized := memoize(
		func(args ...KeyPart) O1 {
			return fn(args[0].(I1), args[1].(I2), args[2].(I3), args[3].(I4))
		},
		newConfig(opts...),
	)
	return func(i1 I1, i2 I2, i3 I3, i4 I4) O1 {
		return memoized(i1, i2, i3, i4)
	}
}

func normalizeKey(p KeyPart) Key {
	if stringer, ok := p.(fmt.Stringer); ok {
		return stringer.String()
	}
	return p
}

func memoize[O any](fn func(...KeyPart) O, cfg config[O]) func(...KeyPart) O {
	id := uuid.New().String()
	return func(args ...KeyPart) O {
		keys := make([]Key, len(args))
		for i, arg := range args {
			keys[i] = normalizeKey(arg)
		}
		if v, ok := cfg.table.Load(keys); ok {
			cfg.stats.hit()
			cfg.logger.Debug("memo hit", zap.String("memo_id", id))
			return v
		}
		cfg.stats.miss()
		cfg.logger.Debug("memo miss", zap.String("memo_id", id))
		v := fn(args...)
		cfg.table.Store(keys, v)
		return v
	}
}
