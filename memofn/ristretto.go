package memofn

import (
	"fmt"

	ristretto "github.com/dgraph-io/ristretto/v2"
)

// RistrettoTable is a Table backed by a ristretto cache. Admission is
// frequency-based and asynchronous: a freshly stored entry may not be
// visible to an immediate Load, in which case the memoized function just
// recomputes. Suited to long-lived, hot memoized functions.
type RistrettoTable[O any] struct {
	cache *ristretto.Cache[uint64, any]
}

// NewRistretto returns a RistrettoTable sized for roughly maxEntries
// resident entries, each with unit cost.
func NewRistretto[O any](maxEntries int64) (*RistrettoTable[O], error) {
	cache, err := ristretto.NewCache(&ristretto.Config[uint64, any]{
		NumCounters: maxEntries * 10,
		MaxCost:     maxEntries,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("memofn: failed to create ristretto table: %w", err)
	}
	return &RistrettoTable[O]{cache: cache}, nil
}

func (t *RistrettoTable[O]) Load(keys []Key) (O, bool) {
	return typedValue[O](t.cache.Get(digestKeys(keys)))
}

func (t *RistrettoTable[O]) Store(keys []Key, value O) {
	t.cache.Set(digestKeys(keys), value, 1)
}

// Wait blocks until buffered writes have been applied. Mostly useful in
// tests; production callers can live with the admission delay.
func (t *RistrettoTable[O]) Wait() {
	t.cache.Wait()
}

// Close releases the cache's internal goroutines.
func (t *RistrettoTable[O]) Close() {
	t.cache.Close()
}
