package memofn

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// LRUTable is a Table evicting least-recently-used entries. The composite
// key is flattened to an xxhash digest before it reaches the underlying
// cache, so key collisions — while astronomically unlikely — would merge
// two entries.
type LRUTable[O any] struct {
	cache *lru.Cache[uint64, O]
}

// NewLRU returns an LRUTable holding at most size entries.
func NewLRU[O any](size int) (*LRUTable[O], error) {
	cache, err := lru.New[uint64, O](size)
	if err != nil {
		return nil, fmt.Errorf("memofn: failed to create lru table: %w", err)
	}
	return &LRUTable[O]{cache: cache}, nil
}

func (t *LRUTable[O]) Load(keys []Key) (O, bool) {
	return t.cache.Get(digestKeys(keys))
}

func (t *LRUTable[O]) Store(keys []Key, value O) {
	t.cache.Add(digestKeys(keys), value)
}

// Len returns the number of resident entries.
func (t *LRUTable[O]) Len() int {
	return t.cache.Len()
}
