package memofn

import "sync"

// Trie is the default Table: entries are stored in a trie of sync.Maps
// keyed by the elements of the composite key. Capacity is enforced
// generationally; when the live generation fills up it becomes the old
// generation and a fresh one takes over, so at most 2*maxSize entries are
// resident and lookups consult both generations.
type Trie[O any] struct {
	mu      sync.RWMutex
	gens    [2]*sync.Map
	head    int
	size    uint32
	maxSize uint32
}

// NewTrie returns a Trie holding at most maxSize entries per generation.
func NewTrie[O any](maxSize uint32) *Trie[O] {
	if maxSize == 0 {
		panic("maxSize should be greater than 0")
	}
	return &Trie[O]{
		gens:    [2]*sync.Map{{}, {}},
		maxSize: maxSize,
	}
}

func (t *Trie[O]) Load(keys []Key) (O, bool) {
	t.mu.RLock()
	cur, prev := t.gens[t.head], t.gens[1-t.head]
	t.mu.RUnlock()

	if v, ok := lookup[O](cur, keys); ok {
		return v, true
	}
	return lookup[O](prev, keys)
}

func (t *Trie[O]) Store(keys []Key, value O) {
	t.mu.Lock()
	if t.size >= t.maxSize {
		t.head = 1 - t.head
		t.gens[t.head] = &sync.Map{}
		t.size = 0
	}
	gen := t.gens[t.head]
	t.size++
	t.mu.Unlock()

	leaf, last := descend(gen, keys)
	leaf.Store(last, value)
}

func lookup[O any](m *sync.Map, keys []Key) (O, bool) {
	leaf, last := descend(m, keys)
	v, ok := leaf.Load(last)
	if !ok {
		var zero O
		return zero, false
	}
	return v.(O), true
}

// descend walks the trie along all but the last key element, creating
// intermediate nodes as needed, and returns the leaf map plus the final
// key element.
func descend(m *sync.Map, keys []Key) (*sync.Map, Key) {
	if len(keys) == 0 {
		panic("descend: empty keys")
	}
	for _, k := range keys[:len(keys)-1] {
		v, _ := m.LoadOrStore(k, &sync.Map{})
		m = v.(*sync.Map)
	}
	return m, keys[len(keys)-1]
}
