package memofn

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// digestKeys flattens a composite key to a single uint64 for table
// backends with flat key spaces. The type of each element participates in
// the digest so that values of different types formatting identically
// stay distinct.
func digestKeys(keys []Key) uint64 {
	d := xxhash.New()
	for _, k := range keys {
		_, _ = fmt.Fprintf(d, "%T=%v;", k, k)
	}
	return d.Sum64()
}

// typedValue asserts a stored any value back to the expected type T.
func typedValue[T any](raw any, ok bool) (res T, _ bool) {
	if !ok {
		return res, false
	}
	res, ok = raw.(T)
	return res, ok
}
