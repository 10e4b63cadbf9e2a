package slicefn

import "sort"

// Last returns the final element of s. The second result is false for an
// empty or nil slice.
func Last[T any](s []T) (T, bool) {
	if len(s) == 0 {
		var zero T
		return zero, false
	}
	return s[len(s)-1], true
}

// Includes reports whether v occurs in s.
func Includes[T comparable](s []T, v T) bool {
	for _, e := range s {
		if e == v {
			return true
		}
	}
	return false
}

// Without returns a copy of s with every occurrence of the excluded
// values removed.
func Without[T comparable](s []T, excluded ...T) []T {
	out := make([]T, 0, len(s))
	for _, e := range s {
		if !Includes(excluded, e) {
			out = append(out, e)
		}
	}
	return out
}

// Chunk splits s into consecutive slices of length size; the last chunk
// holds the remainder. A non-positive size yields nil. Chunks alias the
// backing array of s.
func Chunk[T any](s []T, size int) [][]T {
	if size <= 0 || len(s) == 0 {
		return nil
	}
	chunks := make([][]T, 0, (len(s)+size-1)/size)
	for start := 0; start < len(s); start += size {
		end := start + size
		if end > len(s) {
			end = len(s)
		}
		chunks = append(chunks, s[start:end])
	}
	return chunks
}

// Unique returns the elements of s in first-seen order with duplicates
// removed. It is idempotent.
func Unique[T comparable](s []T) []T {
	seen := make(map[T]struct{}, len(s))
	out := make([]T, 0, len(s))
	for _, e := range s {
		if _, ok := seen[e]; ok {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}
	return out
}

// Flatten concatenates the inner slices of s into a single slice.
func Flatten[T any](s [][]T) []T {
	total := 0
	for _, inner := range s {
		total += len(inner)
	}
	out := make([]T, 0, total)
	for _, inner := range s {
		out = append(out, inner...)
	}
	return out
}

// CompareFunc orders two values: negative when a sorts before b, zero for
// equal rank, positive otherwise.
type CompareFunc[T any] func(a, b T) int

// SortedIndex returns the lowest index at which v could be inserted into
// the sorted slice s while keeping it sorted.
func SortedIndex[T any](s []T, v T, cmp CompareFunc[T]) int {
	return sort.Search(len(s), func(i int) bool {
		return cmp(v, s[i]) <= 0
	})
}

// SortedInsert inserts v into the sorted slice s at its sort position and
// returns the extended slice.
func SortedInsert[T any](s []T, v T, cmp CompareFunc[T]) []T {
	idx := sort.Search(len(s), func(i int) bool {
		return cmp(v, s[i]) < 0
	})
	s = append(s, v)
	copy(s[idx+1:], s[idx:])
	s[idx] = v
	return s
}
