// Package memofn memoizes pure functions.
//
// A memoized function derives a cache key from its arguments: an argument
// implementing fmt.Stringer contributes its String() form, any other
// argument is used as-is and must be comparable. Two distinct Stringer
// values whose String() output collides therefore share a cache slot;
// callers that need to tell such values apart should include a
// discriminator in the String form.
//
// The cache behind a memoized function is a Table. The default is a
// bounded generational Trie; NewLRU and NewRistretto provide tables with
// real eviction policies for long-lived memoized functions. A table may
// decline to retain an entry (LRU eviction, ristretto admission), in
// which case the wrapped function is simply invoked again — memoization
// never changes results, only how often the function runs.
package memofn
