package memofn

import (
	"fmt"
	"sync/atomic"

	"github.com/dustin/go-humanize"
)

// Stats counts cache hits and misses of a memoized function. Pass the
// same *Stats to several memoized functions to aggregate them. The zero
// value is ready to use.
type Stats struct {
	hits   atomic.Int64
	misses atomic.Int64
}

func (s *Stats) hit() {
	if s == nil {
		return
	}
	s.hits.Add(1)
}

func (s *Stats) miss() {
	if s == nil {
		return
	}
	s.misses.Add(1)
}

func (s *Stats) Hits() int64 { return s.hits.Load() }

func (s *Stats) Misses() int64 { return s.misses.Load() }

func (s *Stats) String() string {
	return fmt.Sprintf("hits=%s misses=%s",
		humanize.Comma(s.Hits()), humanize.Comma(s.Misses()))
}
