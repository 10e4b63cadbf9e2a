package curryfn_test

import (
	"testing"

	"github.com/on-the-ground/dash/curryfn"

	"github.com/stretchr/testify/assert"
)

func TestCurry2(t *testing.T) {
	add := func(a, b int) int { return a + b }
	assert.Equal(t, 5, curryfn.Curry2(add)(2)(3))

	add2 := curryfn.Curry2(add)(2)
	assert.Equal(t, 12, add2(10))
	assert.Equal(t, 3, add2(1))
}

func TestCurry3(t *testing.T) {
	join := func(a, b, c string) string { return a + b + c }
	assert.Equal(t, "abc", curryfn.Curry3(join)("a")("b")("c"))
}

func TestCurry4(t *testing.T) {
	sum := func(a, b, c, d int) int { return a + b + c + d }
	assert.Equal(t, 10, curryfn.Curry4(sum)(1)(2)(3)(4))
}

func TestCurryNGroupingsAgree(t *testing.T) {
	sum := curryfn.CurryN(func(args ...any) int {
		total := 0
		for _, a := range args {
			total += a.(int)
		}
		return total
	}, 3)

	assert.Equal(t, 6, sum.With(1).With(2).With(3).Value())
	assert.Equal(t, 6, sum.With(1, 2).With(3).Value())
	assert.Equal(t, 6, sum.With(1).With(2, 3).Value())
	assert.Equal(t, 6, sum.With(1, 2, 3).Value())
}

func TestCurryNPartialsAreImmutable(t *testing.T) {
	concat := curryfn.CurryN(func(args ...any) string {
		out := ""
		for _, a := range args {
			out += a.(string)
		}
		return out
	}, 2)

	prefixed := concat.With("x")
	assert.Equal(t, "xa", prefixed.With("a").Value())
	assert.Equal(t, "xb", prefixed.With("b").Value()) // prefixed untouched
}

func TestCurryNSaturated(t *testing.T) {
	f := curryfn.CurryN(func(args ...any) int { return len(args) }, 2)
	assert.False(t, f.Saturated())
	assert.False(t, f.With(1).Saturated())
	assert.True(t, f.With(1, 2).Saturated())
}

func TestCurryNPanicsOnMisuse(t *testing.T) {
	f := curryfn.CurryN(func(args ...any) int { return 0 }, 2)

	assert.Panics(t, func() { _ = f.With(1).Value() })      // unsaturated
	assert.Panics(t, func() { _ = f.With(1, 2, 3) })        // overfilled
	assert.Panics(t, func() { curryfn.CurryN(func(args ...any) int { return 0 }, 0) })
}
