package memofn

// Pair carries the two results of a dual-output memoized function. It is
// the O type seen by a Table backing MemoizeI1O2 and friends, so table
// options for them are spelled Option[Pair[O1, O2]].
type Pair[O1, O2 any] struct {
	First  O1
	Second O2
}

// MemoizeI1O2 memoizes a unary function with two results.
func MemoizeI1O2[I1 KeyPart, O1, O2 any](
	fn func(I1) (O1, O2),
	opts ...Option[Pair[O1, O2]],
) func(I1) (O1, O2) {
	memoized := MemoizeI1O1(
		func(i1 I1) Pair[O1, O2] {
			v1, v2 := fn(i1)
			return Pair[O1, O2]{First: v1, Second: v2}
		},
		opts...,
	)
	return func(i1 I1) (O1, O2) {
		res := memoized(i1)
		return res.First, res.Second
	}
}

// MemoizeI2O2 memoizes a binary function with two results.
func MemoizeI2O2[I1, I2 KeyPart, O1, O2 any](
	fn func(I1, I2) (O1, O2),
	opts ...Option[Pair[O1, O2]],
) func(I1, I2) (O1, O2) {
	memoized := MemoizeI2O1(
		func(i1 I1, i2 I2) Pair[O1, O2] {
			v1, v2 := fn(i1, i2)
			return Pair[O1, O2]{First: v1, Second: v2}
		},
		opts...,
	)
	return func(i1 I1, i2 I2) (O1, O2) {
		res := memoized(i1, i2)
		return res.First, res.Second
	}
}

// MemoizeI3O2 memoizes a ternary function with two results.
func MemoizeI3O2[I1, I2, I3 KeyPart, O1, O2 any](
	fn func(I1, I2, I3) (O1, O2),
	opts ...Option[Pair[O1, O2]],
) func(I1, I2, I3) (O1, O2) {
	memoized := MemoizeI3O1(
		func(i1 I1, i2 I2, i3 I3) Pair[O1, O2] {
			v1, v2 := fn(i1, i2, i3)
			return Pair[O1, O2]{First: v1, Second: v2}
		},
		opts...,
	)
	return func(i1 I1, i2 I2, i3 I3) (O1, O2) {
		res := memoized(i1, i2, i3)
		return res.First, res.Second
	}
}
