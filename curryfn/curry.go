// Package curryfn turns multi-argument functions into chains of partial
// applications. Arity is always explicit: the typed CurryN variants carry
// it in their signature, and the dynamic Curried accumulator takes it as
// a parameter.
package curryfn

import "fmt"

// Curry2 transforms fn into a chain of single-argument applications.
func Curry2[I1, I2, O any](fn func(I1, I2) O) func(I1) func(I2) O {
	return func(i1 I1) func(I2) O {
		return func(i2 I2) O {
			return fn(i1, i2)
		}
	}
}

// Curry3 transforms a ternary fn into a chain of single-argument
// applications.
func Curry3[I1, I2, I3, O any](fn func(I1, I2, I3) O) func(I1) func(I2) func(I3) O {
	return func(i1 I1) func(I2) func(I3) O {
		return func(i2 I2) func(I3) O {
			return func(i3 I3) O {
				return fn(i1, i2, i3)
			}
		}
	}
}

// Curry4 transforms a quaternary fn into a chain of single-argument
// applications.
func Curry4[I1, I2, I3, I4, O any](fn func(I1, I2, I3, I4) O) func(I1) func(I2) func(I3) func(I4) O {
	return func(i1 I1) func(I2) func(I3) func(I4) O {
		return func(i2 I2) func(I3) func(I4) O {
			return func(i3 I3) func(I4) O {
				return func(i4 I4) O {
					return fn(i1, i2, i3, i4)
				}
			}
		}
	}
}

// Curried accumulates arguments for a variadic function until its
// declared arity is reached. Values are immutable: With returns a new
// Curried, so partial applications can be shared and re-applied freely.
type Curried[O any] struct {
	fn    func(...any) O
	arity int
	bound []any
}

// CurryN wraps fn with an explicit arity. Arity must be at least 1.
func CurryN[O any](fn func(...any) O, arity int) Curried[O] {
	if arity < 1 {
		panic("arity should be greater than 0")
	}
	return Curried[O]{fn: fn, arity: arity}
}

// With binds further arguments and returns the extended application.
// Arguments may be grouped across calls however the caller likes:
// c.With(1).With(2, 3) and c.With(1, 2, 3) are equivalent. Binding more
// arguments than the arity allows is a programmer error and panics.
func (c Curried[O]) With(args ...any) Curried[O] {
	if len(c.bound)+len(args) > c.arity {
		panic(fmt.Sprintf("curried function of arity %d applied to %d arguments",
			c.arity, len(c.bound)+len(args)))
	}
	bound := make([]any, 0, len(c.bound)+len(args))
	bound = append(bound, c.bound...)
	bound = append(bound, args...)
	return Curried[O]{fn: c.fn, arity: c.arity, bound: bound}
}

// Saturated reports whether every argument has been bound.
func (c Curried[O]) Saturated() bool {
	return len(c.bound) == c.arity
}

// Value invokes the underlying function. It panics unless the
// application is saturated.
func (c Curried[O]) Value() O {
	if !c.Saturated() {
		panic(fmt.Sprintf("curried function of arity %d invoked with %d arguments",
			c.arity, len(c.bound)))
	}
	return c.fn(c.bound...)
}
