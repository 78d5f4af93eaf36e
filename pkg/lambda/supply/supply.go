// Package supply holds zero-argument producers: constants, random numbers
// and suppliers that build other functions.
package supply

import (
	"math/rand/v2"

	"github.com/ib-77/lambda3/pkg/lambda"
)

func Hello() lambda.Supplier[string] {
	return func() string {
		return "Hello"
	}
}

// RandomInt returns a non-negative pseudo-random int on each call.
func RandomInt() lambda.Supplier[int] {
	return func() int {
		return rand.Int()
	}
}

// BoundedRandomInt returns a function yielding a value in [0, bound).
// The function panics if bound <= 0.
func BoundedRandomInt() lambda.UnaryOperator[int] {
	return func(bound int) int {
		return rand.IntN(bound)
	}
}

// NMultiply supplies a function that multiplies its argument by n.
func NMultiply(n int) lambda.Supplier[lambda.UnaryOperator[int]] {
	return func() lambda.UnaryOperator[int] {
		return func(x int) int {
			return x * n
		}
	}
}

func WellDone() func() func() func() string {
	return func() func() func() string {
		return func() func() string {
			return func() string {
				return "WELL DONE!"
			}
		}
	}
}
