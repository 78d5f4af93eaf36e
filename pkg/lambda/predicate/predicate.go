// Package predicate provides small boolean tests over values.
package predicate

import "unicode/utf8"

// Pred is a predicate over A.
type Pred[A any] func(A) bool

// And is the lifted && of two predicates.
func And[A any](p0, p1 Pred[A]) Pred[A] {
	return func(a A) bool {
		return p0(a) && p1(a)
	}
}

// Or is the lifted || of two predicates.
func Or[A any](p0, p1 Pred[A]) Pred[A] {
	return func(a A) bool {
		return p0(a) || p1(a)
	}
}

func Not[A any](p Pred[A]) Pred[A] {
	return func(a A) bool {
		return !p(a)
	}
}

func IsEmpty() Pred[string] {
	return func(s string) bool {
		return s == ""
	}
}

// LengthInRange holds when minLen <= length <= maxLen. Length counts runes, not
// bytes.
func LengthInRange(minLen, maxLen int) Pred[string] {
	return func(s string) bool {
		n := utf8.RuneCountInString(s)
		return n >= minLen && n <= maxLen
	}
}
