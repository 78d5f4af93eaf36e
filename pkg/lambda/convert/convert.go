package convert

import (
	"context"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/ib-77/lambda3/pkg/lambda"
	"github.com/ib-77/lambda3/pkg/lambda/predicate"
	"github.com/ib-77/lambda3/pkg/lambda/solo"
)

// ToDollarString formats an amount with two decimal places and a leading
// dollar sign, e.g. 10 -> "$10.00".
func ToDollarString() func(decimal.Decimal) string {
	return func(amount decimal.Decimal) string {
		return "$" + amount.StringFixed(2)
	}
}

func Square() lambda.UnaryOperator[int] {
	return func(x int) int {
		return x * x
	}
}

func Sum() lambda.BinaryOperator[int64] {
	return func(a, b int64) int64 {
		return a + b
	}
}

// StringToInt parses a base-10 integer literal with an optional sign.
func StringToInt() func(string) (int, error) {
	return func(s string) (int, error) {
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, &lambda.ParseError{Input: s, Err: err}
		}
		return n, nil
	}
}

func TryStringToInt(ctx context.Context, input lambda.Result[string]) lambda.Result[int] {
	parse := StringToInt()
	return solo.Try(ctx, input, func(_ context.Context, s string) (int, error) {
		return parse(s)
	})
}

// When applies op only to values accepted by guard; other values pass
// through unchanged.
func When[T any](op lambda.UnaryOperator[T], guard predicate.Pred[T]) lambda.UnaryOperator[T] {
	return func(v T) T {
		if guard(v) {
			return op(v)
		}
		return v
	}
}

// Conditional returns When specialised to int, as a two-argument function.
func Conditional() func(lambda.UnaryOperator[int], predicate.Pred[int]) lambda.UnaryOperator[int] {
	return When[int]
}
