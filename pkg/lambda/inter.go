package lambda

// Supplier produces a value on demand.
type Supplier[T any] func() T

// UnaryOperator maps a value to a value of the same type.
type UnaryOperator[T any] func(T) T

// BinaryOperator combines two values of the same type.
type BinaryOperator[T any] func(T, T) T
