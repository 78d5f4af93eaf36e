// Package lambda holds the types shared by the helper packages: the
// Result[T] value used by railway-style conversions, the function type
// aliases for suppliers and operators, and the typed errors.
//
// Sub-packages:
// - spawn: deferred and detached goroutines with a joinable Handle
// - supply: constant, random and nested suppliers
// - predicate: string predicates and combinators
// - convert: formatting, arithmetic, parsing and conditional application
// - solo: synchronous helpers over Result[T]
package lambda
