// Package solo contains single-value, synchronous helpers over
// lambda.Result[T].
//
// Highlights:
// - Succeed/Fail: construct Result[T]
// - Try: call a function (Out, error) and convert the error to a failure
// - Map: transform a successful value
// - Finally: reduce to a concrete value via success/error handlers
package solo
