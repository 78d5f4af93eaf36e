// Package convert provides one-step transformations: currency formatting,
// integer arithmetic, string parsing and guarded (conditional) application
// of an operator.
//
// StringToInt reports malformed input as *lambda.ParseError; TryStringToInt
// lifts the same parse over lambda.Result so it can be chained with solo.
package convert
