// Package solo contains the single-value, synchronous ROP combinators
// over rop.Result[T] and rop.Unit.
//
// Highlights:
// - Map: transform a successful value
// - Switch/Then: chain functions that themselves return outcomes
// - Validate: turn a failed predicate into a failure with fixed text
// - Tee/TeeErr: side effects on success or failure, result untouched
// - Finally: reduce an outcome to a concrete value via both handlers
// - ToUnit/WithValue/FromPtr: explicit conversions at the boundaries
// - Try: run a fallible function and replace any fault with fixed text
//
// Every combinator shares the same contract: a failed input passes
// through untouched and the caller's function is never invoked; a nil
// function argument panics with rop.InvalidArgumentError before the
// input is inspected; panics raised by caller functions propagate
// uncaught (only Try and the guard package recover).
package solo
