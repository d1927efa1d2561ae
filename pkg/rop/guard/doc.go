// Package guard adapts outcome-returning handlers for request pipelines:
// a wrapped handler that panics resolves to a failure of the same
// declared outcome shape instead of unwinding the pipeline.
//
// The failure text is the fault's direct message only, no cause chain
// and no stack. Handlers that return normally pass their outcome through
// untouched; the guard never re-wraps an already-final outcome.
package guard
