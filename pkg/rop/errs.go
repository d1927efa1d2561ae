package rop

import "strings"

// ErrorsResult aggregates the failures of many outcomes into a single
// pass/fail verdict. Unlike Combine it never short-circuits: every input
// is inspected and every failure text is recorded, in input order.
type ErrorsResult struct {
	errs []string
}

// Collect scans all outcomes and gathers the error text of every failing
// one, preserving input order. Zero outcomes is a legitimate input and
// yields the all-pass collector. A nil element panics with
// InvalidArgumentError.
func Collect(outcomes ...Outcome) ErrorsResult {
	var errs []string
	for _, o := range outcomes {
		if IsNil(o) {
			panicNilOutcome()
		}
		if o.IsFailure() {
			errs = append(errs, o.Err())
		}
	}
	return ErrorsResult{errs: errs}
}

// NoErrors is the canonical all-pass collector value.
func NoErrors() ErrorsResult {
	return ErrorsResult{}
}

func (e ErrorsResult) IsSuccess() bool {
	return len(e.errs) == 0
}

func (e ErrorsResult) IsFailure() bool {
	return len(e.errs) > 0
}

// Err returns all collected error texts joined with a newline, or "" when
// the collector passed. It makes ErrorsResult itself an Outcome, so a
// collector verdict can be fed back into Collect or Combine.
func (e ErrorsResult) Err() string {
	return strings.Join(e.errs, "\n")
}

// Errors returns the collected error texts in input order. The returned
// slice is a copy; the collector stays immutable.
func (e ErrorsResult) Errors() []string {
	if len(e.errs) == 0 {
		return nil
	}
	out := make([]string, len(e.errs))
	copy(out, e.errs)
	return out
}

// ToUnit collapses the collector into a single no-value outcome: Ok when
// nothing failed, otherwise a failure whose text is every collected error
// joined with a newline, in original order. The collapse is lossy: the
// individual error boundaries survive only as line breaks.
func (e ErrorsResult) ToUnit() Unit {
	if len(e.errs) == 0 {
		return Ok()
	}
	return Err(strings.Join(e.errs, "\n"))
}

func panicNilOutcome() {
	panic(InvalidArgumentError{Reason: "outcome must not be nil"})
}
