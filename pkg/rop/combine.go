package rop

// Combine scans the outcomes in order and returns the first failure
// encountered as a Unit, preserving its error text. When every outcome
// succeeds, including the zero-element case, it returns Ok. A nil element
// panics with InvalidArgumentError.
func Combine(outcomes ...Outcome) Unit {
	for _, o := range outcomes {
		if IsNil(o) {
			panicNilOutcome()
		}
		if o.IsFailure() {
			return Err(o.Err())
		}
	}
	return Ok()
}

// CombineWith runs the same first-failure scan as Combine, but on
// all-success returns Success(value) where value is supplied by the
// caller independently of the scanned outcomes. Useful for carrying a
// value already known before a batch of validations.
func CombineWith[T any](value T, outcomes ...Outcome) Result[T] {
	for _, o := range outcomes {
		if IsNil(o) {
			panicNilOutcome()
		}
		if o.IsFailure() {
			return Fail[T](o.Err())
		}
	}
	return Success(value)
}

// CombineValues scans valued results in order and returns the first
// failure; on all-success it returns the LAST element's value. Earlier
// elements act as validation steps whose values are deliberately
// discarded. Unlike the other reducers, zero elements is caller misuse
// and panics with InvalidArgumentError.
func CombineValues[T any](results ...Result[T]) Result[T] {
	if len(results) == 0 {
		panic(InvalidArgumentError{Reason: "at least one result is required"})
	}
	for _, r := range results {
		if r.IsFailure() {
			return r
		}
	}
	return results[len(results)-1]
}
