package solo

import (
	"github.com/ib-77/railway/pkg/rop"
)

// Map transforms the successful value with onSuccess and rewraps it; a
// failure is carried over with the same error text and onSuccess is not
// invoked.
func Map[In, Out any](input rop.Result[In], onSuccess func(In) Out) rop.Result[Out] {
	rop.MustFunc("onSuccess", onSuccess)

	if input.IsSuccess() {
		return rop.Success(onSuccess(input.Value()))
	}
	return rop.Fail[Out](input.Err())
}

// Switch chains a function that already returns an outcome: on success
// its result is returned directly, on failure the chain short-circuits
// and onSuccess is never invoked.
func Switch[In, Out any](input rop.Result[In], onSuccess func(In) rop.Result[Out]) rop.Result[Out] {
	rop.MustFunc("onSuccess", onSuccess)

	if input.IsSuccess() {
		return onSuccess(input.Value())
	}
	return rop.Fail[Out](input.Err())
}

// Then chains two no-value outcomes: next runs only when input succeeded,
// which makes fail-fast validation sequences out of plain Unit checks.
func Then(input rop.Unit, next func() rop.Unit) rop.Unit {
	rop.MustFunc("next", next)

	if input.IsSuccess() {
		return next()
	}
	return input
}

// Validate applies a predicate to a successful value and fails with the
// fixed errMsg when the predicate rejects it. A failed input passes
// through unchanged and errMsg is unused.
func Validate[T any](input rop.Result[T], predicate func(T) bool, errMsg string) rop.Result[T] {
	rop.MustFunc("predicate", predicate)
	rop.MustText("error message", errMsg)

	if input.IsSuccess() && !predicate(input.Value()) {
		return rop.Fail[T](errMsg)
	}
	return input
}

// ValidateUnit is Validate for no-value outcomes; the predicate takes no
// arguments and captures whatever state it needs.
func ValidateUnit(input rop.Unit, predicate func() bool, errMsg string) rop.Unit {
	rop.MustFunc("predicate", predicate)
	rop.MustText("error message", errMsg)

	if input.IsSuccess() && !predicate() {
		return rop.Err(errMsg)
	}
	return input
}

// Tee invokes a side effect with the successful value and returns the
// original outcome untouched. Nothing runs on failure.
func Tee[T any](input rop.Result[T], onSuccess func(T)) rop.Result[T] {
	rop.MustFunc("onSuccess", onSuccess)

	if input.IsSuccess() {
		onSuccess(input.Value())
	}
	return input
}

// TeeErr is the mirror of Tee: the side effect sees the error text and
// runs only on failure.
func TeeErr[T any](input rop.Result[T], onFailure func(string)) rop.Result[T] {
	rop.MustFunc("onFailure", onFailure)

	if input.IsFailure() {
		onFailure(input.Err())
	}
	return input
}

// TeeUnit invokes a side effect when the no-value outcome succeeded.
func TeeUnit(input rop.Unit, onSuccess func()) rop.Unit {
	rop.MustFunc("onSuccess", onSuccess)

	if input.IsSuccess() {
		onSuccess()
	}
	return input
}

// TeeErrUnit invokes a side effect with the error text when the no-value
// outcome failed.
func TeeErrUnit(input rop.Unit, onFailure func(string)) rop.Unit {
	rop.MustFunc("onFailure", onFailure)

	if input.IsFailure() {
		onFailure(input.Err())
	}
	return input
}

// Finally reduces an outcome to a concrete value: exactly one of the two
// handlers runs. This is the designated boundary operator; code past a
// Finally call deals in plain values again.
func Finally[In, Out any](input rop.Result[In],
	onSuccess func(In) Out, onFailure func(err string) Out) Out {

	rop.MustFunc("onSuccess", onSuccess)
	rop.MustFunc("onFailure", onFailure)

	if input.IsSuccess() {
		return onSuccess(input.Value())
	}
	return onFailure(input.Err())
}

// FinallyUnit is Finally for no-value outcomes.
func FinallyUnit[Out any](input rop.Unit,
	onSuccess func() Out, onFailure func(err string) Out) Out {

	rop.MustFunc("onSuccess", onSuccess)
	rop.MustFunc("onFailure", onFailure)

	if input.IsSuccess() {
		return onSuccess()
	}
	return onFailure(input.Err())
}

// ToUnit discards the payload, keeping the verdict and error text.
func ToUnit[T any](input rop.Result[T]) rop.Unit {
	if input.IsSuccess() {
		return rop.Ok()
	}
	return rop.Err(input.Err())
}

// WithValue lifts a successful no-value outcome into a valued one holding
// v; a failure propagates its error text into the valued shape.
func WithValue[T any](input rop.Unit, v T) rop.Result[T] {
	if input.IsSuccess() {
		return rop.Success(v)
	}
	return rop.FailFromUnit[T](input)
}

// FromPtr is the null-elimination boundary: a non-nil pointer becomes a
// success holding the pointed-to value, a nil pointer becomes a failure
// with errMsg.
func FromPtr[T any](p *T, errMsg string) rop.Result[T] {
	rop.MustText("error message", errMsg)

	if p == nil {
		return rop.Fail[T](errMsg)
	}
	return rop.Success(*p)
}

// Try runs a fallible function and wraps its value as a success. Any
// fault (an error return or a panic) is discarded and replaced by a
// failure with the fixed errMsg. The original fault detail is
// deliberately not preserved; use rop.FailFrom when it matters.
func Try[T any](f func() (T, error), errMsg string) (res rop.Result[T]) {
	rop.MustFunc("f", f)
	rop.MustText("error message", errMsg)

	defer func() {
		if r := recover(); r != nil {
			res = rop.Fail[T](errMsg)
		}
	}()

	v, err := f()
	if err != nil {
		return rop.Fail[T](errMsg)
	}
	return rop.Success(v)
}

// TryUnit is Try for operations with no result value.
func TryUnit(f func() error, errMsg string) (res rop.Unit) {
	rop.MustFunc("f", f)
	rop.MustText("error message", errMsg)

	defer func() {
		if r := recover(); r != nil {
			res = rop.Err(errMsg)
		}
	}()

	if err := f(); err != nil {
		return rop.Err(errMsg)
	}
	return rop.Ok()
}
