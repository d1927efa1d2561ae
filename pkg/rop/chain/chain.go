package chain

import (
	"github.com/ib-77/railway/pkg/rop"
	"github.com/ib-77/railway/pkg/rop/solo"
)

// Chain wraps a rop.Result to enable fluent chaining.
type Chain[T any] struct {
	result rop.Result[T]
}

// Start creates a new chain from an existing result.
func Start[T any](result rop.Result[T]) Chain[T] {
	return Chain[T]{result: result}
}

// FromValue creates a new chain from a successful value.
func FromValue[T any](value T) Chain[T] {
	return Chain[T]{result: rop.Success(value)}
}

// Result returns the underlying rop.Result.
func (c Chain[T]) Result() rop.Result[T] {
	return c.result
}

// Then chains a function that returns a result of the same type.
func (c Chain[T]) Then(onSuccess func(T) rop.Result[T]) Chain[T] {
	return Chain[T]{result: solo.Switch(c.result, onSuccess)}
}

// Map chains a pure same-type transformation.
func (c Chain[T]) Map(onSuccess func(T) T) Chain[T] {
	return Chain[T]{result: solo.Map(c.result, onSuccess)}
}

// Validate fails the chain with errMsg when the predicate rejects the
// current value.
func (c Chain[T]) Validate(predicate func(T) bool, errMsg string) Chain[T] {
	return Chain[T]{result: solo.Validate(c.result, predicate, errMsg)}
}

// Tee runs a side effect on success without changing the result.
func (c Chain[T]) Tee(onSuccess func(T)) Chain[T] {
	return Chain[T]{result: solo.Tee(c.result, onSuccess)}
}

// TeeErr runs a side effect on failure without changing the result.
func (c Chain[T]) TeeErr(onFailure func(string)) Chain[T] {
	return Chain[T]{result: solo.TeeErr(c.result, onFailure)}
}

// Then chains a function that switches the chain to a new value type.
func Then[T, U any](c Chain[T], onSuccess func(T) rop.Result[U]) Chain[U] {
	return Chain[U]{result: solo.Switch(c.result, onSuccess)}
}

// Map chains a pure type-changing transformation.
func Map[T, U any](c Chain[T], onSuccess func(T) U) Chain[U] {
	return Chain[U]{result: solo.Map(c.result, onSuccess)}
}

// Try chains a fallible function; any fault becomes a failure with the
// fixed errMsg (solo.Try semantics).
func Try[T, U any](c Chain[T], try func(T) (U, error), errMsg string) Chain[U] {
	rop.MustFunc("try", try)
	rop.MustText("error message", errMsg)

	return Chain[U]{result: solo.Switch(c.result, func(v T) rop.Result[U] {
		return solo.Try(func() (U, error) { return try(v) }, errMsg)
	})}
}

// Finally collapses the chain into a final value using solo.Finally.
func Finally[T, U any](c Chain[T], onSuccess func(T) U, onFailure func(err string) U) U {
	return solo.Finally(c.result, onSuccess, onFailure)
}
