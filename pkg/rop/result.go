package rop

import (
	"time"

	"github.com/google/uuid"
)

// Result is an immutable outcome of an operation producing a value of
// type T. It is either a success holding the value or a failure holding a
// non-blank error text, never both.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       string
	isSuccess bool
}

// Success wraps a value into a successful Result. The value itself is not
// validated; any value a caller chooses, including a zero value, is a
// legitimate payload.
func Success[T any](v T) Result[T] {
	return Result[T]{
		value:     v,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Fail builds a failed Result with the given error text. The text must
// not be empty or whitespace-only; a blank message panics with
// InvalidArgumentError at construction time.
func Fail[T any](msg string) Result[T] {
	MustText("error message", msg)
	return Result[T]{
		err:       msg,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FailFromUnit carries a failed Unit over into a failed Result[T],
// preserving the error text. Calling it with a successful Unit is caller
// misuse and panics with InvalidOperationError.
func FailFromUnit[T any](u Unit) Result[T] {
	if u.IsSuccess() {
		panic(InvalidOperationError{Reason: "cannot build a failed result from a successful outcome"})
	}
	return Result[T]{
		err:       u.err,
		isSuccess: false,
		createdAt: u.createdAt,
		id:        u.id,
	}
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return !r.isSuccess
}

// Err returns the error text of a failure, or the empty string on success.
func (r Result[T]) Err() string {
	return r.err
}

// Value returns the success payload. Reading the value of a failed Result
// is a programming error, not a business failure: it panics with
// InvalidOperationError whose message is the stored error text.
func (r Result[T]) Value() T {
	if !r.isSuccess {
		panic(InvalidOperationError{Reason: r.err})
	}
	return r.value
}

// MustSucceed panics with InvalidOperationError (message = error text)
// when the result is a failure. No-op on success.
func (r Result[T]) MustSucceed() {
	if !r.isSuccess {
		panic(InvalidOperationError{Reason: r.err})
	}
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}

// CreatedAt is the construction time (UTC).
func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}
