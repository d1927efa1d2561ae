package rop

import (
	"time"

	"github.com/google/uuid"
)

// Unit is an immutable outcome of an operation with no success payload.
// It is a sibling of Result[T], not a specialization of it; conversions
// between the two are explicit (solo.ToUnit, solo.WithValue).
type Unit struct {
	id        uuid.UUID
	createdAt time.Time
	err       string
	isSuccess bool
}

// Ok is the successful no-value outcome.
func Ok() Unit {
	return Unit{
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Err builds a failed Unit with the given error text. A blank message
// panics with InvalidArgumentError at construction time.
func Err(msg string) Unit {
	MustText("error message", msg)
	return Unit{
		err:       msg,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func (u Unit) IsSuccess() bool {
	return u.isSuccess
}

func (u Unit) IsFailure() bool {
	return !u.isSuccess
}

// Err returns the error text of a failure, or the empty string on success.
func (u Unit) Err() string {
	return u.err
}

// MustSucceed panics with InvalidOperationError (message = error text)
// when the outcome is a failure. No-op on success.
func (u Unit) MustSucceed() {
	if !u.isSuccess {
		panic(InvalidOperationError{Reason: u.err})
	}
}

func (u Unit) Id() uuid.UUID {
	return u.id
}

// CreatedAt is the construction time (UTC).
func (u Unit) CreatedAt() time.Time {
	return u.createdAt
}
