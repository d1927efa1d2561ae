package rop

import (
	"fmt"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

// FromErrorOption adjusts how much of a Go error is carried over into the
// failure text built by ErrFrom/FailFrom.
type FromErrorOption func(*fromErrorOptions)

type fromErrorOptions struct {
	causes bool
	stack  bool
}

// WithCauses appends every wrapped cause in the Unwrap chain to the
// failure text, each on its own line prefixed "Inner: ".
func WithCauses() FromErrorOption {
	return func(o *fromErrorOptions) {
		o.causes = true
	}
}

// WithStack appends the error's originating stack trace to the failure
// text, prefixed "Stack:". The stack is taken from the first error in the
// chain that carries one (github.com/pkg/errors style); errors without a
// recorded stack get no Stack section.
func WithStack() FromErrorOption {
	return func(o *fromErrorOptions) {
		o.stack = true
	}
}

// ErrFrom builds a failed Unit from a Go error. The base text is the
// error's message; an aggregate error (Unwrap() []error) is flattened and
// all leaf messages are joined with "; ". A nil error panics with
// InvalidArgumentError.
func ErrFrom(err error, opts ...FromErrorOption) Unit {
	return Err(errorText(err, opts))
}

// FailFrom is ErrFrom for a valued result shape.
func FailFrom[T any](err error, opts ...FromErrorOption) Result[T] {
	return Fail[T](errorText(err, opts))
}

func errorText(err error, opts []FromErrorOption) string {
	MustErr("error", err)

	var o fromErrorOptions
	for _, opt := range opts {
		opt(&o)
	}

	base := baseMessage(err)
	if strings.TrimSpace(base) == "" {
		// A non-nil error with a blank message is not caller misuse;
		// substitute a marker so the failure stays constructible.
		base = "unknown error"
	}

	var b strings.Builder
	b.WriteString(base)

	if o.causes {
		for cause := unwrapOne(err); cause != nil; cause = unwrapOne(cause) {
			b.WriteString("\nInner: ")
			b.WriteString(cause.Error())
		}
	}

	if o.stack {
		if st, ok := stackOf(err); ok {
			b.WriteString("\nStack:")
			b.WriteString(st)
		}
	}

	return b.String()
}

// baseMessage is the error's own message, except for aggregate errors
// where the contained messages are joined with "; ". Nested aggregates
// are flattened one level at a time until only leaves remain.
func baseMessage(err error) string {
	leaves := flatten(err)
	if len(leaves) == 1 {
		return leaves[0].Error()
	}
	msgs := make([]string, 0, len(leaves))
	for _, l := range leaves {
		msgs = append(msgs, l.Error())
	}
	return strings.Join(msgs, "; ")
}

func flatten(err error) []error {
	if agg, ok := err.(interface{ Unwrap() []error }); ok {
		var leaves []error
		for _, e := range agg.Unwrap() {
			if IsNil(e) {
				continue
			}
			leaves = append(leaves, flatten(e)...)
		}
		return leaves
	}
	return []error{err}
}

// unwrapOne walks the single-cause chain. Aggregates stop the walk: their
// members are already part of the base message.
func unwrapOne(err error) error {
	u, ok := err.(interface{ Unwrap() error })
	if !ok {
		return nil
	}
	return u.Unwrap()
}

func stackOf(err error) (string, bool) {
	type stackTracer interface {
		StackTrace() pkgerrors.StackTrace
	}
	for e := err; e != nil; e = unwrapOne(e) {
		if st, ok := e.(stackTracer); ok {
			return fmt.Sprintf("%+v", st.StackTrace()), true
		}
	}
	return "", false
}
