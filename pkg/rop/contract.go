package rop

import (
	"reflect"
	"strings"
)

// InvalidArgumentError is the panic payload for caller misuse detected at
// the library boundary: a blank failure message, a nil function argument,
// a nil outcome element. It is never caught inside this module.
type InvalidArgumentError struct {
	Reason string
}

func (e InvalidArgumentError) Error() string {
	return "rop: invalid argument: " + e.Reason
}

// InvalidOperationError is the panic payload for reading the value of a
// failed outcome (or forcing success on one). Its message is exactly the
// outcome's error text, so the original failure stays visible in the
// panic output.
type InvalidOperationError struct {
	Reason string
}

func (e InvalidOperationError) Error() string {
	return e.Reason
}

// IsNil reports whether i is nil, including typed nil pointers and nil
// funcs hidden behind a non-nil interface value.
func IsNil(i any) bool {
	if i == nil {
		return true
	}
	switch v := reflect.ValueOf(i); v.Kind() {
	case reflect.Ptr, reflect.Func, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan:
		return v.IsNil()
	default:
		return false
	}
}

// MustFunc panics with InvalidArgumentError when a caller-supplied function
// is nil. Combinators call it before inspecting their input outcome, so a
// nil function is reported even when the input is already a failure.
func MustFunc(name string, f any) {
	if IsNil(f) {
		panic(InvalidArgumentError{Reason: name + " must not be nil"})
	}
}

// MustText panics with InvalidArgumentError when s is empty or
// whitespace-only.
func MustText(name, s string) {
	if strings.TrimSpace(s) == "" {
		panic(InvalidArgumentError{Reason: name + " must not be blank"})
	}
}

// MustErr panics with InvalidArgumentError when err is nil.
func MustErr(name string, err error) {
	if IsNil(err) {
		panic(InvalidArgumentError{Reason: name + " must not be nil"})
	}
}
