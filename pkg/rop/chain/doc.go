// Package chain provides a small fluent wrapper over rop.Result[T] for
// callers that prefer method chaining to the free functions in solo.
//
// Methods keep the value type; the free functions Then, Map, Try and
// Finally change it (Go methods cannot introduce new type parameters).
// Every operation delegates to solo, so the propagation contracts are
// identical.
package chain
