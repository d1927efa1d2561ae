// Package rop contains the core Railway Oriented Programming value types.
//
// An operation that can succeed or fail is represented as an immutable
// outcome value instead of an error return:
//   - Result[T]: success carrying a value of type T, or failure carrying
//     an error text
//   - Unit: success or failure with no value attached
//   - ErrorsResult: an ordered collection of failures gathered from many
//     outcomes at once
//
// Outcomes are constructed once via Success/Fail (Ok/Err for Unit) and are
// never mutated afterwards; every combinator in the solo, async and chain
// packages produces a new outcome value. Because of that, outcome values
// are freely shareable across goroutines without synchronization.
//
// Business failures are data. Misusing the API (blank failure text, nil
// function arguments, reading the value of a failed result) is not a
// business failure and panics with InvalidArgumentError or
// InvalidOperationError instead.
package rop
