// Package code implements the error-code convention: a short
// machine-readable code and a human message embedded in one error string
// as "CODE: message", separated by the first colon.
//
// Only the first colon is structurally significant; later colons belong
// to the message verbatim. A colon at the very first or very last
// position does not qualify as a separator, so Parse falls back to an
// empty code with the whole input as the message. Plain-text errors
// round-trip untouched.
package code
