package rop

// Outcome is the minimal capability shared by Unit, Result[T] and
// ErrorsResult. It exists so heterogeneous outcomes, mixing no-value and
// with-value results of different payload types, can be scanned uniformly
// by Collect and the Combine reducers.
type Outcome interface {
	// IsSuccess returns true if the operation succeeded
	IsSuccess() bool
	// IsFailure is the complement of IsSuccess
	IsFailure() bool
	// Err returns the error text if the operation failed, "" otherwise
	Err() string
}

var (
	_ Outcome = Unit{}
	_ Outcome = Result[int]{}
	_ Outcome = ErrorsResult{}
)
