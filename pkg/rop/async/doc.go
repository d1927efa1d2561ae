// Package async contains the asynchronous counterparts of the solo
// combinators. A pending outcome is a future that will eventually hold a
// rop.Result[T]; combinators await their receiver first, and once a
// failure is observed no further work is scheduled for the caller's
// function: the failure resolves through the rest of the chain
// immediately.
//
// Chains compose strictly sequentially: each stage fully resolves before
// the next begins, there is no implicit parallelism. Callers wanting
// concurrent fan-out should start several pendings themselves and bring
// the results back together with All before Collect/Combine.
//
// Context cancellation while awaiting surfaces as an ordinary failure
// whose text is the context error's message.
package async
