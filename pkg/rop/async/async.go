package async

import (
	"context"

	"github.com/abevier/tsk/futures"

	"github.com/ib-77/railway/pkg/rop"
	"github.com/ib-77/railway/pkg/rop/solo"
)

// Pending is an outcome that is still being computed. It is a future and
// can be read by any number of consumers; the first completion wins.
type Pending[T any] = *futures.Future[rop.Result[T]]

// PendingUnit is a no-value outcome that is still being computed.
type PendingUnit = *futures.Future[rop.Unit]

// mustPending guards the pending receiver. The check runs before any
// goroutine is started, so a missing outcome surfaces at the call site
// as rop.InvalidArgumentError instead of a nil deref on a background
// goroutine.
func mustPending[T any](p Pending[T]) {
	if p == nil {
		panic(rop.InvalidArgumentError{Reason: "pending outcome must not be nil"})
	}
}

func mustPendingUnit(p PendingUnit) {
	if p == nil {
		panic(rop.InvalidArgumentError{Reason: "pending outcome must not be nil"})
	}
}

// Go starts f on its own goroutine and returns the pending outcome.
func Go[T any](f func() rop.Result[T]) Pending[T] {
	rop.MustFunc("f", f)

	return futures.FromFunc(func() (rop.Result[T], error) {
		return f(), nil
	})
}

// Of wraps an already known outcome as a completed pending.
func Of[T any](r rop.Result[T]) Pending[T] {
	f := futures.New[rop.Result[T]]()
	f.Complete(r)
	return f
}

// Await blocks until the pending outcome resolves or ctx is done. A
// cancelled context produces a failure carrying the context error's
// message; the model has no separate cancel state.
func Await[T any](ctx context.Context, p Pending[T]) rop.Result[T] {
	mustPending(p)

	r, err := p.Get(ctx)
	if err != nil {
		return rop.Fail[T](err.Error())
	}
	return r
}

// Map is solo.Map over a pending receiver: awaits p, then transforms the
// value on success. The failure path schedules no call to onSuccess.
func Map[In, Out any](ctx context.Context, p Pending[In], onSuccess func(In) Out) Pending[Out] {
	mustPending(p)
	rop.MustFunc("onSuccess", onSuccess)

	return futures.FromFunc(func() (rop.Result[Out], error) {
		return solo.Map(Await(ctx, p), onSuccess), nil
	})
}

// Then chains a synchronous outcome-returning function after a pending
// receiver.
func Then[In, Out any](ctx context.Context, p Pending[In], onSuccess func(In) rop.Result[Out]) Pending[Out] {
	mustPending(p)
	rop.MustFunc("onSuccess", onSuccess)

	return futures.FromFunc(func() (rop.Result[Out], error) {
		return solo.Switch(Await(ctx, p), onSuccess), nil
	})
}

// Switch chains an asynchronous outcome-returning function: the receiver
// is awaited first, and only on success is onSuccess invoked and its
// pending awaited in turn. Stages resolve strictly in that order.
func Switch[In, Out any](ctx context.Context, p Pending[In], onSuccess func(In) Pending[Out]) Pending[Out] {
	mustPending(p)
	rop.MustFunc("onSuccess", onSuccess)

	return futures.FromFunc(func() (rop.Result[Out], error) {
		in := Await(ctx, p)
		if in.IsFailure() {
			return rop.Fail[Out](in.Err()), nil
		}
		return Await(ctx, onSuccess(in.Value())), nil
	})
}

// Validate awaits the receiver and applies solo.Validate.
func Validate[T any](ctx context.Context, p Pending[T], predicate func(T) bool, errMsg string) Pending[T] {
	mustPending(p)
	rop.MustFunc("predicate", predicate)
	rop.MustText("error message", errMsg)

	return futures.FromFunc(func() (rop.Result[T], error) {
		return solo.Validate(Await(ctx, p), predicate, errMsg), nil
	})
}

// Tee awaits the receiver and runs the side effect on success; the
// resolved outcome passes through untouched.
func Tee[T any](ctx context.Context, p Pending[T], onSuccess func(T)) Pending[T] {
	mustPending(p)
	rop.MustFunc("onSuccess", onSuccess)

	return futures.FromFunc(func() (rop.Result[T], error) {
		return solo.Tee(Await(ctx, p), onSuccess), nil
	})
}

// TeeErr awaits the receiver and runs the side effect on failure.
func TeeErr[T any](ctx context.Context, p Pending[T], onFailure func(string)) Pending[T] {
	mustPending(p)
	rop.MustFunc("onFailure", onFailure)

	return futures.FromFunc(func() (rop.Result[T], error) {
		return solo.TeeErr(Await(ctx, p), onFailure), nil
	})
}

// Finally blocks until the pending outcome resolves and reduces it to a
// concrete value; exactly one handler runs.
func Finally[In, Out any](ctx context.Context, p Pending[In],
	onSuccess func(In) Out, onFailure func(err string) Out) Out {

	mustPending(p)
	rop.MustFunc("onSuccess", onSuccess)
	rop.MustFunc("onFailure", onFailure)

	return solo.Finally(Await(ctx, p), onSuccess, onFailure)
}

// ToUnit discards the payload of a pending outcome.
func ToUnit[T any](ctx context.Context, p Pending[T]) PendingUnit {
	mustPending(p)

	return futures.FromFunc(func() (rop.Unit, error) {
		return solo.ToUnit(Await(ctx, p)), nil
	})
}

// OfUnit wraps an already known no-value outcome as a completed pending.
func OfUnit(u rop.Unit) PendingUnit {
	f := futures.New[rop.Unit]()
	f.Complete(u)
	return f
}

// AwaitUnit blocks until the pending no-value outcome resolves or ctx is
// done; a cancelled context produces a failure with the context error's
// message.
func AwaitUnit(ctx context.Context, p PendingUnit) rop.Unit {
	mustPendingUnit(p)

	u, err := p.Get(ctx)
	if err != nil {
		return rop.Err(err.Error())
	}
	return u
}

// WithValue lifts a pending no-value outcome into a valued pending
// holding v on success; a failure propagates its error text.
func WithValue[T any](ctx context.Context, p PendingUnit, v T) Pending[T] {
	mustPendingUnit(p)

	return futures.FromFunc(func() (rop.Result[T], error) {
		return solo.WithValue(AwaitUnit(ctx, p), v), nil
	})
}

// TryGo runs a fallible function asynchronously; the await sits inside
// the protected region, so an error return or a panic from f resolves to
// a failure with the fixed errMsg, never to a crashed goroutine.
func TryGo[T any](f func() (T, error), errMsg string) Pending[T] {
	rop.MustFunc("f", f)
	rop.MustText("error message", errMsg)

	return futures.FromFunc(func() (rop.Result[T], error) {
		return solo.Try(f, errMsg), nil
	})
}

// All awaits every pending in order and returns the resolved outcomes,
// index for index. It is the bridge for callers that fanned out work
// themselves and now want a single verdict via rop.Collect or
// rop.Combine.
func All[T any](ctx context.Context, ps []Pending[T]) []rop.Result[T] {
	for _, p := range ps {
		mustPending(p)
	}

	out := make([]rop.Result[T], 0, len(ps))
	for _, p := range ps {
		out = append(out, Await(ctx, p))
	}
	return out
}
