package guard

import (
	"context"
	"fmt"
	"strings"

	"github.com/ib-77/railway/pkg/rop"
)

// Handler wraps a valued-outcome handler so that any panic raised while
// it runs is converted into a failed rop.Result[T] carrying the fault's
// message.
func Handler[T any](h func(ctx context.Context) rop.Result[T]) func(ctx context.Context) rop.Result[T] {
	rop.MustFunc("handler", h)

	return func(ctx context.Context) (res rop.Result[T]) {
		defer func() {
			if r := recover(); r != nil {
				res = rop.Fail[T](faultMessage(r))
			}
		}()
		return h(ctx)
	}
}

// UnitHandler is Handler for no-value outcomes.
func UnitHandler(h func(ctx context.Context) rop.Unit) func(ctx context.Context) rop.Unit {
	rop.MustFunc("handler", h)

	return func(ctx context.Context) (res rop.Unit) {
		defer func() {
			if r := recover(); r != nil {
				res = rop.Err(faultMessage(r))
			}
		}()
		return h(ctx)
	}
}

// faultMessage extracts the direct message of a recovered panic value.
// A blank message still has to produce a constructible failure, so it is
// substituted with a fixed marker.
func faultMessage(r any) string {
	var msg string
	switch v := r.(type) {
	case error:
		msg = v.Error()
	case string:
		msg = v
	default:
		msg = fmt.Sprint(v)
	}
	if strings.TrimSpace(msg) == "" {
		return "unknown fault"
	}
	return msg
}
