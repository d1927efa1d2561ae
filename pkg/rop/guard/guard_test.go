package guard

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/railway/pkg/rop"
)

func TestHandler_PassesOutcomeThroughUntouched(t *testing.T) {
	t.Parallel()

	want := rop.Success(5)
	h := Handler(func(context.Context) rop.Result[int] { return want })

	got := h(context.Background())

	assert.Equal(t, want.Id(), got.Id(), "a returned outcome must not be re-wrapped")
}

func TestHandler_FailureOutcomeIsNotReWrapped(t *testing.T) {
	t.Parallel()

	want := rop.Fail[int]("business failure")
	h := Handler(func(context.Context) rop.Result[int] { return want })

	got := h(context.Background())

	assert.Equal(t, want.Id(), got.Id())
	assert.Equal(t, "business failure", got.Err())
}

func TestHandler_PanicBecomesFailureWithDirectMessage(t *testing.T) {
	t.Parallel()

	h := Handler(func(context.Context) rop.Result[int] {
		panic(errors.New("db connection refused"))
	})

	got := h(context.Background())

	require.True(t, got.IsFailure())
	assert.Equal(t, "db connection refused", got.Err())
}

func TestHandler_StringAndArbitraryPanics(t *testing.T) {
	t.Parallel()

	fromString := Handler(func(context.Context) rop.Result[int] { panic("raw message") })
	assert.Equal(t, "raw message", fromString(context.Background()).Err())

	fromValue := Handler(func(context.Context) rop.Result[int] { panic(42) })
	assert.Equal(t, "42", fromValue(context.Background()).Err())

	fromBlank := Handler(func(context.Context) rop.Result[int] { panic("  ") })
	assert.Equal(t, "unknown fault", fromBlank(context.Background()).Err())
}

func TestUnitHandler(t *testing.T) {
	t.Parallel()

	ok := UnitHandler(func(context.Context) rop.Unit { return rop.Ok() })
	assert.True(t, ok(context.Background()).IsSuccess())

	panicking := UnitHandler(func(context.Context) rop.Unit { panic("pipeline fault") })
	assert.Equal(t, "pipeline fault", panicking(context.Background()).Err())
}

func TestHandler_NilPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { Handler[int](nil) })
	assert.Panics(t, func() { UnitHandler(nil) })
}
