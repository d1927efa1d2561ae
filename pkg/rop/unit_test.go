package rop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOk(t *testing.T) {
	t.Parallel()

	u := Ok()

	assert.True(t, u.IsSuccess())
	assert.False(t, u.IsFailure())
	assert.Equal(t, "", u.Err())
	assert.NotPanics(t, u.MustSucceed)
}

func TestErr(t *testing.T) {
	t.Parallel()

	u := Err("nope")

	assert.True(t, u.IsFailure())
	assert.Equal(t, "nope", u.Err())
	require.PanicsWithError(t, "nope", u.MustSucceed)
}

func TestErr_BlankMessagePanics(t *testing.T) {
	t.Parallel()

	for _, msg := range []string{"", "   ", "\n"} {
		require.PanicsWithError(t, "rop: invalid argument: error message must not be blank", func() {
			Err(msg)
		})
	}
}

func TestUnit_Identity(t *testing.T) {
	t.Parallel()

	if Ok().Id() == Ok().Id() {
		t.Fatalf("two outcomes should not share an id")
	}
}
