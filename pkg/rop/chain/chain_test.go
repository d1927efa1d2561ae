package chain

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/railway/pkg/rop"
)

func TestFromValue(t *testing.T) {
	t.Parallel()

	r := FromValue(7).Result()

	require.True(t, r.IsSuccess())
	assert.Equal(t, 7, r.Value())
}

func TestChain_HappyPath(t *testing.T) {
	t.Parallel()

	var seen []string
	r := FromValue(" User ").
		Map(strings.TrimSpace).
		Validate(func(s string) bool { return s != "" }, "name is required").
		Tee(func(s string) { seen = append(seen, s) }).
		Then(func(s string) rop.Result[string] { return rop.Success(strings.ToLower(s)) }).
		Result()

	require.True(t, r.IsSuccess())
	assert.Equal(t, "user", r.Value())
	assert.Equal(t, []string{"User"}, seen)
}

func TestChain_ShortCircuit(t *testing.T) {
	t.Parallel()

	called := false
	r := Start(rop.Fail[int]("broken")).
		Map(func(v int) int { called = true; return v }).
		Validate(func(int) bool { called = true; return true }, "unused").
		Tee(func(int) { called = true }).
		Result()

	assert.Equal(t, "broken", r.Err())
	assert.False(t, called)
}

func TestChain_TeeErr(t *testing.T) {
	t.Parallel()

	var logged string
	Start(rop.Fail[int]("oops")).
		TeeErr(func(err string) { logged = err })

	assert.Equal(t, "oops", logged)
}

func TestThen_TypeChange(t *testing.T) {
	t.Parallel()

	c := Then(FromValue(5), func(v int) rop.Result[string] {
		return rop.Success(strconv.Itoa(v))
	})

	assert.Equal(t, "5", c.Result().Value())
}

func TestMap_TypeChange(t *testing.T) {
	t.Parallel()

	c := Map(FromValue(5), strconv.Itoa)

	assert.Equal(t, "5", c.Result().Value())
}

func TestTry_FaultBecomesFixedText(t *testing.T) {
	t.Parallel()

	c := Try(FromValue("x"), func(string) (int, error) {
		return 0, errors.New("parse detail")
	}, "not a number")

	assert.Equal(t, "not a number", c.Result().Err())
}

func TestTry_Success(t *testing.T) {
	t.Parallel()

	c := Try(FromValue("42"), func(s string) (int, error) {
		return strconv.Atoi(s)
	}, "not a number")

	assert.Equal(t, 42, c.Result().Value())
}

func TestFinally(t *testing.T) {
	t.Parallel()

	type creds struct{ email, password string }

	got := Finally(
		Then(
			Start(rop.Success(creds{"a@b.com", "pw123456"})).
				Validate(func(creds) bool { return true }, "unused"),
			func(c creds) rop.Result[string] { return rop.Success(c.email) }),
		func(v string) string { return "ok:" + v },
		func(err string) string { return "err:" + err })

	assert.Equal(t, "ok:a@b.com", got)
}
