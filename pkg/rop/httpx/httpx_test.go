package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ib-77/railway/pkg/rop"
	"github.com/ib-77/railway/pkg/rop/code"
)

func TestWriteUnit_Success(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	NewWriter(nil).WriteUnit(rec, rop.Ok())

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestWriteUnit_FailureWithCode(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	NewWriter(nil).WriteUnit(rec, rop.Err(code.Format("NOT_FOUND", "user does not exist")))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"code":"NOT_FOUND","message":"user does not exist"}`, rec.Body.String())
}

func TestWriteUnit_PlainTextFailureIs500(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	NewWriter(nil).WriteUnit(rec, rop.Err("something odd"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"something odd"}`, rec.Body.String())
}

func TestWriteJSON_Success(t *testing.T) {
	t.Parallel()

	type user struct {
		Name string `json:"name"`
	}

	rec := httptest.NewRecorder()
	WriteJSON(NewWriter(nil), rec, rop.Success(user{Name: "ada"}))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"name":"ada"}`, rec.Body.String())
}

func TestWriteJSON_Failure(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	WriteJSON(NewWriter(nil), rec, rop.Fail[int](code.Format("VALIDATION_FAILED", "age must be positive")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"code":"VALIDATION_FAILED","message":"age must be positive"}`, rec.Body.String())
}

func TestWriteJSON_UnencodablePayloadIsErrorResponse(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	WriteJSON(NewWriter(nil), rec, rop.Success(make(chan int)))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"code":"INTERNAL","message":"response payload is not encodable"}`, rec.Body.String())
}

func TestCustomMapper(t *testing.T) {
	t.Parallel()

	teapot := func(string) int { return http.StatusTeapot }

	rec := httptest.NewRecorder()
	NewWriter(teapot).WriteUnit(rec, rop.Err("anything"))

	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestDefaultMapper(t *testing.T) {
	t.Parallel()

	cases := map[string]int{
		"BAD_REQUEST":       http.StatusBadRequest,
		"VALIDATION_FAILED": http.StatusBadRequest,
		"UNAUTHORIZED":      http.StatusUnauthorized,
		"FORBIDDEN":         http.StatusForbidden,
		"NOT_FOUND":         http.StatusNotFound,
		"CONFLICT":          http.StatusConflict,
		"TIMEOUT":           http.StatusGatewayTimeout,
		"UNAVAILABLE":       http.StatusServiceUnavailable,
		"":                  http.StatusInternalServerError,
		"SOMETHING_ELSE":    http.StatusInternalServerError,
	}

	for c, want := range cases {
		assert.Equal(t, want, DefaultMapper(c), "code %q", c)
	}
}
