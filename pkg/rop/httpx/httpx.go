// Package httpx renders outcomes as HTTP responses, branching on the
// error-code convention to pick the status.
package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/ib-77/railway/pkg/rop"
	"github.com/ib-77/railway/pkg/rop/code"
)

// Mapper resolves a parsed error code (possibly empty) to an HTTP status.
type Mapper func(code string) int

// DefaultMapper covers the common code vocabulary; unknown and empty
// codes map to 500.
func DefaultMapper(c string) int {
	switch c {
	case "BAD_REQUEST", "VALIDATION_FAILED":
		return http.StatusBadRequest
	case "UNAUTHORIZED":
		return http.StatusUnauthorized
	case "FORBIDDEN":
		return http.StatusForbidden
	case "NOT_FOUND":
		return http.StatusNotFound
	case "CONFLICT":
		return http.StatusConflict
	case "TIMEOUT":
		return http.StatusGatewayTimeout
	case "UNAVAILABLE":
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// errorBody conforms to the conventional {"code","message"} error shape.
type errorBody struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

// Writer turns outcomes into HTTP responses using the configured Mapper.
// No redaction is applied; whatever is in the error text is exposed
// as-is.
type Writer struct {
	Mapper Mapper
}

// NewWriter builds a Writer; a nil mapper falls back to DefaultMapper.
func NewWriter(m Mapper) Writer {
	if m == nil {
		m = DefaultMapper
	}
	return Writer{Mapper: m}
}

// WriteUnit writes 204 on success, or the mapped error response on
// failure.
func (w Writer) WriteUnit(rw http.ResponseWriter, u rop.Unit) {
	if u.IsSuccess() {
		rw.WriteHeader(http.StatusNoContent)
		return
	}
	w.writeFailure(rw, u.Err())
}

func (w Writer) writeFailure(rw http.ResponseWriter, errText string) {
	c, msg := code.Parse(errText)

	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(w.Mapper(c))

	// errorBody holds two plain strings; marshaling cannot fail.
	b, _ := json.Marshal(errorBody{Code: c, Message: msg})
	_, _ = rw.Write(b)
}

// WriteJSON writes the success payload as a 200 JSON body, or the mapped
// error response on failure. The payload is encoded before any header is
// written, so an unencodable payload turns into an error response rather
// than a 200 with an empty body.
func WriteJSON[T any](w Writer, rw http.ResponseWriter, r rop.Result[T]) {
	if r.IsFailure() {
		w.writeFailure(rw, r.Err())
		return
	}

	b, err := json.Marshal(r.Value())
	if err != nil {
		w.writeFailure(rw, code.Format("INTERNAL", "response payload is not encodable"))
		return
	}

	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(http.StatusOK)
	_, _ = rw.Write(b)
}
