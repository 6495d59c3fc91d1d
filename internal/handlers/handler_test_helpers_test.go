package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

// newContext builds a request context, authenticated as userID unless it is uuid.Nil
func newContext(e *echo.Echo, method, target string, body interface{}, userID uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	var payload []byte
	if body != nil {
		payload, _ = json.Marshal(body)
	}

	req := httptest.NewRequest(method, target, bytes.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(TraceIDContextKey, "trace-test")
	if userID != uuid.Nil {
		c.Set(UserIDContextKey, userID)
	}
	return c, rec
}

func decodeError(rec *httptest.ResponseRecorder) ErrorResponse {
	var response ErrorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &response)
	return response
}
