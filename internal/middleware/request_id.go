package middleware

import (
	"regexp"

	"finance-tracker/internal/handlers"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// TraceIDHeader is echoed back on every response
	TraceIDHeader = "X-Trace-ID"
	// RequestIDHeader is accepted from proxies that already tag requests
	RequestIDHeader = echo.HeaderXRequestID
	// TraceIDContextKey is shared with handlers so error bodies carry the same id
	TraceIDContextKey = handlers.TraceIDContextKey
)

var validTraceID = regexp.MustCompile(`^[A-Za-z0-9._:-]{1,64}$`)

// RequestID tags each request with a trace ID. An incoming X-Trace-ID or X-Request-ID
// is reused when it looks sane, otherwise a new UUID is generated.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			traceID := incomingTraceID(c)
			if traceID == "" {
				traceID = uuid.New().String()
			}

			c.Set(TraceIDContextKey, traceID)
			c.Response().Header().Set(TraceIDHeader, traceID)
			return next(c)
		}
	}
}

func incomingTraceID(c echo.Context) string {
	for _, header := range []string{TraceIDHeader, RequestIDHeader} {
		if v := c.Request().Header.Get(header); validTraceID.MatchString(v) {
			return v
		}
	}
	return ""
}

// GetTraceID returns the request's trace ID or an empty string.
func GetTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}
