package middleware

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"finance-tracker/internal/errors"
	"finance-tracker/internal/validation"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var apiErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "api_errors_total",
		Help: "Total number of API errors by code, endpoint, and status",
	},
	[]string{"code", "endpoint", "status"},
)

// CustomHTTPErrorHandler is the echo error handler. Anything a handler returns instead of
// writing its own error body ends up here.
func CustomHTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	traceID := GetTraceID(c)
	if traceID == "" {
		traceID = "unknown"
	}

	response, status := resolveError(err, traceID)

	level := slog.LevelWarn
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	slog.Log(c.Request().Context(), level, "Request failed",
		"trace_id", traceID,
		"error_code", response.Error.Code,
		"status", status,
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
		"error", err.Error(),
	)

	apiErrorsTotal.WithLabelValues(response.Error.Code, c.Path(), strconv.Itoa(status)).Inc()

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = c.JSON(status, response)
	}
	if err != nil {
		slog.Error("Failed to send error response", "trace_id", traceID, "error", err)
	}
}

// resolveError picks the response body and status for err. Echo errors keep their status,
// validator errors become VALIDATION_001 and everything else is hidden as SYSTEM_001.
func resolveError(err error, traceID string) (*errors.ErrorResponse, int) {
	if fieldErrors := validation.FieldErrors(err); fieldErrors != nil {
		return errors.NewValidationError(fieldErrors, traceID), http.StatusBadRequest
	}

	var echoErr *echo.HTTPError
	if stderrors.As(err, &echoErr) {
		code := mapHTTPStatusToErrorCode(echoErr.Code)
		var opts []errors.ErrorOption
		if msg, ok := echoErr.Message.(string); ok && msg != http.StatusText(echoErr.Code) {
			opts = append(opts, errors.WithMessage(msg))
		} else if !ok && echoErr.Message != nil {
			opts = append(opts, errors.WithMessage(fmt.Sprintf("%v", echoErr.Message)))
		}
		return errors.NewErrorResponse(code, traceID, opts...), echoErr.Code
	}

	response, _ := errors.WrapSystemError(err, traceID)
	return response, response.GetHTTPStatus()
}

func mapHTTPStatusToErrorCode(status int) errors.ErrorCode {
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity, http.StatusRequestEntityTooLarge:
		return errors.ValidationGeneral
	case http.StatusUnauthorized:
		return errors.AuthMissingToken
	case http.StatusForbidden:
		return errors.AuthInvalidToken
	case http.StatusNotFound:
		return errors.SystemRouteNotFound
	case http.StatusMethodNotAllowed:
		return errors.SystemMethodNotAllowed
	case http.StatusTooManyRequests:
		return errors.SystemRateLimitExceeded
	case http.StatusServiceUnavailable:
		return errors.SystemServiceUnavailable
	default:
		return errors.SystemInternalError
	}
}
