package handlers

import (
	"context"
	stderrors "errors"
	"log/slog"
	"net/http"

	"finance-tracker/internal/errors"
	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"
	"finance-tracker/internal/services"
	"finance-tracker/internal/validation"

	"github.com/labstack/echo/v4"
)

// Handlers answer through SendError for anything the client can fix and through
// SendSystemError for everything else. Never hand raw errors to the client.

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// SuccessResponse is the envelope of every successful API response
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	errorResponse := errors.NewErrorResponse(code, getTraceID(c), opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError logs err and answers with a generic 500
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, internal := errors.WrapSystemError(err, traceID)
	slog.ErrorContext(c.Request().Context(), "request failed",
		"trace_id", traceID,
		"path", c.Path(),
		"error", internal)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}

// sendValidationError renders validator failures as VALIDATION_001 with one detail per field
func sendValidationError(c echo.Context, err error) error {
	fieldErrors := validation.FieldErrors(err)
	if fieldErrors == nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}
	errorResponse := errors.NewValidationError(fieldErrors, getTraceID(c))
	return c.JSON(http.StatusBadRequest, errorResponse)
}

// sendServiceError maps errors coming out of the service layer to API error codes
func sendServiceError(c echo.Context, err error) error {
	var fetchErr *services.FetchError

	switch {
	case stderrors.Is(err, services.ErrNotAuthenticated):
		return SendError(c, errors.AuthNotAuthenticated)
	case stderrors.Is(err, repositories.ErrRecordNotFound):
		return SendError(c, errors.RecordNotFound)
	case stderrors.Is(err, repositories.ErrEmptyUpdate):
		return SendError(c, errors.RecordEmptyUpdate)
	case stderrors.Is(err, repositories.ErrInvalidSortField):
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	case stderrors.Is(err, models.ErrNegativeAmount):
		return SendError(c, errors.RecordInvalidAmount)
	case stderrors.Is(err, models.ErrInvalidMonth):
		return SendError(c, errors.ReportInvalidMonth, errors.WithDetails(err.Error()))
	case stderrors.Is(err, services.ErrInvalidRange):
		return SendError(c, errors.ReportInvalidRange)
	case stderrors.Is(err, models.ErrInvalidKind):
		return SendError(c, errors.ValidationInvalidKind)
	case stderrors.Is(err, context.Canceled), stderrors.Is(err, context.DeadlineExceeded):
		return SendError(c, errors.SystemRequestCancelled)
	case stderrors.As(err, &fetchErr):
		slog.WarnContext(c.Request().Context(), "record store failure",
			"trace_id", getTraceID(c),
			"operation", fetchErr.Op,
			"kind", fetchErr.Kind,
			"error", fetchErr.Err)
		return SendError(c, errors.RecordFetchFailed)
	default:
		return SendSystemError(c, err)
	}
}
