package errors

import "net/http"

// ErrorCode is the stable, machine-readable identifier returned to API clients.
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthInvalidCredentials ErrorCode = "AUTH_001"
	AuthMissingToken       ErrorCode = "AUTH_002"
	AuthExpiredToken       ErrorCode = "AUTH_003"
	AuthInvalidToken       ErrorCode = "AUTH_004"
	AuthNotAuthenticated   ErrorCode = "AUTH_005"
	AuthAccountLocked      ErrorCode = "AUTH_006"
	AuthEmailTaken         ErrorCode = "AUTH_007"
	AuthWeakPassword       ErrorCode = "AUTH_008"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
	ValidationInvalidKind   ErrorCode = "VALIDATION_006"
)

// Record error codes (RECORD_*)
const (
	RecordNotFound      ErrorCode = "RECORD_001"
	RecordInvalidAmount ErrorCode = "RECORD_002"
	RecordInvalidID     ErrorCode = "RECORD_003"
	RecordEmptyUpdate   ErrorCode = "RECORD_004"
	RecordFetchFailed   ErrorCode = "RECORD_005"
)

// Report error codes (REPORT_*)
const (
	ReportInvalidMonth ErrorCode = "REPORT_001"
	ReportInvalidRange ErrorCode = "REPORT_002"
	ReportLoadFailed   ErrorCode = "REPORT_003"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_004"
	SystemRequestCancelled   ErrorCode = "SYSTEM_005"
	SystemRouteNotFound      ErrorCode = "SYSTEM_006"
	SystemMethodNotAllowed   ErrorCode = "SYSTEM_007"
)

type codeInfo struct {
	message string
	status  int
}

var catalogue = map[ErrorCode]codeInfo{
	AuthInvalidCredentials: {"Invalid email or password", http.StatusUnauthorized},
	AuthMissingToken:       {"Authorization token is required", http.StatusUnauthorized},
	AuthExpiredToken:       {"Authorization token has expired", http.StatusUnauthorized},
	AuthInvalidToken:       {"Authorization token is invalid", http.StatusUnauthorized},
	AuthNotAuthenticated:   {"User not authenticated", http.StatusUnauthorized},
	AuthAccountLocked:      {"Too many failed sign-in attempts, try again later", http.StatusForbidden},
	AuthEmailTaken:         {"An account with this email already exists", http.StatusConflict},
	AuthWeakPassword:       {"Password does not meet the strength requirements", http.StatusBadRequest},

	ValidationGeneral:       {"Validation failed", http.StatusBadRequest},
	ValidationRequiredField: {"Required field is missing", http.StatusBadRequest},
	ValidationInvalidFormat: {"Invalid format", http.StatusBadRequest},
	ValidationOutOfRange:    {"Value is out of range", http.StatusBadRequest},
	ValidationInvalidDate:   {"Invalid date, expected YYYY-MM-DD", http.StatusBadRequest},
	ValidationInvalidKind:   {"Kind must be expense or earning", http.StatusBadRequest},

	RecordNotFound:      {"Record not found", http.StatusNotFound},
	RecordInvalidAmount: {"Amount must be a non-negative number", http.StatusBadRequest},
	RecordInvalidID:     {"Invalid record ID", http.StatusBadRequest},
	RecordEmptyUpdate:   {"Update contains no fields", http.StatusBadRequest},
	RecordFetchFailed:   {"Failed to load records", http.StatusBadGateway},

	ReportInvalidMonth: {"Invalid month, expected YYYY-MM", http.StatusBadRequest},
	ReportInvalidRange: {"Start date must not be after end date", http.StatusBadRequest},
	ReportLoadFailed:   {"Failed to load report", http.StatusBadGateway},

	SystemInternalError:      {"An internal error occurred", http.StatusInternalServerError},
	SystemDatabaseError:      {"A database error occurred", http.StatusInternalServerError},
	SystemServiceUnavailable: {"Service temporarily unavailable", http.StatusServiceUnavailable},
	SystemRateLimitExceeded:  {"Too many requests", http.StatusTooManyRequests},
	SystemRequestCancelled:   {"Request was cancelled", http.StatusServiceUnavailable},
	SystemRouteNotFound:      {"Resource not found", http.StatusNotFound},
	SystemMethodNotAllowed:   {"Method not allowed", http.StatusMethodNotAllowed},
}

// GetErrorMessage returns the default message for a code, or a generic one for unknown codes.
func GetErrorMessage(code ErrorCode) string {
	if info, ok := catalogue[code]; ok {
		return info.message
	}
	return "An error occurred"
}

// GetHTTPStatus returns the status a code is served with. Unknown codes are server errors.
func GetHTTPStatus(code ErrorCode) int {
	if info, ok := catalogue[code]; ok {
		return info.status
	}
	return http.StatusInternalServerError
}

func IsValidErrorCode(code ErrorCode) bool {
	_, ok := catalogue[code]
	return ok
}
