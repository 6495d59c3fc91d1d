package handlers

import (
	"fmt"
	"time"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/models"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Context keys written by the auth middleware.
const (
	UserIDContextKey = "user_id"
	ClaimsContextKey = "claims"
)

// ErrUnauthorized is returned when user context is invalid
var ErrUnauthorized = fmt.Errorf("unauthorized")

// getUserIDFromContext returns ErrUnauthorized if the user ID is missing or invalid
func getUserIDFromContext(c echo.Context) (uuid.UUID, error) {
	userID, ok := c.Get(UserIDContextKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, ErrUnauthorized
	}
	return userID, nil
}

func getClaimsFromContext(c echo.Context) (*models.CustomClaims, error) {
	claims, ok := c.Get(ClaimsContextKey).(*models.CustomClaims)
	if !ok || claims == nil {
		return nil, ErrUnauthorized
	}
	return claims, nil
}

func getIntParam(c echo.Context, name string, defaultValue int) int {
	param := c.QueryParam(name)
	if param == "" {
		return defaultValue
	}

	var value int
	if _, err := fmt.Sscanf(param, "%d", &value); err != nil {
		return defaultValue
	}

	return value
}

// parseDateRange parses an optional inclusive range. Both bounds or neither must be given.
func parseDateRange(startRaw, endRaw string) (*time.Time, *time.Time, error) {
	if startRaw == "" && endRaw == "" {
		return nil, nil, nil
	}
	if startRaw == "" || endRaw == "" {
		return nil, nil, fmt.Errorf("start_date and end_date must be given together")
	}

	start, err := time.Parse(dto.DateLayout, startRaw)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid start_date: %w", err)
	}
	end, err := time.Parse(dto.DateLayout, endRaw)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid end_date: %w", err)
	}
	return &start, &end, nil
}
