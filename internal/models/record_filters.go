package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	SortByDate      = "date"
	SortByAmount    = "amount"
	SortByCategory  = "category"
	SortByCreatedAt = "created_at"
)

// RecordFilters scopes a read to one user. The date range is inclusive and only applied
// when both bounds are set. With SortBy empty, records come back newest date first and
// Ascending is ignored. With SortBy set, a nil Ascending sorts ascending. A Limit of zero
// or less means no cap.
type RecordFilters struct {
	UserID    uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
	SortBy    string
	Ascending *bool
	Limit     int
}

func IsValidSortField(field string) bool {
	switch field {
	case SortByDate, SortByAmount, SortByCategory, SortByCreatedAt:
		return true
	default:
		return false
	}
}

// OrderClause is the ORDER BY for these filters. SortBy must already be validated.
func (f RecordFilters) OrderClause() string {
	if f.SortBy == "" {
		return SortByDate + " DESC"
	}
	if f.Ascending != nil && !*f.Ascending {
		return f.SortBy + " DESC"
	}
	return f.SortBy + " ASC"
}

// HasDateRange reports whether both bounds are present.
func (f RecordFilters) HasDateRange() bool {
	return f.StartDate != nil && f.EndDate != nil
}
