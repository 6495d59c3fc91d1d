package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MissingDescription is shown in place of an absent description.
const MissingDescription = "—"

var ErrInvalidMonth = errors.New("month must be between 1 and 12")

// Transaction is a record tagged with the collection it came from.
type Transaction struct {
	ID          uuid.UUID       `json:"id"`
	Kind        Kind            `json:"type"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Description *string         `json:"description"`
}

func NewTransaction(kind Kind, r Record) Transaction {
	return Transaction{
		ID:          r.ID,
		Kind:        kind,
		Category:    r.Category,
		Amount:      r.Amount,
		Date:        r.Date,
		Description: r.Description,
	}
}

// DisplayDescription keeps an empty description as-is; only a missing one is replaced.
func (t Transaction) DisplayDescription() string {
	if t.Description == nil {
		return MissingDescription
	}
	return *t.Description
}

// IsWellFormed reports whether the transaction can take part in a sum.
func (t Transaction) IsWellFormed() bool {
	return t.Kind.IsValid() && !t.Amount.IsNegative() && !t.Date.IsZero()
}

// SignedAmount is positive for earnings and negative for expenses.
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.Kind == KindExpense {
		return t.Amount.Neg()
	}
	return t.Amount
}

// MonthRange returns the first and last calendar day of a month in UTC.
func MonthRange(year int, month time.Month) (time.Time, time.Time, error) {
	if month < time.January || month > time.December {
		return time.Time{}, time.Time{}, ErrInvalidMonth
	}
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first, last, nil
}

// InMonth reports whether the date falls inside the given month, ignoring time of day.
func InMonth(date time.Time, year int, month time.Month) bool {
	y, m, _ := date.Date()
	return y == year && m == month
}
