package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const MaxCategoryLength = 50

var (
	ErrRecordUserRequired = errors.New("record user ID is required")
	ErrNegativeAmount     = errors.New("amount must not be negative")
	ErrRecordDateRequired = errors.New("record date is required")
	ErrCategoryTooLong    = errors.New("category code too long")
)

// Record is a row of either the expenses or the earnings table. The table is chosen by
// the repository, so the struct carries no kind of its own.
type Record struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null" json:"user_id"`
	Category    string          `gorm:"type:varchar(50);not null" json:"category"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Date        time.Time       `gorm:"type:date;not null" json:"date"`
	Description *string         `gorm:"type:text" json:"description"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`
}

// RecordUpdate carries a partial update; nil fields are left untouched. ClearDescription
// writes NULL and wins over Description.
type RecordUpdate struct {
	Category         *string
	Amount           *decimal.Decimal
	Date             *time.Time
	Description      *string
	ClearDescription bool
}

func (r *Record) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}

	r.Date = NormalizeDate(r.Date)

	now := time.Now().UTC()
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	if r.UpdatedAt.IsZero() {
		r.UpdatedAt = now
	}

	return r.Validate()
}

func (r *Record) Validate() error {
	if r.UserID == uuid.Nil {
		return ErrRecordUserRequired
	}

	if r.Amount.IsNegative() {
		return ErrNegativeAmount
	}

	if r.Date.IsZero() {
		return ErrRecordDateRequired
	}

	if len(r.Category) > MaxCategoryLength {
		return ErrCategoryTooLong
	}

	return nil
}

// IsEmpty reports whether the update would change nothing.
func (u RecordUpdate) IsEmpty() bool {
	return u.Category == nil && u.Amount == nil && u.Date == nil && u.Description == nil && !u.ClearDescription
}

// Columns converts the update into a column map for a gorm Updates call.
func (u RecordUpdate) Columns() map[string]interface{} {
	cols := make(map[string]interface{})
	if u.Category != nil {
		cols["category"] = *u.Category
	}
	if u.Amount != nil {
		cols["amount"] = *u.Amount
	}
	if u.Date != nil {
		cols["date"] = NormalizeDate(*u.Date)
	}
	switch {
	case u.ClearDescription:
		cols["description"] = nil
	case u.Description != nil:
		cols["description"] = *u.Description
	}
	return cols
}

// Validate checks the fields that are present.
func (u RecordUpdate) Validate() error {
	if u.Amount != nil && u.Amount.IsNegative() {
		return ErrNegativeAmount
	}
	if u.Date != nil && u.Date.IsZero() {
		return ErrRecordDateRequired
	}
	if u.Category != nil && len(*u.Category) > MaxCategoryLength {
		return ErrCategoryTooLong
	}
	return nil
}

// NormalizeDate drops the time of day, keeping the calendar date in UTC.
func NormalizeDate(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
