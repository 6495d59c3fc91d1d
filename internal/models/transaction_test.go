package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransaction_CopiesRecordAndTagsKind(t *testing.T) {
	desc := "lunch"
	rec := Record{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		Category:    CategoryFoodDining,
		Amount:      decimal.RequireFromString("12.50"),
		Date:        time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC),
		Description: &desc,
	}

	tx := NewTransaction(KindExpense, rec)

	assert.Equal(t, rec.ID, tx.ID)
	assert.Equal(t, KindExpense, tx.Kind)
	assert.Equal(t, CategoryFoodDining, tx.Category)
	assert.True(t, rec.Amount.Equal(tx.Amount))
	assert.Equal(t, rec.Date, tx.Date)
	assert.Equal(t, "lunch", tx.DisplayDescription())
}

func TestTransaction_DisplayDescription(t *testing.T) {
	empty := ""
	tests := []struct {
		name        string
		description *string
		want        string
	}{
		{"missing description", nil, MissingDescription},
		{"empty description stays empty", &empty, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := Transaction{Description: tt.description}
			assert.Equal(t, tt.want, tx.DisplayDescription())
		})
	}
}

func TestTransaction_IsWellFormed(t *testing.T) {
	date := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		tx   Transaction
		want bool
	}{
		{"valid expense", Transaction{Kind: KindExpense, Amount: decimal.NewFromInt(10), Date: date}, true},
		{"zero amount is allowed", Transaction{Kind: KindEarning, Amount: decimal.Zero, Date: date}, true},
		{"negative amount", Transaction{Kind: KindExpense, Amount: decimal.NewFromInt(-1), Date: date}, false},
		{"missing date", Transaction{Kind: KindExpense, Amount: decimal.NewFromInt(1)}, false},
		{"unknown kind", Transaction{Kind: Kind("transfer"), Amount: decimal.NewFromInt(1), Date: date}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.tx.IsWellFormed())
		})
	}
}

func TestTransaction_SignedAmount(t *testing.T) {
	expense := Transaction{Kind: KindExpense, Amount: decimal.NewFromInt(40)}
	earning := Transaction{Kind: KindEarning, Amount: decimal.NewFromInt(40)}

	assert.True(t, expense.SignedAmount().Equal(decimal.NewFromInt(-40)))
	assert.True(t, earning.SignedAmount().Equal(decimal.NewFromInt(40)))
}

func TestMonthRange(t *testing.T) {
	tests := []struct {
		name      string
		year      int
		month     time.Month
		wantFirst string
		wantLast  string
	}{
		{"thirty-one day month", 2025, time.March, "2025-03-01", "2025-03-31"},
		{"thirty day month", 2025, time.April, "2025-04-01", "2025-04-30"},
		{"february in a leap year", 2024, time.February, "2024-02-01", "2024-02-29"},
		{"february in a common year", 2023, time.February, "2023-02-01", "2023-02-28"},
		{"century non-leap year", 1900, time.February, "1900-02-01", "1900-02-28"},
		{"december rolls the year", 2025, time.December, "2025-12-01", "2025-12-31"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, last, err := MonthRange(tt.year, tt.month)
			require.NoError(t, err)
			assert.Equal(t, tt.wantFirst, first.Format("2006-01-02"))
			assert.Equal(t, tt.wantLast, last.Format("2006-01-02"))
		})
	}
}

func TestMonthRange_InvalidMonth(t *testing.T) {
	for _, month := range []time.Month{0, 13} {
		_, _, err := MonthRange(2025, month)
		assert.ErrorIs(t, err, ErrInvalidMonth)
	}
}

func TestInMonth(t *testing.T) {
	assert.True(t, InMonth(time.Date(2025, 3, 31, 23, 0, 0, 0, time.UTC), 2025, time.March))
	assert.False(t, InMonth(time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), 2025, time.March))
	assert.False(t, InMonth(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), 2025, time.March))
}
