package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const WeeksPerMonth = 5

// CategorySummaryItem is one slice of a category chart.
type CategorySummaryItem struct {
	Code  string          `json:"category"`
	Label string          `json:"label"`
	Value decimal.Decimal `json:"value"`
	Color string          `json:"color"`
}

// WeekBucket accumulates a fixed day-of-month range.
type WeekBucket struct {
	Name     string          `json:"name"`
	Days     string          `json:"days"`
	Earnings decimal.Decimal `json:"earnings"`
	Expenses decimal.Decimal `json:"expenses"`
}

type Totals struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Balance decimal.Decimal `json:"balance"`
}

// TransactionFilter narrows a transaction list the way the monthly view does.
type TransactionFilter struct {
	Type   string
	Search string
}

const FilterTypeAll = "all"

type MonthlyReport struct {
	Year         int                   `json:"year"`
	Month        time.Month            `json:"month"`
	StartDate    time.Time             `json:"start_date"`
	EndDate      time.Time             `json:"end_date"`
	Totals       Totals                `json:"totals"`
	Categories   []CategorySummaryItem `json:"categories"`
	Weeks        []WeekBucket          `json:"weeks"`
	Transactions []Transaction         `json:"transactions"`
}

type Dashboard struct {
	Year       int                   `json:"year"`
	Month      time.Month            `json:"month"`
	Totals     Totals                `json:"totals"`
	Recent     []Transaction         `json:"recent"`
	Categories []CategorySummaryItem `json:"categories"`
}

func ZeroTotals() Totals {
	return Totals{Income: decimal.Zero, Expense: decimal.Zero, Balance: decimal.Zero}
}
