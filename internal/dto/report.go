package dto

import (
	"finance-tracker/internal/models"

	"github.com/shopspring/decimal"
)

// TransactionResponse is one row of a unified transaction list
type TransactionResponse struct {
	ID          string          `json:"id"`
	Kind        models.Kind     `json:"type"`
	Category    string          `json:"category"`
	Label       string          `json:"label"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
}

// MonthlyReportQuery selects a month as YYYY-MM plus the list filters of the monthly view
type MonthlyReportQuery struct {
	Month  string `query:"month" validate:"omitempty,datetime=2006-01"`
	Type   string `query:"type" validate:"omitempty,oneof=all expense earning"`
	Search string `query:"search" validate:"max=100"`
}

// CategorySummaryQuery selects the month and collection of a category chart
type CategorySummaryQuery struct {
	Year  int    `query:"year" validate:"omitempty,min=1900,max=9999"`
	Month int    `query:"month" validate:"omitempty,min=1,max=12"`
	Kind  string `query:"kind" validate:"omitempty,oneof=expense earning"`
}

// TransactionRangeQuery selects an inclusive date range for the unified list
type TransactionRangeQuery struct {
	StartDate string `query:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `query:"end_date" validate:"required,datetime=2006-01-02"`
}

// MonthlyReportResponse mirrors models.MonthlyReport with display-ready transactions
type MonthlyReportResponse struct {
	Year         int                          `json:"year"`
	Month        int                          `json:"month"`
	Currency     string                       `json:"currency"`
	StartDate    string                       `json:"startDate"`
	EndDate      string                       `json:"endDate"`
	Totals       models.Totals                `json:"totals"`
	Categories   []models.CategorySummaryItem `json:"categories"`
	Weeks        []models.WeekBucket          `json:"weeks"`
	Transactions []TransactionResponse        `json:"transactions"`
}

type DashboardResponse struct {
	Year       int                          `json:"year"`
	Month      int                          `json:"month"`
	Currency   string                       `json:"currency"`
	Totals     models.Totals                `json:"totals"`
	Recent     []TransactionResponse        `json:"recent"`
	Categories []models.CategorySummaryItem `json:"categories"`
}

// MessageResponse represents a simple message response
type MessageResponse struct {
	Message string `json:"message"`
}

// NewTransactionResponses renders transactions with labels resolved by labelFor.
func NewTransactionResponses(txs []models.Transaction, labelFor func(code string, kind models.Kind) string) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(txs))
	for _, tx := range txs {
		out = append(out, TransactionResponse{
			ID:          tx.ID.String(),
			Kind:        tx.Kind,
			Category:    tx.Category,
			Label:       labelFor(tx.Category, tx.Kind),
			Amount:      tx.Amount,
			Date:        tx.Date.Format(DateLayout),
			Description: tx.DisplayDescription(),
		})
	}
	return out
}

// SampleDataResponse summarises a development seeding run
type SampleDataResponse struct {
	Months   int    `json:"months"`
	From     string `json:"from"`
	To       string `json:"to"`
	Expenses int    `json:"expenses"`
	Earnings int    `json:"earnings"`
}
