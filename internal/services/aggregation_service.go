package services

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"finance-tracker/internal/models"

	"github.com/shopspring/decimal"
)

var weekDayRanges = [models.WeeksPerMonth]string{"1-7", "8-14", "15-21", "22-28", "29+"}

type aggregationService struct {
	categories CategoryServiceInterface
	metrics    MetricsRecorderInterface
	logger     *slog.Logger
}

// NewAggregationService creates the summary engine. Malformed transactions are skipped,
// logged at warn level and counted; they never fail an aggregation.
func NewAggregationService(categories CategoryServiceInterface, metrics MetricsRecorderInterface, logger *slog.Logger) AggregationServiceInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &aggregationService{
		categories: categories,
		metrics:    metrics,
		logger:     logger,
	}
}

// Totals sums every well-formed transaction regardless of date.
func (s *aggregationService) Totals(txs []models.Transaction) models.Totals {
	totals := models.ZeroTotals()

	for _, tx := range s.wellFormed(txs) {
		switch tx.Kind {
		case models.KindEarning:
			totals.Income = totals.Income.Add(tx.Amount)
		case models.KindExpense:
			totals.Expense = totals.Expense.Add(tx.Amount)
		}
	}

	totals.Balance = totals.Income.Sub(totals.Expense)
	return totals
}

// CategorySummary groups the month's transactions of one kind by category code. Items are
// ordered by value, largest first, with ties broken by label. Colours follow output order.
func (s *aggregationService) CategorySummary(txs []models.Transaction, year int, month time.Month, kind models.Kind) []models.CategorySummaryItem {
	if _, _, err := models.MonthRange(year, month); err != nil {
		return []models.CategorySummaryItem{}
	}

	sums := make(map[string]decimal.Decimal)
	var order []string

	for _, tx := range s.wellFormed(txs) {
		if tx.Kind != kind || !models.InMonth(tx.Date, year, month) {
			continue
		}
		current, seen := sums[tx.Category]
		if !seen {
			order = append(order, tx.Category)
			current = decimal.Zero
		}
		sums[tx.Category] = current.Add(tx.Amount)
	}

	items := make([]models.CategorySummaryItem, 0, len(order))
	for _, code := range order {
		items = append(items, models.CategorySummaryItem{
			Code:  code,
			Label: s.categories.LabelFor(code, kind),
			Value: sums[code],
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		if cmp := items[i].Value.Cmp(items[j].Value); cmp != 0 {
			return cmp > 0
		}
		return items[i].Label < items[j].Label
	})

	for i := range items {
		items[i].Color = s.categories.ColorFor(i)
	}

	return items
}

// WeeklyBreakdown always returns five buckets. The last one collects day 29 onwards.
func (s *aggregationService) WeeklyBreakdown(txs []models.Transaction, year int, month time.Month) []models.WeekBucket {
	buckets := make([]models.WeekBucket, models.WeeksPerMonth)
	for i := range buckets {
		buckets[i] = models.WeekBucket{
			Name:     fmt.Sprintf("Week %d", i+1),
			Days:     weekDayRanges[i],
			Earnings: decimal.Zero,
			Expenses: decimal.Zero,
		}
	}

	if _, _, err := models.MonthRange(year, month); err != nil {
		return buckets
	}

	for _, tx := range s.wellFormed(txs) {
		if !models.InMonth(tx.Date, year, month) {
			continue
		}

		idx := weekIndex(tx.Date.Day())
		switch tx.Kind {
		case models.KindEarning:
			buckets[idx].Earnings = buckets[idx].Earnings.Add(tx.Amount)
		case models.KindExpense:
			buckets[idx].Expenses = buckets[idx].Expenses.Add(tx.Amount)
		}
	}

	return buckets
}

// FilterTransactions applies the type filter, then a case-insensitive search over the
// description, the category label and the amount. An empty or "all" type keeps both kinds;
// an unrecognised type keeps nothing.
func (s *aggregationService) FilterTransactions(txs []models.Transaction, filter models.TransactionFilter) []models.Transaction {
	search := strings.ToLower(filter.Search)
	out := make([]models.Transaction, 0, len(txs))

	for _, tx := range txs {
		if filter.Type != "" && filter.Type != models.FilterTypeAll && string(tx.Kind) != filter.Type {
			continue
		}
		if search != "" && !s.matchesSearch(tx, search) {
			continue
		}
		out = append(out, tx)
	}

	return out
}

func (s *aggregationService) matchesSearch(tx models.Transaction, search string) bool {
	if tx.Description != nil && strings.Contains(strings.ToLower(*tx.Description), search) {
		return true
	}
	if strings.Contains(strings.ToLower(s.categories.LabelFor(tx.Category, tx.Kind)), search) {
		return true
	}
	return strings.Contains(tx.Amount.String(), search)
}

func (s *aggregationService) wellFormed(txs []models.Transaction) []models.Transaction {
	out := make([]models.Transaction, 0, len(txs))
	for _, tx := range txs {
		if reason := malformedReason(tx); reason != "" {
			s.logger.Warn("skipping malformed transaction",
				"transaction_id", tx.ID,
				"kind", tx.Kind,
				"reason", reason)
			if s.metrics != nil {
				s.metrics.IncrementCounter(MetricMalformedSkipped, map[string]string{
					"kind":   string(tx.Kind),
					"reason": reason,
				})
			}
			continue
		}
		out = append(out, tx)
	}
	return out
}

func malformedReason(tx models.Transaction) string {
	switch {
	case !tx.Kind.IsValid():
		return "invalid_kind"
	case tx.Amount.IsNegative():
		return "negative_amount"
	case tx.Date.IsZero():
		return "missing_date"
	default:
		return ""
	}
}

func weekIndex(day int) int {
	idx := (day - 1) / 7
	if idx >= models.WeeksPerMonth {
		idx = models.WeeksPerMonth - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}
