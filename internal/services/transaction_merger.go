package services

import (
	"sort"

	"finance-tracker/internal/models"
)

// MergeTransactions tags each record with its kind and returns one list ordered by date,
// newest first. Expenses are placed before earnings before a stable sort, so records on
// the same date keep that order. A positive limit truncates the result.
func MergeTransactions(expenses, earnings []models.Record, limit int) []models.Transaction {
	merged := make([]models.Transaction, 0, len(expenses)+len(earnings))

	for _, record := range expenses {
		merged = append(merged, models.NewTransaction(models.KindExpense, record))
	}
	for _, record := range earnings {
		merged = append(merged, models.NewTransaction(models.KindEarning, record))
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Date.After(merged[j].Date)
	})

	if limit > 0 && len(merged) > limit {
		merged = merged[:limit]
	}

	return merged
}
