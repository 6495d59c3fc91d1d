package services

import (
	"log/slog"
	"testing"
	"time"

	"finance-tracker/internal/models"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type AggregationServiceTestSuite struct {
	suite.Suite
	metrics *PrometheusMetrics
	service AggregationServiceInterface
}

func TestAggregationServiceSuite(t *testing.T) {
	suite.Run(t, new(AggregationServiceTestSuite))
}

func (s *AggregationServiceTestSuite) SetupTest() {
	s.metrics = NewPrometheusMetrics(prometheus.NewRegistry()).(*PrometheusMetrics)
	s.service = NewAggregationService(NewCategoryService(), s.metrics, slog.Default())
}

func tx(kind models.Kind, category string, amount string, date string) models.Transaction {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return models.Transaction{
		ID:       uuid.New(),
		Kind:     kind,
		Category: category,
		Amount:   decimal.RequireFromString(amount),
		Date:     d,
	}
}

func withDescription(t models.Transaction, description string) models.Transaction {
	t.Description = &description
	return t
}

func (s *AggregationServiceTestSuite) assertDecimal(expected string, actual decimal.Decimal) {
	s.True(decimal.RequireFromString(expected).Equal(actual), "expected %s, got %s", expected, actual)
}

// End-to-end scenario

func (s *AggregationServiceTestSuite) TestMarchScenario() {
	expenses := []models.Record{
		{ID: uuid.New(), Category: models.CategoryFoodDining, Amount: decimal.NewFromInt(100), Date: time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC)},
		{ID: uuid.New(), Category: models.CategoryFoodDining, Amount: decimal.NewFromInt(50), Date: time.Date(2025, time.March, 20, 0, 0, 0, 0, time.UTC)},
	}
	txs := MergeTransactions(expenses, nil, 0)

	summary := s.service.CategorySummary(txs, 2025, time.March, models.KindExpense)
	s.Require().Len(summary, 1)
	s.Equal("🍔 Food & Dining", summary[0].Label)
	s.Equal(models.CategoryFoodDining, summary[0].Code)
	s.assertDecimal("150", summary[0].Value)
	s.Equal(models.ChartPalette()[0], summary[0].Color)

	weeks := s.service.WeeklyBreakdown(txs, 2025, time.March)
	s.Require().Len(weeks, 5)
	s.assertDecimal("100", weeks[0].Expenses)
	s.assertDecimal("0", weeks[1].Expenses)
	s.assertDecimal("50", weeks[2].Expenses)
	s.assertDecimal("0", weeks[3].Expenses)
	s.assertDecimal("0", weeks[4].Expenses)
	for _, week := range weeks {
		s.assertDecimal("0", week.Earnings)
	}

	totals := s.service.Totals(txs)
	s.assertDecimal("0", totals.Income)
	s.assertDecimal("150", totals.Expense)
	s.assertDecimal("-150", totals.Balance)
}

// Totals Tests

func (s *AggregationServiceTestSuite) TestTotals_Empty() {
	totals := s.service.Totals(nil)
	s.True(totals.Income.IsZero())
	s.True(totals.Expense.IsZero())
	s.True(totals.Balance.IsZero())
}

func (s *AggregationServiceTestSuite) TestTotals_ExactDecimalArithmetic() {
	txs := []models.Transaction{
		tx(models.KindEarning, models.CategorySalary, "0.10", "2025-01-01"),
		tx(models.KindEarning, models.CategorySalary, "0.20", "2025-01-02"),
		tx(models.KindExpense, models.CategoryFuel, "0.30", "2025-01-03"),
	}

	totals := s.service.Totals(txs)
	s.assertDecimal("0.30", totals.Income)
	s.assertDecimal("0.30", totals.Expense)
	s.True(totals.Balance.IsZero())
}

func (s *AggregationServiceTestSuite) TestTotals_SkipsMalformed() {
	txs := []models.Transaction{
		tx(models.KindEarning, models.CategorySalary, "1000", "2025-02-01"),
		tx(models.KindExpense, models.CategoryFuel, "-20", "2025-02-02"),
		{ID: uuid.New(), Kind: models.KindExpense, Category: models.CategoryFuel, Amount: decimal.NewFromInt(5)},
		tx(models.Kind("transfer"), "", "70", "2025-02-03"),
	}

	totals := s.service.Totals(txs)
	s.assertDecimal("1000", totals.Income)
	s.assertDecimal("0", totals.Expense)
	s.assertDecimal("1000", totals.Balance)

	s.Equal(1.0, testutil.ToFloat64(s.metrics.malformedSkipped.WithLabelValues("expense", "negative_amount")))
	s.Equal(1.0, testutil.ToFloat64(s.metrics.malformedSkipped.WithLabelValues("expense", "missing_date")))
	s.Equal(1.0, testutil.ToFloat64(s.metrics.malformedSkipped.WithLabelValues("transfer", "invalid_kind")))
}

// Category Summary Tests

func (s *AggregationServiceTestSuite) TestCategorySummary_SortedByValueThenLabel() {
	txs := []models.Transaction{
		tx(models.KindExpense, models.CategoryTravel, "40", "2025-04-02"),
		tx(models.KindExpense, models.CategoryGroceries, "75", "2025-04-03"),
		tx(models.KindExpense, models.CategoryFuel, "40", "2025-04-04"),
		tx(models.KindExpense, models.CategoryGroceries, "25", "2025-04-10"),
	}

	summary := s.service.CategorySummary(txs, 2025, time.April, models.KindExpense)

	s.Require().Len(summary, 3)
	s.Equal(models.CategoryGroceries, summary[0].Code)
	s.assertDecimal("100", summary[0].Value)
	// equal values fall back to label order
	s.Equal("⛽️ Fuel", summary[1].Label)
	s.Equal("🛫 Travel", summary[2].Label)

	palette := models.ChartPalette()
	for i, item := range summary {
		s.Equal(palette[i], item.Color)
	}
}

func (s *AggregationServiceTestSuite) TestCategorySummary_FiltersMonthAndKind() {
	txs := []models.Transaction{
		tx(models.KindExpense, models.CategoryShopping, "10", "2025-03-31"),
		tx(models.KindExpense, models.CategoryShopping, "20", "2025-04-01"),
		tx(models.KindExpense, models.CategoryShopping, "30", "2025-04-30"),
		tx(models.KindExpense, models.CategoryShopping, "40", "2025-05-01"),
		tx(models.KindEarning, models.CategorySalary, "500", "2025-04-15"),
		tx(models.KindExpense, models.CategoryShopping, "50", "2024-04-15"),
	}

	summary := s.service.CategorySummary(txs, 2025, time.April, models.KindExpense)
	s.Require().Len(summary, 1)
	s.assertDecimal("50", summary[0].Value)

	earnings := s.service.CategorySummary(txs, 2025, time.April, models.KindEarning)
	s.Require().Len(earnings, 1)
	s.Equal("💼 Salary", earnings[0].Label)
}

func (s *AggregationServiceTestSuite) TestCategorySummary_UnregisteredAndEmptyCodes() {
	txs := []models.Transaction{
		tx(models.KindExpense, "custom_code", "12", "2025-06-01"),
		tx(models.KindExpense, "", "8", "2025-06-02"),
	}

	summary := s.service.CategorySummary(txs, 2025, time.June, models.KindExpense)
	s.Require().Len(summary, 2)
	s.Equal("Custom Code", summary[0].Label)
	s.Equal("Uncategorized", summary[1].Label)
}

func (s *AggregationServiceTestSuite) TestCategorySummary_InvalidMonth() {
	txs := []models.Transaction{tx(models.KindExpense, models.CategoryFuel, "10", "2025-06-01")}

	s.Empty(s.service.CategorySummary(txs, 2025, time.Month(13), models.KindExpense))
	s.Empty(s.service.CategorySummary(txs, 2025, time.Month(0), models.KindExpense))
}

func (s *AggregationServiceTestSuite) TestCategorySummary_Empty() {
	summary := s.service.CategorySummary(nil, 2025, time.June, models.KindExpense)
	s.NotNil(summary)
	s.Empty(summary)
}

// Weekly Breakdown Tests

func (s *AggregationServiceTestSuite) TestWeeklyBreakdown_BucketBoundaries() {
	txs := []models.Transaction{
		tx(models.KindEarning, models.CategorySalary, "1", "2025-01-07"),
		tx(models.KindEarning, models.CategorySalary, "2", "2025-01-08"),
		tx(models.KindEarning, models.CategorySalary, "4", "2025-01-21"),
		tx(models.KindEarning, models.CategorySalary, "8", "2025-01-28"),
		tx(models.KindEarning, models.CategorySalary, "16", "2025-01-29"),
		tx(models.KindExpense, models.CategoryFuel, "32", "2025-01-31"),
	}

	weeks := s.service.WeeklyBreakdown(txs, 2025, time.January)

	s.Require().Len(weeks, 5)
	s.assertDecimal("1", weeks[0].Earnings)
	s.assertDecimal("2", weeks[1].Earnings)
	s.assertDecimal("4", weeks[2].Earnings)
	s.assertDecimal("8", weeks[3].Earnings)
	s.assertDecimal("16", weeks[4].Earnings)
	s.assertDecimal("32", weeks[4].Expenses)
}

func (s *AggregationServiceTestSuite) TestWeeklyBreakdown_LabelsAndEmptyMonth() {
	weeks := s.service.WeeklyBreakdown(nil, 2025, time.February)

	s.Require().Len(weeks, 5)
	names := []string{"Week 1", "Week 2", "Week 3", "Week 4", "Week 5"}
	days := []string{"1-7", "8-14", "15-21", "22-28", "29+"}
	for i, week := range weeks {
		s.Equal(names[i], week.Name)
		s.Equal(days[i], week.Days)
		s.True(week.Earnings.IsZero())
		s.True(week.Expenses.IsZero())
	}
}

func (s *AggregationServiceTestSuite) TestWeeklyBreakdown_IgnoresOtherMonths() {
	txs := []models.Transaction{
		tx(models.KindExpense, models.CategoryFuel, "10", "2025-02-28"),
		tx(models.KindExpense, models.CategoryFuel, "10", "2025-04-01"),
	}

	for _, week := range s.service.WeeklyBreakdown(txs, 2025, time.March) {
		s.True(week.Expenses.IsZero())
	}
}

// Filter Tests

func (s *AggregationServiceTestSuite) TestFilterTransactions_ByType() {
	txs := []models.Transaction{
		tx(models.KindExpense, models.CategoryFuel, "10", "2025-03-01"),
		tx(models.KindEarning, models.CategorySalary, "20", "2025-03-02"),
	}

	s.Len(s.service.FilterTransactions(txs, models.TransactionFilter{Type: "all"}), 2)
	s.Len(s.service.FilterTransactions(txs, models.TransactionFilter{}), 2)

	expenses := s.service.FilterTransactions(txs, models.TransactionFilter{Type: "expense"})
	s.Require().Len(expenses, 1)
	s.Equal(models.KindExpense, expenses[0].Kind)

	s.Empty(s.service.FilterTransactions(txs, models.TransactionFilter{Type: "transfer"}))
}

func (s *AggregationServiceTestSuite) TestFilterTransactions_Search() {
	txs := []models.Transaction{
		withDescription(tx(models.KindExpense, models.CategoryGroceries, "45.5", "2025-03-01"), "Weekly SHOP"),
		tx(models.KindExpense, models.CategoryFoodDining, "12", "2025-03-02"),
		tx(models.KindEarning, models.CategorySalary, "3000", "2025-03-03"),
	}

	byDescription := s.service.FilterTransactions(txs, models.TransactionFilter{Search: "shop"})
	s.Require().Len(byDescription, 1)
	s.Equal(models.CategoryGroceries, byDescription[0].Category)

	byLabel := s.service.FilterTransactions(txs, models.TransactionFilter{Search: "dining"})
	s.Require().Len(byLabel, 1)
	s.Equal(models.CategoryFoodDining, byLabel[0].Category)

	byAmount := s.service.FilterTransactions(txs, models.TransactionFilter{Search: "300"})
	s.Require().Len(byAmount, 1)
	s.Equal(models.KindEarning, byAmount[0].Kind)

	combined := s.service.FilterTransactions(txs, models.TransactionFilter{Type: "earning", Search: "shop"})
	s.Empty(combined)
}
