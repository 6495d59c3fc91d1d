package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"finance-tracker/internal/models"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultRecentLimit = 5
	MinReportYear      = 1900
	MaxReportYear      = 9999
)

var ErrInvalidRange = errors.New("start date must not be after end date")

type reportService struct {
	records     RecordServiceInterface
	aggregation AggregationServiceInterface
	metrics     MetricsRecorderInterface
	recentLimit int
	logger      *slog.Logger
}

// NewReportService builds the combined views. A recentLimit of zero or less falls back to
// DefaultRecentLimit.
func NewReportService(
	records RecordServiceInterface,
	aggregation AggregationServiceInterface,
	metrics MetricsRecorderInterface,
	recentLimit int,
	logger *slog.Logger,
) ReportServiceInterface {
	if recentLimit <= 0 {
		recentLimit = DefaultRecentLimit
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &reportService{
		records:     records,
		aggregation: aggregation,
		metrics:     metrics,
		recentLimit: recentLimit,
		logger:      logger,
	}
}

// RecentTransactions takes up to limit newest records from each collection, merges them
// and keeps the first limit.
func (s *reportService) RecentTransactions(ctx context.Context, userID uuid.UUID, limit int) ([]models.Transaction, error) {
	if userID == uuid.Nil {
		return nil, ErrNotAuthenticated
	}
	if limit <= 0 {
		limit = s.recentLimit
	}

	expenses, earnings, err := s.fetchBoth(ctx, models.RecordFilters{UserID: userID, Limit: limit})
	if err != nil {
		return nil, err
	}

	return MergeTransactions(expenses, earnings, limit), nil
}

// MonthlyTransactions returns both collections within the inclusive range, newest first.
func (s *reportService) MonthlyTransactions(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]models.Transaction, error) {
	if userID == uuid.Nil {
		return nil, ErrNotAuthenticated
	}
	start, end = models.NormalizeDate(start), models.NormalizeDate(end)
	if start.IsZero() || end.IsZero() || start.After(end) {
		return nil, ErrInvalidRange
	}

	expenses, earnings, err := s.fetchBoth(ctx, models.RecordFilters{
		UserID:    userID,
		StartDate: &start,
		EndDate:   &end,
	})
	if err != nil {
		return nil, err
	}

	return MergeTransactions(expenses, earnings, 0), nil
}

func (s *reportService) CategorySummary(ctx context.Context, userID uuid.UUID, year int, month time.Month, kind models.Kind) ([]models.CategorySummaryItem, error) {
	if userID == uuid.Nil {
		return nil, ErrNotAuthenticated
	}
	if !kind.IsValid() {
		return nil, models.ErrInvalidKind
	}
	first, last, err := monthBounds(year, month)
	if err != nil {
		return nil, err
	}

	records, err := s.records.List(ctx, kind, models.RecordFilters{
		UserID:    userID,
		StartDate: &first,
		EndDate:   &last,
	})
	if err != nil {
		return nil, err
	}

	var txs []models.Transaction
	if kind == models.KindExpense {
		txs = MergeTransactions(records, nil, 0)
	} else {
		txs = MergeTransactions(nil, records, 0)
	}

	return s.aggregation.CategorySummary(txs, year, month, kind), nil
}

// MonthlyReport computes totals, the expense category chart and the weekly buckets over
// every transaction in the month. The filter only narrows the returned list.
func (s *reportService) MonthlyReport(ctx context.Context, userID uuid.UUID, year int, month time.Month, filter models.TransactionFilter) (*models.MonthlyReport, error) {
	start := time.Now()
	defer s.observe(start)

	first, last, err := monthBounds(year, month)
	if err != nil {
		return nil, err
	}

	txs, err := s.MonthlyTransactions(ctx, userID, first, last)
	if err != nil {
		return nil, err
	}
	s.countTransactions(len(txs))

	return &models.MonthlyReport{
		Year:         year,
		Month:        month,
		StartDate:    first,
		EndDate:      last,
		Totals:       s.aggregation.Totals(txs),
		Categories:   s.aggregation.CategorySummary(txs, year, month, models.KindExpense),
		Weeks:        s.aggregation.WeeklyBreakdown(txs, year, month),
		Transactions: s.aggregation.FilterTransactions(txs, filter),
	}, nil
}

// Dashboard loads the recent feed and the current month of now concurrently. Totals and
// categories cover the whole month, not only the recent feed.
func (s *reportService) Dashboard(ctx context.Context, userID uuid.UUID, now time.Time) (*models.Dashboard, error) {
	start := time.Now()
	defer s.observe(start)

	if userID == uuid.Nil {
		return nil, ErrNotAuthenticated
	}

	now = now.UTC()
	year, month := now.Year(), now.Month()
	first, last, err := monthBounds(year, month)
	if err != nil {
		return nil, err
	}

	var recent, monthTxs []models.Transaction
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		txs, err := s.RecentTransactions(gctx, userID, s.recentLimit)
		if err != nil {
			return err
		}
		recent = txs
		return nil
	})
	g.Go(func() error {
		txs, err := s.MonthlyTransactions(gctx, userID, first, last)
		if err != nil {
			return err
		}
		monthTxs = txs
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.countTransactions(len(monthTxs))

	return &models.Dashboard{
		Year:       year,
		Month:      month,
		Totals:     s.aggregation.Totals(monthTxs),
		Recent:     recent,
		Categories: s.aggregation.CategorySummary(monthTxs, year, month, models.KindExpense),
	}, nil
}

// fetchBoth lists both collections concurrently. The first failure cancels the other call
// and is returned; a cancelled parent context discards whatever was fetched.
func (s *reportService) fetchBoth(ctx context.Context, filters models.RecordFilters) ([]models.Record, []models.Record, error) {
	var expenses, earnings []models.Record

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		records, err := s.records.List(gctx, models.KindExpense, filters)
		if err != nil {
			return err
		}
		expenses = records
		return nil
	})
	g.Go(func() error {
		records, err := s.records.List(gctx, models.KindEarning, filters)
		if err != nil {
			return err
		}
		earnings = records
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.Warn("report fetch failed", "user_id", filters.UserID, "error", err)
		return nil, nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	return expenses, earnings, nil
}

func (s *reportService) observe(start time.Time) {
	if s.metrics != nil {
		s.metrics.RecordProcessingTime(MetricReportLoad, time.Since(start))
	}
}

func (s *reportService) countTransactions(n int) {
	if s.metrics != nil {
		s.metrics.RecordGauge(MetricReportTxCount, float64(n), nil)
	}
}

func monthBounds(year int, month time.Month) (time.Time, time.Time, error) {
	if year < MinReportYear || year > MaxReportYear {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: year %d outside %d-%d", models.ErrInvalidMonth, year, MinReportYear, MaxReportYear)
	}
	return models.MonthRange(year, month)
}
