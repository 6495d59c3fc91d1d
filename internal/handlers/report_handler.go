package handlers

import (
	"net/http"
	"time"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/errors"
	"finance-tracker/internal/models"
	"finance-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

const (
	maxRecentLimit  = 50
	defaultCurrency = "INR"
)

// ReportHandler serves the unified transaction views and the reports built on them
type ReportHandler struct {
	reports    services.ReportServiceInterface
	categories services.CategoryServiceInterface
	currency   string
	now        func() time.Time
}

func NewReportHandler(reports services.ReportServiceInterface, categories services.CategoryServiceInterface) *ReportHandler {
	return &ReportHandler{
		reports:    reports,
		categories: categories,
		currency:   defaultCurrency,
		now:        time.Now,
	}
}

// WithCurrency sets the currency code reported alongside amounts.
func (h *ReportHandler) WithCurrency(code string) *ReportHandler {
	if code != "" {
		h.currency = code
	}
	return h
}

// Recent returns the newest transactions across both collections
// @Summary Recent transactions
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Number of transactions" default(5)
// @Success 200 {object} SuccessResponse{data=[]dto.TransactionResponse}
// @Router /transactions/recent [get]
func (h *ReportHandler) Recent(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthNotAuthenticated)
	}

	limit := getIntParam(c, "limit", 0)
	if limit < 0 || limit > maxRecentLimit {
		return SendError(c, errors.ValidationOutOfRange, errors.WithDetails("limit must be between 0 and 50"))
	}

	txs, err := h.reports.RecentTransactions(c.Request().Context(), userID, limit)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: h.render(txs)})
}

// Range returns both collections within an inclusive date range
// @Summary Transactions in range
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param start_date query string true "Inclusive start (YYYY-MM-DD)"
// @Param end_date query string true "Inclusive end (YYYY-MM-DD)"
// @Success 200 {object} SuccessResponse{data=[]dto.TransactionResponse}
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 or REPORT_002"
// @Router /transactions [get]
func (h *ReportHandler) Range(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthNotAuthenticated)
	}

	var query dto.TransactionRangeQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &query); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid query parameters"))
	}
	if err := c.Validate(&query); err != nil {
		return sendValidationError(c, err)
	}

	start, end, err := parseDateRange(query.StartDate, query.EndDate)
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}

	txs, err := h.reports.MonthlyTransactions(c.Request().Context(), userID, *start, *end)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: h.render(txs),
		Meta: map[string]interface{}{"count": len(txs)},
	})
}

// Dashboard returns the recent feed plus the current month's totals and expense chart
// @Summary Dashboard
// @Tags Reports
// @Security BearerAuth
// @Produce json
// @Success 200 {object} SuccessResponse{data=dto.DashboardResponse}
// @Failure 502 {object} errors.ErrorResponse "RECORD_005"
// @Router /reports/dashboard [get]
func (h *ReportHandler) Dashboard(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthNotAuthenticated)
	}

	dashboard, err := h.reports.Dashboard(c.Request().Context(), userID, h.now())
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: dto.DashboardResponse{
		Year:       dashboard.Year,
		Month:      int(dashboard.Month),
		Currency:   h.currency,
		Totals:     dashboard.Totals,
		Recent:     h.render(dashboard.Recent),
		Categories: dashboard.Categories,
	}})
}

// Monthly returns the monthly report. Without a month the current one is used.
// @Summary Monthly report
// @Tags Reports
// @Security BearerAuth
// @Produce json
// @Param month query string false "Month (YYYY-MM)"
// @Param type query string false "List filter" Enums(all, expense, earning)
// @Param search query string false "Case-insensitive substring of description or category"
// @Success 200 {object} SuccessResponse{data=dto.MonthlyReportResponse}
// @Failure 400 {object} errors.ErrorResponse "REPORT_001"
// @Router /reports/monthly [get]
func (h *ReportHandler) Monthly(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthNotAuthenticated)
	}

	var query dto.MonthlyReportQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &query); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid query parameters"))
	}
	if err := c.Validate(&query); err != nil {
		return sendValidationError(c, err)
	}

	year, month := h.currentMonth()
	if query.Month != "" {
		parsed, err := time.Parse("2006-01", query.Month)
		if err != nil {
			return SendError(c, errors.ReportInvalidMonth)
		}
		year, month = parsed.Year(), parsed.Month()
	}

	report, err := h.reports.MonthlyReport(c.Request().Context(), userID, year, month, models.TransactionFilter{
		Type:   query.Type,
		Search: query.Search,
	})
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: dto.MonthlyReportResponse{
		Year:         report.Year,
		Month:        int(report.Month),
		Currency:     h.currency,
		StartDate:    report.StartDate.Format(dto.DateLayout),
		EndDate:      report.EndDate.Format(dto.DateLayout),
		Totals:       report.Totals,
		Categories:   report.Categories,
		Weeks:        report.Weeks,
		Transactions: h.render(report.Transactions),
	}})
}

// Categories returns the category chart of one collection for a month
// @Summary Category summary
// @Tags Reports
// @Security BearerAuth
// @Produce json
// @Param year query int false "Year"
// @Param month query int false "Month (1-12)"
// @Param kind query string false "Collection" Enums(expense, earning)
// @Success 200 {object} SuccessResponse{data=[]models.CategorySummaryItem}
// @Router /reports/categories [get]
func (h *ReportHandler) Categories(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthNotAuthenticated)
	}

	var query dto.CategorySummaryQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &query); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid query parameters"))
	}
	if err := c.Validate(&query); err != nil {
		return sendValidationError(c, err)
	}

	year, month := h.currentMonth()
	if query.Year != 0 {
		year = query.Year
	}
	if query.Month != 0 {
		month = time.Month(query.Month)
	}
	kind := models.KindExpense
	if query.Kind != "" {
		kind = models.Kind(query.Kind)
	}

	items, err := h.reports.CategorySummary(c.Request().Context(), userID, year, month, kind)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: items,
		Meta: map[string]interface{}{"year": year, "month": int(month), "kind": kind},
	})
}

func (h *ReportHandler) currentMonth() (int, time.Month) {
	now := h.now().UTC()
	return now.Year(), now.Month()
}

func (h *ReportHandler) render(txs []models.Transaction) []dto.TransactionResponse {
	return dto.NewTransactionResponses(txs, h.categories.LabelFor)
}
