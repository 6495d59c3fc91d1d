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
	defaultSampleMonths = 3
	maxSampleMonths     = 12
)

// DevHandler serves development-only endpoints. It is only routed outside production.
type DevHandler struct {
	records   services.RecordServiceInterface
	generator services.SampleDataGeneratorInterface
	now       func() time.Time
}

func NewDevHandler(records services.RecordServiceInterface, generator services.SampleDataGeneratorInterface) *DevHandler {
	return &DevHandler{
		records:   records,
		generator: generator,
		now:       time.Now,
	}
}

// GenerateSampleData fills the caller's account with generated expenses and earnings for
// the current month and the months before it
// @Summary Generate sample data
// @Tags Development
// @Security BearerAuth
// @Produce json
// @Param months query int false "Number of months ending with the current one" default(3)
// @Success 201 {object} SuccessResponse{data=dto.SampleDataResponse}
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_004"
// @Router /dev/sample-data [post]
func (h *DevHandler) GenerateSampleData(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthNotAuthenticated)
	}

	months := getIntParam(c, "months", defaultSampleMonths)
	if months < 1 || months > maxSampleMonths {
		return SendError(c, errors.ValidationOutOfRange, errors.WithDetails("months must be between 1 and 12"))
	}

	ctx := c.Request().Context()
	current := h.now().UTC()
	first := time.Date(current.Year(), current.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(months - 1), 0)

	response := dto.SampleDataResponse{Months: months, From: first.Format("2006-01"), To: current.Format("2006-01")}
	for m := first; !m.After(current); m = m.AddDate(0, 1, 0) {
		data, err := h.generator.GenerateMonth(userID, m.Year(), m.Month())
		if err != nil {
			return sendServiceError(c, err)
		}

		for _, batch := range []struct {
			kind    models.Kind
			records []models.Record
			count   *int
		}{
			{models.KindExpense, data.Expenses, &response.Expenses},
			{models.KindEarning, data.Earnings, &response.Earnings},
		} {
			for _, record := range batch.records {
				if _, err := h.records.Add(ctx, batch.kind, userID, record); err != nil {
					return sendServiceError(c, err)
				}
				*batch.count++
			}
		}
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    response,
		Message: "sample data generated",
	})
}
