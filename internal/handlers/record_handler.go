package handlers

import (
	"net/http"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/errors"
	"finance-tracker/internal/models"
	"finance-tracker/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RecordHandler serves one collection. Expenses and earnings each get their own instance.
type RecordHandler struct {
	kind       models.Kind
	records    services.RecordServiceInterface
	categories services.CategoryServiceInterface
}

func NewRecordHandler(
	kind models.Kind,
	records services.RecordServiceInterface,
	categories services.CategoryServiceInterface,
) *RecordHandler {
	return &RecordHandler{
		kind:       kind,
		records:    records,
		categories: categories,
	}
}

// Kind is the collection this handler serves
func (h *RecordHandler) Kind() models.Kind {
	return h.kind
}

// List returns the user's records of this kind
// @Summary List records
// @Tags Records
// @Security BearerAuth
// @Produce json
// @Param start_date query string false "Inclusive start (YYYY-MM-DD)"
// @Param end_date query string false "Inclusive end (YYYY-MM-DD)"
// @Param sort_by query string false "Sort field" Enums(date, amount, category, created_at)
// @Param ascending query bool false "Ascending order, default true when sort_by is set"
// @Param limit query int false "Maximum number of records"
// @Success 200 {object} SuccessResponse{data=[]dto.RecordResponse}
// @Router /expenses [get]
// @Router /earnings [get]
func (h *RecordHandler) List(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthNotAuthenticated)
	}

	var query dto.ListRecordsQuery
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
	if start != nil && start.After(*end) {
		return SendError(c, errors.ReportInvalidRange)
	}

	records, err := h.records.List(c.Request().Context(), h.kind, models.RecordFilters{
		UserID:    userID,
		StartDate: start,
		EndDate:   end,
		SortBy:    query.SortBy,
		Ascending: query.Ascending,
		Limit:     query.Limit,
	})
	if err != nil {
		return sendServiceError(c, err)
	}

	data := make([]dto.RecordResponse, 0, len(records))
	for i := range records {
		data = append(data, h.toResponse(&records[i]))
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: data,
		Meta: map[string]interface{}{"count": len(data), "kind": h.kind},
	})
}

// Get returns one record
// @Summary Get record
// @Tags Records
// @Security BearerAuth
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {object} SuccessResponse{data=dto.RecordResponse}
// @Failure 404 {object} errors.ErrorResponse "RECORD_001"
// @Router /expenses/{id} [get]
// @Router /earnings/{id} [get]
func (h *RecordHandler) Get(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthNotAuthenticated)
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.RecordInvalidID)
	}

	record, err := h.records.Get(c.Request().Context(), h.kind, userID, id)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: h.toResponse(record)})
}

// Create adds a record for the signed-in user
// @Summary Add record
// @Tags Records
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateRecordRequest true "Record"
// @Success 201 {object} SuccessResponse{data=dto.RecordResponse}
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001"
// @Router /expenses [post]
// @Router /earnings [post]
func (h *RecordHandler) Create(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthNotAuthenticated)
	}

	var req dto.CreateRecordRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return sendValidationError(c, err)
	}

	payload, err := req.ToRecord()
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate)
	}

	record, err := h.records.Add(c.Request().Context(), h.kind, userID, payload)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    h.toResponse(record),
		Message: h.kind.String() + " added",
	})
}

// Update applies a partial update
// @Summary Update record
// @Tags Records
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Record ID"
// @Param request body dto.UpdateRecordRequest true "Fields to change"
// @Success 200 {object} SuccessResponse{data=dto.RecordResponse}
// @Failure 404 {object} errors.ErrorResponse "RECORD_001"
// @Router /expenses/{id} [patch]
// @Router /earnings/{id} [patch]
func (h *RecordHandler) Update(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthNotAuthenticated)
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.RecordInvalidID)
	}

	var req dto.UpdateRecordRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return sendValidationError(c, err)
	}

	update, err := req.ToUpdate()
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate)
	}

	record, err := h.records.Update(c.Request().Context(), h.kind, userID, id, update)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: h.toResponse(record)})
}

// Delete removes a record
// @Summary Delete record
// @Tags Records
// @Security BearerAuth
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} errors.ErrorResponse "RECORD_001"
// @Router /expenses/{id} [delete]
// @Router /earnings/{id} [delete]
func (h *RecordHandler) Delete(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthNotAuthenticated)
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.RecordInvalidID)
	}

	if err := h.records.Delete(c.Request().Context(), h.kind, userID, id); err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: h.kind.String() + " deleted"})
}

func (h *RecordHandler) toResponse(record *models.Record) dto.RecordResponse {
	return dto.NewRecordResponse(h.kind, h.categories.LabelFor(record.Category, h.kind), record)
}
