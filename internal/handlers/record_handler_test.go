package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"finance-tracker/internal/dto"
	apperrors "finance-tracker/internal/errors"
	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"
	"finance-tracker/internal/services"
	"finance-tracker/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestRecordHandler(t *testing.T) {
	suite.Run(t, new(RecordHandlerSuite))
}

type RecordHandlerSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	records    *service_mocks.MockRecordServiceInterface
	categories *service_mocks.MockCategoryServiceInterface
	handler    *RecordHandler
	e          *echo.Echo
	userID     uuid.UUID
}

func (s *RecordHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.records = service_mocks.NewMockRecordServiceInterface(s.ctrl)
	s.categories = service_mocks.NewMockCategoryServiceInterface(s.ctrl)
	s.categories.EXPECT().LabelFor(gomock.Any(), gomock.Any()).Return("Food & Dining").AnyTimes()
	s.handler = NewRecordHandler(models.KindExpense, s.records, s.categories)
	s.e = newTestEcho()
	s.userID = uuid.New()
}

func (s *RecordHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *RecordHandlerSuite) record() *models.Record {
	return &models.Record{
		ID:       uuid.New(),
		UserID:   s.userID,
		Category: models.CategoryFoodDining,
		Amount:   decimal.NewFromInt(250),
		Date:     time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC),
	}
}

func (s *RecordHandlerSuite) TestList() {
	stored := []models.Record{*s.record(), *s.record()}
	s.records.EXPECT().List(gomock.Any(), models.KindExpense, gomock.Any()).DoAndReturn(
		func(ctx context.Context, kind models.Kind, filters models.RecordFilters) ([]models.Record, error) {
			s.Equal(s.userID, filters.UserID)
			s.Require().True(filters.HasDateRange())
			s.Equal(time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), *filters.StartDate)
			s.Equal(models.SortByAmount, filters.SortBy)
			s.Require().NotNil(filters.Ascending)
			s.True(*filters.Ascending)
			s.Equal(10, filters.Limit)
			return stored, nil
		}).Times(1)

	c, rec := newContext(s.e, http.MethodGet,
		"/api/v1/expenses?start_date=2025-03-01&end_date=2025-03-31&sort_by=amount&ascending=true&limit=10", nil, s.userID)

	s.NoError(s.handler.List(c))
	s.Equal(http.StatusOK, rec.Code)

	var response struct {
		Data []dto.RecordResponse `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Len(response.Data, 2)
	s.Equal(models.KindExpense, response.Data[0].Kind)
	s.Equal("Food & Dining", response.Data[0].Label)
	s.Equal("2025-03-05", response.Data[0].Date)
}

func (s *RecordHandlerSuite) TestList_SortWithoutDirection() {
	s.records.EXPECT().List(gomock.Any(), models.KindExpense, gomock.Any()).DoAndReturn(
		func(ctx context.Context, kind models.Kind, filters models.RecordFilters) ([]models.Record, error) {
			s.Equal(models.SortByAmount, filters.SortBy)
			s.Nil(filters.Ascending)
			s.Equal("amount ASC", filters.OrderClause())
			return []models.Record{}, nil
		}).Times(1)

	c, rec := newContext(s.e, http.MethodGet, "/api/v1/expenses?sort_by=amount", nil, s.userID)

	s.NoError(s.handler.List(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *RecordHandlerSuite) TestList_ExplicitDescending() {
	s.records.EXPECT().List(gomock.Any(), models.KindExpense, gomock.Any()).DoAndReturn(
		func(ctx context.Context, kind models.Kind, filters models.RecordFilters) ([]models.Record, error) {
			s.Require().NotNil(filters.Ascending)
			s.False(*filters.Ascending)
			s.Equal("amount DESC", filters.OrderClause())
			return []models.Record{}, nil
		}).Times(1)

	c, rec := newContext(s.e, http.MethodGet, "/api/v1/expenses?sort_by=amount&ascending=false", nil, s.userID)

	s.NoError(s.handler.List(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *RecordHandlerSuite) TestList_HalfOpenRange() {
	c, rec := newContext(s.e, http.MethodGet, "/api/v1/expenses?start_date=2025-03-01", nil, s.userID)

	s.NoError(s.handler.List(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(string(apperrors.ValidationInvalidDate), decodeError(rec).Error.Code)
}

func (s *RecordHandlerSuite) TestList_InvertedRange() {
	c, rec := newContext(s.e, http.MethodGet, "/api/v1/expenses?start_date=2025-03-31&end_date=2025-03-01", nil, s.userID)

	s.NoError(s.handler.List(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(string(apperrors.ReportInvalidRange), decodeError(rec).Error.Code)
}

func (s *RecordHandlerSuite) TestList_Unauthenticated() {
	c, rec := newContext(s.e, http.MethodGet, "/api/v1/expenses", nil, uuid.Nil)

	s.NoError(s.handler.List(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *RecordHandlerSuite) TestList_ServiceNotAuthenticated() {
	s.records.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, services.ErrNotAuthenticated).Times(1)

	c, rec := newContext(s.e, http.MethodGet, "/api/v1/expenses", nil, s.userID)

	s.NoError(s.handler.List(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal(string(apperrors.AuthNotAuthenticated), decodeError(rec).Error.Code)
}

func (s *RecordHandlerSuite) TestList_DeadlineIsServiceUnavailable() {
	s.records.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, &services.FetchError{Op: services.OpList, Kind: models.KindExpense, Err: context.DeadlineExceeded}).Times(1)

	c, rec := newContext(s.e, http.MethodGet, "/api/v1/expenses", nil, s.userID)

	s.NoError(s.handler.List(c))
	s.Equal(http.StatusServiceUnavailable, rec.Code)
}

func (s *RecordHandlerSuite) TestList_FetchErrorIsBadGateway() {
	s.records.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, &services.FetchError{Op: services.OpList, Kind: models.KindExpense, Err: services.ErrStorePanic}).Times(1)

	c, rec := newContext(s.e, http.MethodGet, "/api/v1/expenses", nil, s.userID)

	s.NoError(s.handler.List(c))
	s.Equal(http.StatusBadGateway, rec.Code)
	s.Equal(string(apperrors.RecordFetchFailed), decodeError(rec).Error.Code)
}

func (s *RecordHandlerSuite) TestCreate() {
	created := s.record()
	s.records.EXPECT().Add(gomock.Any(), models.KindExpense, s.userID, gomock.Any()).DoAndReturn(
		func(ctx context.Context, kind models.Kind, userID uuid.UUID, payload models.Record) (*models.Record, error) {
			s.Equal(models.CategoryFoodDining, payload.Category)
			s.True(decimal.RequireFromString("250.50").Equal(payload.Amount))
			s.Equal(time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC), payload.Date)
			return created, nil
		}).Times(1)

	c, rec := newContext(s.e, http.MethodPost, "/api/v1/expenses", map[string]interface{}{
		"category": models.CategoryFoodDining,
		"amount":   "250.50",
		"date":     "2025-03-05",
	}, s.userID)

	s.NoError(s.handler.Create(c))
	s.Equal(http.StatusCreated, rec.Code)
	s.Contains(rec.Body.String(), created.ID.String())
}

func (s *RecordHandlerSuite) TestCreate_Invalid() {
	testCases := []struct {
		name string
		body map[string]interface{}
	}{
		{"negative amount", map[string]interface{}{"category": "food_dining", "amount": "-5", "date": "2025-03-05"}},
		{"three decimals", map[string]interface{}{"category": "food_dining", "amount": "1.234", "date": "2025-03-05"}},
		{"bad category", map[string]interface{}{"category": "Food Dining", "amount": "5", "date": "2025-03-05"}},
		{"bad date", map[string]interface{}{"category": "food_dining", "amount": "5", "date": "05/03/2025"}},
		{"missing date", map[string]interface{}{"category": "food_dining", "amount": "5"}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			c, rec := newContext(s.e, http.MethodPost, "/api/v1/expenses", tc.body, s.userID)

			s.NoError(s.handler.Create(c))
			s.Equal(http.StatusBadRequest, rec.Code)
			s.Equal(string(apperrors.ValidationGeneral), decodeError(rec).Error.Code)
		})
	}
}

func (s *RecordHandlerSuite) TestGet_NotFound() {
	id := uuid.New()
	s.records.EXPECT().Get(gomock.Any(), models.KindExpense, s.userID, id).
		Return(nil, &services.FetchError{Op: services.OpGet, Kind: models.KindExpense, Err: repositories.ErrRecordNotFound}).Times(1)

	c, rec := newContext(s.e, http.MethodGet, "/api/v1/expenses/"+id.String(), nil, s.userID)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	s.NoError(s.handler.Get(c))
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal(string(apperrors.RecordNotFound), decodeError(rec).Error.Code)
}

func (s *RecordHandlerSuite) TestGet_InvalidID() {
	c, rec := newContext(s.e, http.MethodGet, "/api/v1/expenses/nope", nil, s.userID)
	c.SetParamNames("id")
	c.SetParamValues("nope")

	s.NoError(s.handler.Get(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(string(apperrors.RecordInvalidID), decodeError(rec).Error.Code)
}

func (s *RecordHandlerSuite) TestUpdate() {
	stored := s.record()
	s.records.EXPECT().Update(gomock.Any(), models.KindExpense, s.userID, stored.ID, gomock.Any()).DoAndReturn(
		func(ctx context.Context, kind models.Kind, userID, id uuid.UUID, update models.RecordUpdate) (*models.Record, error) {
			s.Nil(update.Category)
			s.Require().NotNil(update.Amount)
			s.True(decimal.NewFromInt(300).Equal(*update.Amount))
			stored.Amount = *update.Amount
			return stored, nil
		}).Times(1)

	c, rec := newContext(s.e, http.MethodPatch, "/api/v1/expenses/"+stored.ID.String(), map[string]interface{}{
		"amount": "300",
	}, s.userID)
	c.SetParamNames("id")
	c.SetParamValues(stored.ID.String())

	s.NoError(s.handler.Update(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *RecordHandlerSuite) TestUpdate_NullDescriptionClears() {
	stored := s.record()
	s.records.EXPECT().Update(gomock.Any(), models.KindExpense, s.userID, stored.ID, gomock.Any()).DoAndReturn(
		func(ctx context.Context, kind models.Kind, userID, id uuid.UUID, update models.RecordUpdate) (*models.Record, error) {
			s.True(update.ClearDescription)
			s.Nil(update.Description)
			s.Nil(update.Amount)
			return stored, nil
		}).Times(1)

	c, rec := newContext(s.e, http.MethodPatch, "/api/v1/expenses/"+stored.ID.String(), map[string]interface{}{
		"description": nil,
	}, s.userID)
	c.SetParamNames("id")
	c.SetParamValues(stored.ID.String())

	s.NoError(s.handler.Update(c))
	s.Equal(http.StatusOK, rec.Code)

	var response struct {
		Data dto.RecordResponse `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Nil(response.Data.Description)
}

func (s *RecordHandlerSuite) TestUpdate_AbsentDescriptionIsUntouched() {
	stored := s.record()
	s.records.EXPECT().Update(gomock.Any(), models.KindExpense, s.userID, stored.ID, gomock.Any()).DoAndReturn(
		func(ctx context.Context, kind models.Kind, userID, id uuid.UUID, update models.RecordUpdate) (*models.Record, error) {
			s.False(update.ClearDescription)
			s.Require().NotNil(update.Category)
			return stored, nil
		}).Times(1)

	c, rec := newContext(s.e, http.MethodPatch, "/api/v1/expenses/"+stored.ID.String(), map[string]interface{}{
		"category": models.CategoryFoodDining,
	}, s.userID)
	c.SetParamNames("id")
	c.SetParamValues(stored.ID.String())

	s.NoError(s.handler.Update(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *RecordHandlerSuite) TestUpdate_Empty() {
	id := uuid.New()
	s.records.EXPECT().Update(gomock.Any(), models.KindExpense, s.userID, id, models.RecordUpdate{}).
		Return(nil, &services.FetchError{Op: services.OpUpdate, Kind: models.KindExpense, Err: repositories.ErrEmptyUpdate}).Times(1)

	c, rec := newContext(s.e, http.MethodPatch, "/api/v1/expenses/"+id.String(), map[string]interface{}{}, s.userID)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	s.NoError(s.handler.Update(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(string(apperrors.RecordEmptyUpdate), decodeError(rec).Error.Code)
}

func (s *RecordHandlerSuite) TestDelete() {
	id := uuid.New()
	s.records.EXPECT().Delete(gomock.Any(), models.KindExpense, s.userID, id).Return(nil).Times(1)

	c, rec := newContext(s.e, http.MethodDelete, "/api/v1/expenses/"+id.String(), nil, s.userID)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	s.NoError(s.handler.Delete(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "expense deleted")
}
