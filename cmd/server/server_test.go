package main

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"finance-tracker/internal/config"
	"finance-tracker/internal/database"
	"finance-tracker/internal/dto"
	apperrors "finance-tracker/internal/errors"
	"finance-tracker/internal/events"
	"finance-tracker/internal/middleware"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ServerTestSuite struct {
	suite.Suite
	app *application
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func (s *ServerTestSuite) SetupTest() {
	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	s.Require().NoError(err)

	cfg := &config.Config{
		Server: config.ServerConfig{
			Environment:      config.EnvTesting,
			CORSAllowOrigins: []string{"*"},
		},
		JWT: config.JWTConfig{
			AccessTokenDuration: time.Hour,
			PrivateKey:          privateKey,
			PublicKey:           publicKey,
			Issuer:              "finance-tracker",
		},
		Security: config.SecurityConfig{
			BCryptCost:         4,
			RateLimitPerSecond: 1000,
			RateLimitBurst:     1000,
			MaxFailedAttempts:  5,
			LockoutDuration:    time.Minute,
			PasswordMinLength:  8,
		},
		Report: config.ReportConfig{RecentLimit: 5, Currency: "INR"},
	}

	db := database.SetupTestDB(s.T())
	s.app, err = newApplication(cfg, db, events.NewNoopPublisher(), prometheus.NewRegistry(), slog.Default())
	s.Require().NoError(err)
}

func (s *ServerTestSuite) do(method, target string, body interface{}, token string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.app.echo.ServeHTTP(rec, req)
	return rec
}

func (s *ServerTestSuite) signUpAndIn(email string) string {
	signUp := s.do(http.MethodPost, "/api/v1/auth/signup", dto.SignUpRequest{
		Email:    email,
		Password: "rupees2025",
		FullName: "Asha",
	}, "")
	s.Require().Equal(http.StatusCreated, signUp.Code, signUp.Body.String())

	signIn := s.do(http.MethodPost, "/api/v1/auth/signin", dto.SignInRequest{
		Email:    email,
		Password: "rupees2025",
	}, "")
	s.Require().Equal(http.StatusOK, signIn.Code, signIn.Body.String())

	var tokens struct {
		Data dto.TokenResponse `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(signIn.Body.Bytes(), &tokens))
	s.Require().NotEmpty(tokens.Data.AccessToken)
	return tokens.Data.AccessToken
}

func (s *ServerTestSuite) errorCode(rec *httptest.ResponseRecorder) string {
	var response apperrors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	return response.Error.Code
}

func (s *ServerTestSuite) TestRoutesRegistered() {
	registered := map[string]bool{}
	for _, route := range s.app.echo.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	expected := []string{
		"GET /health",
		"GET /metrics",
		"POST /api/v1/auth/signup",
		"POST /api/v1/auth/signin",
		"POST /api/v1/auth/signout",
		"GET /api/v1/auth/me",
		"PATCH /api/v1/auth/me",
		"GET /api/v1/categories",
		"GET /api/v1/expenses",
		"POST /api/v1/expenses",
		"GET /api/v1/expenses/:id",
		"PATCH /api/v1/expenses/:id",
		"DELETE /api/v1/expenses/:id",
		"GET /api/v1/earnings",
		"DELETE /api/v1/earnings/:id",
		"GET /api/v1/transactions/recent",
		"GET /api/v1/transactions",
		"GET /api/v1/reports/dashboard",
		"GET /api/v1/reports/monthly",
		"GET /api/v1/reports/categories",
		"POST /api/v1/dev/sample-data",
	}
	for _, route := range expected {
		s.True(registered[route], "missing route %s", route)
	}
}

func (s *ServerTestSuite) TestSampleDataFeedsReports() {
	token := s.signUpAndIn("seed@example.com")

	seed := s.do(http.MethodPost, "/api/v1/dev/sample-data?months=1", nil, token)
	s.Require().Equal(http.StatusCreated, seed.Code, seed.Body.String())

	dashboard := s.do(http.MethodGet, "/api/v1/reports/dashboard", nil, token)
	s.Require().Equal(http.StatusOK, dashboard.Code, dashboard.Body.String())

	var response struct {
		Data dto.DashboardResponse `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(dashboard.Body.Bytes(), &response))
	s.True(response.Data.Totals.Income.IsPositive())
	s.True(response.Data.Totals.Expense.IsPositive())
	s.NotEmpty(response.Data.Recent)
	s.NotEmpty(response.Data.Categories)
}

func (s *ServerTestSuite) TestHealth() {
	rec := s.do(http.MethodGet, "/health", nil, "")

	s.Equal(http.StatusOK, rec.Code)
	s.NotEmpty(rec.Header().Get(middleware.TraceIDHeader))
	s.Equal("nosniff", rec.Header().Get("X-Content-Type-Options"))
}

func (s *ServerTestSuite) TestProtectedRouteRequiresToken() {
	rec := s.do(http.MethodGet, "/api/v1/expenses", nil, "")

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal(string(apperrors.AuthMissingToken), s.errorCode(rec))
}

func (s *ServerTestSuite) TestUnknownRoute() {
	rec := s.do(http.MethodGet, "/nope", nil, "")

	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal(string(apperrors.SystemRouteNotFound), s.errorCode(rec))
}

func (s *ServerTestSuite) TestUpdateProfile() {
	token := s.signUpAndIn("ravi@example.com")

	update := s.do(http.MethodPatch, "/api/v1/auth/me", dto.UpdateProfileRequest{FullName: "  Ravi Kumar "}, token)
	s.Require().Equal(http.StatusOK, update.Code, update.Body.String())

	me := s.do(http.MethodGet, "/api/v1/auth/me", nil, token)
	s.Require().Equal(http.StatusOK, me.Code)

	var profile struct {
		Data dto.UserProfileResponse `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(me.Body.Bytes(), &profile))
	s.Equal("Ravi Kumar", profile.Data.FullName)
	s.Equal("ravi@example.com", profile.Data.Email)

	anonymous := s.do(http.MethodPatch, "/api/v1/auth/me", dto.UpdateProfileRequest{FullName: "x"}, "")
	s.Equal(http.StatusUnauthorized, anonymous.Code)
}

func (s *ServerTestSuite) TestPatchNullDescriptionClearsIt() {
	token := s.signUpAndIn("meera@example.com")

	created := s.do(http.MethodPost, "/api/v1/expenses", map[string]string{
		"category":    "fuel",
		"amount":      "800",
		"date":        "2025-03-07",
		"description": "highway trip",
	}, token)
	s.Require().Equal(http.StatusCreated, created.Code, created.Body.String())

	var record struct {
		Data dto.RecordResponse `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(created.Body.Bytes(), &record))
	s.Require().NotNil(record.Data.Description)

	cleared := s.do(http.MethodPatch, "/api/v1/expenses/"+record.Data.ID, map[string]interface{}{"description": nil}, token)
	s.Require().Equal(http.StatusOK, cleared.Code, cleared.Body.String())

	fetched := s.do(http.MethodGet, "/api/v1/expenses/"+record.Data.ID, nil, token)
	s.Require().Equal(http.StatusOK, fetched.Code)
	record.Data = dto.RecordResponse{}
	s.Require().NoError(json.Unmarshal(fetched.Body.Bytes(), &record))
	s.Nil(record.Data.Description)
	s.True(decimal.NewFromInt(800).Equal(record.Data.Amount))
}

func (s *ServerTestSuite) TestEndToEnd_MonthlyReportAndSignOut() {
	token := s.signUpAndIn("asha@example.com")

	expense := s.do(http.MethodPost, "/api/v1/expenses", map[string]string{
		"category": "food_dining",
		"amount":   "2000",
		"date":     "2025-03-05",
	}, token)
	s.Require().Equal(http.StatusCreated, expense.Code, expense.Body.String())

	earning := s.do(http.MethodPost, "/api/v1/earnings", map[string]string{
		"category": "salary",
		"amount":   "50000",
		"date":     "2025-03-01",
	}, token)
	s.Require().Equal(http.StatusCreated, earning.Code, earning.Body.String())

	monthly := s.do(http.MethodGet, "/api/v1/reports/monthly?month=2025-03", nil, token)
	s.Require().Equal(http.StatusOK, monthly.Code, monthly.Body.String())

	var report struct {
		Data dto.MonthlyReportResponse `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(monthly.Body.Bytes(), &report))
	s.True(decimal.NewFromInt(50000).Equal(report.Data.Totals.Income))
	s.True(decimal.NewFromInt(2000).Equal(report.Data.Totals.Expense))
	s.True(decimal.NewFromInt(48000).Equal(report.Data.Totals.Balance))
	s.Len(report.Data.Transactions, 2)
	s.Equal("INR", report.Data.Currency)

	signOut := s.do(http.MethodPost, "/api/v1/auth/signout", nil, token)
	s.Require().Equal(http.StatusOK, signOut.Code, signOut.Body.String())

	me := s.do(http.MethodGet, "/api/v1/auth/me", nil, token)
	s.Equal(http.StatusUnauthorized, me.Code)
	s.Equal(string(apperrors.AuthInvalidToken), s.errorCode(me))
}
