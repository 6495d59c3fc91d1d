package services

import (
	"context"
	"time"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/models"

	"github.com/google/uuid"
)

// CategoryServiceInterface exposes the expense and earning category registries
type CategoryServiceInterface interface {
	// LabelFor returns the display label for a code, deriving one for unregistered codes
	LabelFor(code string, kind models.Kind) string
	// ColorFor returns the chart colour for an output position, wrapping around the palette
	ColorFor(index int) string
	IsValid(code string, kind models.Kind) bool
	AllCodes(kind models.Kind) []string
	EntryFor(code string, kind models.Kind) (models.CategoryEntry, bool)
	// EmojiFor returns the leading marker of a registered label
	EmojiFor(code string, kind models.Kind) string
	Categories(kind models.Kind) []models.CategoryEntry
}

// RecordServiceInterface is the store boundary for expenses and earnings.
// Store failures come back as *FetchError.
type RecordServiceInterface interface {
	List(ctx context.Context, kind models.Kind, filters models.RecordFilters) ([]models.Record, error)
	Get(ctx context.Context, kind models.Kind, userID, id uuid.UUID) (*models.Record, error)
	Add(ctx context.Context, kind models.Kind, userID uuid.UUID, payload models.Record) (*models.Record, error)
	Update(ctx context.Context, kind models.Kind, userID, id uuid.UUID, update models.RecordUpdate) (*models.Record, error)
	Delete(ctx context.Context, kind models.Kind, userID, id uuid.UUID) error
}

// AggregationServiceInterface derives summaries from transaction lists. It holds no state.
type AggregationServiceInterface interface {
	Totals(txs []models.Transaction) models.Totals
	CategorySummary(txs []models.Transaction, year int, month time.Month, kind models.Kind) []models.CategorySummaryItem
	WeeklyBreakdown(txs []models.Transaction, year int, month time.Month) []models.WeekBucket
	FilterTransactions(txs []models.Transaction, filter models.TransactionFilter) []models.Transaction
}

// ReportServiceInterface assembles the views that combine both collections
type ReportServiceInterface interface {
	RecentTransactions(ctx context.Context, userID uuid.UUID, limit int) ([]models.Transaction, error)
	MonthlyTransactions(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]models.Transaction, error)
	CategorySummary(ctx context.Context, userID uuid.UUID, year int, month time.Month, kind models.Kind) ([]models.CategorySummaryItem, error)
	MonthlyReport(ctx context.Context, userID uuid.UUID, year int, month time.Month, filter models.TransactionFilter) (*models.MonthlyReport, error)
	Dashboard(ctx context.Context, userID uuid.UUID, now time.Time) (*models.Dashboard, error)
}

// AuthServiceInterface defines authentication operations
type AuthServiceInterface interface {
	SignUp(req *dto.SignUpRequest) (*models.User, error)
	SignIn(req *dto.SignInRequest) (*dto.TokenResponse, error)
	SignOut(claims *models.CustomClaims) error
	CurrentUser(userID uuid.UUID) (*models.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, fullName string) (*models.User, error)
	IsTokenRevoked(jti string) (bool, error)
	CleanupExpiredTokens() (int64, error)
}

// PasswordServiceInterface defines password hashing operations
type PasswordServiceInterface interface {
	ValidatePassword(password string) error
	HashPassword(password string) (string, error)
	ComparePassword(password, hash string) bool
}

// TokenServiceInterface defines JWT token operations
type TokenServiceInterface interface {
	GenerateAccessToken(user *models.User) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

// MetricsRecorderInterface records application metrics
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

// SampleDataGeneratorInterface produces demo records for development environments
type SampleDataGeneratorInterface interface {
	GenerateMonth(userID uuid.UUID, year int, month time.Month) (*models.SampleData, error)
}
