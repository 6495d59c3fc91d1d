package repositories

import (
	"context"
	"time"

	"finance-tracker/internal/models"

	"github.com/google/uuid"
)

// RecordRepositoryInterface reads and writes one kind's collection. Every operation is
// scoped to a single user.
type RecordRepositoryInterface interface {
	Kind() models.Kind
	List(ctx context.Context, filters models.RecordFilters) ([]models.Record, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Record, error)
	Create(ctx context.Context, record *models.Record) error
	Update(ctx context.Context, userID, id uuid.UUID, update models.RecordUpdate) (*models.Record, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// UserRepositoryInterface defines the contract for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	UpdateLoginState(user *models.User) error
	// Update stores the editable profile fields
	Update(ctx context.Context, user *models.User) error
}

// BlacklistedTokenRepositoryInterface defines the contract for blacklisted token repository operations
type BlacklistedTokenRepositoryInterface interface {
	Create(token *models.BlacklistedToken) error
	GetByJTI(jti string) (*models.BlacklistedToken, error)
	DeleteExpired(now time.Time) (int64, error)
}
