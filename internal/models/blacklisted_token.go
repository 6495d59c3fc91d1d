package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultRevocationTTL bounds a blacklist entry for a token that carries no expiry.
const DefaultRevocationTTL = 24 * time.Hour

var ErrUnrevocableClaims = errors.New("claims carry no token id or a malformed user id")

// BlacklistedToken is a signed-out access token. The row is only needed until the token
// would have expired on its own.
type BlacklistedToken struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	JTI           string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"jti"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	ExpiresAt     time.Time `gorm:"not null;index" json:"expires_at"`
	BlacklistedAt time.Time `gorm:"not null" json:"blacklisted_at"`
}

// RevokeClaims builds the blacklist entry for claims as of now.
func RevokeClaims(claims *CustomClaims, now time.Time) (*BlacklistedToken, error) {
	if claims == nil || claims.ID == "" {
		return nil, ErrUnrevocableClaims
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, ErrUnrevocableClaims
	}

	expiresAt := now.Add(DefaultRevocationTTL)
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}

	return &BlacklistedToken{
		JTI:           claims.ID,
		UserID:        userID,
		ExpiresAt:     expiresAt.UTC(),
		BlacklistedAt: now.UTC(),
	}, nil
}

func (bt *BlacklistedToken) IsExpired(now time.Time) bool {
	return now.After(bt.ExpiresAt)
}

func (BlacklistedToken) TableName() string {
	return "blacklisted_tokens"
}

func (bt *BlacklistedToken) BeforeCreate(tx *gorm.DB) error {
	if bt.ID == uuid.Nil {
		bt.ID = uuid.New()
	}
	if bt.BlacklistedAt.IsZero() {
		bt.BlacklistedAt = time.Now().UTC()
	}
	return nil
}
