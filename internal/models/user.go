package models

import (
	"errors"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrEmailRequired   = errors.New("email is required")
	ErrInvalidEmail    = errors.New("invalid email format")
	ErrFullNameTooLong = errors.New("full name must not exceed 200 characters")

	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// User is an identity known to the tracker. Every record is scoped to one.
type User struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	Email               string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash        string     `gorm:"type:varchar(255);not null" json:"-"`
	FullName            string     `gorm:"type:varchar(200)" json:"full_name"`
	FailedLoginAttempts int        `gorm:"default:0" json:"-"`
	LockedUntil         *time.Time `json:"-"`
	LastLoginAt         *time.Time `json:"last_login_at,omitempty"`
	CreatedAt           time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt           time.Time  `gorm:"not null" json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}

	u.Email = NormalizeEmail(u.Email)

	now := time.Now().UTC()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	if u.UpdatedAt.IsZero() {
		u.UpdatedAt = now
	}

	return u.Validate()
}

func (u *User) Validate() error {
	if u.Email == "" {
		return ErrEmailRequired
	}
	if !emailRegex.MatchString(u.Email) {
		return ErrInvalidEmail
	}
	if utf8.RuneCountInString(u.FullName) > 200 {
		return ErrFullNameTooLong
	}
	return nil
}

// IsLocked reports whether sign-in is currently refused.
func (u *User) IsLocked(now time.Time) bool {
	return u.LockedUntil != nil && now.Before(*u.LockedUntil)
}

// RegisterFailedAttempt counts a bad password and locks the user once maxAttempts is reached.
func (u *User) RegisterFailedAttempt(now time.Time, maxAttempts int, lockout time.Duration) {
	u.FailedLoginAttempts++
	if u.FailedLoginAttempts >= maxAttempts {
		until := now.Add(lockout)
		u.LockedUntil = &until
		u.FailedLoginAttempts = 0
	}
}

func (u *User) RegisterSuccessfulLogin(now time.Time) {
	u.FailedLoginAttempts = 0
	u.LockedUntil = nil
	u.LastLoginAt = &now
}

func (u *User) TableName() string {
	return "users"
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
