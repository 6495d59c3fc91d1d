package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"finance-tracker/internal/config"
	"finance-tracker/internal/dto"
	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"
	"finance-tracker/internal/validation"

	"github.com/google/uuid"
)

const (
	AuthEventSignUp       = "signup"
	AuthEventSignIn       = "signin"
	AuthEventSignInFailed = "signin_failed"
	AuthEventLocked       = "account_locked"
	AuthEventSignOut      = "signout"
	AuthEventProfile      = "profile_updated"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountLocked      = errors.New("account is locked due to too many failed attempts")
	ErrUserAlreadyExists  = errors.New("user with this email already exists")
	ErrWeakPassword       = errors.New("password does not meet the strength requirements")
	ErrInvalidProfile     = errors.New("invalid profile")
)

// AuthService handles authentication business logic
type AuthService struct {
	userRepo             repositories.UserRepositoryInterface
	blacklistedTokenRepo repositories.BlacklistedTokenRepositoryInterface
	passwordService      PasswordServiceInterface
	tokenService         TokenServiceInterface
	metrics              MetricsRecorderInterface
	maxFailedAttempts    int
	lockoutDuration      time.Duration
	now                  func() time.Time
	logger               *slog.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(
	userRepo repositories.UserRepositoryInterface,
	blacklistedTokenRepo repositories.BlacklistedTokenRepositoryInterface,
	passwordService PasswordServiceInterface,
	tokenService TokenServiceInterface,
	metrics MetricsRecorderInterface,
	security config.SecurityConfig,
	logger *slog.Logger,
) AuthServiceInterface {
	maxAttempts := security.MaxFailedAttempts
	if maxAttempts <= 0 {
		maxAttempts = 5
	}
	lockout := security.LockoutDuration
	if lockout <= 0 {
		lockout = 15 * time.Minute
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &AuthService{
		userRepo:             userRepo,
		blacklistedTokenRepo: blacklistedTokenRepo,
		passwordService:      passwordService,
		tokenService:         tokenService,
		metrics:              metrics,
		maxFailedAttempts:    maxAttempts,
		lockoutDuration:      lockout,
		now:                  time.Now,
		logger:               logger,
	}
}

// SignUp creates a new user
func (s *AuthService) SignUp(req *dto.SignUpRequest) (*models.User, error) {
	if err := s.passwordService.ValidatePassword(req.Password); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWeakPassword, err)
	}

	existingUser, err := s.userRepo.GetByEmail(req.Email)
	if err != nil && !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existingUser != nil {
		return nil, ErrUserAlreadyExists
	}

	hashedPassword, err := s.passwordService.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hashedPassword,
		FullName:     req.FullName,
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrEmailAlreadyExists) {
			return nil, ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("user signed up", "user_id", user.ID)
	s.count(AuthEventSignUp)

	return user, nil
}

// SignIn checks the credentials and issues an access token
func (s *AuthService) SignIn(req *dto.SignInRequest) (*dto.TokenResponse, error) {
	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			s.count(AuthEventSignInFailed)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	now := s.now()
	if user.IsLocked(now) {
		s.count(AuthEventSignInFailed)
		return nil, ErrAccountLocked
	}

	if !s.passwordService.ComparePassword(req.Password, user.PasswordHash) {
		user.RegisterFailedAttempt(now, s.maxFailedAttempts, s.lockoutDuration)
		if err := s.userRepo.UpdateLoginState(user); err != nil {
			// Security: never reveal user existence via error messages
			s.logger.Error("failed to update login attempts",
				"error", err,
				"user_id", user.ID)
		}

		if user.IsLocked(now) {
			s.logger.Warn("account locked", "user_id", user.ID, "until", user.LockedUntil)
			s.count(AuthEventLocked)
		}
		s.count(AuthEventSignInFailed)
		return nil, ErrInvalidCredentials
	}

	user.RegisterSuccessfulLogin(now)
	if err := s.userRepo.UpdateLoginState(user); err != nil {
		s.logger.Warn("failed to reset login attempts",
			"error", err,
			"user_id", user.ID)
	}

	accessToken, expiresAt, err := s.tokenService.GenerateAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	s.count(AuthEventSignIn)

	return &dto.TokenResponse{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
		User:        dto.NewUserProfileResponse(user),
	}, nil
}

// SignOut blacklists the token identified by claims until it would have expired anyway
func (s *AuthService) SignOut(claims *models.CustomClaims) error {
	token, err := models.RevokeClaims(claims, s.now())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if err := s.blacklistedTokenRepo.Create(token); err != nil {
		return fmt.Errorf("failed to blacklist token: %w", err)
	}

	s.count(AuthEventSignOut)
	return nil
}

func (s *AuthService) CurrentUser(userID uuid.UUID) (*models.User, error) {
	if userID == uuid.Nil {
		return nil, ErrNotAuthenticated
	}
	return s.userRepo.GetByID(userID)
}

// UpdateProfile changes the display name. Surrounding whitespace is dropped and an empty
// name is allowed.
func (s *AuthService) UpdateProfile(ctx context.Context, userID uuid.UUID, fullName string) (*models.User, error) {
	if userID == uuid.Nil {
		return nil, ErrNotAuthenticated
	}

	fullName = strings.TrimSpace(fullName)
	if err := validation.GetValidator().GetValidate().Var(fullName, "max=200"); err != nil {
		return nil, fmt.Errorf("%w: full name must not exceed 200 characters", ErrInvalidProfile)
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	user.FullName = fullName
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	s.logger.Info("profile updated", "user_id", user.ID)
	s.count(AuthEventProfile)

	return user, nil
}

// IsTokenRevoked reports whether the JTI was signed out
func (s *AuthService) IsTokenRevoked(jti string) (bool, error) {
	token, err := s.blacklistedTokenRepo.GetByJTI(jti)
	if err != nil {
		if errors.Is(err, repositories.ErrTokenNotFound) {
			return false, nil
		}
		return false, err
	}
	return !token.IsExpired(s.now()), nil
}

// CleanupExpiredTokens drops blacklist entries whose tokens have expired
func (s *AuthService) CleanupExpiredTokens() (int64, error) {
	removed, err := s.blacklistedTokenRepo.DeleteExpired(s.now())
	if err != nil {
		return 0, err
	}
	if s.metrics != nil {
		s.metrics.RecordGauge(MetricExpiredTokens, float64(removed), nil)
	}
	return removed, nil
}

func (s *AuthService) count(eventType string) {
	if s.metrics != nil {
		s.metrics.IncrementCounter(MetricAuthEvent, map[string]string{"event_type": eventType})
	}
}
