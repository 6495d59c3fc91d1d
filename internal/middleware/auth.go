package middleware

import (
	stderrors "errors"
	"log/slog"

	"finance-tracker/internal/errors"
	"finance-tracker/internal/handlers"
	"finance-tracker/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RevocationChecker reports whether a token ID was signed out
type RevocationChecker interface {
	IsTokenRevoked(jti string) (bool, error)
}

// RequireAuth creates a middleware that requires a valid JWT access token
// and checks that the token has not been signed out
func RequireAuth(tokenService services.TokenServiceInterface, revocations RevocationChecker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return handlers.SendError(c, errors.AuthMissingToken)
			}

			token, err := tokenService.ExtractTokenFromHeader(authHeader)
			if err != nil {
				return handlers.SendError(c, errors.AuthInvalidToken)
			}

			claims, err := tokenService.ValidateAccessToken(token)
			if err != nil {
				if stderrors.Is(err, services.ErrExpiredToken) {
					return handlers.SendError(c, errors.AuthExpiredToken)
				}
				return handlers.SendError(c, errors.AuthInvalidToken)
			}

			revoked, err := revocations.IsTokenRevoked(claims.ID)
			if err != nil {
				// fail closed
				slog.ErrorContext(c.Request().Context(), "failed to check token blacklist",
					"trace_id", GetTraceID(c),
					"error", err)
				return handlers.SendError(c, errors.SystemServiceUnavailable)
			}
			if revoked {
				return handlers.SendError(c, errors.AuthInvalidToken, errors.WithDetails("Token has been revoked"))
			}

			userID, err := uuid.Parse(claims.UserID)
			if err != nil {
				return handlers.SendError(c, errors.AuthInvalidToken, errors.WithDetails("Invalid user ID in token"))
			}

			c.Set(handlers.UserIDContextKey, userID)
			c.Set(handlers.ClaimsContextKey, claims)
			c.Set("user_email", claims.Email)
			c.Set("token_jti", claims.ID)

			return next(c)
		}
	}
}
