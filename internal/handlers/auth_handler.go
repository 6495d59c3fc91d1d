package handlers

import (
	stderrors "errors"
	"net/http"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/errors"
	"finance-tracker/internal/repositories"
	"finance-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService services.AuthServiceInterface
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(authService services.AuthServiceInterface) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// SignUp handles user registration
// @Summary Register a new user
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.SignUpRequest true "Registration details"
// @Success 201 {object} SuccessResponse{data=dto.UserProfileResponse}
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 or AUTH_008"
// @Failure 409 {object} errors.ErrorResponse "AUTH_007"
// @Router /auth/signup [post]
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req dto.SignUpRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return sendValidationError(c, err)
	}

	user, err := h.authService.SignUp(&req)
	if err != nil {
		switch {
		case stderrors.Is(err, services.ErrUserAlreadyExists):
			return SendError(c, errors.AuthEmailTaken)
		case stderrors.Is(err, services.ErrWeakPassword):
			return SendError(c, errors.AuthWeakPassword, errors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    dto.NewUserProfileResponse(user),
		Message: "User registered successfully",
	})
}

// SignIn handles user authentication
// @Summary Sign in
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.SignInRequest true "Credentials"
// @Success 200 {object} SuccessResponse{data=dto.TokenResponse}
// @Failure 401 {object} errors.ErrorResponse "AUTH_001"
// @Failure 403 {object} errors.ErrorResponse "AUTH_006"
// @Router /auth/signin [post]
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req dto.SignInRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return sendValidationError(c, err)
	}

	tokens, err := h.authService.SignIn(&req)
	if err != nil {
		switch {
		case stderrors.Is(err, services.ErrAccountLocked):
			return SendError(c, errors.AuthAccountLocked)
		case stderrors.Is(err, services.ErrInvalidCredentials):
			return SendError(c, errors.AuthInvalidCredentials)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: tokens})
}

// SignOut revokes the access token used for this request
// @Summary Sign out
// @Tags Authentication
// @Security BearerAuth
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 401 {object} errors.ErrorResponse "AUTH_005"
// @Router /auth/signout [post]
func (h *AuthHandler) SignOut(c echo.Context) error {
	claims, err := getClaimsFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthNotAuthenticated)
	}

	if err := h.authService.SignOut(claims); err != nil {
		if stderrors.Is(err, services.ErrInvalidToken) {
			return SendError(c, errors.AuthInvalidToken)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "Signed out successfully"})
}

// Me returns the signed-in user's profile
// @Summary Current user
// @Tags Authentication
// @Security BearerAuth
// @Produce json
// @Success 200 {object} SuccessResponse{data=dto.UserProfileResponse}
// @Failure 401 {object} errors.ErrorResponse "AUTH_005"
// @Router /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthNotAuthenticated)
	}

	user, err := h.authService.CurrentUser(userID)
	if err != nil {
		if stderrors.Is(err, repositories.ErrUserNotFound) || stderrors.Is(err, services.ErrNotAuthenticated) {
			return SendError(c, errors.AuthNotAuthenticated)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: dto.NewUserProfileResponse(user)})
}

// UpdateProfile changes the signed-in user's full name
// @Summary Update profile
// @Tags Authentication
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} SuccessResponse{data=dto.UserProfileResponse}
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001"
// @Failure 401 {object} errors.ErrorResponse "AUTH_005"
// @Router /auth/me [patch]
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthNotAuthenticated)
	}

	var req dto.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return sendValidationError(c, err)
	}

	user, err := h.authService.UpdateProfile(c.Request().Context(), userID, req.FullName)
	if err != nil {
		switch {
		case stderrors.Is(err, services.ErrInvalidProfile):
			return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
		case stderrors.Is(err, repositories.ErrUserNotFound), stderrors.Is(err, services.ErrNotAuthenticated):
			return SendError(c, errors.AuthNotAuthenticated)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    dto.NewUserProfileResponse(user),
		Message: "Profile updated successfully",
	})
}
