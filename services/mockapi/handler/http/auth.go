package http

import (
	"net/http"

	"github.com/jackmarvels/platform/internal/pkg/apperrors"
	"github.com/jackmarvels/platform/internal/pkg/logger"
	"github.com/jackmarvels/platform/internal/pkg/middleware"
	"github.com/jackmarvels/platform/internal/pkg/models"
	"github.com/jackmarvels/platform/internal/utils"
	"github.com/jackmarvels/platform/services/mockapi"
	"github.com/labstack/echo/v4"
)

// AuthHandler serves the OTP, registration and profile endpoints
type AuthHandler struct {
	mockUC mockapi.MockAPIUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(mockUC mockapi.MockAPIUC) *AuthHandler {
	return &AuthHandler{
		mockUC: mockUC,
	}
}

// bind decodes the request into req and runs the echo validator
func bind(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		logger.Warn("Invalid request payload",
			logger.String("path", c.Path()),
			logger.Err(err))
		return apperrors.New(apperrors.KindBadRequest, "Invalid request payload")
	}
	return c.Validate(req)
}

// SendOTP handles POST /students/send-otp
func (h *AuthHandler) SendOTP(c echo.Context) error {
	var req models.SendOTPRequest
	if err := bind(c, &req); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	resp, err := h.mockUC.SendOTP(c.Request().Context(), req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, resp.Message, resp)
}

// VerifyOTP handles POST /students/verify-otp and POST /auth/login
func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	var req models.VerifyOTPRequest
	if err := bind(c, &req); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	result, err := h.mockUC.VerifyOTP(c.Request().Context(), req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "OTP verified successfully", result)
}

// Register handles POST /students/register
func (h *AuthHandler) Register(c echo.Context) error {
	var req models.RegistrationRequest
	if err := bind(c, &req); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	user, err := h.mockUC.Register(c.Request().Context(), req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Registration successful", user)
}

// RefreshToken handles POST /auth/refresh-token
func (h *AuthHandler) RefreshToken(c echo.Context) error {
	var req models.RefreshTokenRequest
	if err := bind(c, &req); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	tokens, err := h.mockUC.RefreshToken(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Token refreshed", tokens)
}

// Logout handles POST /auth/logout
func (h *AuthHandler) Logout(c echo.Context) error {
	ok, err := h.mockUC.Logout(c.Request().Context(), middleware.CurrentUserID(c))
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Logged out successfully", ok)
}

// GetProfile handles GET /students/profile
func (h *AuthHandler) GetProfile(c echo.Context) error {
	user, err := h.mockUC.GetProfile(c.Request().Context(), middleware.CurrentUserID(c))
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", user)
}

// UpdateProfile handles PUT /students/profile
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	var update models.ProfileUpdate
	if err := bind(c, &update); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	user, err := h.mockUC.UpdateProfile(c.Request().Context(), middleware.CurrentUserID(c), update)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Profile updated successfully", user)
}

// UploadAvatar handles POST /students/profile/avatar
func (h *AuthHandler) UploadAvatar(c echo.Context) error {
	var req models.AvatarUploadRequest
	if err := bind(c, &req); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	user, err := h.mockUC.UploadAvatar(c.Request().Context(), middleware.CurrentUserID(c), req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Avatar updated successfully", user)
}

// GetSchools handles GET /students/schools?q=
func (h *AuthHandler) GetSchools(c echo.Context) error {
	schools, err := h.mockUC.GetSchools(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", schools)
}
