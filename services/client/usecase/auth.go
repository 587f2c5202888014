package usecase

import (
	"context"
	"net/http"

	"github.com/jackmarvels/platform/internal/pkg/apperrors"
	"github.com/jackmarvels/platform/internal/pkg/logger"
	"github.com/jackmarvels/platform/internal/pkg/models"
	"github.com/jackmarvels/platform/internal/pkg/validation"
	"github.com/jackmarvels/platform/internal/utils"
	"github.com/jackmarvels/platform/services/client"
)

// SendOTP requests an OTP for mobile. Malformed numbers are rejected locally.
func (u *AuthUC) SendOTP(ctx context.Context, mobile string, otpType models.OTPType) models.APIResponse[models.SendOTPResponse] {
	mobile = validation.SanitizeInput(mobile, validation.InputPhone)
	if msg := validation.ValidateMobile(mobile); msg != "" {
		return client.Failure[models.SendOTPResponse](apperrors.Validation(msg))
	}
	if otpType == "" {
		otpType = models.OTPTypeLogin
	}

	resp := u.gateway.SendOTP(ctx, models.SendOTPRequest{Mobile: mobile, Type: otpType})
	if !resp.Success {
		logger.Warn("Failed to send OTP",
			logger.String("mobile", utils.MaskPhoneNumber(mobile)),
			logger.String("error", resp.Error))
	}
	return friendly(resp)
}

// VerifyOTP signs in. The token pair is stored before the session is
// marked authenticated.
func (u *AuthUC) VerifyOTP(ctx context.Context, mobile, otp string) models.APIResponse[models.LoginResult] {
	u.session.SetLoading(true)
	defer u.session.SetLoading(false)

	mobile = validation.SanitizeInput(mobile, validation.InputPhone)
	if msg := validation.ValidateOTP(otp); msg != "" {
		return client.Failure[models.LoginResult](apperrors.Validation(msg))
	}

	resp := u.gateway.VerifyOTP(ctx, models.VerifyOTPRequest{Mobile: mobile, OTP: otp})
	if !resp.Success {
		logger.Warn("OTP verification failed",
			logger.String("mobile", utils.MaskPhoneNumber(mobile)),
			logger.String("error", resp.Error))
		return friendly(resp)
	}

	if err := u.tokens.Save(ctx, resp.Data.Tokens); err != nil {
		logger.Error("Failed to store tokens", logger.Err(err))
		return client.Failure[models.LoginResult](apperrors.Wrap(err, apperrors.KindInternal, "Failed to store session"))
	}
	if err := u.session.SetAuthenticated(ctx, resp.Data.User); err != nil {
		logger.Error("Failed to store session", logger.Err(err))
		return client.Failure[models.LoginResult](apperrors.Wrap(err, apperrors.KindInternal, "Failed to store session"))
	}

	logger.Info("User signed in", logger.UserID(resp.Data.User.ID))
	return resp
}

// Register validates the form locally and creates the account
func (u *AuthUC) Register(ctx context.Context, req models.RegistrationRequest) models.APIResponse[models.User] {
	if result := validation.ValidateRegistrationData(req); !result.IsValid {
		return client.Failure[models.User](apperrors.Validation(result.Errors...))
	}

	resp := u.gateway.Register(ctx, req)
	if !resp.Success {
		logger.Warn("Registration failed",
			logger.String("email", utils.MaskEmail(req.Email)),
			logger.String("error", resp.Error))
		return friendly(resp)
	}

	logger.Info("User registered", logger.UserID(resp.Data.ID))
	return resp
}

// RefreshSession exchanges the stored refresh token for a new pair.
// A rejected refresh signs the user out locally.
func (u *AuthUC) RefreshSession(ctx context.Context) models.APIResponse[models.AuthTokens] {
	current, err := u.tokens.Tokens(ctx)
	if err != nil {
		return client.Failure[models.AuthTokens](apperrors.Wrap(err, apperrors.KindInternal, "Failed to read session"))
	}
	if current == nil || current.RefreshToken == "" {
		return client.Failure[models.AuthTokens](apperrors.Unauthorized("Not signed in"))
	}

	resp := u.gateway.RefreshToken(ctx, current.RefreshToken)
	if !resp.Success {
		if resp.StatusCode == http.StatusUnauthorized {
			u.clearLocal(ctx)
		}
		return friendly(resp)
	}

	if err := u.tokens.Save(ctx, resp.Data); err != nil {
		return client.Failure[models.AuthTokens](apperrors.Wrap(err, apperrors.KindInternal, "Failed to store session"))
	}
	return resp
}

// Logout always clears the local session, even when the backend call fails
func (u *AuthUC) Logout(ctx context.Context) models.APIResponse[bool] {
	resp := u.gateway.Logout(ctx)
	if !resp.Success {
		logger.Warn("Backend logout failed, clearing local session anyway",
			logger.String("error", resp.Error))
	}

	u.clearLocal(ctx)
	return models.APIResponse[bool]{Success: true, Data: true, StatusCode: http.StatusOK}
}

func (u *AuthUC) clearLocal(ctx context.Context) {
	if err := u.tokens.Clear(ctx); err != nil {
		logger.Error("Failed to clear tokens", logger.Err(err))
	}
	if err := u.session.ClearSession(ctx); err != nil {
		logger.Error("Failed to clear session", logger.Err(err))
	}
}

// GetProfile fetches the signed in user and refreshes the cached copy
func (u *AuthUC) GetProfile(ctx context.Context) models.APIResponse[models.User] {
	resp := u.gateway.GetProfile(ctx)
	if !resp.Success {
		return friendly(resp)
	}
	if err := u.session.UpdateUser(ctx, resp.Data); err != nil {
		logger.Warn("Failed to cache profile", logger.Err(err))
	}
	return resp
}

// UpdateProfile validates the changed fields and saves them
func (u *AuthUC) UpdateProfile(ctx context.Context, update models.ProfileUpdate) models.APIResponse[models.User] {
	var errs []string
	if update.Email != nil {
		if msg := validation.ValidateEmail(*update.Email); msg != "" {
			errs = append(errs, msg)
		}
	}
	if update.Pincode != nil {
		if msg := validation.ValidatePincode(*update.Pincode); msg != "" {
			errs = append(errs, msg)
		}
	}
	if len(errs) > 0 {
		return client.Failure[models.User](apperrors.Validation(errs...))
	}

	resp := u.gateway.UpdateProfile(ctx, update)
	if !resp.Success {
		return friendly(resp)
	}
	if err := u.session.UpdateUser(ctx, resp.Data); err != nil {
		logger.Warn("Failed to cache profile", logger.Err(err))
	}
	return resp
}
