package usecase

import (
	"context"
	"strings"

	"github.com/jackmarvels/platform/internal/pkg/apperrors"
	"github.com/jackmarvels/platform/internal/pkg/logger"
	"github.com/jackmarvels/platform/internal/pkg/models"
	"github.com/jackmarvels/platform/internal/pkg/nsq"
	"github.com/jackmarvels/platform/internal/pkg/validation"
	"github.com/jackmarvels/platform/internal/utils"
)

// Development OTP flow constants
const (
	MockSMSHash      = "mock_sms_hash_abc123"
	OTPExpirySeconds = 300
)

// otpCredentials maps the mobiles accepted by the mock OTP flow to their OTP
var otpCredentials = map[string]string{
	"9876543210": "123456",
	"8765432109": "123456",
}

// SendOTP accepts only the seeded mobile numbers
func (u *MockAPIUC) SendOTP(ctx context.Context, req models.SendOTPRequest) (models.SendOTPResponse, error) {
	if err := u.wait(ctx); err != nil {
		return models.SendOTPResponse{}, err
	}

	if _, ok := otpCredentials[req.Mobile]; !ok {
		logger.Warn("OTP requested for unknown mobile",
			logger.String("mobile", utils.MaskPhoneNumber(req.Mobile)))
		return models.SendOTPResponse{}, apperrors.New(apperrors.KindInvalidMobile, "Invalid mobile number")
	}

	logger.Info("Mock OTP sent",
		logger.String("mobile", utils.MaskPhoneNumber(req.Mobile)),
		logger.String("type", string(req.Type)))

	return models.SendOTPResponse{
		Message:   "OTP sent successfully",
		SMSHash:   MockSMSHash,
		ExpiresIn: OTPExpirySeconds,
	}, nil
}

// VerifyOTP exchanges a valid mobile/OTP pair for the user and a token pair
func (u *MockAPIUC) VerifyOTP(ctx context.Context, req models.VerifyOTPRequest) (models.LoginResult, error) {
	if err := u.wait(ctx); err != nil {
		return models.LoginResult{}, err
	}

	invalid := apperrors.New(apperrors.KindInvalidCredentials, "Invalid mobile number or OTP")

	otp, ok := otpCredentials[req.Mobile]
	if !ok || otp != req.OTP {
		logger.Warn("OTP verification failed",
			logger.String("mobile", utils.MaskPhoneNumber(req.Mobile)))
		return models.LoginResult{}, invalid
	}

	user, ok := u.store.FindUserByMobile(req.Mobile)
	if !ok {
		return models.LoginResult{}, invalid
	}

	tokens, err := u.issuer.Issue(user)
	if err != nil {
		logger.Error("Failed to issue tokens", logger.UserID(user.ID), logger.Err(err))
		return models.LoginResult{}, apperrors.From(err)
	}

	logger.Info("User logged in", logger.UserID(user.ID))
	return models.LoginResult{User: user, Tokens: tokens}, nil
}

// Login is the OTP verification used by the login screen
func (u *MockAPIUC) Login(ctx context.Context, req models.VerifyOTPRequest) (models.LoginResult, error) {
	return u.VerifyOTP(ctx, req)
}

// Register validates the form and creates a student account
func (u *MockAPIUC) Register(ctx context.Context, req models.RegistrationRequest) (models.User, error) {
	if err := u.wait(ctx); err != nil {
		return models.User{}, err
	}

	if result := validation.ValidateRegistrationData(req); !result.IsValid {
		return models.User{}, apperrors.Validation(result.Errors...)
	}

	email := strings.TrimSpace(req.Email)
	mobile := strings.TrimSpace(req.Mobile)

	if _, exists := u.store.FindUserByEmail(email); exists {
		logger.Warn("Registration with existing email", logger.String("email", utils.MaskEmail(email)))
		return models.User{}, apperrors.New(apperrors.KindDuplicateEmail, "User with this email already exists")
	}
	if _, exists := u.store.FindUserByMobile(mobile); exists {
		logger.Warn("Registration with existing mobile", logger.String("mobile", utils.MaskPhoneNumber(mobile)))
		return models.User{}, apperrors.New(apperrors.KindDuplicateMobile, "User with this mobile number already exists")
	}

	user := u.store.AddUser(models.User{
		FirstName:  strings.TrimSpace(req.FirstName),
		LastName:   strings.TrimSpace(req.LastName),
		Email:      email,
		Mobile:     mobile,
		State:      strings.TrimSpace(req.State),
		District:   strings.TrimSpace(req.District),
		City:       strings.TrimSpace(req.City),
		Pincode:    strings.TrimSpace(req.Pincode),
		SchoolName: strings.TrimSpace(req.SchoolName),
		SchoolID:   req.SchoolID,
		RoleID:     models.RoleStudent,
		IsActive:   true,
	})

	u.store.AddNotification(models.Notification{
		UserID:  user.ID,
		Title:   "Welcome to Jack Marvels",
		Message: "Your account is ready. Explore events and show your talent!",
		Type:    models.NotificationWelcome,
	})
	u.publish(ctx, nsq.TopicUserRegistered, user)

	logger.Info("User registered", logger.UserID(user.ID))
	return user, nil
}

// RefreshToken exchanges a refresh token for a new pair
func (u *MockAPIUC) RefreshToken(ctx context.Context, refreshToken string) (models.AuthTokens, error) {
	if err := u.wait(ctx); err != nil {
		return models.AuthTokens{}, err
	}

	tokens, err := u.issuer.Refresh(refreshToken)
	if err != nil {
		logger.Warn("Token refresh rejected", logger.String("token", utils.MaskToken(refreshToken)))
		if _, ok := apperrors.As(err); ok {
			return models.AuthTokens{}, err
		}
		return models.AuthTokens{}, apperrors.Unauthorized("Invalid refresh token")
	}
	return tokens, nil
}

// Logout always succeeds; the mock keeps no server-side session
func (u *MockAPIUC) Logout(ctx context.Context, userID string) (bool, error) {
	if err := u.wait(ctx); err != nil {
		return false, err
	}
	logger.Info("User logged out", logger.UserID(userID))
	return true, nil
}

// GetProfile returns the stored user
func (u *MockAPIUC) GetProfile(ctx context.Context, userID string) (models.User, error) {
	if err := u.wait(ctx); err != nil {
		return models.User{}, err
	}

	user, ok := u.store.FindUserByID(userID)
	if !ok {
		return models.User{}, apperrors.NotFound("User")
	}
	return user, nil
}

// UpdateProfile merges the set fields of update onto the user
func (u *MockAPIUC) UpdateProfile(ctx context.Context, userID string, update models.ProfileUpdate) (models.User, error) {
	if err := u.wait(ctx); err != nil {
		return models.User{}, err
	}

	if _, ok := u.store.FindUserByID(userID); !ok {
		return models.User{}, apperrors.NotFound("User")
	}
	if update.Email != nil {
		if msg := validation.ValidateEmail(*update.Email); msg != "" {
			return models.User{}, apperrors.Validation(msg)
		}
		if other, exists := u.store.FindUserByEmail(*update.Email); exists && other.ID != userID {
			return models.User{}, apperrors.New(apperrors.KindDuplicateEmail, "User with this email already exists")
		}
	}
	if update.Pincode != nil {
		if msg := validation.ValidatePincode(*update.Pincode); msg != "" {
			return models.User{}, apperrors.Validation(msg)
		}
	}

	user, ok := u.store.UpdateUser(userID, update)
	if !ok {
		return models.User{}, apperrors.NotFound("User")
	}
	return user, nil
}

// UploadAvatar replaces the user's avatar URL
func (u *MockAPIUC) UploadAvatar(ctx context.Context, userID string, req models.AvatarUploadRequest) (models.User, error) {
	if err := u.wait(ctx); err != nil {
		return models.User{}, err
	}

	if strings.TrimSpace(req.AvatarURL) == "" {
		return models.User{}, apperrors.Validation("Avatar URL is required")
	}

	user, ok := u.store.UpdateUser(userID, models.ProfileUpdate{AvatarURL: &req.AvatarURL})
	if !ok {
		return models.User{}, apperrors.NotFound("User")
	}
	return user, nil
}
