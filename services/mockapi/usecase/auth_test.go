package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/jackmarvels/platform/internal/pkg/apperrors"
	"github.com/jackmarvels/platform/internal/pkg/models"
	"github.com/jackmarvels/platform/internal/pkg/nsq"
	"github.com/jackmarvels/platform/services/mockapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRegistration() models.RegistrationRequest {
	return models.RegistrationRequest{
		FirstName:  "Asha",
		LastName:   "Verma",
		Email:      "asha.verma@example.com",
		Mobile:     "9123456780",
		State:      "Karnataka",
		District:   "Bengaluru Urban",
		City:       "Bengaluru",
		Pincode:    "560025",
		SchoolName: "Bishop Cotton Girls School",
		SchoolID:   "school_004",
	}
}

func TestSendOTP(t *testing.T) {
	tests := []struct {
		name     string
		mobile   string
		wantErr  bool
		wantKind apperrors.Kind
	}{
		{name: "student mobile", mobile: "9876543210"},
		{name: "influencer mobile", mobile: "8765432109"},
		{name: "unknown mobile", mobile: "0000000000", wantErr: true, wantKind: apperrors.KindInvalidMobile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			f := newFixture(t)

			// Act
			resp, err := f.uc.SendOTP(instant(), models.SendOTPRequest{Mobile: tt.mobile, Type: models.OTPTypeLogin})

			// Assert
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, apperrors.KindOf(err))
				assert.Equal(t, 400, apperrors.StatusOf(err))
				assert.Equal(t, "Invalid mobile number", err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "OTP sent successfully", resp.Message)
			assert.Equal(t, MockSMSHash, resp.SMSHash)
		})
	}
}

func TestVerifyOTP(t *testing.T) {
	t.Run("student pair logs in as user_001", func(t *testing.T) {
		f := newFixture(t)

		result, err := f.uc.VerifyOTP(instant(), models.VerifyOTPRequest{Mobile: "9876543210", OTP: "123456"})

		require.NoError(t, err)
		assert.Equal(t, "user_001", result.User.ID)
		assert.Equal(t, StaticAccessToken, result.Tokens.AccessToken)
		assert.Equal(t, StaticRefreshToken, result.Tokens.RefreshToken)
		assert.Equal(t, StaticExpiresIn, result.Tokens.ExpiresIn)
	})

	t.Run("influencer pair logs in as user_002", func(t *testing.T) {
		f := newFixture(t)

		result, err := f.uc.Login(instant(), models.VerifyOTPRequest{Mobile: "8765432109", OTP: "123456"})

		require.NoError(t, err)
		assert.Equal(t, "user_002", result.User.ID)
	})

	t.Run("wrong otp", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.uc.VerifyOTP(instant(), models.VerifyOTPRequest{Mobile: "9876543210", OTP: "000000"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid mobile number or OTP")
		assert.Equal(t, 401, apperrors.StatusOf(err))
	})

	t.Run("unknown mobile", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.uc.VerifyOTP(instant(), models.VerifyOTPRequest{Mobile: "9000000000", OTP: "123456"})

		assert.Equal(t, apperrors.KindInvalidCredentials, apperrors.KindOf(err))
	})
}

func TestRegister(t *testing.T) {
	t.Run("creates student and welcome notification", func(t *testing.T) {
		// Arrange
		f := newFixture(t)
		req := validRegistration()
		f.eventGW.EXPECT().
			Publish(gomock.Any(), nsq.TopicUserRegistered, gomock.Any()).
			Return(nil)

		// Act
		user, err := f.uc.Register(instant(), req)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "user_1", user.ID)
		assert.Equal(t, req.FirstName, user.FirstName)
		assert.Equal(t, req.LastName, user.LastName)
		assert.Equal(t, models.RoleStudent, user.RoleID)
		assert.Equal(t, fixedNow, user.CreatedAt)

		notifications := f.store.FindNotificationsByUserID(user.ID)
		require.Len(t, notifications, 1)
		assert.Equal(t, models.NotificationWelcome, notifications[0].Type)
	})

	t.Run("duplicate email ignores case", func(t *testing.T) {
		f := newFixture(t)
		req := validRegistration()
		req.Email = "Rahul.Sharma@example.com"

		_, err := f.uc.Register(instant(), req)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "already exists")
		assert.Equal(t, apperrors.KindDuplicateEmail, apperrors.KindOf(err))
		assert.Equal(t, 400, apperrors.StatusOf(err))
		assert.Len(t, f.store.Users(), 2)
	})

	t.Run("duplicate mobile", func(t *testing.T) {
		f := newFixture(t)
		req := validRegistration()
		req.Mobile = "8765432109"

		_, err := f.uc.Register(instant(), req)

		assert.Equal(t, apperrors.KindDuplicateMobile, apperrors.KindOf(err))
		assert.Equal(t, "User with this mobile number already exists", err.Error())
	})

	t.Run("validation errors are joined in order", func(t *testing.T) {
		f := newFixture(t)
		req := validRegistration()
		req.FirstName = ""
		req.Pincode = "012345"

		_, err := f.uc.Register(instant(), req)

		require.Error(t, err)
		assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
		assert.Equal(t, "First name is required, Please enter a valid 6-digit pincode", err.Error())
	})

	t.Run("publish failure does not fail registration", func(t *testing.T) {
		f := newFixture(t)
		f.eventGW.EXPECT().
			Publish(gomock.Any(), nsq.TopicUserRegistered, gomock.Any()).
			Return(errors.New("nsqd down"))

		_, err := f.uc.Register(instant(), validRegistration())

		assert.NoError(t, err)
	})
}

func TestRefreshToken(t *testing.T) {
	f := newFixture(t)

	tokens, err := f.uc.RefreshToken(instant(), StaticRefreshToken)
	require.NoError(t, err)
	assert.Equal(t, StaticRefreshedAccess, tokens.AccessToken)
	assert.Equal(t, StaticRefreshedRefresh, tokens.RefreshToken)

	_, err = f.uc.RefreshToken(instant(), "forged")
	assert.Equal(t, apperrors.KindUnauthorized, apperrors.KindOf(err))
}

func TestProfile(t *testing.T) {
	t.Run("get missing user", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.uc.GetProfile(instant(), "user_missing")

		assert.Equal(t, "User not found", err.Error())
		assert.Equal(t, 404, apperrors.StatusOf(err))
	})

	t.Run("update merges fields", func(t *testing.T) {
		f := newFixture(t)

		user, err := f.uc.UpdateProfile(instant(), "user_001", models.ProfileUpdate{City: strPtr("Pune")})

		require.NoError(t, err)
		assert.Equal(t, "Pune", user.City)
		assert.Equal(t, models.RoleStudent, user.RoleID)
	})

	t.Run("update ignores server owned flags in body", func(t *testing.T) {
		f := newFixture(t)
		var update models.ProfileUpdate
		require.NoError(t, json.Unmarshal([]byte(`{"city":"Pune","isVerified":false,"isActive":false,"roleId":2}`), &update))

		user, err := f.uc.UpdateProfile(instant(), "user_001", update)

		require.NoError(t, err)
		assert.Equal(t, "Pune", user.City)
		assert.True(t, user.IsVerified)
		assert.True(t, user.IsActive)
		assert.Equal(t, models.RoleStudent, user.RoleID)
	})

	t.Run("update rejects email of another user", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.uc.UpdateProfile(instant(), "user_001", models.ProfileUpdate{Email: strPtr("priya.patel@example.com")})

		assert.Equal(t, apperrors.KindDuplicateEmail, apperrors.KindOf(err))
	})

	t.Run("update missing user", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.uc.UpdateProfile(instant(), "user_missing", models.ProfileUpdate{})

		assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
	})

	t.Run("upload avatar", func(t *testing.T) {
		f := newFixture(t)

		user, err := f.uc.UploadAvatar(instant(), "user_002", models.AvatarUploadRequest{AvatarURL: "https://cdn.example.com/a.png"})

		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/a.png", user.AvatarURL)

		_, err = f.uc.UploadAvatar(instant(), "user_missing", models.AvatarUploadRequest{AvatarURL: "https://cdn.example.com/a.png"})
		assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
	})
}

func TestLogout_AlwaysSucceeds(t *testing.T) {
	f := newFixture(t)

	ok, err := f.uc.Logout(instant(), "anyone")

	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestLatency(t *testing.T) {
	t.Run("operations wait for the simulated latency", func(t *testing.T) {
		f := newFixture(t)
		ctx := mockapi.WithLatency(context.Background(), 20*time.Millisecond)

		start := time.Now()
		_, err := f.uc.GetPaymentMethods(ctx)

		assert.NoError(t, err)
		assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	})

	t.Run("cancelled context aborts the operation", func(t *testing.T) {
		f := newFixture(t)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := f.uc.SendOTP(ctx, models.SendOTPRequest{Mobile: "9876543210"})

		assert.ErrorIs(t, err, context.Canceled)
	})
}
