package gateway

import (
	"context"
	"net/http"
	"testing"

	"github.com/jackmarvels/platform/internal/pkg/apperrors"
	"github.com/jackmarvels/platform/internal/pkg/models"
	"github.com/jackmarvels/platform/services/mockapi/repository"
	"github.com/jackmarvels/platform/services/mockapi/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticSession string

func (s staticSession) UserID() string { return string(s) }

func newMockGateway(userID string) *MockGateway {
	store := repository.NewStore(repository.DefaultSeed())
	return NewMockGateway(usecase.NewMockAPIUC(store, nil, nil, 0), staticSession(userID))
}

func TestMockGateway_SendOTP(t *testing.T) {
	// Arrange
	gw := newMockGateway("")
	ctx := context.Background()

	// Act
	ok := gw.SendOTP(ctx, models.SendOTPRequest{Mobile: repository.StudentMobile, Type: models.OTPTypeLogin})
	rejected := gw.SendOTP(ctx, models.SendOTPRequest{Mobile: "0000000000", Type: models.OTPTypeLogin})

	// Assert
	assert.True(t, ok.Success)
	assert.Equal(t, http.StatusOK, ok.StatusCode)
	assert.NotEmpty(t, ok.Data.SMSHash)

	assert.False(t, rejected.Success)
	assert.Equal(t, "Invalid mobile number", rejected.Error)
	assert.Equal(t, string(apperrors.KindInvalidMobile), rejected.Code)
	assert.Equal(t, http.StatusBadRequest, rejected.StatusCode)
}

func TestMockGateway_VerifyOTP(t *testing.T) {
	// Arrange
	gw := newMockGateway("")

	// Act
	resp := gw.VerifyOTP(context.Background(), models.VerifyOTPRequest{Mobile: repository.StudentMobile, OTP: repository.SeedOTP})

	// Assert
	require.True(t, resp.Success, resp.Error)
	assert.Equal(t, repository.StudentUserID, resp.Data.User.ID)
	assert.Equal(t, usecase.StaticAccessToken, resp.Data.Tokens.AccessToken)
}

func TestMockGateway_UsesSessionUser(t *testing.T) {
	// Arrange
	signedIn := newMockGateway(repository.StudentUserID)
	anonymous := newMockGateway("")
	ctx := context.Background()

	// Act
	dashboard := signedIn.GetDashboard(ctx)
	missing := anonymous.GetDashboard(ctx)

	// Assert
	require.True(t, dashboard.Success, dashboard.Error)
	assert.Equal(t, repository.StudentUserID, dashboard.Data.User.ID)

	assert.False(t, missing.Success)
	assert.Equal(t, http.StatusNotFound, missing.StatusCode)
}

func TestMockGateway_UpdateSubscription(t *testing.T) {
	// Arrange
	gw := newMockGateway(repository.StudentUserID)

	// Act
	resp := gw.UpdateSubscription(context.Background(), models.SubscriptionUpdateRequest{Plan: models.PlanFree, Amount: 0})

	// Assert
	require.True(t, resp.Success, resp.Error)
	assert.Equal(t, models.PlanFree, resp.Data.Plan)
	assert.Equal(t, models.SubscriptionPending, resp.Data.Status)
}

func TestMockGateway_Service(t *testing.T) {
	gw := newMockGateway("")
	assert.NotNil(t, gw.Service())
}
