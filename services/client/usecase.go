package client

import (
	"context"

	"github.com/jackmarvels/platform/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/jackmarvels/platform/services/client AuthUC,ContentUC

// AuthUC is the sign in and profile flow used by the CLI
type AuthUC interface {
	SendOTP(ctx context.Context, mobile string, otpType models.OTPType) models.APIResponse[models.SendOTPResponse]
	VerifyOTP(ctx context.Context, mobile, otp string) models.APIResponse[models.LoginResult]
	Register(ctx context.Context, req models.RegistrationRequest) models.APIResponse[models.User]
	RefreshSession(ctx context.Context) models.APIResponse[models.AuthTokens]
	Logout(ctx context.Context) models.APIResponse[bool]
	GetProfile(ctx context.Context) models.APIResponse[models.User]
	UpdateProfile(ctx context.Context, update models.ProfileUpdate) models.APIResponse[models.User]
}

// ContentUC exposes the signed in content screens
type ContentUC interface {
	GetDashboard(ctx context.Context) models.APIResponse[models.Dashboard]
	GetEvents(ctx context.Context, filter models.EventFilter) models.APIResponse[[]models.Event]
	GetEventDetail(ctx context.Context, eventID string, include []string) models.APIResponse[models.EventDetail]
	UpdateSubscription(ctx context.Context, req models.SubscriptionUpdateRequest) models.APIResponse[models.Subscription]
	GetSchools(ctx context.Context, query string) models.APIResponse[[]models.School]
	GetNotifications(ctx context.Context) models.APIResponse[[]models.Notification]
}
