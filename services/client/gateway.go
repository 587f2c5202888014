package client

import (
	"context"

	"github.com/jackmarvels/platform/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/jackmarvels/platform/services/client BackendGateway

// BackendGateway is the backend the client services talk to. The mock and
// HTTP implementations answer with the same response contract; failures
// are reported in the response, never as a separate error.
type BackendGateway interface {
	SendOTP(ctx context.Context, req models.SendOTPRequest) models.APIResponse[models.SendOTPResponse]
	VerifyOTP(ctx context.Context, req models.VerifyOTPRequest) models.APIResponse[models.LoginResult]
	Register(ctx context.Context, req models.RegistrationRequest) models.APIResponse[models.User]
	RefreshToken(ctx context.Context, refreshToken string) models.APIResponse[models.AuthTokens]
	Logout(ctx context.Context) models.APIResponse[bool]
	GetProfile(ctx context.Context) models.APIResponse[models.User]
	UpdateProfile(ctx context.Context, update models.ProfileUpdate) models.APIResponse[models.User]
	GetSchools(ctx context.Context, query string) models.APIResponse[[]models.School]
	GetDashboard(ctx context.Context) models.APIResponse[models.Dashboard]
	GetEvents(ctx context.Context, filter models.EventFilter) models.APIResponse[[]models.Event]
	GetEventDetail(ctx context.Context, eventID string, include []string) models.APIResponse[models.EventDetail]
	UpdateSubscription(ctx context.Context, req models.SubscriptionUpdateRequest) models.APIResponse[models.Subscription]
	GetNotifications(ctx context.Context) models.APIResponse[[]models.Notification]
}
