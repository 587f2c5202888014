package gateway

import (
	"context"

	"github.com/jackmarvels/platform/internal/pkg/models"
	"github.com/jackmarvels/platform/services/client"
	"github.com/jackmarvels/platform/services/mockapi"
)

// Session supplies the signed in user for calls the HTTP path authorizes
// with the bearer token
type Session interface {
	UserID() string
}

// MockGateway serves the client from the in-process mock backend
type MockGateway struct {
	svc     mockapi.MockAPIUC
	session Session
}

// NewMockGateway creates a gateway over svc
func NewMockGateway(svc mockapi.MockAPIUC, session Session) *MockGateway {
	return &MockGateway{svc: svc, session: session}
}

var _ client.BackendGateway = (*MockGateway)(nil)

// Service returns the wrapped mock backend
func (g *MockGateway) Service() mockapi.MockAPIUC {
	return g.svc
}

func (g *MockGateway) userID() string {
	if g.session == nil {
		return ""
	}
	return g.session.UserID()
}

func (g *MockGateway) SendOTP(ctx context.Context, req models.SendOTPRequest) models.APIResponse[models.SendOTPResponse] {
	resp, err := g.svc.SendOTP(ctx, req)
	return ConvertMockResponse(mockapi.Respond(resp, err))
}

func (g *MockGateway) VerifyOTP(ctx context.Context, req models.VerifyOTPRequest) models.APIResponse[models.LoginResult] {
	result, err := g.svc.VerifyOTP(ctx, req)
	return ConvertMockResponse(mockapi.Respond(result, err))
}

func (g *MockGateway) Register(ctx context.Context, req models.RegistrationRequest) models.APIResponse[models.User] {
	user, err := g.svc.Register(ctx, req)
	return ConvertMockResponse(mockapi.Respond(user, err))
}

func (g *MockGateway) RefreshToken(ctx context.Context, refreshToken string) models.APIResponse[models.AuthTokens] {
	tokens, err := g.svc.RefreshToken(ctx, refreshToken)
	return ConvertMockResponse(mockapi.Respond(tokens, err))
}

func (g *MockGateway) Logout(ctx context.Context) models.APIResponse[bool] {
	ok, err := g.svc.Logout(ctx, g.userID())
	return ConvertMockResponse(mockapi.Respond(ok, err))
}

func (g *MockGateway) GetProfile(ctx context.Context) models.APIResponse[models.User] {
	user, err := g.svc.GetProfile(ctx, g.userID())
	return ConvertMockResponse(mockapi.Respond(user, err))
}

func (g *MockGateway) UpdateProfile(ctx context.Context, update models.ProfileUpdate) models.APIResponse[models.User] {
	user, err := g.svc.UpdateProfile(ctx, g.userID(), update)
	return ConvertMockResponse(mockapi.Respond(user, err))
}

func (g *MockGateway) GetSchools(ctx context.Context, query string) models.APIResponse[[]models.School] {
	schools, err := g.svc.GetSchools(ctx, query)
	return ConvertMockResponse(mockapi.Respond(schools, err))
}

func (g *MockGateway) GetDashboard(ctx context.Context) models.APIResponse[models.Dashboard] {
	dashboard, err := g.svc.GetDashboard(ctx, g.userID())
	return ConvertMockResponse(mockapi.Respond(dashboard, err))
}

func (g *MockGateway) GetEvents(ctx context.Context, filter models.EventFilter) models.APIResponse[[]models.Event] {
	events, err := g.svc.GetEvents(ctx, filter)
	return ConvertMockResponse(mockapi.Respond(events, err))
}

func (g *MockGateway) GetEventDetail(ctx context.Context, eventID string, include []string) models.APIResponse[models.EventDetail] {
	detail, err := g.svc.GetEventDetail(ctx, eventID, include)
	return ConvertMockResponse(mockapi.Respond(detail, err))
}

func (g *MockGateway) UpdateSubscription(ctx context.Context, req models.SubscriptionUpdateRequest) models.APIResponse[models.Subscription] {
	sub, err := g.svc.UpdateSubscription(ctx, g.userID(), req)
	return ConvertMockResponse(mockapi.Respond(sub, err))
}

func (g *MockGateway) GetNotifications(ctx context.Context) models.APIResponse[[]models.Notification] {
	notifications, err := g.svc.GetNotifications(ctx, g.userID())
	return ConvertMockResponse(mockapi.Respond(notifications, err))
}
