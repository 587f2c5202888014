package gateway

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	httpclient "github.com/jackmarvels/platform/internal/pkg/http"
	"github.com/jackmarvels/platform/internal/pkg/models"
	"github.com/jackmarvels/platform/services/client"
)

// Backend endpoints
const (
	EndpointSendOTP            = "/students/send-otp"
	EndpointVerifyOTP          = "/students/verify-otp"
	EndpointRegister           = "/students/register"
	EndpointRefreshToken       = "/auth/refresh-token"
	EndpointLogout             = "/auth/logout"
	EndpointProfile            = "/students/profile"
	EndpointSchools            = "/students/schools"
	EndpointDashboard          = "/dashboard"
	EndpointEvents             = "/events"
	EndpointSubscriptionUpdate = "/subscription/update"
	EndpointNotifications      = "/notifications"
)

// HTTPGateway serves the client from a remote backend
type HTTPGateway struct {
	client *httpclient.Client
}

// NewHTTPGateway creates a gateway over an authenticated HTTP client
func NewHTTPGateway(c *httpclient.Client) *HTTPGateway {
	return &HTTPGateway{client: c}
}

var _ client.BackendGateway = (*HTTPGateway)(nil)

func call[T any](ctx context.Context, c *httpclient.Client, method, endpoint string, body interface{}) models.APIResponse[T] {
	resp, err := c.Do(ctx, method, endpoint, body)
	if err != nil {
		return client.Failure[T](err)
	}
	data, err := httpclient.DecodeResponse[T](resp)
	return client.Result(data, err)
}

func withQuery(endpoint string, params url.Values) string {
	if encoded := params.Encode(); encoded != "" {
		return endpoint + "?" + encoded
	}
	return endpoint
}

func (g *HTTPGateway) SendOTP(ctx context.Context, req models.SendOTPRequest) models.APIResponse[models.SendOTPResponse] {
	return call[models.SendOTPResponse](ctx, g.client, http.MethodPost, EndpointSendOTP, req)
}

func (g *HTTPGateway) VerifyOTP(ctx context.Context, req models.VerifyOTPRequest) models.APIResponse[models.LoginResult] {
	return call[models.LoginResult](ctx, g.client, http.MethodPost, EndpointVerifyOTP, req)
}

func (g *HTTPGateway) Register(ctx context.Context, req models.RegistrationRequest) models.APIResponse[models.User] {
	return call[models.User](ctx, g.client, http.MethodPost, EndpointRegister, req)
}

func (g *HTTPGateway) RefreshToken(ctx context.Context, refreshToken string) models.APIResponse[models.AuthTokens] {
	return call[models.AuthTokens](ctx, g.client, http.MethodPost, EndpointRefreshToken,
		models.RefreshTokenRequest{RefreshToken: refreshToken})
}

func (g *HTTPGateway) Logout(ctx context.Context) models.APIResponse[bool] {
	return call[bool](ctx, g.client, http.MethodPost, EndpointLogout, nil)
}

func (g *HTTPGateway) GetProfile(ctx context.Context) models.APIResponse[models.User] {
	return call[models.User](ctx, g.client, http.MethodGet, EndpointProfile, nil)
}

func (g *HTTPGateway) UpdateProfile(ctx context.Context, update models.ProfileUpdate) models.APIResponse[models.User] {
	return call[models.User](ctx, g.client, http.MethodPut, EndpointProfile, update)
}

func (g *HTTPGateway) GetSchools(ctx context.Context, query string) models.APIResponse[[]models.School] {
	params := url.Values{}
	if query != "" {
		params.Set("q", query)
	}
	return call[[]models.School](ctx, g.client, http.MethodGet, withQuery(EndpointSchools, params), nil)
}

func (g *HTTPGateway) GetDashboard(ctx context.Context) models.APIResponse[models.Dashboard] {
	return call[models.Dashboard](ctx, g.client, http.MethodGet, EndpointDashboard, nil)
}

func (g *HTTPGateway) GetEvents(ctx context.Context, filter models.EventFilter) models.APIResponse[[]models.Event] {
	params := url.Values{}
	if filter.Category != "" {
		params.Set("category", filter.Category)
	}
	if filter.Search != "" {
		params.Set("search", filter.Search)
	}
	return call[[]models.Event](ctx, g.client, http.MethodGet, withQuery(EndpointEvents, params), nil)
}

func (g *HTTPGateway) GetEventDetail(ctx context.Context, eventID string, include []string) models.APIResponse[models.EventDetail] {
	params := url.Values{}
	if len(include) > 0 {
		params.Set("include", strings.Join(include, ","))
	}
	endpoint := EndpointEvents + "/" + url.PathEscape(eventID)
	return call[models.EventDetail](ctx, g.client, http.MethodGet, withQuery(endpoint, params), nil)
}

func (g *HTTPGateway) UpdateSubscription(ctx context.Context, req models.SubscriptionUpdateRequest) models.APIResponse[models.Subscription] {
	return call[models.Subscription](ctx, g.client, http.MethodPut, EndpointSubscriptionUpdate, req)
}

func (g *HTTPGateway) GetNotifications(ctx context.Context) models.APIResponse[[]models.Notification] {
	return call[[]models.Notification](ctx, g.client, http.MethodGet, EndpointNotifications, nil)
}
