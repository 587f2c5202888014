package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jackmarvels/platform/internal/pkg/apperrors"
	httpclient "github.com/jackmarvels/platform/internal/pkg/http"
	"github.com/jackmarvels/platform/internal/pkg/models"
	"github.com/jackmarvels/platform/internal/pkg/storage"
	"github.com/jackmarvels/platform/internal/pkg/tokenstore"
	"github.com/jackmarvels/platform/internal/utils"
	"github.com/jackmarvels/platform/services/mockapi/handler"
	httphandler "github.com/jackmarvels/platform/services/mockapi/handler/http"
	"github.com/jackmarvels/platform/services/mockapi/repository"
	"github.com/jackmarvels/platform/services/mockapi/usecase"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newServedMock starts the mock backend over HTTP
func newServedMock(t *testing.T) *httptest.Server {
	t.Helper()

	cfg := &models.Config{JWT: models.JWTConfig{
		Secret:            "gateway-test-secret",
		Expiration:        60,
		RefreshExpiration: 120,
		Issuer:            "jackmarvels-test",
	}}
	store := repository.NewStore(repository.DefaultSeed())
	mockUC := usecase.NewMockAPIUC(store, usecase.NewJWTIssuer(cfg.JWT), nil, 0)

	e := echo.New()
	e.Validator = utils.NewRequestValidator()
	handler.NewHandler(httphandler.NewAuthHandler(mockUC), httphandler.NewContentHandler(mockUC), cfg).RegisterRoutes(e)

	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	return srv
}

func newHTTPGateway(baseURL string) (*HTTPGateway, *tokenstore.Store) {
	tokens := tokenstore.New(storage.NewMemory())
	c := httpclient.NewClient(httpclient.Config{
		BaseURL: baseURL,
		Timeout: 2 * time.Second,
		Tokens:  tokens,
	})
	return NewHTTPGateway(c), tokens
}

func TestHTTPGateway_LoginAndDashboard(t *testing.T) {
	// Arrange
	srv := newServedMock(t)
	gw, tokens := newHTTPGateway(srv.URL)
	ctx := context.Background()

	// Act
	login := gw.VerifyOTP(ctx, models.VerifyOTPRequest{Mobile: repository.StudentMobile, OTP: repository.SeedOTP})
	require.True(t, login.Success, login.Error)
	require.NoError(t, tokens.Save(ctx, login.Data.Tokens))

	dashboard := gw.GetDashboard(ctx)
	events := gw.GetEvents(ctx, models.EventFilter{Category: "dance"})
	detail := gw.GetEventDetail(ctx, "event_001", []string{models.IncludeGuidelines})

	// Assert
	assert.Equal(t, repository.StudentUserID, login.Data.User.ID)

	require.True(t, dashboard.Success, dashboard.Error)
	assert.Equal(t, repository.StudentUserID, dashboard.Data.User.ID)

	require.True(t, events.Success, events.Error)
	for _, event := range events.Data {
		assert.Equal(t, "dance", event.Category)
	}

	require.True(t, detail.Success, detail.Error)
	assert.NotEmpty(t, detail.Data.Guidelines)
}

func TestHTTPGateway_BusinessError(t *testing.T) {
	// Arrange
	srv := newServedMock(t)
	gw, _ := newHTTPGateway(srv.URL)

	// Act
	resp := gw.VerifyOTP(context.Background(), models.VerifyOTPRequest{Mobile: repository.StudentMobile, OTP: "000000"})

	// Assert
	assert.False(t, resp.Success)
	assert.Equal(t, "Invalid mobile number or OTP", resp.Error)
	assert.Equal(t, string(apperrors.KindInvalidCredentials), resp.Code)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestHTTPGateway_Unauthenticated(t *testing.T) {
	// Arrange
	srv := newServedMock(t)
	gw, _ := newHTTPGateway(srv.URL)

	// Act
	resp := gw.GetProfile(context.Background())

	// Assert
	assert.False(t, resp.Success)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestHTTPGateway_NetworkError(t *testing.T) {
	// Arrange
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	gw, _ := newHTTPGateway(srv.URL)

	// Act
	resp := gw.GetSchools(context.Background(), "delhi")

	// Assert
	assert.False(t, resp.Success)
	assert.Equal(t, string(apperrors.KindNetwork), resp.Code)
	assert.Equal(t, 0, resp.StatusCode)
}

func TestWithQuery(t *testing.T) {
	assert.Equal(t, "/events", withQuery("/events", nil))
	assert.Equal(t, "/events?category=art", withQuery("/events", map[string][]string{"category": {"art"}}))
}
