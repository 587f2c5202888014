package usecase

import (
	"github.com/jackmarvels/platform/internal/pkg/apperrors"
	jwtpkg "github.com/jackmarvels/platform/internal/pkg/jwt"
	"github.com/jackmarvels/platform/internal/pkg/models"
)

// Static development tokens
const (
	StaticAccessToken            = "mock_access_token_12345"
	StaticRefreshToken           = "mock_refresh_token_12345"
	StaticRefreshedAccess        = "new_mock_access_token"
	StaticRefreshedRefresh       = "new_mock_refresh_token"
	StaticExpiresIn        int64 = 3600
)

// StaticIssuer hands out fixed tokens and accepts a single refresh token
type StaticIssuer struct{}

// Issue implements mockapi.TokenIssuer
func (StaticIssuer) Issue(models.User) (models.AuthTokens, error) {
	return models.AuthTokens{
		AccessToken:  StaticAccessToken,
		RefreshToken: StaticRefreshToken,
		ExpiresIn:    StaticExpiresIn,
	}, nil
}

// Refresh implements mockapi.TokenIssuer
func (StaticIssuer) Refresh(refreshToken string) (models.AuthTokens, error) {
	if refreshToken != StaticRefreshToken {
		return models.AuthTokens{}, apperrors.Unauthorized("Invalid refresh token")
	}
	return models.AuthTokens{
		AccessToken:  StaticRefreshedAccess,
		RefreshToken: StaticRefreshedRefresh,
		ExpiresIn:    StaticExpiresIn,
	}, nil
}

// JWTIssuer signs real tokens so the served mock can protect its routes
type JWTIssuer struct {
	cfg models.JWTConfig
}

// NewJWTIssuer creates an issuer signing with cfg.Secret
func NewJWTIssuer(cfg models.JWTConfig) *JWTIssuer {
	return &JWTIssuer{cfg: cfg}
}

// Issue implements mockapi.TokenIssuer
func (i *JWTIssuer) Issue(user models.User) (models.AuthTokens, error) {
	tokens, err := jwtpkg.GenerateTokens(user, i.cfg)
	if err != nil {
		return models.AuthTokens{}, apperrors.Internal(err)
	}
	return tokens, nil
}

// Refresh accepts any unexpired refresh token signed by this issuer
func (i *JWTIssuer) Refresh(refreshToken string) (models.AuthTokens, error) {
	claims, err := jwtpkg.ValidateTyped(refreshToken, i.cfg.Secret, jwtpkg.TypeRefresh)
	if err != nil {
		return models.AuthTokens{}, apperrors.Unauthorized("Invalid refresh token")
	}
	return i.Issue(models.User{ID: claims.UserID, RoleID: models.Role(claims.RoleID)})
}
