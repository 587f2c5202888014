package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/jackmarvels/platform/internal/pkg/models"
)

// Token types carried in the "typ" claim
const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"
)

// ErrWrongTokenType is returned when a refresh token is presented as an
// access token or vice versa
var ErrWrongTokenType = errors.New("wrong token type")

// Claims represents standard JWT claims plus custom fields
type Claims struct {
	UserID string `json:"user_id"`
	RoleID int    `json:"role_id"`
	Type   string `json:"typ"`
	jwt.RegisteredClaims
}

// GenerateToken signs a single token of the given type
func GenerateToken(userID string, roleID int, tokenType string, ttl time.Duration, cfg models.JWTConfig) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		RoleID: roleID,
		Type:   tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   userID,
			Issuer:    cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.Secret))
}

// GenerateTokens signs an access/refresh pair for the user
func GenerateTokens(user models.User, cfg models.JWTConfig) (models.AuthTokens, error) {
	accessTTL := time.Duration(cfg.Expiration) * time.Minute
	refreshTTL := time.Duration(cfg.RefreshExpiration) * time.Minute
	if refreshTTL <= 0 {
		refreshTTL = 30 * 24 * time.Hour
	}

	access, err := GenerateToken(user.ID, int(user.RoleID), TypeAccess, accessTTL, cfg)
	if err != nil {
		return models.AuthTokens{}, fmt.Errorf("failed to sign access token: %w", err)
	}
	refresh, err := GenerateToken(user.ID, int(user.RoleID), TypeRefresh, refreshTTL, cfg)
	if err != nil {
		return models.AuthTokens{}, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	return models.AuthTokens{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(accessTTL.Seconds()),
	}, nil
}

// ValidateToken verifies the signature and expiry and returns the claims
func ValidateToken(tokenString, secret string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// ValidateTyped validates the token and checks its type claim
func ValidateTyped(tokenString, secret, tokenType string) (*Claims, error) {
	claims, err := ValidateToken(tokenString, secret)
	if err != nil {
		return nil, err
	}
	if claims.Type != tokenType {
		return nil, ErrWrongTokenType
	}
	return claims, nil
}

// UnverifiedExpiry reads the exp claim without checking the signature.
// Clients use it to schedule refreshes for tokens they cannot verify.
func UnverifiedExpiry(tokenString string) (time.Time, error) {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := new(jwt.Parser).ParseUnverified(tokenString, claims); err != nil {
		return time.Time{}, err
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, errors.New("token has no exp claim")
	}
	return claims.ExpiresAt.Time, nil
}
