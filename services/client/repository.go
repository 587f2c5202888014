package client

import (
	"context"

	"github.com/jackmarvels/platform/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/jackmarvels/platform/services/client TokenRepo,SessionRepo

// TokenRepo persists the token pair of the current session
type TokenRepo interface {
	Tokens(ctx context.Context) (*models.AuthTokens, error)
	Save(ctx context.Context, tokens models.AuthTokens) error
	Clear(ctx context.Context) error
}

// SessionRepo holds the signed in user and the loading flag
type SessionRepo interface {
	SetAuthenticated(ctx context.Context, user models.User) error
	UpdateUser(ctx context.Context, user models.User) error
	ClearSession(ctx context.Context) error
	SetLoading(loading bool)
	UserID() string
}
