package usecase

import (
	"github.com/jackmarvels/platform/internal/pkg/apperrors"
	"github.com/jackmarvels/platform/internal/pkg/models"
	"github.com/jackmarvels/platform/services/client"
)

// AuthUC implements client.AuthUC
type AuthUC struct {
	gateway client.BackendGateway
	tokens  client.TokenRepo
	session client.SessionRepo
}

// NewAuthUC creates the auth flow over a backend gateway and the local session stores
func NewAuthUC(gateway client.BackendGateway, tokens client.TokenRepo, session client.SessionRepo) *AuthUC {
	return &AuthUC{
		gateway: gateway,
		tokens:  tokens,
		session: session,
	}
}

var _ client.AuthUC = (*AuthUC)(nil)

// ContentUC implements client.ContentUC
type ContentUC struct {
	gateway client.BackendGateway
}

// NewContentUC creates the content facade
func NewContentUC(gateway client.BackendGateway) *ContentUC {
	return &ContentUC{gateway: gateway}
}

var _ client.ContentUC = (*ContentUC)(nil)

// friendly rewrites the error of a failed response into user-facing copy
func friendly[T any](resp models.APIResponse[T]) models.APIResponse[T] {
	if resp.Success {
		return resp
	}
	appErr := apperrors.Friendly(client.Err(resp))
	resp.Error = appErr.Message
	resp.Code = string(appErr.Kind)
	resp.StatusCode = appErr.StatusCode
	return resp
}
