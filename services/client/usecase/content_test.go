package usecase

import (
	"context"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/jackmarvels/platform/internal/pkg/apperrors"
	"github.com/jackmarvels/platform/internal/pkg/models"
	"github.com/jackmarvels/platform/services/client/mocks"
	"github.com/stretchr/testify/assert"
)

func TestContentUC_PassesThroughSuccess(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	gateway := mocks.NewMockBackendGateway(ctrl)
	uc := NewContentUC(gateway)
	ctx := context.Background()

	gateway.EXPECT().GetDashboard(gomock.Any()).
		Return(models.APIResponse[models.Dashboard]{Success: true, Data: models.Dashboard{UnreadNotifications: 1}, StatusCode: http.StatusOK})
	gateway.EXPECT().GetEvents(gomock.Any(), models.EventFilter{Category: "art"}).
		Return(models.APIResponse[[]models.Event]{Success: true, Data: []models.Event{{ID: "event_003"}}, StatusCode: http.StatusOK})
	gateway.EXPECT().GetSchools(gomock.Any(), "pune").
		Return(models.APIResponse[[]models.School]{Success: true, StatusCode: http.StatusOK})

	// Act
	dashboard := uc.GetDashboard(ctx)
	events := uc.GetEvents(ctx, models.EventFilter{Category: "art"})
	schools := uc.GetSchools(ctx, "pune")

	// Assert
	assert.Equal(t, 1, dashboard.Data.UnreadNotifications)
	assert.Len(t, events.Data, 1)
	assert.True(t, schools.Success)
}

func TestContentUC_RemapsNetworkErrors(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	gateway := mocks.NewMockBackendGateway(ctrl)
	uc := NewContentUC(gateway)

	gateway.EXPECT().GetNotifications(gomock.Any()).
		Return(failed[[]models.Notification](apperrors.KindNetwork, "Network error: backend is unreachable"))

	// Act
	resp := uc.GetNotifications(context.Background())

	// Assert
	assert.False(t, resp.Success)
	assert.Equal(t, apperrors.MessageNetwork, resp.Error)
	assert.Equal(t, 0, resp.StatusCode)
}

func TestContentUC_PreflightChecks(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	uc := NewContentUC(mocks.NewMockBackendGateway(ctrl))
	ctx := context.Background()

	// Act
	detail := uc.GetEventDetail(ctx, "", nil)
	sub := uc.UpdateSubscription(ctx, models.SubscriptionUpdateRequest{Plan: "gold"})

	// Assert
	assert.Equal(t, http.StatusBadRequest, detail.StatusCode)
	assert.Equal(t, "Please select a valid plan", sub.Error)
}

func TestContentUC_UpdateSubscription(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	gateway := mocks.NewMockBackendGateway(ctrl)
	uc := NewContentUC(gateway)
	req := models.SubscriptionUpdateRequest{Plan: models.PlanPremium, Amount: 499}

	gateway.EXPECT().UpdateSubscription(gomock.Any(), req).
		Return(models.APIResponse[models.Subscription]{
			Success:    true,
			Data:       models.Subscription{Plan: models.PlanPremium, Status: models.SubscriptionPending},
			StatusCode: http.StatusOK,
		})

	// Act
	resp := uc.UpdateSubscription(context.Background(), req)

	// Assert
	assert.True(t, resp.Success)
	assert.Equal(t, models.SubscriptionPending, resp.Data.Status)
}
