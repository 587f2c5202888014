package usecase

import (
	"context"

	"github.com/jackmarvels/platform/internal/pkg/apperrors"
	"github.com/jackmarvels/platform/internal/pkg/models"
	"github.com/jackmarvels/platform/services/client"
)

func (u *ContentUC) GetDashboard(ctx context.Context) models.APIResponse[models.Dashboard] {
	return friendly(u.gateway.GetDashboard(ctx))
}

func (u *ContentUC) GetEvents(ctx context.Context, filter models.EventFilter) models.APIResponse[[]models.Event] {
	return friendly(u.gateway.GetEvents(ctx, filter))
}

func (u *ContentUC) GetEventDetail(ctx context.Context, eventID string, include []string) models.APIResponse[models.EventDetail] {
	if eventID == "" {
		return client.Failure[models.EventDetail](apperrors.Validation("Event id is required"))
	}
	return friendly(u.gateway.GetEventDetail(ctx, eventID, include))
}

// UpdateSubscription changes the plan of the current subscription
func (u *ContentUC) UpdateSubscription(ctx context.Context, req models.SubscriptionUpdateRequest) models.APIResponse[models.Subscription] {
	if !req.Plan.IsValid() {
		return client.Failure[models.Subscription](apperrors.Validation("Please select a valid plan"))
	}
	return friendly(u.gateway.UpdateSubscription(ctx, req))
}

func (u *ContentUC) GetSchools(ctx context.Context, query string) models.APIResponse[[]models.School] {
	return friendly(u.gateway.GetSchools(ctx, query))
}

func (u *ContentUC) GetNotifications(ctx context.Context) models.APIResponse[[]models.Notification] {
	return friendly(u.gateway.GetNotifications(ctx))
}
