package usecase

import (
	"context"
	"sort"

	"github.com/jackmarvels/platform/internal/pkg/apperrors"
	"github.com/jackmarvels/platform/internal/pkg/logger"
	"github.com/jackmarvels/platform/internal/pkg/models"
)

const recentVideoLimit = 5

// GetDashboard aggregates the home screen for a user. Students and
// influencers see disjoint event sets.
func (u *MockAPIUC) GetDashboard(ctx context.Context, userID string) (models.Dashboard, error) {
	if err := u.wait(ctx); err != nil {
		return models.Dashboard{}, err
	}

	user, ok := u.store.FindUserByID(userID)
	if !ok {
		return models.Dashboard{}, apperrors.NotFound("User")
	}
	if !user.RoleID.IsValid() {
		logger.Warn("Dashboard requested for unknown role",
			logger.UserID(userID),
			logger.Int("role_id", int(user.RoleID)))
		return models.Dashboard{}, apperrors.New(apperrors.KindInvalidRole, "Invalid user role")
	}

	events := []models.Event{}
	for _, e := range u.store.Events() {
		if e.AllowsRole(user.RoleID) {
			events = append(events, e)
		}
	}

	dashboard := models.Dashboard{
		User:         user,
		Events:       events,
		RecentVideos: recentVideos(u.store.FindVideosByUserID(userID), recentVideoLimit),
	}
	if sub, ok := u.store.FindSubscriptionByUserID(userID); ok {
		dashboard.Subscription = &sub
	}
	for _, n := range u.store.FindNotificationsByUserID(userID) {
		if !n.IsRead {
			dashboard.UnreadNotifications++
		}
	}

	return dashboard, nil
}

// recentVideos returns up to limit videos, newest first
func recentVideos(videos []models.VideoSubmission, limit int) []models.VideoSubmission {
	sort.SliceStable(videos, func(i, j int) bool {
		return videos[i].SubmittedAt.After(videos[j].SubmittedAt)
	})
	if len(videos) > limit {
		videos = videos[:limit]
	}
	return videos
}
