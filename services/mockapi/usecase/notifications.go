package usecase

import (
	"context"
	"sort"
	"strings"

	"github.com/jackmarvels/platform/internal/pkg/apperrors"
	"github.com/jackmarvels/platform/internal/pkg/models"
	"github.com/jackmarvels/platform/internal/utils"
)

// GetNotifications lists a user's notifications, newest first
func (u *MockAPIUC) GetNotifications(ctx context.Context, userID string) ([]models.Notification, error) {
	if err := u.wait(ctx); err != nil {
		return nil, err
	}

	if _, ok := u.store.FindUserByID(userID); !ok {
		return nil, apperrors.NotFound("User")
	}

	notifications := u.store.FindNotificationsByUserID(userID)
	sort.SliceStable(notifications, func(i, j int) bool {
		return notifications[i].CreatedAt.After(notifications[j].CreatedAt)
	})
	return notifications, nil
}

// MarkNotificationRead flags one of the caller's notifications as read
func (u *MockAPIUC) MarkNotificationRead(ctx context.Context, userID, notificationID string) (models.Notification, error) {
	if err := u.wait(ctx); err != nil {
		return models.Notification{}, err
	}

	n, ok := u.store.MarkNotificationRead(userID, notificationID)
	if !ok {
		return models.Notification{}, apperrors.NotFound("Notification")
	}
	return n, nil
}

// GetSchools searches the school directory by name or city
func (u *MockAPIUC) GetSchools(ctx context.Context, query string) ([]models.School, error) {
	if err := u.wait(ctx); err != nil {
		return nil, err
	}

	q := strings.TrimSpace(query)
	schools := []models.School{}
	for _, s := range u.store.Schools() {
		if q == "" || utils.ContainsFold(s.Name, q) || utils.ContainsFold(s.City, q) {
			schools = append(schools, s)
		}
	}
	return schools, nil
}
