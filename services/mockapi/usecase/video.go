package usecase

import (
	"context"
	"strings"

	"github.com/jackmarvels/platform/internal/pkg/apperrors"
	"github.com/jackmarvels/platform/internal/pkg/logger"
	"github.com/jackmarvels/platform/internal/pkg/models"
	"github.com/jackmarvels/platform/internal/pkg/nsq"
)

// UploadVideo records a pending submission to an event that is accepting uploads
func (u *MockAPIUC) UploadVideo(ctx context.Context, req models.VideoUploadRequest) (models.VideoSubmission, error) {
	if err := u.wait(ctx); err != nil {
		return models.VideoSubmission{}, err
	}

	var missing []string
	if strings.TrimSpace(req.Title) == "" {
		missing = append(missing, "Title is required")
	}
	if strings.TrimSpace(req.VideoURL) == "" {
		missing = append(missing, "Video URL is required")
	}
	if len(missing) > 0 {
		return models.VideoSubmission{}, apperrors.Validation(missing...)
	}

	event, ok := u.store.FindEventByID(req.EventID)
	if !ok {
		return models.VideoSubmission{}, apperrors.NotFound("Event")
	}
	user, ok := u.store.FindUserByID(req.UserID)
	if !ok {
		return models.VideoSubmission{}, apperrors.NotFound("User")
	}
	if !event.AllowsRole(user.RoleID) {
		return models.VideoSubmission{}, apperrors.New(apperrors.KindInvalidRole, "This event is not open to your account type")
	}
	if !event.UploadOpen(u.now()) {
		logger.Warn("Upload attempted outside upload window",
			logger.String("event_id", event.ID),
			logger.UserID(user.ID))
		return models.VideoSubmission{}, apperrors.New(apperrors.KindUploadClosed, "This event is not accepting uploads")
	}

	video := u.store.AddVideoSubmission(models.VideoSubmission{
		UserID:       user.ID,
		EventID:      event.ID,
		Title:        strings.TrimSpace(req.Title),
		Description:  strings.TrimSpace(req.Description),
		VideoURL:     req.VideoURL,
		ThumbnailURL: req.ThumbnailURL,
		Status:       models.VideoPending,
	})

	u.store.AddNotification(models.Notification{
		UserID:  user.ID,
		Title:   "Video submitted",
		Message: video.Title + " is under review for " + event.Title + ".",
		Type:    models.NotificationVideo,
	})
	u.publish(ctx, nsq.TopicVideoSubmitted, video)

	logger.Info("Video submitted",
		logger.String("video_id", video.ID),
		logger.String("event_id", event.ID),
		logger.UserID(user.ID))
	return video, nil
}

// GetUserVideos lists a user's submissions
func (u *MockAPIUC) GetUserVideos(ctx context.Context, userID string) ([]models.VideoSubmission, error) {
	if err := u.wait(ctx); err != nil {
		return nil, err
	}

	if _, ok := u.store.FindUserByID(userID); !ok {
		return nil, apperrors.NotFound("User")
	}
	return u.store.FindVideosByUserID(userID), nil
}
