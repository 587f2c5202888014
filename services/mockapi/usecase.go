package mockapi

import (
	"context"

	"github.com/jackmarvels/platform/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/jackmarvels/platform/services/mockapi MockAPIUC

// MockAPIUC is the simulated platform backend
type MockAPIUC interface {
	// auth
	SendOTP(ctx context.Context, req models.SendOTPRequest) (models.SendOTPResponse, error)
	VerifyOTP(ctx context.Context, req models.VerifyOTPRequest) (models.LoginResult, error)
	Login(ctx context.Context, req models.VerifyOTPRequest) (models.LoginResult, error)
	Register(ctx context.Context, req models.RegistrationRequest) (models.User, error)
	RefreshToken(ctx context.Context, refreshToken string) (models.AuthTokens, error)
	Logout(ctx context.Context, userID string) (bool, error)

	// profile
	GetProfile(ctx context.Context, userID string) (models.User, error)
	UpdateProfile(ctx context.Context, userID string, update models.ProfileUpdate) (models.User, error)
	UploadAvatar(ctx context.Context, userID string, req models.AvatarUploadRequest) (models.User, error)

	// dashboard and events
	GetDashboard(ctx context.Context, userID string) (models.Dashboard, error)
	GetEvents(ctx context.Context, filter models.EventFilter) ([]models.Event, error)
	GetEventDetail(ctx context.Context, eventID string, include []string) (models.EventDetail, error)

	// videos
	UploadVideo(ctx context.Context, req models.VideoUploadRequest) (models.VideoSubmission, error)
	GetUserVideos(ctx context.Context, userID string) ([]models.VideoSubmission, error)

	// subscriptions and payments
	CreateSubscription(ctx context.Context, req models.CreateSubscriptionRequest) (models.Subscription, error)
	GetSubscription(ctx context.Context, userID string) (models.Subscription, error)
	UpdateSubscription(ctx context.Context, userID string, req models.SubscriptionUpdateRequest) (models.Subscription, error)
	GetPaymentMethods(ctx context.Context) ([]models.PaymentMethod, error)
	ProcessPayment(ctx context.Context, userID string, req models.PaymentRequest) (models.PaymentResult, error)

	// quizzes
	GetQuiz(ctx context.Context, quizID string) (models.Quiz, error)
	SubmitQuiz(ctx context.Context, quizID string, submission models.QuizSubmission) (models.QuizResult, error)

	// search and analytics
	Search(ctx context.Context, query models.SearchQuery) (models.SearchResult, error)
	GetAnalytics(ctx context.Context, userID string) (models.Analytics, error)

	// notifications and schools
	GetNotifications(ctx context.Context, userID string) ([]models.Notification, error)
	MarkNotificationRead(ctx context.Context, userID, notificationID string) (models.Notification, error)
	GetSchools(ctx context.Context, query string) ([]models.School, error)
}

// TokenIssuer mints the token pairs handed out on login and refresh
type TokenIssuer interface {
	Issue(user models.User) (models.AuthTokens, error)
	Refresh(refreshToken string) (models.AuthTokens, error)
}
