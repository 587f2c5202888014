package mockapi

import (
	"github.com/jackmarvels/platform/internal/pkg/models"
)

// DataStore is the in-memory backing store of the mock backend.
// Getters return copies; every mutation goes through a store method.
type DataStore interface {
	// users
	Users() []models.User
	FindUserByID(id string) (models.User, bool)
	FindUserByMobile(mobile string) (models.User, bool)
	FindUserByEmail(email string) (models.User, bool)
	AddUser(user models.User) models.User
	UpdateUser(id string, update models.ProfileUpdate) (models.User, bool)

	// events
	Events() []models.Event
	FindEventByID(id string) (models.Event, bool)

	// subscriptions and payments
	Subscriptions() []models.Subscription
	FindSubscriptionByID(id string) (models.Subscription, bool)
	FindSubscriptionByUserID(userID string) (models.Subscription, bool)
	AddSubscription(sub models.Subscription) models.Subscription
	UpdateSubscription(id string, fn func(*models.Subscription)) (models.Subscription, bool)
	PaymentMethods() []models.PaymentMethod
	FindPaymentMethodByID(id string) (models.PaymentMethod, bool)

	// videos
	VideoSubmissions() []models.VideoSubmission
	FindVideosByUserID(userID string) []models.VideoSubmission
	AddVideoSubmission(video models.VideoSubmission) models.VideoSubmission

	// quizzes
	FindQuizByID(id string) (models.Quiz, bool)
	QuizResults() []models.QuizResult
	AddQuizResult(result models.QuizResult) models.QuizResult

	// notifications
	FindNotificationsByUserID(userID string) []models.Notification
	AddNotification(n models.Notification) models.Notification
	MarkNotificationRead(userID, id string) (models.Notification, bool)

	// schools
	Schools() []models.School
}
