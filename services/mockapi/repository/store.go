package repository

import (
	"strings"
	"sync"
	"time"

	"github.com/jackmarvels/platform/internal/pkg/models"
	"github.com/jackmarvels/platform/internal/utils"
	"github.com/jackmarvels/platform/services/mockapi"
)

var _ mockapi.DataStore = (*Store)(nil)

// Store is the in-memory data store behind the mock backend
type Store struct {
	mu sync.RWMutex

	users          []models.User
	events         []models.Event
	subscriptions  []models.Subscription
	paymentMethods []models.PaymentMethod
	videos         []models.VideoSubmission
	quizzes        []models.Quiz
	quizResults    []models.QuizResult
	notifications  []models.Notification
	schools        []models.School

	ids utils.IDGenerator
	now func() time.Time
}

// Option configures a Store
type Option func(*Store)

// WithIDGenerator replaces the default prefix_<uuid> id generator
func WithIDGenerator(g utils.IDGenerator) Option {
	return func(s *Store) { s.ids = g }
}

// WithClock replaces the wall clock used for timestamps
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore creates a store holding a copy of seed
func NewStore(seed Seed, opts ...Option) *Store {
	s := &Store{
		users:          cloneUsers(seed.Users),
		events:         cloneEvents(seed.Events),
		subscriptions:  append([]models.Subscription(nil), seed.Subscriptions...),
		paymentMethods: append([]models.PaymentMethod(nil), seed.PaymentMethods...),
		videos:         append([]models.VideoSubmission(nil), seed.Videos...),
		quizzes:        cloneQuizzes(seed.Quizzes),
		quizResults:    append([]models.QuizResult(nil), seed.QuizResults...),
		notifications:  append([]models.Notification(nil), seed.Notifications...),
		schools:        append([]models.School(nil), seed.Schools...),
		ids:            utils.UUIDGenerator{},
		now:            models.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Users returns all users
func (s *Store) Users() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneUsers(s.users)
}

// FindUserByID looks a user up by id
func (s *Store) FindUserByID(id string) (models.User, bool) {
	return s.findUser(func(u models.User) bool { return u.ID == id })
}

// FindUserByMobile looks a user up by mobile number
func (s *Store) FindUserByMobile(mobile string) (models.User, bool) {
	return s.findUser(func(u models.User) bool { return u.Mobile == mobile })
}

// FindUserByEmail looks a user up by email, ignoring case
func (s *Store) FindUserByEmail(email string) (models.User, bool) {
	return s.findUser(func(u models.User) bool { return strings.EqualFold(u.Email, email) })
}

func (s *Store) findUser(match func(models.User) bool) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if match(u) {
			return u, true
		}
	}
	return models.User{}, false
}

// AddUser appends a user, assigning an id and timestamps when missing
func (s *Store) AddUser(user models.User) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if user.ID == "" {
		user.ID = s.ids.NewID("user")
	}
	now := s.now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	s.users = append(s.users, user)
	return user
}

// UpdateUser merges the non-nil fields of update onto the user and stamps
// updatedAt. The role cannot be changed.
func (s *Store) UpdateUser(id string, update models.ProfileUpdate) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID != id {
			continue
		}
		update.Apply(&s.users[i])
		s.users[i].UpdatedAt = s.now()
		return s.users[i], true
	}
	return models.User{}, false
}

// Events returns all events
func (s *Store) Events() []models.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneEvents(s.events)
}

// FindEventByID looks an event up by id
func (s *Store) FindEventByID(id string) (models.Event, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.events {
		if e.ID == id {
			return cloneEvent(e), true
		}
	}
	return models.Event{}, false
}

// Subscriptions returns all subscriptions
func (s *Store) Subscriptions() []models.Subscription {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Subscription(nil), s.subscriptions...)
}

// FindSubscriptionByID looks a subscription up by id
func (s *Store) FindSubscriptionByID(id string) (models.Subscription, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sub := range s.subscriptions {
		if sub.ID == id {
			return sub, true
		}
	}
	return models.Subscription{}, false
}

// FindSubscriptionByUserID returns the user's current subscription, which
// is the first one stored for them
func (s *Store) FindSubscriptionByUserID(userID string) (models.Subscription, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sub := range s.subscriptions {
		if sub.UserID == userID {
			return sub, true
		}
	}
	return models.Subscription{}, false
}

// AddSubscription appends a subscription, assigning an id and timestamps
func (s *Store) AddSubscription(sub models.Subscription) models.Subscription {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sub.ID == "" {
		sub.ID = s.ids.NewID("sub")
	}
	now := s.now()
	sub.CreatedAt = now
	sub.UpdatedAt = now

	s.subscriptions = append(s.subscriptions, sub)
	return sub
}

// UpdateSubscription applies fn to the stored subscription and stamps
// updatedAt. The id and owner are preserved.
func (s *Store) UpdateSubscription(id string, fn func(*models.Subscription)) (models.Subscription, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.subscriptions {
		sub := &s.subscriptions[i]
		if sub.ID != id {
			continue
		}
		ownerID := sub.UserID
		fn(sub)
		sub.ID = id
		sub.UserID = ownerID
		sub.UpdatedAt = s.now()
		return *sub, true
	}
	return models.Subscription{}, false
}

// PaymentMethods returns the payment method catalog
func (s *Store) PaymentMethods() []models.PaymentMethod {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.PaymentMethod(nil), s.paymentMethods...)
}

// FindPaymentMethodByID looks a payment method up by id
func (s *Store) FindPaymentMethodByID(id string) (models.PaymentMethod, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, pm := range s.paymentMethods {
		if pm.ID == id {
			return pm, true
		}
	}
	return models.PaymentMethod{}, false
}

// VideoSubmissions returns all video submissions
func (s *Store) VideoSubmissions() []models.VideoSubmission {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.VideoSubmission(nil), s.videos...)
}

// FindVideosByUserID returns the user's submissions in submission order
func (s *Store) FindVideosByUserID(userID string) []models.VideoSubmission {
	s.mu.RLock()
	defer s.mu.RUnlock()

	videos := []models.VideoSubmission{}
	for _, v := range s.videos {
		if v.UserID == userID {
			videos = append(videos, v)
		}
	}
	return videos
}

// AddVideoSubmission appends a submission with a generated id and timestamp
func (s *Store) AddVideoSubmission(video models.VideoSubmission) models.VideoSubmission {
	s.mu.Lock()
	defer s.mu.Unlock()

	video.ID = s.ids.NewID("video")
	video.SubmittedAt = s.now()

	s.videos = append(s.videos, video)
	return video
}

// FindQuizByID looks a quiz up by id
func (s *Store) FindQuizByID(id string) (models.Quiz, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, q := range s.quizzes {
		if q.ID == id {
			return cloneQuiz(q), true
		}
	}
	return models.Quiz{}, false
}

// QuizResults returns all recorded quiz results
func (s *Store) QuizResults() []models.QuizResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.QuizResult(nil), s.quizResults...)
}

// AddQuizResult appends a result with a generated id and timestamp
func (s *Store) AddQuizResult(result models.QuizResult) models.QuizResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	result.ID = s.ids.NewID("result")
	result.SubmittedAt = s.now()

	s.quizResults = append(s.quizResults, result)
	return result
}

// FindNotificationsByUserID returns the user's notifications
func (s *Store) FindNotificationsByUserID(userID string) []models.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	notifications := []models.Notification{}
	for _, n := range s.notifications {
		if n.UserID == userID {
			notifications = append(notifications, n)
		}
	}
	return notifications
}

// AddNotification appends an unread notification with a generated id and timestamp
func (s *Store) AddNotification(n models.Notification) models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	n.ID = s.ids.NewID("notif")
	n.IsRead = false
	n.CreatedAt = s.now()

	s.notifications = append(s.notifications, n)
	return n
}

// MarkNotificationRead flags one of userID's notifications as read.
// Notifications owned by anyone else are reported as missing.
func (s *Store) MarkNotificationRead(userID, id string) (models.Notification, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.notifications {
		if s.notifications[i].ID == id && s.notifications[i].UserID == userID {
			s.notifications[i].IsRead = true
			return s.notifications[i], true
		}
	}
	return models.Notification{}, false
}

// Schools returns the school directory
func (s *Store) Schools() []models.School {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.School(nil), s.schools...)
}

func cloneUsers(users []models.User) []models.User {
	return append([]models.User{}, users...)
}

func cloneEvent(e models.Event) models.Event {
	e.AllowedRoles = append([]models.Role(nil), e.AllowedRoles...)
	e.Guidelines = append([]string(nil), e.Guidelines...)
	e.Tags = append([]string(nil), e.Tags...)
	return e
}

func cloneEvents(events []models.Event) []models.Event {
	out := make([]models.Event, len(events))
	for i, e := range events {
		out[i] = cloneEvent(e)
	}
	return out
}

func cloneQuiz(q models.Quiz) models.Quiz {
	questions := make([]models.QuizQuestion, len(q.Questions))
	for i, question := range q.Questions {
		question.Options = append([]string(nil), question.Options...)
		questions[i] = question
	}
	q.Questions = questions
	return q
}

func cloneQuizzes(quizzes []models.Quiz) []models.Quiz {
	out := make([]models.Quiz, len(quizzes))
	for i, q := range quizzes {
		out[i] = cloneQuiz(q)
	}
	return out
}
