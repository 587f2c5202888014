package repository

import (
	"sync"
	"testing"
	"time"

	"github.com/jackmarvels/platform/internal/pkg/models"
	"github.com/jackmarvels/platform/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func newTestStore() *Store {
	return NewStore(SeedAt(fixedNow),
		WithIDGenerator(utils.NewSequenceGenerator(1)),
		WithClock(func() time.Time { return fixedNow }),
	)
}

func strPtr(s string) *string { return &s }

func TestStore_FindUser(t *testing.T) {
	store := newTestStore()

	user, ok := store.FindUserByID(StudentUserID)
	require.True(t, ok)
	assert.Equal(t, "Rahul", user.FirstName)

	user, ok = store.FindUserByMobile(InfluencerPhone)
	require.True(t, ok)
	assert.Equal(t, InfluencerID, user.ID)

	user, ok = store.FindUserByEmail("RAHUL.SHARMA@example.com")
	require.True(t, ok)
	assert.Equal(t, StudentUserID, user.ID)

	_, ok = store.FindUserByID("user_missing")
	assert.False(t, ok)
}

func TestStore_GettersReturnCopies(t *testing.T) {
	store := newTestStore()

	users := store.Users()
	users[0].FirstName = "Mutated"

	events := store.Events()
	events[0].AllowedRoles[0] = models.RoleInfluencer

	user, _ := store.FindUserByID(StudentUserID)
	assert.Equal(t, "Rahul", user.FirstName)

	event, _ := store.FindEventByID("event_001")
	assert.Equal(t, []models.Role{models.RoleStudent}, event.AllowedRoles)

	quiz, _ := store.FindQuizByID(SeedQuizID)
	quiz.Questions[0].CorrectAnswer = 3
	again, _ := store.FindQuizByID(SeedQuizID)
	assert.Equal(t, 1, again.Questions[0].CorrectAnswer)
}

func TestStore_AddUser(t *testing.T) {
	store := newTestStore()

	user := store.AddUser(models.User{FirstName: "Asha", RoleID: models.RoleStudent})

	assert.Equal(t, "user_1", user.ID)
	assert.Equal(t, fixedNow, user.CreatedAt)
	assert.Equal(t, fixedNow, user.UpdatedAt)
	assert.Len(t, store.Users(), 3)
}

func TestStore_UpdateUser(t *testing.T) {
	t.Run("merges only set fields", func(t *testing.T) {
		store := newTestStore()

		user, ok := store.UpdateUser(StudentUserID, models.ProfileUpdate{City: strPtr("Pune")})

		require.True(t, ok)
		assert.Equal(t, "Pune", user.City)
		assert.Equal(t, "Rahul", user.FirstName)
		assert.Equal(t, models.RoleStudent, user.RoleID)
		assert.Equal(t, fixedNow, user.UpdatedAt)

		stored, _ := store.FindUserByID(StudentUserID)
		assert.Equal(t, "Pune", stored.City)
	})

	t.Run("missing user", func(t *testing.T) {
		store := newTestStore()

		_, ok := store.UpdateUser("user_missing", models.ProfileUpdate{City: strPtr("Pune")})

		assert.False(t, ok)
	})
}

func TestStore_Subscriptions(t *testing.T) {
	store := newTestStore()

	current, ok := store.FindSubscriptionByUserID(StudentUserID)
	require.True(t, ok)
	assert.Equal(t, SeedSubscriptionID, current.ID)

	// a second row does not displace the first match
	added := store.AddSubscription(models.Subscription{UserID: StudentUserID, Plan: models.PlanFree})
	assert.Equal(t, "sub_1", added.ID)
	current, _ = store.FindSubscriptionByUserID(StudentUserID)
	assert.Equal(t, SeedSubscriptionID, current.ID)

	updated, ok := store.UpdateSubscription(SeedSubscriptionID, func(s *models.Subscription) {
		s.Status = models.SubscriptionActive
		s.UserID = "someone_else"
	})
	require.True(t, ok)
	assert.Equal(t, models.SubscriptionActive, updated.Status)
	assert.Equal(t, StudentUserID, updated.UserID)
	assert.Equal(t, fixedNow, updated.UpdatedAt)

	_, ok = store.UpdateSubscription("sub_missing", func(*models.Subscription) {})
	assert.False(t, ok)
}

func TestStore_Videos(t *testing.T) {
	store := newTestStore()

	video := store.AddVideoSubmission(models.VideoSubmission{
		UserID:  StudentUserID,
		EventID: "event_001",
		Status:  models.VideoPending,
	})

	assert.Equal(t, "video_1", video.ID)
	assert.Equal(t, fixedNow, video.SubmittedAt)
	assert.Len(t, store.FindVideosByUserID(StudentUserID), 3)
	assert.Empty(t, store.FindVideosByUserID(InfluencerID))
	assert.NotNil(t, store.FindVideosByUserID(InfluencerID))
}

func TestStore_Notifications(t *testing.T) {
	store := newTestStore()

	n := store.AddNotification(models.Notification{UserID: InfluencerID, Title: "Hi", IsRead: true})
	assert.Equal(t, "notif_1", n.ID)
	assert.False(t, n.IsRead)
	assert.Len(t, store.FindNotificationsByUserID(InfluencerID), 2)

	read, ok := store.MarkNotificationRead(InfluencerID, n.ID)
	require.True(t, ok)
	assert.True(t, read.IsRead)

	_, ok = store.MarkNotificationRead(InfluencerID, "notif_missing")
	assert.False(t, ok)

	// someone else's notification is left untouched
	_, ok = store.MarkNotificationRead(InfluencerID, "notif_002")
	assert.False(t, ok)
	for _, other := range store.FindNotificationsByUserID(StudentUserID) {
		if other.ID == "notif_002" {
			assert.False(t, other.IsRead)
		}
	}
}

func TestStore_QuizResults(t *testing.T) {
	store := newTestStore()

	result := store.AddQuizResult(models.QuizResult{QuizID: SeedQuizID, UserID: StudentUserID, Score: 80})

	assert.Equal(t, "result_1", result.ID)
	assert.Equal(t, fixedNow, result.SubmittedAt)
	assert.Len(t, store.QuizResults(), 1)
}

func TestStore_Catalogs(t *testing.T) {
	store := newTestStore()

	pm, ok := store.FindPaymentMethodByID("pm_wallet")
	require.True(t, ok)
	assert.False(t, pm.IsEnabled)
	assert.Len(t, store.PaymentMethods(), 4)
	assert.Len(t, store.Schools(), 5)
	assert.Len(t, store.Subscriptions(), 2)
	assert.Len(t, store.VideoSubmissions(), 2)
}

func TestStore_ConcurrentWrites(t *testing.T) {
	store := NewStore(SeedAt(fixedNow))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.AddVideoSubmission(models.VideoSubmission{UserID: InfluencerID})
			store.FindVideosByUserID(InfluencerID)
		}()
	}
	wg.Wait()

	videos := store.FindVideosByUserID(InfluencerID)
	assert.Len(t, videos, 50)

	ids := make(map[string]bool)
	for _, v := range videos {
		ids[v.ID] = true
	}
	assert.Len(t, ids, 50)
}
