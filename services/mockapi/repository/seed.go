package repository

import (
	"time"

	"github.com/jackmarvels/platform/internal/pkg/models"
)

// Seed mobile numbers and the OTP accepted for them
const (
	StudentUserID   = "user_001"
	StudentMobile   = "9876543210"
	StudentEmail    = "rahul.sharma@example.com"
	InfluencerID    = "user_002"
	InfluencerPhone = "8765432109"
	SeedOTP         = "123456"

	SeedQuizID         = "quiz_001"
	SeedSubscriptionID = "sub_001"
)

// Seed is the initial content of a Store
type Seed struct {
	Users          []models.User
	Events         []models.Event
	Subscriptions  []models.Subscription
	PaymentMethods []models.PaymentMethod
	Videos         []models.VideoSubmission
	Quizzes        []models.Quiz
	QuizResults    []models.QuizResult
	Notifications  []models.Notification
	Schools        []models.School
}

// DefaultSeed returns the development data set anchored at the current time
func DefaultSeed() Seed {
	return SeedAt(models.Now())
}

// SeedAt returns the development data set with event windows relative to now
func SeedAt(now time.Time) Seed {
	day := 24 * time.Hour
	created := now.Add(-90 * day)

	return Seed{
		Users: []models.User{
			{
				ID:         StudentUserID,
				FirstName:  "Rahul",
				LastName:   "Sharma",
				Email:      StudentEmail,
				Mobile:     StudentMobile,
				State:      "Maharashtra",
				District:   "Mumbai",
				City:       "Mumbai",
				Pincode:    "400001",
				SchoolName: "St. Xavier's High School",
				SchoolID:   "school_001",
				RoleID:     models.RoleStudent,
				IsVerified: true,
				IsActive:   true,
				CreatedAt:  created,
				UpdatedAt:  created,
			},
			{
				ID:         InfluencerID,
				FirstName:  "Priya",
				LastName:   "Patel",
				Email:      "priya.patel@example.com",
				Mobile:     InfluencerPhone,
				State:      "Gujarat",
				District:   "Ahmedabad",
				City:       "Ahmedabad",
				Pincode:    "380001",
				RoleID:     models.RoleInfluencer,
				IsVerified: true,
				IsActive:   true,
				CreatedAt:  created,
				UpdatedAt:  created,
			},
		},
		Events: []models.Event{
			{
				ID:               "event_001",
				Title:            "Inter-School Dance Championship",
				Description:      "Show your best moves in solo or group dance performances.",
				Category:         "dance",
				Prize:            "Rs 50,000 and a trophy",
				StartDate:        now.Add(-7 * day),
				EndDate:          now.Add(30 * day),
				UploadStartDate:  now.Add(-7 * day),
				UploadEndDate:    now.Add(21 * day),
				AllowedRoles:     []models.Role{models.RoleStudent},
				CanUpload:        true,
				ParticipantCount: 128,
				QuizID:           SeedQuizID,
				Guidelines: []string{
					"Video must be between 1 and 3 minutes long",
					"Music must be royalty free",
					"Group entries may have up to 6 members",
				},
				Tags: []string{"dance", "performance"},
			},
			{
				ID:               "event_002",
				Title:            "Young Singers Showcase",
				Description:      "A singing contest for classical and contemporary vocalists.",
				Category:         "singing",
				Prize:            "Studio recording session",
				StartDate:        now.Add(-3 * day),
				EndDate:          now.Add(45 * day),
				UploadStartDate:  now.Add(-3 * day),
				UploadEndDate:    now.Add(30 * day),
				AllowedRoles:     []models.Role{models.RoleStudent},
				CanUpload:        true,
				ParticipantCount: 86,
				Guidelines: []string{
					"Unaccompanied or with a single instrument",
					"No auto-tune or post processing",
				},
				Tags: []string{"music", "singing"},
			},
			{
				ID:               "event_003",
				Title:            "Art and Craft Challenge",
				Description:      "Record the making of an original painting or craft piece.",
				Category:         "art",
				Prize:            "Art supplies worth Rs 10,000",
				StartDate:        now.Add(-60 * day),
				EndDate:          now.Add(-10 * day),
				UploadStartDate:  now.Add(-60 * day),
				UploadEndDate:    now.Add(-20 * day),
				AllowedRoles:     []models.Role{models.RoleStudent},
				CanUpload:        false,
				ParticipantCount: 214,
				Tags:             []string{"art", "craft"},
			},
			{
				ID:               "event_101",
				Title:            "Creator Spotlight",
				Description:      "Influencers judge and promote the best student dance entries.",
				Category:         "dance",
				StartDate:        now.Add(-7 * day),
				EndDate:          now.Add(30 * day),
				UploadStartDate:  now.Add(-7 * day),
				UploadEndDate:    now.Add(21 * day),
				AllowedRoles:     []models.Role{models.RoleInfluencer},
				CanUpload:        true,
				ParticipantCount: 12,
				Guidelines:       []string{"Disclose any brand partnership in the description"},
				Tags:             []string{"influencer", "collab"},
			},
			{
				ID:               "event_102",
				Title:            "Brand Ambassador Hunt",
				Description:      "Pitch a short campaign video for the next talent season.",
				Category:         "marketing",
				StartDate:        now.Add(5 * day),
				EndDate:          now.Add(40 * day),
				UploadStartDate:  now.Add(5 * day),
				UploadEndDate:    now.Add(35 * day),
				AllowedRoles:     []models.Role{models.RoleInfluencer},
				CanUpload:        true,
				ParticipantCount: 4,
				Tags:             []string{"influencer", "campaign"},
			},
		},
		Subscriptions: []models.Subscription{
			{
				ID:        SeedSubscriptionID,
				UserID:    StudentUserID,
				Plan:      models.PlanPremium,
				Status:    models.SubscriptionPending,
				Amount:    499,
				Currency:  "INR",
				StartDate: now,
				EndDate:   now.Add(365 * day),
				CreatedAt: now.Add(-day),
				UpdatedAt: now.Add(-day),
			},
			{
				ID:            "sub_002",
				UserID:        InfluencerID,
				Plan:          models.PlanPremium,
				Status:        models.SubscriptionActive,
				Amount:        999,
				Currency:      "INR",
				StartDate:     now.Add(-30 * day),
				EndDate:       now.Add(335 * day),
				TransactionID: "txn_seed_002",
				PaymentMethod: "pm_upi",
				CreatedAt:     now.Add(-30 * day),
				UpdatedAt:     now.Add(-30 * day),
			},
		},
		PaymentMethods: []models.PaymentMethod{
			{ID: "pm_upi", Name: "UPI", Type: "upi", IsEnabled: true},
			{ID: "pm_card", Name: "Credit / Debit Card", Type: "card", IsEnabled: true},
			{ID: "pm_netbanking", Name: "Net Banking", Type: "netbanking", IsEnabled: true},
			{ID: "pm_wallet", Name: "Wallet", Type: "wallet", IsEnabled: false},
		},
		Videos: []models.VideoSubmission{
			{
				ID:           "video_001",
				UserID:       StudentUserID,
				EventID:      "event_001",
				Title:        "Bollywood fusion solo",
				VideoURL:     "https://cdn.example.com/videos/video_001.mp4",
				ThumbnailURL: "https://cdn.example.com/thumbs/video_001.jpg",
				Status:       models.VideoApproved,
				Views:        1250,
				Likes:        89,
				SubmittedAt:  now.Add(-5 * day),
			},
			{
				ID:          "video_002",
				UserID:      StudentUserID,
				EventID:     "event_002",
				Title:       "Raag Yaman practice",
				VideoURL:    "https://cdn.example.com/videos/video_002.mp4",
				Status:      models.VideoPending,
				SubmittedAt: now.Add(-day),
			},
		},
		Quizzes: []models.Quiz{
			{
				ID:               SeedQuizID,
				EventID:          "event_001",
				Title:            "Dance Basics",
				PassingScore:     60,
				TimeLimitMinutes: 10,
				Questions: []models.QuizQuestion{
					{ID: "q1", Question: "Which Indian classical dance originates from Kerala?", Options: []string{"Kathak", "Kathakali", "Odissi", "Manipuri"}, CorrectAnswer: 1},
					{ID: "q2", Question: "How many counts are in a standard dance phrase?", Options: []string{"4", "6", "8", "12"}, CorrectAnswer: 2},
					{ID: "q3", Question: "Bharatanatyam comes from which state?", Options: []string{"Tamil Nadu", "Punjab", "Assam", "Bihar"}, CorrectAnswer: 0},
					{ID: "q4", Question: "What is a freeze in hip hop?", Options: []string{"A spin", "A jump", "A held pose", "A slide"}, CorrectAnswer: 2},
					{ID: "q5", Question: "Garba is traditionally performed during which festival?", Options: []string{"Diwali", "Holi", "Onam", "Navratri"}, CorrectAnswer: 3},
				},
			},
		},
		Notifications: []models.Notification{
			{
				ID:        "notif_001",
				UserID:    StudentUserID,
				Title:     "Welcome to Jack Marvels",
				Message:   "Your account is ready. Explore events and show your talent!",
				Type:      models.NotificationWelcome,
				IsRead:    true,
				CreatedAt: created,
			},
			{
				ID:        "notif_002",
				UserID:    StudentUserID,
				Title:     "Your video was approved",
				Message:   "Bollywood fusion solo is now live in the Inter-School Dance Championship.",
				Type:      models.NotificationVideo,
				CreatedAt: now.Add(-4 * day),
			},
			{
				ID:        "notif_003",
				UserID:    InfluencerID,
				Title:     "New collaboration open",
				Message:   "Creator Spotlight is accepting influencer entries.",
				Type:      models.NotificationEvent,
				CreatedAt: now.Add(-2 * day),
			},
		},
		Schools: []models.School{
			{ID: "school_001", Name: "St. Xavier's High School", City: "Mumbai", State: "Maharashtra", Pincode: "400001", Verified: true},
			{ID: "school_002", Name: "Delhi Public School", City: "New Delhi", State: "Delhi", Pincode: "110003", Verified: true},
			{ID: "school_003", Name: "Kendriya Vidyalaya No. 1", City: "Ahmedabad", State: "Gujarat", Pincode: "380001", Verified: true},
			{ID: "school_004", Name: "Bishop Cotton Boys' School", City: "Bengaluru", State: "Karnataka", Pincode: "560025", Verified: true},
			{ID: "school_005", Name: "Modern Public School", City: "Jaipur", State: "Rajasthan", Pincode: "302001", Verified: false},
		},
	}
}
