package http

import (
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/jackmarvels/platform/internal/pkg/apperrors"
	"github.com/jackmarvels/platform/internal/pkg/models"
	"github.com/jackmarvels/platform/services/mockapi/mocks"
	"github.com/stretchr/testify/assert"
)

func TestSplitList(t *testing.T) {
	assert.Nil(t, splitList(""))
	assert.Equal(t, []string{"guidelines", "related"}, splitList(" guidelines, ,related "))
}

func TestGetDashboard_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockMockAPIUC(ctrl)
	contentHandler := NewContentHandler(mockUC)

	c, rec := newContext(http.MethodGet, "/dashboard", "")
	c.Set("user_id", "user_001")

	mockUC.EXPECT().
		GetDashboard(gomock.Any(), "user_001").
		Return(models.Dashboard{
			User:                models.User{ID: "user_001"},
			Events:              []models.Event{{ID: "event_001"}},
			UnreadNotifications: 2,
		}, nil)

	// Act
	err := contentHandler.GetDashboard(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	data := decode(t, rec)["data"].(map[string]interface{})
	assert.Equal(t, float64(2), data["unreadNotifications"])
	assert.Len(t, data["events"], 1)
}

func TestGetDashboard_InvalidRole(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockMockAPIUC(ctrl)
	contentHandler := NewContentHandler(mockUC)

	c, rec := newContext(http.MethodGet, "/dashboard", "")
	c.Set("user_id", "user_x")

	mockUC.EXPECT().
		GetDashboard(gomock.Any(), "user_x").
		Return(models.Dashboard{}, apperrors.New(apperrors.KindInvalidRole, "Invalid user role"))

	// Act
	err := contentHandler.GetDashboard(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, string(apperrors.KindInvalidRole), decode(t, rec)["code"])
}

func TestGetEvents_PassesFilter(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockMockAPIUC(ctrl)
	contentHandler := NewContentHandler(mockUC)

	c, rec := newContext(http.MethodGet, "/events?category=dance&search=hip", "")

	mockUC.EXPECT().
		GetEvents(gomock.Any(), models.EventFilter{Category: "dance", Search: "hip"}).
		Return([]models.Event{}, nil)

	// Act
	err := contentHandler.GetEvents(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetEventDetail_Includes(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockMockAPIUC(ctrl)
	contentHandler := NewContentHandler(mockUC)

	c, rec := newContext(http.MethodGet, "/events/event_001?include=guidelines,related", "")
	c.SetParamNames("id")
	c.SetParamValues("event_001")

	mockUC.EXPECT().
		GetEventDetail(gomock.Any(), "event_001", []string{"guidelines", "related"}).
		Return(models.EventDetail{
			Event:      models.Event{ID: "event_001"},
			Guidelines: []string{"Be original"},
		}, nil)

	// Act
	err := contentHandler.GetEventDetail(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	data := decode(t, rec)["data"].(map[string]interface{})
	assert.Equal(t, "event_001", data["id"])
	assert.Equal(t, []interface{}{"Be original"}, data["guidelines"])
}

func TestUploadVideo(t *testing.T) {
	testCases := []struct {
		name       string
		body       string
		setup      func(mockUC *mocks.MockMockAPIUC)
		wantStatus int
		wantError  string
	}{
		{
			name: "created with the caller as owner",
			body: `{"eventId": "event_001", "userId": "someone_else", "title": "Routine", "videoUrl": "https://cdn.example.com/v.mp4"}`,
			setup: func(mockUC *mocks.MockMockAPIUC) {
				mockUC.EXPECT().
					UploadVideo(gomock.Any(), models.VideoUploadRequest{
						EventID:  "event_001",
						UserID:   "user_001",
						Title:    "Routine",
						VideoURL: "https://cdn.example.com/v.mp4",
					}).
					Return(models.VideoSubmission{ID: "video_9", Status: models.VideoPending}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing title",
			body:       `{"eventId": "event_001", "videoUrl": "https://cdn.example.com/v.mp4"}`,
			setup:      func(mockUC *mocks.MockMockAPIUC) {},
			wantStatus: http.StatusBadRequest,
			wantError:  "title is required",
		},
		{
			name: "uploads closed",
			body: `{"eventId": "event_003", "title": "Sketch", "videoUrl": "https://cdn.example.com/s.mp4"}`,
			setup: func(mockUC *mocks.MockMockAPIUC) {
				mockUC.EXPECT().
					UploadVideo(gomock.Any(), gomock.Any()).
					Return(models.VideoSubmission{}, apperrors.New(apperrors.KindUploadClosed, "This event is not accepting uploads"))
			},
			wantStatus: http.StatusBadRequest,
			wantError:  "This event is not accepting uploads",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			ctrl := gomock.NewController(t)
			mockUC := mocks.NewMockMockAPIUC(ctrl)
			contentHandler := NewContentHandler(mockUC)
			tc.setup(mockUC)

			c, rec := newContext(http.MethodPost, "/videos", tc.body)
			c.Set("user_id", "user_001")

			// Act
			err := contentHandler.UploadVideo(c)

			// Assert
			assert.NoError(t, err)
			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantError != "" {
				assert.Equal(t, tc.wantError, decode(t, rec)["error"])
			}
		})
	}
}

func TestCreateSubscription_OwnerFromToken(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockMockAPIUC(ctrl)
	contentHandler := NewContentHandler(mockUC)

	c, rec := newContext(http.MethodPost, "/subscription", `{"userId": "user_002", "plan": "premium", "amount": 499}`)
	c.Set("user_id", "user_001")

	mockUC.EXPECT().
		CreateSubscription(gomock.Any(), models.CreateSubscriptionRequest{UserID: "user_001", Plan: models.PlanPremium, Amount: 499}).
		Return(models.Subscription{ID: "sub_9", UserID: "user_001", Status: models.SubscriptionPending}, nil)

	// Act
	err := contentHandler.CreateSubscription(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateSubscription_BodyWithoutOwner(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockMockAPIUC(ctrl)
	contentHandler := NewContentHandler(mockUC)

	c, rec := newContext(http.MethodPost, "/subscription", `{"plan": "free", "amount": 0}`)
	c.Set("user_id", "user_002")

	mockUC.EXPECT().
		CreateSubscription(gomock.Any(), models.CreateSubscriptionRequest{UserID: "user_002", Plan: models.PlanFree}).
		Return(models.Subscription{ID: "sub_10", UserID: "user_002", Status: models.SubscriptionPending}, nil)

	// Act
	err := contentHandler.CreateSubscription(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateSubscription_UnknownPlan(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockMockAPIUC(ctrl)
	contentHandler := NewContentHandler(mockUC)

	c, rec := newContext(http.MethodPost, "/subscription", `{"plan": "gold"}`)
	c.Set("user_id", "user_001")

	// Act
	err := contentHandler.CreateSubscription(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "plan must be one of [free premium]", decode(t, rec)["error"])
}

func TestProcessPayment_InsufficientFunds(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockMockAPIUC(ctrl)
	contentHandler := NewContentHandler(mockUC)

	c, rec := newContext(http.MethodPost, "/payments", `{"subscriptionId": "sub_001", "amount": 1500, "paymentMethodId": "pm_upi"}`)
	c.Set("user_id", "user_001")

	mockUC.EXPECT().
		ProcessPayment(gomock.Any(), "user_001", models.PaymentRequest{SubscriptionID: "sub_001", Amount: 1500, PaymentMethodID: "pm_upi"}).
		Return(models.PaymentResult{}, apperrors.New(apperrors.KindInsufficientFunds, "Insufficient funds"))

	// Act
	err := contentHandler.ProcessPayment(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	response := decode(t, rec)
	assert.Equal(t, false, response["success"])
	assert.Equal(t, string(apperrors.KindInsufficientFunds), response["code"])
}

func TestSubmitQuiz_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockMockAPIUC(ctrl)
	contentHandler := NewContentHandler(mockUC)

	c, rec := newContext(http.MethodPost, "/quiz/quiz_001/submit", `{"answers": {"q1": 1, "q2": 2}}`)
	c.SetParamNames("id")
	c.SetParamValues("quiz_001")
	c.Set("user_id", "user_001")

	mockUC.EXPECT().
		SubmitQuiz(gomock.Any(), "quiz_001", models.QuizSubmission{
			UserID:  "user_001",
			Answers: map[string]int{"q1": 1, "q2": 2},
		}).
		Return(models.QuizResult{Score: 40, CorrectAnswers: 2, TotalQuestions: 5}, nil)

	// Act
	err := contentHandler.SubmitQuiz(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(40), decode(t, rec)["data"].(map[string]interface{})["score"])
}

func TestSearch_ParsesTypes(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockMockAPIUC(ctrl)
	contentHandler := NewContentHandler(mockUC)

	c, rec := newContext(http.MethodGet, "/search?q=dance&types=events,videos", "")

	mockUC.EXPECT().
		Search(gomock.Any(), models.SearchQuery{Query: "dance", Types: []string{"events", "videos"}}).
		Return(models.SearchResult{Query: "dance", Total: 3}, nil)

	// Act
	err := contentHandler.Search(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetAnalytics_Scope(t *testing.T) {
	testCases := []struct {
		name       string
		target     string
		wantUserID string
	}{
		{name: "user scope by default", target: "/analytics", wantUserID: "user_001"},
		{name: "global scope", target: "/analytics?scope=global", wantUserID: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			ctrl := gomock.NewController(t)
			mockUC := mocks.NewMockMockAPIUC(ctrl)
			contentHandler := NewContentHandler(mockUC)

			c, rec := newContext(http.MethodGet, tc.target, "")
			c.Set("user_id", "user_001")

			mockUC.EXPECT().
				GetAnalytics(gomock.Any(), tc.wantUserID).
				Return(models.Analytics{}, nil)

			// Act
			err := contentHandler.GetAnalytics(c)

			// Assert
			assert.NoError(t, err)
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestMarkNotificationRead_NotFound(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockMockAPIUC(ctrl)
	contentHandler := NewContentHandler(mockUC)

	c, rec := newContext(http.MethodPut, "/notifications/nope/read", "")
	c.SetParamNames("id")
	c.SetParamValues("nope")
	c.Set("user_id", "user_002")

	mockUC.EXPECT().
		MarkNotificationRead(gomock.Any(), "user_002", "nope").
		Return(models.Notification{}, apperrors.NotFound("Notification"))

	// Act
	err := contentHandler.MarkNotificationRead(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Notification not found", decode(t, rec)["error"])
}
