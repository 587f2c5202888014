package http

import (
	"net/http"
	"strings"

	"github.com/jackmarvels/platform/internal/pkg/middleware"
	"github.com/jackmarvels/platform/internal/pkg/models"
	"github.com/jackmarvels/platform/internal/utils"
	"github.com/jackmarvels/platform/services/mockapi"
	"github.com/labstack/echo/v4"
)

// ContentHandler serves the authenticated platform endpoints
type ContentHandler struct {
	mockUC mockapi.MockAPIUC
}

// NewContentHandler creates a new content handler
func NewContentHandler(mockUC mockapi.MockAPIUC) *ContentHandler {
	return &ContentHandler{
		mockUC: mockUC,
	}
}

// splitList parses a comma separated query parameter
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// GetDashboard handles GET /dashboard
func (h *ContentHandler) GetDashboard(c echo.Context) error {
	dashboard, err := h.mockUC.GetDashboard(c.Request().Context(), middleware.CurrentUserID(c))
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", dashboard)
}

// GetEvents handles GET /events?category=&search=
func (h *ContentHandler) GetEvents(c echo.Context) error {
	filter := models.EventFilter{
		Category: c.QueryParam("category"),
		Search:   c.QueryParam("search"),
	}

	events, err := h.mockUC.GetEvents(c.Request().Context(), filter)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", events)
}

// GetEventDetail handles GET /events/:id?include=guidelines,categories,related
func (h *ContentHandler) GetEventDetail(c echo.Context) error {
	detail, err := h.mockUC.GetEventDetail(c.Request().Context(), c.Param("id"), splitList(c.QueryParam("include")))
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", detail)
}

// UploadVideo handles POST /videos
func (h *ContentHandler) UploadVideo(c echo.Context) error {
	var req models.VideoUploadRequest
	if err := bind(c, &req); err != nil {
		return utils.AppErrorResponse(c, err)
	}
	// the owner always comes from the token
	req.UserID = middleware.CurrentUserID(c)

	video, err := h.mockUC.UploadVideo(c.Request().Context(), req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Video submitted successfully", video)
}

// GetUserVideos handles GET /videos
func (h *ContentHandler) GetUserVideos(c echo.Context) error {
	videos, err := h.mockUC.GetUserVideos(c.Request().Context(), middleware.CurrentUserID(c))
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", videos)
}

// CreateSubscription handles POST /subscription
func (h *ContentHandler) CreateSubscription(c echo.Context) error {
	var req models.CreateSubscriptionRequest
	if err := bind(c, &req); err != nil {
		return utils.AppErrorResponse(c, err)
	}
	req.UserID = middleware.CurrentUserID(c)

	sub, err := h.mockUC.CreateSubscription(c.Request().Context(), req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Subscription created", sub)
}

// GetSubscription handles GET /subscription
func (h *ContentHandler) GetSubscription(c echo.Context) error {
	sub, err := h.mockUC.GetSubscription(c.Request().Context(), middleware.CurrentUserID(c))
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", sub)
}

// UpdateSubscription handles PUT /subscription/update
func (h *ContentHandler) UpdateSubscription(c echo.Context) error {
	var req models.SubscriptionUpdateRequest
	if err := bind(c, &req); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	sub, err := h.mockUC.UpdateSubscription(c.Request().Context(), middleware.CurrentUserID(c), req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Subscription updated", sub)
}

// GetPaymentMethods handles GET /payments/methods
func (h *ContentHandler) GetPaymentMethods(c echo.Context) error {
	methods, err := h.mockUC.GetPaymentMethods(c.Request().Context())
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", methods)
}

// ProcessPayment handles POST /payments
func (h *ContentHandler) ProcessPayment(c echo.Context) error {
	var req models.PaymentRequest
	if err := bind(c, &req); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	result, err := h.mockUC.ProcessPayment(c.Request().Context(), middleware.CurrentUserID(c), req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Payment successful", result)
}

// GetQuiz handles GET /quiz/:id
func (h *ContentHandler) GetQuiz(c echo.Context) error {
	quiz, err := h.mockUC.GetQuiz(c.Request().Context(), c.Param("id"))
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", quiz)
}

// SubmitQuiz handles POST /quiz/:id/submit
func (h *ContentHandler) SubmitQuiz(c echo.Context) error {
	var submission models.QuizSubmission
	if err := bind(c, &submission); err != nil {
		return utils.AppErrorResponse(c, err)
	}
	submission.UserID = middleware.CurrentUserID(c)

	result, err := h.mockUC.SubmitQuiz(c.Request().Context(), c.Param("id"), submission)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Quiz submitted", result)
}

// Search handles GET /search?q=&types=events,users,videos
func (h *ContentHandler) Search(c echo.Context) error {
	query := models.SearchQuery{
		Query: c.QueryParam("q"),
		Types: splitList(c.QueryParam("types")),
	}

	result, err := h.mockUC.Search(c.Request().Context(), query)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetAnalytics handles GET /analytics?scope=user|global
func (h *ContentHandler) GetAnalytics(c echo.Context) error {
	userID := middleware.CurrentUserID(c)
	if c.QueryParam("scope") == models.AnalyticsScopeGlobal {
		userID = ""
	}

	analytics, err := h.mockUC.GetAnalytics(c.Request().Context(), userID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", analytics)
}

// GetNotifications handles GET /notifications
func (h *ContentHandler) GetNotifications(c echo.Context) error {
	notifications, err := h.mockUC.GetNotifications(c.Request().Context(), middleware.CurrentUserID(c))
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", notifications)
}

// MarkNotificationRead handles PUT /notifications/:id/read
func (h *ContentHandler) MarkNotificationRead(c echo.Context) error {
	n, err := h.mockUC.MarkNotificationRead(c.Request().Context(), middleware.CurrentUserID(c), c.Param("id"))
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", n)
}
