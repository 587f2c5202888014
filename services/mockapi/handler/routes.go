package handler

import (
	"github.com/jackmarvels/platform/internal/pkg/middleware"
	"github.com/jackmarvels/platform/internal/pkg/models"
	"github.com/jackmarvels/platform/services/mockapi/handler/http"
	"github.com/labstack/echo/v4"
)

// Handler wires the mock backend endpoints onto an echo instance
type Handler struct {
	authHandler    *http.AuthHandler
	contentHandler *http.ContentHandler
	cfg            *models.Config
}

// NewHandler creates the route set
func NewHandler(
	authHandler *http.AuthHandler,
	contentHandler *http.ContentHandler,
	cfg *models.Config,
) *Handler {
	return &Handler{
		authHandler:    authHandler,
		contentHandler: contentHandler,
		cfg:            cfg,
	}
}

// RegisterRoutes registers the public and JWT protected routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Public routes
	students := e.Group("/students")
	students.POST("/send-otp", h.authHandler.SendOTP)
	students.POST("/verify-otp", h.authHandler.VerifyOTP)
	students.POST("/register", h.authHandler.Register)
	students.GET("/schools", h.authHandler.GetSchools)

	auth := e.Group("/auth")
	auth.POST("/login", h.authHandler.VerifyOTP)
	auth.POST("/refresh-token", h.authHandler.RefreshToken)

	// Protected routes
	jwt := middleware.JWTAuthMiddleware(h.cfg.JWT)

	auth.POST("/logout", h.authHandler.Logout, jwt)

	students.GET("/profile", h.authHandler.GetProfile, jwt)
	students.PUT("/profile", h.authHandler.UpdateProfile, jwt)
	students.POST("/profile/avatar", h.authHandler.UploadAvatar, jwt)

	e.GET("/dashboard", h.contentHandler.GetDashboard, jwt)

	e.GET("/events", h.contentHandler.GetEvents, jwt)
	e.GET("/events/:id", h.contentHandler.GetEventDetail, jwt)

	e.POST("/videos", h.contentHandler.UploadVideo, jwt)
	e.GET("/videos", h.contentHandler.GetUserVideos, jwt)

	e.POST("/subscription", h.contentHandler.CreateSubscription, jwt)
	e.GET("/subscription", h.contentHandler.GetSubscription, jwt)
	e.PUT("/subscription/update", h.contentHandler.UpdateSubscription, jwt)

	e.GET("/payments/methods", h.contentHandler.GetPaymentMethods, jwt)
	e.POST("/payments", h.contentHandler.ProcessPayment, jwt)

	e.GET("/quiz/:id", h.contentHandler.GetQuiz, jwt)
	e.POST("/quiz/:id/submit", h.contentHandler.SubmitQuiz, jwt)

	e.GET("/search", h.contentHandler.Search, jwt)
	e.GET("/analytics", h.contentHandler.GetAnalytics, jwt)

	e.GET("/notifications", h.contentHandler.GetNotifications, jwt)
	e.PUT("/notifications/:id/read", h.contentHandler.MarkNotificationRead, jwt)
}
