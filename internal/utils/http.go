package utils

import (
	"net/http"
	"time"

	"github.com/jackmarvels/platform/internal/pkg/apperrors"
	"github.com/labstack/echo/v4"
)

// Response is the envelope every endpoint of the mock backend answers with
type Response struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message,omitempty"`
	Data       interface{} `json:"data,omitempty"`
	Error      string      `json:"error,omitempty"`
	Code       string      `json:"code,omitempty"`
	StatusCode int         `json:"statusCode"`
	Timestamp  time.Time   `json:"timestamp"`
}

// SuccessResponse sends a success response with data
func SuccessResponse(c echo.Context, statusCode int, message string, data interface{}) error {
	return c.JSON(statusCode, Response{
		Success:    true,
		Message:    message,
		Data:       data,
		StatusCode: statusCode,
		Timestamp:  time.Now().UTC(),
	})
}

// AppErrorResponse sends the response matching an application error
func AppErrorResponse(c echo.Context, err error) error {
	appErr := apperrors.From(err)
	status := appErr.StatusCode
	if status == 0 {
		status = http.StatusBadGateway
	}
	return c.JSON(status, Response{
		Success:    false,
		Error:      appErr.Message,
		Code:       string(appErr.Kind),
		StatusCode: status,
		Timestamp:  time.Now().UTC(),
	})
}

// UnauthorizedResponse answers 401 with the UNAUTHORIZED code
func UnauthorizedResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Unauthorized"
	}
	return AppErrorResponse(c, apperrors.Unauthorized(errorMessage))
}
