package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jackmarvels/platform/internal/pkg/logger"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func bufferedLogger(buf *bytes.Buffer) *logger.ZapLogger {
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(buf),
		zapcore.DebugLevel,
	)
	return logger.NewFromZap(zap.New(core))
}

func TestPanicRecoveryWithZapMiddleware(t *testing.T) {
	tests := []struct {
		name         string
		panicValue   interface{}
		setupContext func(c echo.Context)
		expectInLogs []string
	}{
		{
			name:       "string panic",
			panicValue: "test panic message",
			expectInLogs: []string{
				"test panic message",
				"stack_trace",
				"panic_type",
				"Panic recovered during request processing",
			},
		},
		{
			name:       "error panic",
			panicValue: fmt.Errorf("test error panic"),
			expectInLogs: []string{
				"test error panic",
				"*errors.errorString",
			},
		},
		{
			name:       "panic with user context",
			panicValue: "user context panic",
			setupContext: func(c echo.Context) {
				c.Set("user_id", "user_001")
				c.Request().Header.Set(echo.HeaderXRequestID, "req-7")
			},
			expectInLogs: []string{
				"user_001",
				"req-7",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			var logBuffer bytes.Buffer
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/dashboard/user_001", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			if tt.setupContext != nil {
				tt.setupContext(c)
			}

			handler := PanicRecoveryWithZapMiddleware(bufferedLogger(&logBuffer))(func(c echo.Context) error {
				panic(tt.panicValue)
			})

			// Act
			err := handler(c)

			// Assert
			assert.NoError(t, err)
			assert.Equal(t, http.StatusInternalServerError, rec.Code)

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, false, body["success"])
			assert.Equal(t, "INTERNAL_ERROR", body["code"])

			logs := logBuffer.String()
			for _, expected := range tt.expectInLogs {
				assert.Contains(t, logs, expected)
			}
		})
	}
}

func TestPanicRecoveryMiddleware_NoPanic(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	handler := PanicRecoveryWithZapMiddleware(logger.NewNop())(func(c echo.Context) error {
		return c.String(http.StatusOK, "fine")
	})

	assert.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "fine", rec.Body.String())
}

func TestPanicRecoveryMiddleware_RequiresLogger(t *testing.T) {
	assert.Panics(t, func() {
		PanicRecoveryMiddleware(PanicRecoveryConfig{})
	})
}

func TestSendPanicResponse_Committed(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, c.String(http.StatusAccepted, "partial"))

	sendPanicResponse(c, "req-1")

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "partial", rec.Body.String())
}
