package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jackmarvels/platform/internal/pkg/models"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger is a zap logger that can also append to a file
type ZapLogger struct {
	*zap.Logger
	filePath string
	file     *os.File
}

// ZapConfig holds Zap logger configuration
type ZapConfig struct {
	Level    string `json:"level" mapstructure:"level"`
	FilePath string `json:"file_path" mapstructure:"file_path"`
	Service  string `json:"service" mapstructure:"service"`
}

// NewZapLogger builds a JSON logger writing to stdout and, when FilePath is
// set, to that file as well. Unknown levels fall back to info.
func NewZapLogger(config ZapConfig) (*ZapLogger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(config.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	encoder := zapcore.NewJSONEncoder(zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.RFC3339TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	})
	cores := []zapcore.Core{zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), level)}

	zl := &ZapLogger{filePath: config.FilePath}
	if config.FilePath != "" {
		if err := zl.openFile(config.FilePath); err != nil {
			return nil, fmt.Errorf("failed to setup file output: %w", err)
		}
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(zl.file), level))
	}

	l := zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
	if config.Service != "" {
		l = l.With(zap.String("service", config.Service))
	}
	zl.Logger = l
	return zl, nil
}

// NewFromZap wraps an existing zap logger, mostly for tests
func NewFromZap(l *zap.Logger) *ZapLogger {
	return &ZapLogger{Logger: l}
}

// NewNop returns a logger that discards everything
func NewNop() *ZapLogger {
	return NewFromZap(zap.NewNop())
}

// InitZapLoggerFromConfig builds the logger for a binary from its config
func InitZapLoggerFromConfig(configs *models.Config) (*ZapLogger, error) {
	return NewZapLogger(ZapConfig{
		Level:    configs.Logger.Level,
		FilePath: configs.Logger.FilePath,
		Service:  configs.App.Name,
	})
}

func (zl *ZapLogger) openFile(filePath string) error {
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	zl.file = file
	return nil
}

// Close flushes buffered entries and closes the log file
func (zl *ZapLogger) Close() error {
	_ = zl.Logger.Sync()
	if zl.file != nil {
		return zl.file.Close()
	}
	return nil
}

// FilePath returns the log file path, empty when logging to stdout only
func (zl *ZapLogger) FilePath() string {
	return zl.filePath
}

// HTTPRequest is one served request as seen by the access log
type HTTPRequest struct {
	Method    string
	Path      string
	ClientIP  string
	UserID    string
	RequestID string
	Status    int
	Latency   time.Duration
	Err       error
}

// LogHTTPRequest writes an access log line. 5xx logs at error, 4xx at warn.
func (zl *ZapLogger) LogHTTPRequest(r HTTPRequest) {
	l := zl.Logger.With(
		zap.Int("status", r.Status),
		zap.Duration("latency", r.Latency),
		zap.Int64("latency_ms", r.Latency.Milliseconds()),
		zap.String("client_ip", r.ClientIP),
		zap.String("method", r.Method),
		zap.String("path", r.Path),
		UserID(r.UserID),
		zap.String("request_id", r.RequestID),
	)

	switch {
	case r.Status >= 500:
		if r.Err != nil {
			l = l.With(zap.Error(r.Err))
		}
		l.Error("Server error")
	case r.Status >= 400:
		l.Warn("Client error")
	default:
		l.Info("Request processed")
	}
}
