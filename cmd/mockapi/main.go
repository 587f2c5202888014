package main

import (
	"log"
	"time"

	"github.com/jackmarvels/platform/internal/app"
	"github.com/jackmarvels/platform/internal/pkg/config"
	"github.com/jackmarvels/platform/internal/pkg/logger"
	"github.com/jackmarvels/platform/internal/pkg/server"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

func main() {
	configPath := pflag.String("config", "config/mockapi.env", "path to the env config file")
	pflag.Parse()

	configs := config.InitConfig(*configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", app.MockServiceName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
		zap.Duration("mock_latency", configs.Backend.MockLatency),
		zap.Bool("nsq_enabled", configs.NSQ.Enabled),
	)

	mockServer, err := app.NewMockServer(configs, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to build mock backend", zap.Error(err))
	}

	srv := server.NewGracefulServer(mockServer.Echo, zapLogger, configs.Server.Host, configs.Server.Port)
	if configs.Server.ShutdownTimeout > 0 {
		srv.WithShutdownTimeout(time.Duration(configs.Server.ShutdownTimeout) * time.Second)
	}
	srv.OnShutdown(mockServer.Close)

	zapLogger.Info("Starting server",
		zap.String("app", app.MockServiceName),
		zap.Int("port", configs.Server.Port),
	)

	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server stopped with error",
			zap.String("app", app.MockServiceName),
			zap.Error(err),
		)
	}
}
