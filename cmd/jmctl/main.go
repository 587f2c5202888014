package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackmarvels/platform/internal/app"
	"github.com/jackmarvels/platform/internal/pkg/config"
	"github.com/jackmarvels/platform/internal/pkg/logger"
	"github.com/spf13/pflag"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := pflag.NewFlagSet("jmctl", pflag.ContinueOnError)
	fs.SetInterspersed(false)
	configPath := fs.String("config", "config/jmctl.env", "path to the env config file")
	mobile := fs.String("mobile", "", "sign in with this mobile number before running the command")
	otp := fs.String("otp", "", "otp used with --mobile")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		usage(os.Stderr)
		return 2
	}

	configs := config.InitConfig(*configPath)
	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		return 1
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c, err := app.NewClient(ctx, configs, zapLogger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start client: %v\n", err)
		return 1
	}
	defer c.Close()

	if *mobile != "" && !c.State.Snapshot().IsAuthenticated {
		if resp := c.Auth.VerifyOTP(ctx, *mobile, *otp); !resp.Success {
			fmt.Fprintf(os.Stderr, "sign in failed: %s\n", resp.Error)
			return 1
		}
	}

	if err := dispatch(ctx, c, fs.Args(), os.Stdout); err != nil {
		if !errors.Is(err, errFailed) {
			fmt.Fprintf(os.Stderr, "jmctl: %v\n", err)
		}
		return 1
	}
	return 0
}
