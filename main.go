package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	sentry "github.com/getsentry/sentry-go"
	"go.keploy.io/protodiff/cli"
	"go.keploy.io/protodiff/cli/provider"
	"go.keploy.io/protodiff/config"
	"go.keploy.io/protodiff/pkg/models"
	"go.keploy.io/protodiff/utils"
	"go.keploy.io/protodiff/utils/log"
	"go.uber.org/zap"
)

// version is the version of protodiff and will be injected during build by ldflags
// see https://goreleaser.com/customization/build/
var version string

// dsn is the sentry DSN, injected during build. Empty disables reporting.
var dsn string

func main() {
	setVersion()
	os.Exit(start())
}

func setVersion() {
	if version == "" {
		version = "dev"
	}
	utils.Version = version
}

func start() (code int) {
	code = 1

	logger, err := log.New()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to start the logger:", err)
		return
	}
	zap.ReplaceGlobals(logger)
	defer func() { _ = logger.Sync() }()

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              dsn,
		TracesSampleRate: 1.0,
	}); err != nil {
		logger.Debug("Could not initialize sentry.", zap.Error(err))
	}
	defer sentry.Flush(2 * time.Second)
	defer utils.HandlePanic()

	ctx, cancel := utils.NewCtx()
	defer cancel()

	cfg, err := config.New()
	if err != nil {
		utils.LogError(logger, err, "failed to build the default config")
		return
	}

	svcProvider := provider.NewServiceProvider(logger, cfg, os.Stdout, os.Stderr)
	cmdConfigurator := provider.NewCmdConfigurator(logger, cfg)
	rootCmd := cli.Root(ctx, logger, cfg, svcProvider, cmdConfigurator)
	if rootCmd == nil {
		return
	}

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, models.AppError{AppErrorType: models.ErrUsage}) {
			utils.LogError(logger, err, "protodiff failed")
		}
		return
	}
	return 0
}
