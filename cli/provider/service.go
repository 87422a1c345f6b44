package provider

import (
	"context"
	"errors"
	"io"

	"go.keploy.io/protodiff/config"
	"go.keploy.io/protodiff/pkg/platform/protoschema"
	"go.keploy.io/protodiff/pkg/service/diff"
	"go.keploy.io/protodiff/pkg/service/report"
	"go.keploy.io/protodiff/pkg/service/schemadiff"
	"go.keploy.io/protodiff/pkg/service/tools"
	"go.keploy.io/protodiff/utils/log"
	"go.uber.org/zap"
)

type ServiceProvider struct {
	logger *zap.Logger
	cfg    *config.Config
	stdout io.Writer
	stderr io.Writer
}

// NewServiceProvider builds services writing reports to stdout and schema
// diagnostics to stderr.
func NewServiceProvider(logger *zap.Logger, cfg *config.Config, stdout, stderr io.Writer) *ServiceProvider {
	return &ServiceProvider{
		logger: logger,
		cfg:    cfg,
		stdout: stdout,
		stderr: stderr,
	}
}

func (n *ServiceProvider) GetService(_ context.Context, cmd string) (interface{}, error) {
	switch cmd {
	case RootCmdName:
		loggers := log.NewModuleLoggerFactory(n.logger, n.cfg.Debug, n.cfg.DebugModules)
		loaderLogger := loggers.GetLogger(log.ModuleLoader)

		sink := protoschema.NewStderrSink(loaderLogger, n.stderr)
		loader := protoschema.NewLoader(loaderLogger, sink, n.cfg.Schema.ImportPaths)
		comparator := schemadiff.New(loggers.GetLogger(log.ModuleCompare), schemadiff.Options{
			LegacyDefaults: n.cfg.Schema.LegacyDefaults,
		})
		reporter := report.New(loggers.GetLogger(log.ModuleReport), n.cfg, n.stdout)
		return diff.New(n.logger, loader, comparator, reporter), nil
	case "config":
		return tools.NewTools(n.logger), nil
	default:
		return nil, errors.New("invalid command")
	}
}
