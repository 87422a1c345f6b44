// Package provider provides the flag handling and the services of the protodiff commands.
package provider

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.keploy.io/protodiff/config"
	"go.keploy.io/protodiff/pkg/models"
	"go.keploy.io/protodiff/utils"
	"go.keploy.io/protodiff/utils/log"
	"go.uber.org/zap"
)

// RootCmdName is the name cobra derives from the root command's Use line.
const RootCmdName = "protodiff"

// flagKeys maps flags to their nested config keys.
var flagKeys = map[string]string{
	"format":         "report.format",
	"color":          "report.color",
	"summary":        "report.summary",
	"importPath":     "schema.importPaths",
	"legacyDefaults": "schema.legacyDefaults",
}

// kebab-case spellings accepted for the camelCase flags
var flagAliases = map[string]string{
	"config-path":     "configPath",
	"disable-ansi":    "disableANSI",
	"debug-modules":   "debugModules",
	"import-path":     "importPath",
	"legacy-defaults": "legacyDefaults",
}

func aliasNormalizeFunc(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	if canonical, ok := flagAliases[name]; ok {
		return pflag.NormalizedName(canonical)
	}
	return pflag.NormalizedName(name)
}

type CmdConfigurator struct {
	logger *zap.Logger
	cfg    *config.Config
}

func NewCmdConfigurator(logger *zap.Logger, cfg *config.Config) *CmdConfigurator {
	return &CmdConfigurator{
		logger: logger,
		cfg:    cfg,
	}
}

func (c *CmdConfigurator) AddFlags(cmd *cobra.Command) error {
	cmd.Flags().SetNormalizeFunc(aliasNormalizeFunc)
	switch cmd.Name() {
	case "config":
		cmd.Flags().StringP("path", "p", ".", "Path to the local directory where the generated config is stored")
		cmd.Flags().Bool("generate", false, "Generate a new protodiff configuration file")
		cmd.Flags().Bool("force", false, "Override an existing configuration file")
	case RootCmdName:
		cmd.PersistentFlags().SetNormalizeFunc(aliasNormalizeFunc)
		cmd.PersistentFlags().Bool("debug", c.cfg.Debug, "Run in debug mode")
		cmd.PersistentFlags().StringSlice("debugModules", c.cfg.DebugModules, "Enable debug logs only for the given modules (loader, compare, report)")
		cmd.PersistentFlags().Bool("disableANSI", c.cfg.DisableANSI, "Disable ANSI colors in logs and in the report")

		format := c.cfg.Report.Format
		color := c.cfg.Report.Color
		cmd.Flags().String("configPath", c.cfg.ConfigPath, "Path to the local directory where the protodiff configuration file is stored")
		cmd.Flags().Var(&format, "format", "Report format: text, yaml or json")
		cmd.Flags().Var(&color, "color", "Color the text report: auto, on or off")
		cmd.Flags().Bool("summary", c.cfg.Report.Summary, "Print a table of finding counts after the report")
		cmd.Flags().StringSlice("importPath", c.cfg.Schema.ImportPaths, "Extra include directory searched after the root directory, may be repeated")
		cmd.Flags().Bool("legacyDefaults", c.cfg.Schema.LegacyDefaults, "Compare uint32, double, bool, string and enum defaults the way earlier releases did")
	default:
		return errors.New("unknown command name")
	}
	return nil
}

// ValidateFlags layers the flags and the optional config file over the
// defaults and applies the logging options.
func (c *CmdConfigurator) ValidateFlags(_ context.Context, cmd *cobra.Command) error {
	if err := utils.BindFlagsToViper(c.logger, cmd, flagKeys); err != nil {
		return models.AppError{AppErrorType: models.ErrConfig, Err: err}
	}

	if cmd.Name() == RootCmdName {
		viper.SetConfigName(c.cfg.ConfigName)
		viper.SetConfigType("yaml")
		viper.AddConfigPath(viper.GetString("configPath"))
		if err := viper.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				errMsg := "failed to read config file"
				utils.LogError(c.logger, err, errMsg)
				return models.AppError{AppErrorType: models.ErrConfig, Err: err}
			}
			c.logger.Debug("config file not found; proceeding with flags only")
		}
	}

	if err := viper.Unmarshal(c.cfg); err != nil {
		utils.LogError(c.logger, err, "failed to unmarshal the config")
		return models.AppError{AppErrorType: models.ErrConfig, Err: err}
	}
	if err := c.cfg.Validate(); err != nil {
		utils.LogError(c.logger, err, "invalid config")
		return models.AppError{AppErrorType: models.ErrConfig, Err: err}
	}

	if c.cfg.DisableANSI {
		logger, err := log.DisableColor()
		if err != nil {
			utils.LogError(c.logger, err, "failed to disable log colors")
			return err
		}
		*c.logger = *logger
	}
	if c.cfg.Debug || len(c.cfg.DebugModules) > 0 {
		logger, err := log.ChangeLogLevel(zap.DebugLevel)
		if err != nil {
			utils.LogError(c.logger, err, "failed to change log level")
			return err
		}
		if !c.cfg.Debug {
			// only the module loggers built from it log at debug level
			logger = log.SuppressDebug(logger)
		}
		*c.logger = *logger
	}

	c.logger.Debug("config has been initialised", zap.String("for cmd", cmd.Name()), zap.Any("config", c.cfg))
	return nil
}
