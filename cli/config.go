package cli

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.keploy.io/protodiff/config"
	toolsSvc "go.keploy.io/protodiff/pkg/service/tools"
	"go.keploy.io/protodiff/utils"
	"go.uber.org/zap"
)

func init() {
	Register("config", Config)
}

func Config(ctx context.Context, logger *zap.Logger, cfg *config.Config, serviceFactory ServiceFactory, cmdConfigurator CmdConfigurator) *cobra.Command {
	var cmd = &cobra.Command{
		Use:     "config",
		Short:   "manage the protodiff configuration file",
		Example: "protodiff config --generate --path /path/to/localdir",
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := cmdConfigurator.ValidateFlags(ctx, cmd); err != nil {
				utils.LogError(logger, err, "failed to validate flags")
				return err
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			isGenerate, err := cmd.Flags().GetBool("generate")
			if err != nil {
				utils.LogError(logger, err, "failed to get generate flag")
				return err
			}
			if !isGenerate {
				return errors.New("only generate flag is supported in the config command")
			}

			path, err := cmd.Flags().GetString("path")
			if err != nil {
				utils.LogError(logger, err, "failed to get path flag")
				return err
			}
			filePath := filepath.Join(path, cfg.ConfigName+".yaml")
			if utils.CheckFileExists(filePath) {
				force, err := cmd.Flags().GetBool("force")
				if err != nil {
					utils.LogError(logger, err, "failed to get force flag")
					return err
				}
				if !force {
					err := errors.New("config file already exists, pass --force to override it")
					utils.LogError(logger, err, "failed to generate config", zap.String("path", filePath))
					return err
				}
			}

			svc, err := serviceFactory.GetService(ctx, cmd.Name())
			if err != nil {
				utils.LogError(logger, err, "failed to get service")
				return err
			}
			tools, ok := svc.(toolsSvc.Service)
			if !ok {
				err := errors.New("service doesn't satisfy tools service interface")
				utils.LogError(logger, err, "failed to get service")
				return err
			}
			if err := tools.CreateConfig(ctx, filePath, ""); err != nil {
				utils.LogError(logger, err, "failed to create config")
				return err
			}
			return nil
		},
	}
	if err := cmdConfigurator.AddFlags(cmd); err != nil {
		utils.LogError(logger, err, "failed to add flags")
		return nil
	}
	return cmd
}
