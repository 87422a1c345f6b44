package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.keploy.io/protodiff/config"
	"go.keploy.io/protodiff/pkg/models"
	"go.keploy.io/protodiff/pkg/platform/protoschema"
	diffSvc "go.keploy.io/protodiff/pkg/service/diff"
	"go.keploy.io/protodiff/utils"
	"go.uber.org/zap"
)

var rootCustomHelpTemplate = `{{.Short}}

Usage:{{if .Runnable}}
  {{.UseLine}}{{end}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}{{if .HasAvailableSubCommands}}

Available Commands:{{range .Commands}}{{if .IsAvailableCommand}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

Flags:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasExample}}

Examples:
{{.Example}}{{end}}
`

var rootExamples = `
  Compare every top-level message and enum:
	protodiff ./v1 api.proto ./v2 api.proto .

  Compare a single type, with an extra include root:
	protodiff ./v1 api.proto ./v2 api.proto shop.Order --importPath ./third_party
`

var versionTemplate = `{{with .Version}}{{printf "protodiff %s" .}}{{end}}{{"\n"}}`

const usageLine = "protodiff <rootDir1> <entryFile1> <rootDir2> <entryFile2> <target>"

func Root(ctx context.Context, logger *zap.Logger, cfg *config.Config, serviceFactory ServiceFactory, cmdConfigurator CmdConfigurator) *cobra.Command {
	var rootCmd = &cobra.Command{
		Use:   usageLine,
		Short: "Report the structural differences between two versions of a protobuf schema",
		Long: `Report the structural differences between two versions of a protobuf schema.

<target> is "." to compare every top-level message and enum of the two entry
files, or the fully-qualified name of a single message or enum.`,
		Example:       rootExamples,
		Version:       utils.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 5 {
				fmt.Fprintln(cmd.ErrOrStderr(), "Usage: "+usageLine)
				return models.AppError{AppErrorType: models.ErrUsage, Err: fmt.Errorf("expected 5 arguments, got %d", len(args))}
			}
			return nil
		},
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return cmdConfigurator.ValidateFlags(ctx, cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := serviceFactory.GetService(ctx, cmd.Name())
			if err != nil {
				utils.LogError(logger, err, "failed to get service", zap.String("command", cmd.Name()))
				return err
			}
			diff, ok := svc.(diffSvc.Service)
			if !ok {
				err := fmt.Errorf("service doesn't satisfy diff service interface")
				utils.LogError(logger, err, "failed to get service")
				return err
			}

			req := diffSvc.Request{
				Before: protoschema.Source{RootDir: args[0], EntryFile: args[1]},
				After:  protoschema.Source{RootDir: args[2], EntryFile: args[3]},
				Target: args[4],
			}
			return diff.Run(ctx, req)
		},
	}

	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetHelpTemplate(rootCustomHelpTemplate)
	rootCmd.SetVersionTemplate(versionTemplate)

	if err := cmdConfigurator.AddFlags(rootCmd); err != nil {
		utils.LogError(logger, err, "failed to add root flags")
		return nil
	}

	for _, hook := range Registered {
		if c := hook(ctx, logger, cfg, serviceFactory, cmdConfigurator); c != nil {
			rootCmd.AddCommand(c)
		}
	}
	return rootCmd
}
