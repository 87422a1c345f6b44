// Package utils provides helpers shared by the protodiff commands.
package utils

import (
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	sentry "github.com/getsentry/sentry-go"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Version is injected at build time.
var Version string

// LogError logs msg at error level with err attached. A nil logger is ignored.
func LogError(logger *zap.Logger, err error, msg string, fields ...zap.Field) {
	if logger == nil {
		return
	}
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	logger.Error(msg, fields...)
}

// HandlePanic recovers a panic, reports it to sentry and logs the stack
// through the global zap logger.
func HandlePanic() {
	if r := recover(); r != nil {
		sentry.CaptureException(errors.New(fmt.Sprint(r)))
		zap.L().Error("recovered from panic", zap.Any("panic", r), zap.String("stack", string(debug.Stack())))
		sentry.Flush(time.Second * 2)
	}
}

// BindFlagsToViper binds every flag of cmd to viper. keys maps a flag name to
// its config key; flags missing from keys are bound under their own name.
func BindFlagsToViper(logger *zap.Logger, cmd *cobra.Command, keys map[string]string) error {
	var bindErr error
	cmd.Flags().VisitAll(func(flag *pflag.Flag) {
		key := flag.Name
		if k, ok := keys[flag.Name]; ok {
			key = k
		}
		if err := viper.BindPFlag(key, flag); err != nil {
			LogError(logger, err, "failed to bind flag to config", zap.String("flag", flag.Name))
			bindErr = errors.Join(bindErr, err)
		}
	})
	return bindErr
}
