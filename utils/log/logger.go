// Package log builds the zap loggers used across protodiff. Logs go to stderr
// so stdout carries nothing but the report.
package log

import (
	"io"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// TODO find better way than global variable
var (
	logCfg  zap.Config
	console io.Writer = os.Stderr
)

// SetConsoleWriter redirects the output of loggers built afterwards.
func SetConsoleWriter(w io.Writer) {
	console = w
}

func New() (*zap.Logger, error) {
	logCfg = zap.NewDevelopmentConfig()

	logCfg.EncoderConfig.EncodeTime = customTimeEncoder
	logCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	logCfg.EncoderConfig.EncodeName = nil

	logCfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	logCfg.DisableStacktrace = true
	logCfg.EncoderConfig.EncodeCaller = nil

	return build(), nil
}

func ChangeLogLevel(level zapcore.Level) (*zap.Logger, error) {
	logCfg.Level = zap.NewAtomicLevelAt(level)
	if level == zap.DebugLevel {
		logCfg.DisableStacktrace = false
		logCfg.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
	}
	return build(), nil
}

// DisableColor rebuilds the logger with plain level names.
func DisableColor() (*zap.Logger, error) {
	logCfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	return build(), nil
}

func build() *zap.Logger {
	core := zapcore.NewCore(NewColor(logCfg.EncoderConfig), zapcore.AddSync(console), logCfg.Level)
	opts := []zap.Option{zap.Development()}
	if !logCfg.DisableStacktrace {
		opts = append(opts, zap.AddStacktrace(zapcore.ErrorLevel))
	}
	if logCfg.EncoderConfig.EncodeCaller != nil {
		opts = append(opts, zap.AddCaller())
	}
	return zap.New(core, opts...)
}

func customTimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("15:04:05.000"))
}
