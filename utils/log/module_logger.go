package log

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	ModuleLoader  = "loader"
	ModuleCompare = "compare"
	ModuleReport  = "report"
)

// ModuleLoggerFactory hands out named loggers whose debug output can be
// switched on per module.
type ModuleLoggerFactory struct {
	baseLogger  *zap.Logger
	globalDebug bool
	moduleDebug map[string]bool
}

func NewModuleLoggerFactory(baseLogger *zap.Logger, globalDebug bool, debugModules []string) *ModuleLoggerFactory {
	moduleDebug := make(map[string]bool, len(debugModules))
	for _, m := range debugModules {
		moduleDebug[m] = true
	}
	return &ModuleLoggerFactory{
		baseLogger:  baseLogger,
		globalDebug: globalDebug,
		moduleDebug: moduleDebug,
	}
}

// GetLogger returns the logger for moduleName. Debug entries are dropped
// unless debug is enabled globally or for that module.
func (f *ModuleLoggerFactory) GetLogger(moduleName string) *zap.Logger {
	named := f.baseLogger.WithOptions(zap.WrapCore(unwrapFilter)).Named(moduleName)
	if f.IsDebugEnabled(moduleName) {
		return named
	}
	return SuppressDebug(named)
}

// SuppressDebug drops the debug entries of logger. Loggers handed out by a
// ModuleLoggerFactory built on the result still log debug entries for the
// selected modules.
func SuppressDebug(logger *zap.Logger) *zap.Logger {
	return logger.WithOptions(zap.WrapCore(func(core zapcore.Core) zapcore.Core {
		return &levelFilterCore{Core: core, minLevel: zapcore.InfoLevel}
	}))
}

func unwrapFilter(core zapcore.Core) zapcore.Core {
	if filtered, ok := core.(*levelFilterCore); ok {
		return filtered.Core
	}
	return core
}

func (f *ModuleLoggerFactory) IsDebugEnabled(moduleName string) bool {
	return f.globalDebug || f.moduleDebug[moduleName]
}

type levelFilterCore struct {
	zapcore.Core
	minLevel zapcore.Level
}

func (c *levelFilterCore) Enabled(level zapcore.Level) bool {
	return level >= c.minLevel && c.Core.Enabled(level)
}

func (c *levelFilterCore) Check(entry zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(entry.Level) {
		return c.Core.Check(entry, ce)
	}
	return ce
}

func (c *levelFilterCore) With(fields []zapcore.Field) zapcore.Core {
	return &levelFilterCore{
		Core:     c.Core.With(fields),
		minLevel: c.minLevel,
	}
}
