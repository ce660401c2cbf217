package configuration

import (
	"log/slog"
	"runtime"
)

const (
	SettingWorkers  = "ATTRSYNC_WORKERS"
	SettingDryRun   = "ATTRSYNC_DRY_RUN"
	SettingLogLevel = "ATTRSYNC_LOG_LEVEL"
	SettingFailFast = "ATTRSYNC_FAIL_FAST"
)

// AppConfiguration is the principal structure holding the application configuration.
type AppConfiguration struct {
	// Workers is the maximum number of paths reconciled at the same time.
	Workers int

	// DryRun reports changes without making them.
	DryRun bool

	// LogLevel is the minimum level of log messages that are printed.
	LogLevel slog.Level

	// FailFast stops launching further reconciliations after the first
	// failed path.
	FailFast bool
}

// NewAppConfiguration returns a pointer to a new [AppConfiguration] holding
// the defaults.
func NewAppConfiguration() *AppConfiguration {
	return &AppConfiguration{
		Workers:  runtime.NumCPU(),
		LogLevel: slog.LevelInfo,
	}
}
