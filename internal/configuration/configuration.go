// Package configuration reads the application settings from env-style
// configuration files and the environment, and the resource manifest that
// holds the desired state of every path to be reconciled.
package configuration

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

type genericConfigProvider interface {
	Read(filenames ...string) (envMap map[string]string, err error)
}

type osProvider interface {
	ReadFile(name string) ([]byte, error)
}

// Handler is the principal implementation for reading configuration.
type Handler struct {
	genericHandler genericConfigProvider
	osHandler      osProvider
	lookupEnv      func(key string) (string, bool)
}

// NewHandler returns a pointer to a new configuration [Handler].
func NewHandler(genericHandler genericConfigProvider, osHandler osProvider) *Handler {
	return &Handler{
		genericHandler: genericHandler,
		osHandler:      osHandler,
		lookupEnv:      os.LookupEnv,
	}
}

// ReadGeneric reads generic Unix-type configuration files into a map.
func (c *Handler) ReadGeneric(filenames ...string) (map[string]string, error) {
	return c.genericHandler.Read(filenames...)
}

// ReadSettings returns the [AppConfiguration] from the given configuration
// files, with any setting present in the environment taking precedence.
// Without files only the environment and the defaults are used.
func (c *Handler) ReadSettings(filenames ...string) (*AppConfiguration, error) {
	envMap := map[string]string{}

	if len(filenames) > 0 {
		data, err := c.ReadGeneric(filenames...)
		if err != nil {
			return nil, fmt.Errorf("(config) failed to read settings: %w", err)
		}
		envMap = data
	}

	for _, key := range []string{SettingWorkers, SettingDryRun, SettingLogLevel, SettingFailFast} {
		if value, ok := c.lookupEnv(key); ok {
			envMap[key] = value
		}
	}

	conf := NewAppConfiguration()

	if c.MapKeyToString(envMap, SettingWorkers) != "" {
		workers := c.MapKeyToInt(envMap, SettingWorkers)
		if workers < 1 {
			return nil, fmt.Errorf("(config) %w: %s=%q", ErrInvalidSetting, SettingWorkers, envMap[SettingWorkers])
		}
		conf.Workers = workers
	}

	dryRun, err := c.MapKeyToBool(envMap, SettingDryRun)
	if err != nil {
		return nil, fmt.Errorf("(config) %w", err)
	}
	conf.DryRun = dryRun

	failFast, err := c.MapKeyToBool(envMap, SettingFailFast)
	if err != nil {
		return nil, fmt.Errorf("(config) %w", err)
	}
	conf.FailFast = failFast

	if value := c.MapKeyToString(envMap, SettingLogLevel); value != "" {
		if err := conf.LogLevel.UnmarshalText([]byte(value)); err != nil {
			return nil, fmt.Errorf("(config) %w: %s=%q", ErrInvalidSetting, SettingLogLevel, value)
		}
	}

	slog.Debug("Read settings:",
		"workers", conf.Workers,
		"dryRun", conf.DryRun,
		"failFast", conf.FailFast,
		"logLevel", conf.LogLevel.String(),
	)

	return conf, nil
}

// MapKeyToString returns the value for a key, or an empty string.
func (c *Handler) MapKeyToString(envMap map[string]string, key string) string {
	if value, exists := envMap[key]; exists {
		return strings.TrimSpace(value)
	}

	return ""
}

// MapKeyToInt returns the value for a key as integer, or -1 if it is
// missing or not an integer.
func (c *Handler) MapKeyToInt(envMap map[string]string, key string) int {
	value := c.MapKeyToString(envMap, key)
	if value == "" {
		return -1
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		return -1
	}

	return intValue
}

// MapKeyToBool returns the value for a key as boolean. A missing key is
// false, a value that is not a boolean is an error.
func (c *Handler) MapKeyToBool(envMap map[string]string, key string) (bool, error) {
	value := c.MapKeyToString(envMap, key)
	if value == "" {
		return false, nil
	}

	switch strings.ToLower(value) {
	case "yes", "on":
		return true, nil
	case "no", "off":
		return false, nil
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%w: %s=%q", ErrInvalidSetting, key, value)
	}

	return boolValue, nil
}
