package config

import "fmt"

var (
	validLogFormats = map[string]struct{}{"auto": {}, "console": {}, "json": {}}
	validLogLevels  = map[string]struct{}{"debug": {}, "info": {}, "warn": {}, "error": {}}
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if _, ok := validLogFormats[c.Logging.Format]; !ok {
		return fmt.Errorf("logging.format must be one of auto, console, json (got %q)", c.Logging.Format)
	}
	if _, ok := validLogLevels[c.Logging.Level]; !ok {
		return fmt.Errorf("logging.level must be one of debug, info, warn, error (got %q)", c.Logging.Level)
	}
	return nil
}
