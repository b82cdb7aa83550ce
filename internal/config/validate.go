package config

import (
	"errors"
	"fmt"
	"strings"

	"logdeck/internal/logparse"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return c.validateLogs()
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		return errors.New("paths.data_dir must be set")
	}
	if strings.TrimSpace(c.Paths.APIBind) == "" {
		return errors.New("paths.api_bind must be set")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch strings.ToLower(c.Logging.Format) {
	case "", "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch strings.ToLower(c.Logging.Level) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level %q is not recognized", c.Logging.Level)
	}
	return nil
}

func (c *Config) validateLogs() error {
	if _, err := logparse.ParseTemplate(c.Logs.DefaultTemplate); err != nil {
		return fmt.Errorf("logs.default_template: %w", err)
	}
	if c.Logs.PageSize <= 0 {
		return errors.New("logs.page_size must be positive")
	}
	if c.Logs.TailPollSeconds <= 0 {
		return errors.New("logs.tail_poll_seconds must be positive")
	}
	return nil
}
