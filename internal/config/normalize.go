package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePolicy(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePolicy() error {
	var err error
	c.Policy.CreditsFile = strings.TrimSpace(c.Policy.CreditsFile)
	if c.Policy.CreditsFile != "" {
		if c.Policy.CreditsFile, err = expandPath(c.Policy.CreditsFile); err != nil {
			return fmt.Errorf("policy.credits_file: %w", err)
		}
	}
	if c.Policy.MinPlausibleYear <= 0 {
		c.Policy.MinPlausibleYear = defaultMinPlausibleYear
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
