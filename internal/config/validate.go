package config

import (
	"errors"
	"fmt"
	"time"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateChecks(); err != nil {
		return err
	}
	if err := c.validatePolicy(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateChecks() error {
	if c.Checks.Credits && c.Policy.CreditsFile == "" {
		return errors.New("policy.credits_file must be set when checks.credits is enabled")
	}
	return nil
}

func (c *Config) validatePolicy() error {
	if c.Policy.YearTolerance < 0 {
		return errors.New("policy.year_tolerance must be >= 0")
	}
	currentYear := time.Now().UTC().Year()
	if c.Policy.MinPlausibleYear > currentYear {
		return fmt.Errorf("policy.min_plausible_year must not be in the future (got %d)", c.Policy.MinPlausibleYear)
	}
	return nil
}
