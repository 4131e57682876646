// Package config loads application settings from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// EnvAPIURL is the search endpoint, e.g. https://api.github.com/search/repositories.
	EnvAPIURL = "FRESHSTARS_API_URL"
	// EnvLegacyAPIURL is read when EnvAPIURL is unset so existing .env files keep working.
	EnvLegacyAPIURL = "VITE_API_URL"
	// EnvTheme selects the colour theme.
	EnvTheme = "FRESHSTARS_THEME"
	// EnvLogFile enables logging to the named file.
	EnvLogFile = "FRESHSTARS_LOG_FILE"

	// DefaultTheme is used when no theme is configured.
	DefaultTheme = "claude-warm"
)

// Config represents the application configuration.
type Config struct {
	APIBaseURL string
	Theme      string
	LogFile    string // Empty disables logging
}

// Overrides holds command-line values. Empty fields leave the loaded value alone.
type Overrides struct {
	APIBaseURL string
	Theme      string
	LogFile    string
}

// Load reads the given env files (".env" when none are named) and then the
// process environment. Variables already set in the environment win over
// file values. Missing files are not an error.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			return nil, fmt.Errorf("failed to load env file: %w", err)
		}
	}

	apiURL := strings.TrimSpace(os.Getenv(EnvAPIURL))
	if apiURL == "" {
		apiURL = strings.TrimSpace(os.Getenv(EnvLegacyAPIURL))
	}

	return &Config{
		APIBaseURL: apiURL,
		Theme:      getenvDefault(EnvTheme, DefaultTheme),
		LogFile:    strings.TrimSpace(os.Getenv(EnvLogFile)),
	}, nil
}

// Apply copies every non-empty override onto the config.
func (c *Config) Apply(o Overrides) {
	if v := strings.TrimSpace(o.APIBaseURL); v != "" {
		c.APIBaseURL = v
	}
	if v := strings.TrimSpace(o.Theme); v != "" {
		c.Theme = v
	}
	if v := strings.TrimSpace(o.LogFile); v != "" {
		c.LogFile = v
	}
}

// Validate checks that the configuration can be used to start the app.
func (c *Config) Validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("%s is required (or pass --api-url)", EnvAPIURL)
	}
	u, err := url.Parse(c.APIBaseURL)
	if err != nil {
		return fmt.Errorf("%s is not a valid URL: %w", EnvAPIURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%s must use http or https, got %q", EnvAPIURL, c.APIBaseURL)
	}
	if u.Host == "" {
		return fmt.Errorf("%s must be an absolute URL, got %q", EnvAPIURL, c.APIBaseURL)
	}
	return nil
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
