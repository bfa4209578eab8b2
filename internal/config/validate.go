package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// Validate checks every field; it is exported so callers that override
// values after Load (e.g. CLI flags) can re-check them.
func (c *Config) Validate() error {
	if err := c.validateAPI(); err != nil {
		return err
	}

	if err := c.validateLimits(); err != nil {
		return err
	}

	if err := c.validateLogging(); err != nil {
		return err
	}

	if err := c.validateNetwork(); err != nil {
		return err
	}

	if err := c.validateCORS(); err != nil {
		return err
	}

	return nil
}

func (c *Config) validateAPI() error {
	u, err := url.ParseRequestURI(c.APIURL)
	if err != nil {
		return fmt.Errorf("WIKIPATH_API_URL is not a valid URL: %w", err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("WIKIPATH_API_URL scheme must be http:// or https://")
	}

	if u.Hostname() == "" {
		return fmt.Errorf("WIKIPATH_API_URL must include a host")
	}

	if strings.TrimSpace(c.UserAgent) == "" {
		return fmt.Errorf("WIKIPATH_USER_AGENT must not be empty")
	}

	return nil
}

func (c *Config) validateLimits() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("WIKIPATH_TIMEOUT must be positive")
	}

	if c.SearchTimeout < 0 {
		return fmt.Errorf("WIKIPATH_SEARCH_TIMEOUT must not be negative")
	}

	if c.MaxRetries < 0 || c.MaxRetries > 10 {
		return fmt.Errorf("WIKIPATH_MAX_RETRIES must be between 0 and 10")
	}

	if c.RateLimit <= 0 {
		return fmt.Errorf("WIKIPATH_RATE_LIMIT must be positive")
	}

	if c.RateBurst < 1 {
		return fmt.Errorf("WIKIPATH_RATE_BURST must be at least 1")
	}

	if c.Concurrency < 1 || c.Concurrency > 64 {
		return fmt.Errorf("WIKIPATH_CONCURRENCY must be between 1 and 64")
	}

	if c.MaxVisited < 0 {
		return fmt.Errorf("WIKIPATH_MAX_VISITED must not be negative")
	}

	return nil
}

func (c *Config) validateLogging() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("LOG_LEVEL is invalid: %w", err)
	}

	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("LOG_FORMAT must be 'text' or 'json', got %q", c.LogFormat)
	}

	return nil
}

func (c *Config) validateNetwork() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil {
		return fmt.Errorf("PORT must be a valid integer: %w", err)
	}

	if port < 1 || port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535")
	}

	// Validate LISTEN_HOST is a loopback address to prevent accidental external exposure.
	if c.ListenHost != "127.0.0.1" && c.ListenHost != "::1" && c.ListenHost != "localhost" {
		return fmt.Errorf("LISTEN_HOST must be a loopback address (127.0.0.1, ::1, or localhost), got %q", c.ListenHost)
	}

	return nil
}

func (c *Config) validateCORS() error {
	for _, origin := range c.CORSOrigins {
		if origin == "*" {
			return fmt.Errorf("CORS_ORIGINS must not contain wildcard '*'")
		}
		if strings.ContainsAny(origin, "*?[]") {
			return fmt.Errorf("CORS_ORIGINS must not contain glob characters (*?[]), got %q", origin)
		}
		u, err := url.Parse(origin)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("CORS_ORIGINS contains invalid origin %q (must have scheme and host)", origin)
		}
	}

	return nil
}
