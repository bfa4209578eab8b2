// Package config provides environment-driven configuration for wikipath.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration values.
type Config struct {
	APIURL        string
	UserAgent     string
	Timeout       time.Duration
	MaxRetries    int
	RateLimit     float64
	RateBurst     int
	Concurrency   int
	MaxVisited    int
	SearchTimeout time.Duration
	LogLevel      string
	LogFormat     string
	Port          string
	ListenHost    string
	CORSOrigins   []string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	cfg := &Config{
		APIURL:     envOrDefault("WIKIPATH_API_URL", "https://en.wikipedia.org/w/api.php"),
		UserAgent:  envOrDefault("WIKIPATH_USER_AGENT", defaultUserAgent()),
		LogLevel:   envOrDefault("LOG_LEVEL", "info"),
		LogFormat:  envOrDefault("LOG_FORMAT", "text"),
		Port:       envOrDefault("PORT", "3040"),
		ListenHost: envOrDefault("LISTEN_HOST", "127.0.0.1"),
	}

	var err error

	if cfg.Timeout, err = envDuration("WIKIPATH_TIMEOUT", "30s"); err != nil {
		return nil, err
	}

	if cfg.SearchTimeout, err = envDuration("WIKIPATH_SEARCH_TIMEOUT", "0s"); err != nil {
		return nil, err
	}

	if cfg.MaxRetries, err = envInt("WIKIPATH_MAX_RETRIES", "3"); err != nil {
		return nil, err
	}

	if cfg.RateBurst, err = envInt("WIKIPATH_RATE_BURST", "5"); err != nil {
		return nil, err
	}

	if cfg.Concurrency, err = envInt("WIKIPATH_CONCURRENCY", "8"); err != nil {
		return nil, err
	}

	if cfg.MaxVisited, err = envInt("WIKIPATH_MAX_VISITED", "0"); err != nil {
		return nil, err
	}

	rl, err := strconv.ParseFloat(envOrDefault("WIKIPATH_RATE_LIMIT", "10"), 64)
	if err != nil {
		return nil, fmt.Errorf("WIKIPATH_RATE_LIMIT must be a number: %w", err)
	}
	cfg.RateLimit = rl

	origins := envOrDefault("CORS_ORIGINS", "http://localhost:3000")
	cfg.CORSOrigins = strings.Split(origins, ",")

	for i, o := range cfg.CORSOrigins {
		cfg.CORSOrigins[i] = strings.TrimSpace(o)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// Addr returns the listen address in host:port format.
func (c *Config) Addr() string {
	return c.ListenHost + ":" + c.Port
}

func defaultUserAgent() string {
	return "wikipath/" + Version + " (https://github.com/persistorai/wikipath)"
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

func envInt(key, fallback string) (int, error) {
	v, err := strconv.Atoi(envOrDefault(key, fallback))
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}

	return v, nil
}

func envDuration(key, fallback string) (time.Duration, error) {
	d, err := time.ParseDuration(envOrDefault(key, fallback))
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration (e.g. 30s): %w", key, err)
	}

	return d, nil
}
