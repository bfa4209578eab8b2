package config_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/persistorai/wikipath/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.APIURL != "https://en.wikipedia.org/w/api.php" {
		t.Errorf("unexpected default api url %s", cfg.APIURL)
	}

	if cfg.Timeout != 30*time.Second {
		t.Errorf("expected default timeout 30s, got %s", cfg.Timeout)
	}

	if cfg.MaxRetries != 3 {
		t.Errorf("expected default retries 3, got %d", cfg.MaxRetries)
	}

	if cfg.Concurrency != 8 {
		t.Errorf("expected default concurrency 8, got %d", cfg.Concurrency)
	}

	if cfg.SearchTimeout != 0 || cfg.MaxVisited != 0 {
		t.Errorf("expected unlimited search by default, got %s / %d", cfg.SearchTimeout, cfg.MaxVisited)
	}

	if !strings.HasPrefix(cfg.UserAgent, "wikipath/") {
		t.Errorf("unexpected user agent %q", cfg.UserAgent)
	}

	if cfg.Addr() != "127.0.0.1:3040" {
		t.Errorf("expected addr 127.0.0.1:3040, got %s", cfg.Addr())
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("WIKIPATH_API_URL", "https://de.wikipedia.org/w/api.php")
	t.Setenv("WIKIPATH_TIMEOUT", "5s")
	t.Setenv("WIKIPATH_RATE_LIMIT", "2.5")
	t.Setenv("WIKIPATH_MAX_VISITED", "10000")
	t.Setenv("CORS_ORIGINS", "http://localhost:3000, https://example.com")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.APIURL != "https://de.wikipedia.org/w/api.php" || cfg.Timeout != 5*time.Second {
		t.Errorf("overrides not applied: %+v", cfg)
	}

	if cfg.RateLimit != 2.5 || cfg.MaxVisited != 10000 {
		t.Errorf("numeric overrides not applied: %+v", cfg)
	}

	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "https://example.com" {
		t.Errorf("origins not trimmed: %v", cfg.CORSOrigins)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr string
	}{
		{name: "api url scheme", key: "WIKIPATH_API_URL", value: "ftp://en.wikipedia.org/w/api.php", wantErr: "scheme"},
		{name: "api url relative", key: "WIKIPATH_API_URL", value: "w/api.php", wantErr: "not a valid URL"},
		{name: "timeout unparsable", key: "WIKIPATH_TIMEOUT", value: "soon", wantErr: "duration"},
		{name: "timeout zero", key: "WIKIPATH_TIMEOUT", value: "0s", wantErr: "must be positive"},
		{name: "retries", key: "WIKIPATH_MAX_RETRIES", value: "11", wantErr: "between 0 and 10"},
		{name: "rate limit", key: "WIKIPATH_RATE_LIMIT", value: "0", wantErr: "must be positive"},
		{name: "concurrency", key: "WIKIPATH_CONCURRENCY", value: "0", wantErr: "between 1 and 64"},
		{name: "max visited", key: "WIKIPATH_MAX_VISITED", value: "-1", wantErr: "must not be negative"},
		{name: "log level", key: "LOG_LEVEL", value: "loud", wantErr: "LOG_LEVEL"},
		{name: "log format", key: "LOG_FORMAT", value: "xml", wantErr: "LOG_FORMAT"},
		{name: "port", key: "PORT", value: "70000", wantErr: "between 1 and 65535"},
		{name: "listen host", key: "LISTEN_HOST", value: "0.0.0.0", wantErr: "loopback"},
		{name: "cors wildcard", key: "CORS_ORIGINS", value: "*", wantErr: "wildcard"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)

			_, err := config.Load()
			if err == nil {
				t.Fatalf("expected error containing %q, got nil", tc.wantErr)
			}

			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("expected error containing %q, got %q", tc.wantErr, err.Error())
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := config.Load()
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	log := cfg.NewLogger(&buf)
	if log.GetLevel() != logrus.DebugLevel {
		t.Errorf("expected debug level, got %s", log.GetLevel())
	}

	log.WithField("k", "v").Info("hello")
	if !strings.Contains(buf.String(), `"k":"v"`) {
		t.Errorf("expected JSON output, got %q", buf.String())
	}
}
