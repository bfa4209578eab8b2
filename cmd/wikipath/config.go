package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/persistorai/wikipath/internal/config"
	"github.com/persistorai/wikipath/internal/models"
)

type configFile struct {
	// Flat format
	APIURL    string `yaml:"api_url"`
	UserAgent string `yaml:"user_agent"`
	Strategy  string `yaml:"strategy"`
	Depth     *int   `yaml:"depth"`
	// Profile format
	Profiles      map[string]configProfile `yaml:"profiles"`
	ActiveProfile string                   `yaml:"active_profile"`
}

type configProfile struct {
	APIURL    string `yaml:"api_url"`
	UserAgent string `yaml:"user_agent"`
	Strategy  string `yaml:"strategy"`
	Depth     *int   `yaml:"depth"`
}

// settings is the fully resolved configuration for one invocation.
type settings struct {
	cfg      *config.Config
	strategy models.Strategy
	depth    int
}

// readConfigFile loads ~/.wikipath/config.yaml and flattens the active
// profile over the top-level keys. A missing or unreadable file yields an
// empty configFile.
func readConfigFile() configFile {
	var cfg configFile

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg
	}
	data, err := os.ReadFile(filepath.Join(home, ".wikipath", "config.yaml"))
	if err != nil {
		return cfg
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return configFile{}
	}

	if cfg.Profiles != nil {
		profileName := cfg.ActiveProfile
		if profileName == "" {
			profileName = "default"
		}
		if p, ok := cfg.Profiles[profileName]; ok {
			if p.APIURL != "" {
				cfg.APIURL = p.APIURL
			}
			if p.UserAgent != "" {
				cfg.UserAgent = p.UserAgent
			}
			if p.Strategy != "" {
				cfg.Strategy = p.Strategy
			}
			if p.Depth != nil {
				cfg.Depth = p.Depth
			}
		}
	}

	return cfg
}

// resolveBaseConfig loads the environment configuration and fills the
// settings the environment leaves unset from the config file.
func resolveBaseConfig() (*config.Config, configFile, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, configFile{}, err
	}

	file := readConfigFile()
	if os.Getenv("WIKIPATH_API_URL") == "" && file.APIURL != "" {
		cfg.APIURL = file.APIURL
	}
	if os.Getenv("WIKIPATH_USER_AGENT") == "" && file.UserAgent != "" {
		cfg.UserAgent = file.UserAgent
	}

	return cfg, file, nil
}

// resolveSettings applies precedence flag > env > config file > default.
func resolveSettings(cmd *cobra.Command) (*settings, error) {
	cfg, file, err := resolveBaseConfig()
	if err != nil {
		return nil, err
	}

	s := &settings{cfg: cfg, strategy: models.DefaultStrategy, depth: models.DefaultDepth}

	if file.Strategy != "" {
		s.strategy = models.Strategy(file.Strategy)
	}
	if file.Depth != nil {
		s.depth = *file.Depth
	}

	if v := os.Getenv("WIKIPATH_STRATEGY"); v != "" {
		s.strategy = models.Strategy(v)
	}
	if v := os.Getenv("WIKIPATH_DEPTH"); v != "" {
		d, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("WIKIPATH_DEPTH must be an integer: %w", err)
		}
		s.depth = d
	}

	if err := applyFlags(cmd, s); err != nil {
		return nil, err
	}

	if _, err := models.ParseStrategy(string(s.strategy)); err != nil {
		return nil, &usageError{err: err}
	}
	if err := cfg.Validate(); err != nil {
		return nil, &usageError{err: err}
	}

	return s, nil
}

func applyFlags(cmd *cobra.Command, s *settings) error {
	changed := cmd.Flags().Changed

	if changed("strategy") {
		s.strategy = models.Strategy(flagStrategy)
	}
	if changed("depth") {
		s.depth = flagDepth
	}
	if changed("api-url") {
		s.cfg.APIURL = flagAPIURL
	}
	if changed("timeout") {
		d, err := time.ParseDuration(flagTimeout)
		if err != nil {
			return newUsageError("--timeout must be a duration (e.g. 30s): %v", err)
		}
		s.cfg.Timeout = d
	}
	if changed("concurrency") {
		s.cfg.Concurrency = flagConcurrency
	}
	if changed("log-level") {
		s.cfg.LogLevel = flagLogLevel
	}

	return nil
}
