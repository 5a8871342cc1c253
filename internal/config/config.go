// Package config layers Mentora configuration from defaults, an
// optional YAML file, a .env file and MENTORA_* environment variables,
// in increasing priority.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"mentora/internal/llm"
)

// Config is the full application configuration.
type Config struct {
	// Backend is the remote learning platform API.
	Backend BackendConfig `yaml:"backend"`

	// DBPath overrides the default SQLite database location.
	DBPath string `yaml:"db_path"`

	// LogFile is where structured logs are written. Empty disables
	// file logging.
	LogFile string `yaml:"log_file"`

	// LLM holds provider configuration. Populated from the
	// environment, not the YAML file, so API keys stay out of
	// config files.
	LLM llm.Config `yaml:"-"`
}

// BackendConfig points at the remote API.
type BackendConfig struct {
	// BaseURL of the API, e.g. https://api.example.com. Empty means
	// no remote backend; the app falls back to local generation.
	BaseURL string `yaml:"base_url"`

	// Token is the bearer token for authenticated requests.
	Token string `yaml:"token"`
}

// Default returns the baseline configuration.
func Default() Config {
	return Config{
		LLM: llm.DefaultConfig(),
	}
}

// Load builds the effective configuration. The path argument names a
// YAML config file; empty means the default location, and a missing
// file at the default location is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = defaultConfigPath()
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config %s: %w", path, err)
			}
		case os.IsNotExist(err) && !explicit:
			// Default location, nothing there. Fine.
		default:
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	// A .env in the working directory feeds the environment before
	// env overrides are read. Missing file is fine.
	_ = godotenv.Load()

	applyEnv(&cfg)
	cfg.LLM = llm.ConfigFromEnv()

	return cfg, nil
}

// applyEnv overlays MENTORA_* environment variables onto cfg.
func applyEnv(cfg *Config) {
	if v := os.Getenv("MENTORA_API_URL"); v != "" {
		cfg.Backend.BaseURL = v
	}
	if v := os.Getenv("MENTORA_API_TOKEN"); v != "" {
		cfg.Backend.Token = v
	}
	if v := os.Getenv("MENTORA_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("MENTORA_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
}

// defaultConfigPath resolves $XDG_CONFIG_HOME/mentora/config.yaml,
// falling back to ~/.config. Returns empty if no home dir resolves.
func defaultConfigPath() string {
	confHome := os.Getenv("XDG_CONFIG_HOME")
	if confHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		confHome = filepath.Join(home, ".config")
	}
	return filepath.Join(confHome, "mentora", "config.yaml")
}
