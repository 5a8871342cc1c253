package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingDefaultIsFine(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Backend.BaseURL != "" {
		t.Errorf("unexpected backend URL %q", cfg.Backend.BaseURL)
	}
}

func TestLoadExplicitMissingFileErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte("backend:\n  base_url: https://api.example.com\n  token: abc\nlog_file: /tmp/mentora.log\n")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Backend.BaseURL != "https://api.example.com" {
		t.Errorf("base URL = %q", cfg.Backend.BaseURL)
	}
	if cfg.Backend.Token != "abc" {
		t.Errorf("token = %q", cfg.Backend.Token)
	}
	if cfg.LogFile != "/tmp/mentora.log" {
		t.Errorf("log file = %q", cfg.LogFile)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte("backend:\n  base_url: https://file.example.com\n")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("MENTORA_API_URL", "https://env.example.com")
	t.Setenv("MENTORA_API_TOKEN", "env-token")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Backend.BaseURL != "https://env.example.com" {
		t.Errorf("base URL = %q, want env override", cfg.Backend.BaseURL)
	}
	if cfg.Backend.Token != "env-token" {
		t.Errorf("token = %q", cfg.Backend.Token)
	}
}

func TestBadYAMLErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("backend: [not a map"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLLMConfigFromEnv(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("MENTORA_LLM_PROVIDER", "mock")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.LLM.Provider != "mock" {
		t.Errorf("LLM provider = %q, want mock", cfg.LLM.Provider)
	}
}
