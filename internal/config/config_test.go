package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFromFile(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Fatalf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Database.Path != "data/bloom.db" {
		t.Fatalf("unexpected default database path: %q", cfg.Database.Path)
	}
	if cfg.Insights.Model != "gpt-4o-mini" {
		t.Fatalf("unexpected default model: %q", cfg.Insights.Model)
	}
}

func TestLoadFromFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bloom.yaml")
	content := "server:\n  port: 9090\ndatabase:\n  path: /tmp/custom.db\ntimezone: UTC\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Fatalf("expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.Database.Path != "/tmp/custom.db" {
		t.Fatalf("unexpected database path: %q", cfg.Database.Path)
	}
	if cfg.Timezone != "UTC" {
		t.Fatalf("unexpected timezone: %q", cfg.Timezone)
	}
}

func TestEnvOverridesWinOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bloom.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: 9090\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("BLOOM_PORT", "7070")
	t.Setenv("BLOOM_DB_PATH", "/tmp/env.db")
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Server.Port != 7070 {
		t.Fatalf("expected env port 7070, got %d", cfg.Server.Port)
	}
	if cfg.Database.Path != "/tmp/env.db" {
		t.Fatalf("unexpected database path: %q", cfg.Database.Path)
	}
	if cfg.Insights.APIKey != "sk-test" {
		t.Fatal("expected api key from environment")
	}
}

func TestInvalidPortRejected(t *testing.T) {
	t.Setenv("BLOOM_PORT", "0")

	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected validation error for port 0")
	}
}

func TestMalformedYAMLRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bloom.yaml")
	if err := os.WriteFile(path, []byte("server: [broken"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := LoadFromFile(path); err == nil {
		t.Fatal("expected parse error")
	}
}
