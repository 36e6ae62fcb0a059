package config

import (
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.Port != "8081" {
		t.Fatalf("expected default port 8081, got %s", cfg.Port)
	}
	if cfg.DataBackend != BackendCSV {
		t.Fatalf("expected default backend csv, got %s", cfg.DataBackend)
	}
	if cfg.DataDir != "./data" {
		t.Fatalf("expected default data dir ./data, got %s", cfg.DataDir)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default configuration should validate, got %v", err)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATA_BACKEND", "sqlite")
	t.Setenv("SQLITE_DB_PATH", "/tmp/test.db")

	cfg := Load()
	if cfg.Port != "9000" || cfg.DataBackend != BackendSQLite || cfg.SQLiteDBPath != "/tmp/test.db" {
		t.Fatalf("env values not picked up: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantMsg string
	}{
		{"bad port", func(c *Config) { c.Port = "nope" }, "invalid port"},
		{"port out of range", func(c *Config) { c.Port = "70000" }, "invalid port"},
		{"unknown backend", func(c *Config) { c.DataBackend = "cloud" }, "invalid data backend"},
		{"csv without dir", func(c *Config) { c.DataDir = "" }, "data directory"},
		{"sqlite without path", func(c *Config) { c.DataBackend = BackendSQLite; c.SQLiteDBPath = "" }, "SQLite database path"},
		{"sheets without id", func(c *Config) { c.DataBackend = BackendSheets }, "GOOGLE_SPREADSHEET_ID"},
		{"bad amqp scheme", func(c *Config) { c.AMQPURL = "http://localhost" }, "invalid AMQP URL scheme"},
		{"amqp without queue", func(c *Config) { c.AMQPURL = "amqp://localhost"; c.AMQPQueue = "" }, "queue name"},
	}
	for _, tc := range cases {
		cfg := Load()
		tc.mutate(cfg)
		err := cfg.Validate()
		if err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
		if !strings.Contains(err.Error(), tc.wantMsg) {
			t.Fatalf("%s: expected message containing %q, got %v", tc.name, tc.wantMsg, err)
		}
	}
}

func TestValidateCollectsMultipleProblems(t *testing.T) {
	cfg := Load()
	cfg.Port = "nope"
	cfg.DataBackend = "cloud"
	err := cfg.Validate()
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "invalid port") || !strings.Contains(err.Error(), "invalid data backend") {
		t.Fatalf("expected both problems reported, got %v", err)
	}
}
