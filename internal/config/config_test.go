package config

import (
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PARLEY_HOST", "PARLEY_PORT", "LOG_LEVEL", "SESSION_SECRET",
		"CONVERSATIONS_PATH", "NATS_URL", "NATS_TOKEN",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()

	if cfg.Host != "0.0.0.0" {
		t.Errorf("expected default host 0.0.0.0, got %s", cfg.Host)
	}
	if cfg.Port != 5000 {
		t.Errorf("expected default port 5000, got %d", cfg.Port)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected default log level debug, got %s", cfg.LogLevel)
	}
	if cfg.SessionSecret != "dev-secret-key" {
		t.Errorf("expected default session secret, got %s", cfg.SessionSecret)
	}
	if !cfg.UsingDevSecret() {
		t.Error("expected UsingDevSecret to be true for the default secret")
	}
	if cfg.ConversationsPath != "data/conversations.json" {
		t.Errorf("expected default conversations path, got %s", cfg.ConversationsPath)
	}
	if cfg.NatsURL != "" {
		t.Errorf("expected empty default nats url, got %s", cfg.NatsURL)
	}
	if cfg.NatsToken != "" {
		t.Errorf("expected empty default nats token, got %s", cfg.NatsToken)
	}
}

func TestLoad_CustomValues(t *testing.T) {
	t.Setenv("PARLEY_HOST", "127.0.0.1")
	t.Setenv("PARLEY_PORT", "9090")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("SESSION_SECRET", "prod-secret")
	t.Setenv("CONVERSATIONS_PATH", "/var/lib/parley/conversations.json")
	t.Setenv("NATS_URL", "nats://hermes:4222")
	t.Setenv("NATS_TOKEN", "s3cr3t-token")

	cfg := Load()

	if cfg.Host != "127.0.0.1" {
		t.Errorf("expected custom host, got %s", cfg.Host)
	}
	if cfg.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Port)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("expected warn log level, got %s", cfg.LogLevel)
	}
	if cfg.SessionSecret != "prod-secret" {
		t.Errorf("expected custom session secret, got %s", cfg.SessionSecret)
	}
	if cfg.UsingDevSecret() {
		t.Error("expected UsingDevSecret to be false for a custom secret")
	}
	if cfg.ConversationsPath != "/var/lib/parley/conversations.json" {
		t.Errorf("expected custom conversations path, got %s", cfg.ConversationsPath)
	}
	if cfg.NatsURL != "nats://hermes:4222" {
		t.Errorf("expected custom nats url, got %s", cfg.NatsURL)
	}
	if cfg.NatsToken != "s3cr3t-token" {
		t.Errorf("expected custom nats token, got %s", cfg.NatsToken)
	}
}

func TestLoad_InvalidPort(t *testing.T) {
	clearEnv(t)
	t.Setenv("PARLEY_PORT", "notanumber")

	cfg := Load()

	if cfg.Port != 5000 {
		t.Errorf("expected default port on invalid value, got %d", cfg.Port)
	}
}
