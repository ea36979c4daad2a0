package config

import (
	"os"
	"strconv"
)

// DefaultSessionSecret is the development fallback for SESSION_SECRET.
const DefaultSessionSecret = "dev-secret-key"

type Config struct {
	Host              string
	Port              int
	LogLevel          string
	SessionSecret     string
	ConversationsPath string
	NatsURL           string
	NatsToken         string
}

func Load() Config {
	return Config{
		Host:              envStr("PARLEY_HOST", "0.0.0.0"),
		Port:              envInt("PARLEY_PORT", 5000),
		LogLevel:          envStr("LOG_LEVEL", "debug"),
		SessionSecret:     envStr("SESSION_SECRET", DefaultSessionSecret),
		ConversationsPath: envStr("CONVERSATIONS_PATH", "data/conversations.json"),
		NatsURL:           envStr("NATS_URL", ""),
		NatsToken:         envStr("NATS_TOKEN", ""),
	}
}

// UsingDevSecret reports whether the session secret is still the development default.
func (c Config) UsingDevSecret() bool {
	return c.SessionSecret == DefaultSessionSecret
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
