package config

import (
	"strings"
	"testing"
)

func productionConfig() *Config {
	return &Config{
		Environment:          EnvProduction,
		LogLevel:             "info",
		SessionAuthKey:       strings.Repeat("a", 32),
		SessionEncryptionKey: strings.Repeat("b", 32),
		JWTSecret:            strings.Repeat("c", 32),
	}
}

func TestValidateForProduction(t *testing.T) {
	t.Run("non-production is a no-op", func(t *testing.T) {
		cfg := &Config{Environment: EnvDevelopment, LogLevel: "debug"}
		if err := ValidateForProduction(cfg); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("valid production config", func(t *testing.T) {
		if err := ValidateForProduction(productionConfig()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("short session auth key", func(t *testing.T) {
		cfg := productionConfig()
		cfg.SessionAuthKey = "short"
		if err := ValidateForProduction(cfg); err == nil {
			t.Fatal("expected error for short SESSION_AUTH_KEY")
		}
	})

	t.Run("default jwt secret", func(t *testing.T) {
		cfg := productionConfig()
		cfg.JWTSecret = "dev-jwt-secret-change-me-32-bytes"
		err := ValidateForProduction(cfg)
		if err == nil || !strings.Contains(err.Error(), "JWT_SECRET") {
			t.Fatalf("expected JWT_SECRET error, got %v", err)
		}
	})

	t.Run("debug log level", func(t *testing.T) {
		cfg := productionConfig()
		cfg.LogLevel = "debug"
		if err := ValidateForProduction(cfg); err == nil {
			t.Fatal("expected error for debug log level")
		}
	})

	t.Run("auto reorder without temporal", func(t *testing.T) {
		cfg := productionConfig()
		cfg.AutoReorderEnabled = true
		err := ValidateForProduction(cfg)
		if err == nil || !strings.Contains(err.Error(), "TEMPORAL_ENABLED") {
			t.Fatalf("expected TEMPORAL_ENABLED error, got %v", err)
		}
	})
}
