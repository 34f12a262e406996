package config

import (
	"strings"
	"testing"
	"time"
)

func productionConfig() *Config {
	return &Config{
		Environment:    EnvProduction,
		LogLevel:       "info",
		JWTSigningKey:  strings.Repeat("k", 48),
		AuthPassword:   "a-real-secret",
		AccessTokenTTL: 15 * time.Minute,
	}
}

func TestValidateForProduction_NonProductionIsNoop(t *testing.T) {
	cfg := &Config{Environment: EnvDevelopment, LogLevel: "debug"}
	if err := ValidateForProduction(cfg); err != nil {
		t.Fatalf("expected nil for development, got %v", err)
	}
}

func TestValidateForProduction_Valid(t *testing.T) {
	if err := ValidateForProduction(productionConfig()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateForProduction_Violations(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"short signing key", func(c *Config) { c.JWTSigningKey = "short" }, "JWT_SIGNING_KEY must be at least 32 bytes"},
		{"default signing key", func(c *Config) { c.JWTSigningKey = defaultJWTSigningKey }, "development default"},
		{"default password", func(c *Config) { c.AuthPassword = defaultAuthPassword }, "AUTH_PASSWORD"},
		{"zero ttl", func(c *Config) { c.AccessTokenTTL = 0 }, "ACCESS_TOKEN_TTL"},
		{"debug logging", func(c *Config) { c.LogLevel = "debug" }, "LOG_LEVEL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := productionConfig()
			tt.mutate(cfg)
			err := ValidateForProduction(cfg)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected %q in error, got %q", tt.want, err.Error())
			}
		})
	}
}

func TestRoles(t *testing.T) {
	cfg := &Config{AuthRoles: " catalog.read ;catalog.write;; "}
	got := cfg.Roles()
	if len(got) != 2 || got[0] != "catalog.read" || got[1] != "catalog.write" {
		t.Fatalf("unexpected roles: %v", got)
	}
}
