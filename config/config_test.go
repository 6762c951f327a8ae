package config

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

func TestNewConfig_DefaultsAndEnvOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("JWT_TTL", "")
	t.Setenv("BCRYPT_COST", "")
	t.Setenv("SERVER_PORT", "6001")
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,")

	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	if cfg.Server.Port != "6001" || cfg.Database.Driver != "sqlite" {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
	want := []string{"https://a.example", "https://b.example"}
	if !reflect.DeepEqual(cfg.Server.AllowedOrigins, want) {
		t.Fatalf("origins = %v, want %v", cfg.Server.AllowedOrigins, want)
	}
	if cfg.Auth.TokenTTL != 24*time.Hour || cfg.Auth.BcryptCost != 10 {
		t.Fatalf("auth defaults = %+v", cfg.Auth)
	}
	if !cfg.IsDevelopment() {
		t.Fatalf("default env = %q, want development", cfg.Env)
	}
}

func TestNewConfig_PlaceholderSecretOutsideDevelopment(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "")

	if _, err := NewConfig(); !errors.Is(err, ErrDefaultJWTSecret) {
		t.Fatalf("expected ErrDefaultJWTSecret, got %v", err)
	}

	t.Setenv("JWT_SECRET", DefaultJWTSecret)
	if _, err := NewConfig(); !errors.Is(err, ErrDefaultJWTSecret) {
		t.Fatalf("explicit placeholder: expected ErrDefaultJWTSecret, got %v", err)
	}

	t.Setenv("JWT_SECRET", "a-real-signing-key")
	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	if cfg.Auth.JWTSecret != "a-real-signing-key" || cfg.IsDevelopment() {
		t.Fatalf("unexpected config: env=%q", cfg.Env)
	}
}

func TestNewConfig_PlaceholderSecretAllowedInDevelopment(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("JWT_SECRET", "")

	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	if cfg.Auth.JWTSecret != DefaultJWTSecret {
		t.Fatalf("secret = %q, want the development default", cfg.Auth.JWTSecret)
	}
}
