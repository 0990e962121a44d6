package configs

import (
	"testing"
	"time"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "JWT_EXPIRATION_HOURS", "IMAGE_MAX_KB", "RATE_LIMIT_ENABLED", "CORS_ALLOW_ORIGINS"} {
		t.Setenv(k, "")
	}
	t.Setenv("JWT_SECRET", "  rahasia  ")

	cfg := FromEnv()
	if cfg.JWTSecret != "rahasia" {
		t.Fatalf("JWTSecret = %q", cfg.JWTSecret)
	}
	if cfg.JWTExpiration != 72*time.Hour || cfg.ImageMaxKB != 2048 || !cfg.RateLimitEnabled {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("JWT_EXPIRATION_HOURS", "2")
	t.Setenv("IMAGE_MAX_KB", "bukan-angka")
	t.Setenv("RATE_LIMIT_ENABLED", "false")

	cfg := FromEnv()
	if cfg.JWTExpiration != 2*time.Hour {
		t.Fatalf("JWTExpiration = %s", cfg.JWTExpiration)
	}
	if cfg.ImageMaxKB != 2048 {
		t.Fatalf("invalid int should fall back, got %d", cfg.ImageMaxKB)
	}
	if cfg.RateLimitEnabled {
		t.Fatalf("RateLimitEnabled should be false")
	}
}
