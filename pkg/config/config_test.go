package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad_Success(t *testing.T) {
	setMinimalEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.App.Env != "prod" {
		t.Fatalf("expected App.Env to be prod, got %q", cfg.App.Env)
	}

	if cfg.Storage.DataDir != "data" {
		t.Fatalf("unexpected data dir %q", cfg.Storage.DataDir)
	}

	if cfg.Redis.URL != "redis://localhost:6379/0" {
		t.Fatalf("unexpected Redis URL: %q", cfg.Redis.URL)
	}

	if got := cfg.Cart.SessionTTL; got != 168*time.Hour {
		t.Fatalf("expected cart session ttl 168h, got %v", got)
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	setMinimalEnv(t)
	if err := os.Unsetenv("KOODAKZIBA_JWT_SECRET"); err != nil {
		t.Fatalf("failed to unset jwt secret: %v", err)
	}

	if _, err := Load(); err == nil {
		t.Fatal("expected missing required env to return an error")
	}
}

func setMinimalEnv(t *testing.T) {
	t.Helper()

	t.Setenv("KOODAKZIBA_APP_ENV", "prod")
	t.Setenv("KOODAKZIBA_APP_PORT", "8081")
	t.Setenv("KOODAKZIBA_REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("KOODAKZIBA_JWT_SECRET", "secret")
}

func TestAppConfigEnvHelpers(t *testing.T) {
	devConfig := AppConfig{Env: "DEV"}
	if !devConfig.IsDev() {
		t.Fatalf("expected IsDev true for %q", devConfig.Env)
	}
	if devConfig.IsProd() {
		t.Fatalf("expected IsProd false for %q", devConfig.Env)
	}

	prodConfig := AppConfig{Env: "prod"}
	if !prodConfig.IsProd() {
		t.Fatalf("expected IsProd true for %q", prodConfig.Env)
	}
}
