package config

import (
	"os"
	"testing"
	"time"
)

func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	_ = os.Unsetenv(key)
}

func TestLoadDefaults(t *testing.T) {
	unsetEnv(t, "VALKEY_ADDR")
	unsetEnv(t, "VALKEY_PASSWORD")
	unsetEnv(t, "REFRESH_INTERVAL")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.ValkeyAddr != "127.0.0.1:6379" {
		t.Errorf("ValkeyAddr = %q", cfg.ValkeyAddr)
	}
	if cfg.ValkeyPassword != "" {
		t.Errorf("ValkeyPassword = %q, want empty", cfg.ValkeyPassword)
	}
	if cfg.RefreshInterval != 5*time.Second {
		t.Errorf("RefreshInterval = %v", cfg.RefreshInterval)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("VALKEY_ADDR", "10.0.0.5:6380")
	t.Setenv("VALKEY_PASSWORD", "secret")
	t.Setenv("REFRESH_INTERVAL", "0s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.ValkeyAddr != "10.0.0.5:6380" || cfg.ValkeyPassword != "secret" {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.RefreshInterval != 0 {
		t.Errorf("RefreshInterval = %v, want 0", cfg.RefreshInterval)
	}
}

func TestLoadInvalidInterval(t *testing.T) {
	t.Setenv("REFRESH_INTERVAL", "soon")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid REFRESH_INTERVAL")
	}
}
