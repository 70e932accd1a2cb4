package config

import (
	"os"
	"testing"
)

// unsetEnv はテスト終了時に元へ戻る形で環境変数を未設定にする。
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadDefaults(t *testing.T) {
	unsetEnv(t, "LISTEN_ADDR", "LOG_LEVEL", "GIN_MODE")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.ListenAddr != ":3020" {
		t.Errorf("ListenAddr = %q, want :3020", cfg.ListenAddr)
	}
	if cfg.LogLevel != "INFO" {
		t.Errorf("LogLevel = %q, want INFO", cfg.LogLevel)
	}
	if cfg.GinMode != "release" {
		t.Errorf("GinMode = %q, want release", cfg.GinMode)
	}
}

func TestLoadOverride(t *testing.T) {
	t.Setenv("LISTEN_ADDR", ":4000")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.ListenAddr != ":4000" || cfg.LogLevel != "DEBUG" {
		t.Errorf("cfg = %+v", cfg)
	}
}
