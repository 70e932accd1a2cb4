// Package config はRequest TUIの設定管理を提供する。
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config はRequest TUIの設定を表す。
type Config struct {
	ValkeyAddr      string        `envconfig:"VALKEY_ADDR" default:"127.0.0.1:6379"`
	ValkeyPassword  string        `envconfig:"VALKEY_PASSWORD"`
	RefreshInterval time.Duration `envconfig:"REFRESH_INTERVAL" default:"5s"` // 0で自動更新なし
}

// Load は環境変数から設定を読み込む。
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}
