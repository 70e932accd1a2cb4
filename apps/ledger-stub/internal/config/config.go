// Package config は環境変数から設定を読み込む。
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config は台帳スタブの設定を保持する。
type Config struct {
	ListenAddr string `envconfig:"LISTEN_ADDR" default:":3020"`
	LogLevel   string `envconfig:"LOG_LEVEL" default:"INFO"`
	GinMode    string `envconfig:"GIN_MODE" default:"release"`
}

// Load は環境変数から設定を読み込む。
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}
