// Package config は環境変数から設定を読み込む。
package config

import (
	"encoding/json"
	"fmt"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config はミドルウェアの設定を保持する。
type Config struct {
	// Valkey設定
	RedisHost string `envconfig:"REDIS_HOST" required:"true"`
	RedisPort string `envconfig:"REDIS_PORT" required:"true"`
	RedisPass string `envconfig:"REDIS_PASS" required:"true"`

	// サーバー設定
	ListenAddr  string `envconfig:"LISTEN_ADDR" default:":25000"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"INFO"`
	LogMaskIMSI bool   `envconfig:"LOG_MASK_IMSI" default:"true"`
	GinMode     string `envconfig:"GIN_MODE" default:"release"`

	// 台帳サービス設定
	LedgerURL string `envconfig:"LEDGER_URL" default:"http://localhost:3020/api"`

	// RANエージェント設定
	AgentURL         string `envconfig:"AGENT_URL" default:"http://localhost:8080"`
	AgentGNBID       string `envconfig:"AGENT_GNB_ID" default:"1"`
	AgentFeatureName string `envconfig:"AGENT_FEATURE_NAME" default:"gNodeB_service"`

	// gNodeBベースライン（テナント以外）のパラメータ
	AgentGTPAddr   string `envconfig:"AGENT_GTP_ADDR" default:"172.16.100.209"`
	AgentTDDConfig int    `envconfig:"AGENT_TDD_CONFIG" default:"1"`
	AgentAMFAddr   string `envconfig:"AGENT_AMF_ADDR" default:"172.16.100.202"`
	AgentNSSAI     string `envconfig:"AGENT_NSSAI"`
	AgentPLMN      string `envconfig:"AGENT_PLMN" default:"99940"`
	AgentTAC       int    `envconfig:"AGENT_TAC" default:"100"`

	// テナントPLMN未指定時に制限を登録するPLMN
	DefaultTenantPLMN string `envconfig:"DEFAULT_TENANT_PLMN" default:"00101"`

	// 下流呼び出し・復元スケジューラ設定
	DownstreamTimeout   time.Duration `envconfig:"DOWNSTREAM_TIMEOUT" default:"10s"`
	RestorePollInterval time.Duration `envconfig:"RESTORE_POLL_INTERVAL" default:"5s"`
	RestoreBatchSize    int           `envconfig:"RESTORE_BATCH_SIZE" default:"16"`
	RestoreDrainTimeout time.Duration `envconfig:"RESTORE_DRAIN_TIMEOUT" default:"30s"`
}

// Load は環境変数から設定を読み込む。
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.AgentNSSAI == "" {
		cfg.AgentNSSAI = DefaultAgentNSSAI
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// RedisAddr はValkey接続文字列を返す。
func (c *Config) RedisAddr() string {
	return net.JoinHostPort(c.RedisHost, c.RedisPort)
}

// validate は設定値のバリデーションを行う。
func (c *Config) validate() error {
	for name, raw := range map[string]string{"LEDGER_URL": c.LedgerURL, "AGENT_URL": c.AgentURL} {
		u, err := url.Parse(raw)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("%s must be an absolute http(s) URL: %q", name, raw)
		}
	}
	if strings.TrimSpace(c.AgentGNBID) == "" {
		return fmt.Errorf("AGENT_GNB_ID must not be empty")
	}
	if !json.Valid([]byte(c.AgentNSSAI)) {
		return fmt.Errorf("AGENT_NSSAI must be a JSON array")
	}
	if c.DownstreamTimeout <= 0 {
		return fmt.Errorf("DOWNSTREAM_TIMEOUT must be positive")
	}
	if c.RestorePollInterval <= 0 {
		return fmt.Errorf("RESTORE_POLL_INTERVAL must be positive")
	}
	if c.RestoreBatchSize <= 0 {
		return fmt.Errorf("RESTORE_BATCH_SIZE must be positive")
	}
	return nil
}
