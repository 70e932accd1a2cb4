// Package store はValkeyへのデータアクセスを提供する。
package store

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/oyaguma3/ran-share-middleware/apps/middleware/internal/config"
	"github.com/oyaguma3/ran-share-middleware/pkg/valkey"
)

// ValkeyClient はValkeyクライアントをラップする。
type ValkeyClient struct {
	client *redis.Client
}

// NewValkeyClient は新しいValkeyClientを生成する。接続確認に失敗した場合はエラーを返す。
func NewValkeyClient(cfg *config.Config) (*ValkeyClient, error) {
	opts := valkey.DefaultOptions().
		WithAddr(cfg.RedisAddr()).
		WithPassword(cfg.RedisPass)

	client, err := valkey.NewClient(opts)
	if err != nil {
		return nil, err
	}
	return &ValkeyClient{client: client}, nil
}

// Ping は接続を確認する。
func (v *ValkeyClient) Ping(ctx context.Context) error {
	return v.client.Ping(ctx).Err()
}

// Close は接続を閉じる。
func (v *ValkeyClient) Close() error {
	return v.client.Close()
}

// Client は内部のredis.Clientを返す。
func (v *ValkeyClient) Client() *redis.Client {
	return v.client
}
