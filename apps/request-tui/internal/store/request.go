// Package store はRequest TUIのValkey読み取り層を提供する。
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/oyaguma3/ran-share-middleware/pkg/model"
	"github.com/oyaguma3/ran-share-middleware/pkg/valkey"
)

// ErrRequestNotFound はリクエストが見つからない場合のエラー
var ErrRequestNotFound = errors.New("request not found")

// RestoreSummary は復元キューの状況を表す。
type RestoreSummary struct {
	Due      int64     // 実行待ちジョブ数
	Inflight int64     // 実行中ジョブ数
	NextDue  time.Time // 次の実行予定時刻（ジョブがなければゼロ値）
}

// RequestStore はリクエストレコードへの読み取り専用アクセスを提供する。
type RequestStore struct {
	client *redis.Client
}

// NewRequestStore は新しいRequestStoreを生成する。
func NewRequestStore(client *redis.Client) *RequestStore {
	return &RequestStore{client: client}
}

// Get は指定された内部IDのリクエストを取得する。
func (s *RequestStore) Get(ctx context.Context, id string) (*model.Request, error) {
	m, err := s.client.HGetAll(ctx, RequestKey(id)).Result()
	if err != nil {
		return nil, err
	}
	if len(m) == 0 {
		return nil, ErrRequestNotFound
	}
	return toRequest(id, m)
}

// List は全リクエストのリストを取得する（SCAN使用）。
func (s *RequestStore) List(ctx context.Context) ([]*model.Request, error) {
	var keys []string
	iter := s.client.Scan(ctx, 0, PrefixRequest+"*", 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}

	requests := []*model.Request{}
	if len(keys) == 0 {
		return requests, nil
	}

	pipe := s.client.Pipeline()
	cmds := make([]*redis.MapStringStringCmd, len(keys))
	for i, key := range keys {
		cmds[i] = pipe.HGetAll(ctx, key)
	}
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, err
	}

	for i, cmd := range cmds {
		m, err := cmd.Result()
		if err != nil || len(m) == 0 {
			continue
		}
		req, err := toRequest(strings.TrimPrefix(keys[i], PrefixRequest), m)
		if err != nil {
			// 壊れたレコードは一覧から除外する
			continue
		}
		requests = append(requests, req)
	}
	return requests, nil
}

// RestoreJob は指定リクエストの復元ジョブを取得する。ジョブがなければnilを返す。
func (s *RequestStore) RestoreJob(ctx context.Context, id string) (*model.RestoreJob, error) {
	raw, err := s.client.Get(ctx, RestoreJobKey(id)).Bytes()
	if valkey.IsKeyNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var job model.RestoreJob
	if err := json.Unmarshal(raw, &job); err != nil {
		return nil, fmt.Errorf("decode restore job %s: %w", id, err)
	}
	return &job, nil
}

// RestoreSummary は復元キューの件数と次回実行予定を返す。
func (s *RequestStore) RestoreSummary(ctx context.Context) (*RestoreSummary, error) {
	pipe := s.client.Pipeline()
	dueCmd := pipe.ZCard(ctx, KeyRestoreDue)
	inflightCmd := pipe.ZCard(ctx, KeyRestoreInflight)
	nextCmd := pipe.ZRangeWithScores(ctx, KeyRestoreDue, 0, 0)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, err
	}

	summary := &RestoreSummary{
		Due:      dueCmd.Val(),
		Inflight: inflightCmd.Val(),
	}
	if next := nextCmd.Val(); len(next) > 0 {
		summary.NextDue = time.UnixMilli(int64(next[0].Score))
	}
	return summary, nil
}

func toRequest(id string, m map[string]string) (*model.Request, error) {
	var req model.Request
	if err := valkey.MapToStruct(m, &req); err != nil {
		return nil, fmt.Errorf("decode request %s: %w", id, err)
	}
	if req.ID == "" {
		req.ID = id
	}
	return &req, nil
}
