package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/oyaguma3/ran-share-middleware/pkg/apperr"
	"github.com/oyaguma3/ran-share-middleware/pkg/model"
	"github.com/oyaguma3/ran-share-middleware/pkg/valkey"
)

// upsertMaxRetries はWATCH競合時のリトライ回数。
const upsertMaxRetries = 5

// RequestStore はリクエストレコードのValkey実装。
type RequestStore struct {
	vc  *ValkeyClient
	now func() time.Time
}

// NewRequestStore は新しいRequestStoreを生成する。
func NewRequestStore(vc *ValkeyClient) *RequestStore {
	return &RequestStore{vc: vc, now: time.Now}
}

// Upsert はレコードが無ければ既定値（状態Created・作成日時）で作成し、
// パッチの非nilフィールドのみを書き込む。
// 外部IDは一度設定されると別の値に変更できない。
func (s *RequestStore) Upsert(ctx context.Context, id string, patch *model.RequestPatch) error {
	if id == "" {
		return fmt.Errorf("upsert: empty request id")
	}
	if patch == nil {
		patch = &model.RequestPatch{}
	}
	if patch.State != nil {
		st, err := model.ParseState(string(*patch.State))
		if err != nil {
			return err
		}
		patch.State = &st
	}

	key := KeyPrefixRequest + id
	watchKeys := []string{key}
	var idxKey string
	if patch.ExternalID != nil {
		if *patch.ExternalID == "" {
			return fmt.Errorf("upsert: empty external request id")
		}
		idxKey = KeyPrefixExternalIndex + *patch.ExternalID
		watchKeys = append(watchKeys, idxKey)
	}
	fields := valkey.StructToMap(patch)
	createdAt := s.now().UTC().Format(time.RFC3339)

	txf := func(tx *redis.Tx) error {
		if patch.ExternalID != nil {
			if err := checkExternalID(ctx, tx, key, idxKey, id, *patch.ExternalID); err != nil {
				return err
			}
		}
		_, err := tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSetNX(ctx, key, fieldID, id)
			pipe.HSetNX(ctx, key, fieldState, string(model.StateCreated))
			pipe.HSetNX(ctx, key, fieldCreatedAt, createdAt)
			if len(fields) > 0 {
				pipe.HSet(ctx, key, fields)
			}
			if idxKey != "" {
				pipe.Set(ctx, idxKey, id, 0)
			}
			return nil
		})
		return err
	}

	for i := 0; i < upsertMaxRetries; i++ {
		err := s.vc.Client().Watch(ctx, txf, watchKeys...)
		if err == nil {
			return nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if errors.Is(err, apperr.ErrExternalIDConflict) {
			return err
		}
		return apperr.NewValkeyError("UPSERT", key, err)
	}
	return apperr.NewValkeyError("UPSERT", key, redis.TxFailedErr)
}

// checkExternalID は外部IDの再割当てと他レコードとの重複を検出する。
func checkExternalID(ctx context.Context, tx *redis.Tx, key, idxKey, id, externalID string) error {
	current, err := tx.HGet(ctx, key, fieldExternalID).Result()
	if err != nil && !valkey.IsKeyNotFound(err) {
		return err
	}
	if current != "" && current != externalID {
		return fmt.Errorf("%w: request %s already has %q", apperr.ErrExternalIDConflict, id, current)
	}

	owner, err := tx.Get(ctx, idxKey).Result()
	if err != nil && !valkey.IsKeyNotFound(err) {
		return err
	}
	if owner != "" && owner != id {
		return fmt.Errorf("%w: %q is owned by request %s", apperr.ErrExternalIDConflict, externalID, owner)
	}
	return nil
}

// Get は内部IDでレコードを取得する。存在しない場合はapperr.ErrRequestNotFoundを返す。
func (s *RequestStore) Get(ctx context.Context, id string) (*model.Request, error) {
	key := KeyPrefixRequest + id
	m, err := s.vc.Client().HGetAll(ctx, key).Result()
	if err != nil {
		return nil, apperr.NewValkeyError("HGETALL", key, err)
	}
	if len(m) == 0 {
		return nil, fmt.Errorf("%w: id=%s", apperr.ErrRequestNotFound, id)
	}

	var req model.Request
	if err := valkey.MapToStruct(m, &req); err != nil {
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}
	return &req, nil
}

// FindIDByExternalID は外部IDから内部IDを引く。存在しない場合はapperr.ErrRequestNotFoundを返す。
func (s *RequestStore) FindIDByExternalID(ctx context.Context, externalID string) (string, error) {
	key := KeyPrefixExternalIndex + externalID
	id, err := s.vc.Client().Get(ctx, key).Result()
	if valkey.IsKeyNotFound(err) {
		return "", fmt.Errorf("%w: external_id=%s", apperr.ErrRequestNotFound, externalID)
	}
	if err != nil {
		return "", apperr.NewValkeyError("GET", key, err)
	}
	return id, nil
}

// FindByExternalID は外部IDでレコード全体を取得する。
func (s *RequestStore) FindByExternalID(ctx context.Context, externalID string) (*model.Request, error) {
	id, err := s.FindIDByExternalID(ctx, externalID)
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}
