package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/oyaguma3/ran-share-middleware/pkg/apperr"
	"github.com/oyaguma3/ran-share-middleware/pkg/model"
)

// claimScript は期限到来済みのIDを最大ARGV[2]件、dueからinflightへ原子的に移動する。
// KEYS[1]=due, KEYS[2]=inflight, ARGV[1]=現在時刻(ms), ARGV[2]=上限件数
var claimScript = redis.NewScript(`
local ids = redis.call('ZRANGEBYSCORE', KEYS[1], '-inf', ARGV[1], 'LIMIT', 0, tonumber(ARGV[2]))
for _, id in ipairs(ids) do
  redis.call('ZREM', KEYS[1], id)
  redis.call('ZADD', KEYS[2], ARGV[1], id)
end
return ids
`)

// requeueScript は取得から一定時間経過したinflightのIDをdueへ戻す。
// KEYS[1]=inflight, KEYS[2]=due, ARGV[1]=閾値時刻(ms), ARGV[2]=再実行時刻(ms)
var requeueScript = redis.NewScript(`
local ids = redis.call('ZRANGEBYSCORE', KEYS[1], '-inf', ARGV[1])
for _, id in ipairs(ids) do
  redis.call('ZREM', KEYS[1], id)
  redis.call('ZADD', KEYS[2], ARGV[2], id)
end
return #ids
`)

// completeScript は取得したジョブがまだ最新の登録である場合に限り完了処理を行う。
// 再登録で置き換わっていれば何もしない。本体が失われていればinflightだけ外す。
// KEYS[1]=本体, KEYS[2]=inflight, KEYS[3]=due, ARGV[1]=ID, ARGV[2]=トークン, ARGV[3]=本体を残すなら"1"
var completeScript = redis.NewScript(`
local raw = redis.call('GET', KEYS[1])
if not raw then
  redis.call('ZREM', KEYS[2], ARGV[1])
  return 0
end
local ok, job = pcall(cjson.decode, raw)
if not ok or type(job) ~= 'table' or (job.token or '') ~= ARGV[2] then
  return 0
end
redis.call('ZREM', KEYS[2], ARGV[1])
redis.call('ZREM', KEYS[3], ARGV[1])
if ARGV[3] ~= '1' then
  redis.call('DEL', KEYS[1])
end
return 1
`)

// RestoreQueue は復元ジョブの永続キュー。
// プロセス再起動後も期限到来済みのジョブを取り出せる。
type RestoreQueue struct {
	vc *ValkeyClient
}

// NewRestoreQueue は新しいRestoreQueueを生成する。
func NewRestoreQueue(vc *ValkeyClient) *RestoreQueue {
	return &RestoreQueue{vc: vc}
}

// Enqueue はジョブを保存し、DueAtをスコアとして期限インデックスに登録する。
// 同じリクエストIDのジョブは上書きされ、実行中の旧ジョブの完了では消えない。
func (q *RestoreQueue) Enqueue(ctx context.Context, job *model.RestoreJob) error {
	stored := *job
	stored.Token = uuid.NewString()
	data, err := json.Marshal(&stored)
	if err != nil {
		return fmt.Errorf("encode restore job: %w", err)
	}
	key := KeyPrefixRestoreJob + job.RequestID

	_, err = q.vc.Client().TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, key, data, 0)
		pipe.ZRem(ctx, KeyRestoreInflight, job.RequestID)
		pipe.ZAdd(ctx, KeyRestoreDue, redis.Z{
			Score:  float64(job.DueAt.UnixMilli()),
			Member: job.RequestID,
		})
		return nil
	})
	if err != nil {
		return apperr.NewValkeyError("ENQUEUE", key, err)
	}
	return nil
}

// ClaimDue は期限到来済みのジョブを最大limit件取得し、実行中として印を付ける。
// 本体が失われたIDは実行中から外して読み飛ばす。
func (q *RestoreQueue) ClaimDue(ctx context.Context, now time.Time, limit int) ([]*model.RestoreJob, error) {
	if limit <= 0 {
		return nil, nil
	}
	client := q.vc.Client()

	ids, err := claimScript.Run(ctx, client,
		[]string{KeyRestoreDue, KeyRestoreInflight},
		now.UnixMilli(), limit,
	).StringSlice()
	if err != nil {
		return nil, apperr.NewValkeyError("CLAIM", KeyRestoreDue, err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = KeyPrefixRestoreJob + id
	}
	vals, err := client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, apperr.NewValkeyError("MGET", KeyPrefixRestoreJob+"*", err)
	}

	jobs := make([]*model.RestoreJob, 0, len(ids))
	for i, v := range vals {
		s, ok := v.(string)
		if !ok {
			client.ZRem(ctx, KeyRestoreInflight, ids[i])
			continue
		}
		var job model.RestoreJob
		if err := json.Unmarshal([]byte(s), &job); err != nil {
			client.ZRem(ctx, KeyRestoreInflight, ids[i])
			continue
		}
		jobs = append(jobs, &job)
	}
	return jobs, nil
}

// Complete は取得したジョブを実行中から外す。keepPayloadがfalseなら本体も削除する。
// 取得後に同じIDで再登録されていた場合は新しいジョブに触れず、falseを返す。
func (q *RestoreQueue) Complete(ctx context.Context, job *model.RestoreJob, keepPayload bool) (bool, error) {
	key := KeyPrefixRestoreJob + job.RequestID
	keep := "0"
	if keepPayload {
		keep = "1"
	}
	n, err := completeScript.Run(ctx, q.vc.Client(),
		[]string{key, KeyRestoreInflight, KeyRestoreDue},
		job.RequestID, job.Token, keep,
	).Int()
	if err != nil {
		return false, apperr.NewValkeyError("COMPLETE", key, err)
	}
	return n == 1, nil
}

// RequeueStale は取得後olderThan以上経過しても完了していないジョブを
// 即時実行対象としてdueへ戻し、戻した件数を返す。
func (q *RestoreQueue) RequeueStale(ctx context.Context, olderThan time.Duration, now time.Time) (int, error) {
	threshold := now.Add(-olderThan).UnixMilli()
	n, err := requeueScript.Run(ctx, q.vc.Client(),
		[]string{KeyRestoreInflight, KeyRestoreDue},
		threshold, now.UnixMilli(),
	).Int()
	if err != nil {
		return 0, apperr.NewValkeyError("REQUEUE", KeyRestoreInflight, err)
	}
	return n, nil
}

// Pending は実行待ちのジョブ件数を返す。
func (q *RestoreQueue) Pending(ctx context.Context) (int64, error) {
	n, err := q.vc.Client().ZCard(ctx, KeyRestoreDue).Result()
	if err != nil {
		return 0, apperr.NewValkeyError("ZCARD", KeyRestoreDue, err)
	}
	return n, nil
}
