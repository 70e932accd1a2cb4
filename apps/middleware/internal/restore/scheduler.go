// Package restore は期間満了時の復元処理の予約と実行を提供する。
package restore

import (
	"context"
	"log/slog"
	"time"

	"github.com/oyaguma3/ran-share-middleware/pkg/logging"
	"github.com/oyaguma3/ran-share-middleware/pkg/model"
)

// Queue は復元ジョブの永続キューのインターフェース。
type Queue interface {
	Enqueue(ctx context.Context, job *model.RestoreJob) error
	ClaimDue(ctx context.Context, now time.Time, limit int) ([]*model.RestoreJob, error)
	Complete(ctx context.Context, job *model.RestoreJob, keepPayload bool) (bool, error)
	RequeueStale(ctx context.Context, olderThan time.Duration, now time.Time) (int, error)
}

// Scheduler は復元ジョブをキューに登録する。
type Scheduler struct {
	queue Queue
	now   func() time.Time
}

// NewScheduler は新しいSchedulerを生成する。
func NewScheduler(queue Queue) *Scheduler {
	return &Scheduler{queue: queue, now: time.Now}
}

// Schedule は期間経過後に一度だけ復元が実行されるようジョブを登録する。
// 期間が0以下の場合は何もしない。
func (s *Scheduler) Schedule(ctx context.Context, job *model.RestoreJob) error {
	if job.DurationMins <= 0 {
		slog.Info("restoration not scheduled",
			logging.WithEventID("RESTORE_NO_DURATION"),
			logging.WithRequestID(job.RequestID),
		)
		return nil
	}

	now := s.now()
	if job.ScheduledAt.IsZero() {
		job.ScheduledAt = now
	}
	if job.DueAt.IsZero() {
		job.DueAt = job.ScheduledAt.Add(job.Duration())
	}

	if err := s.queue.Enqueue(ctx, job); err != nil {
		return err
	}
	slog.Info("restoration scheduled",
		logging.WithEventID("RESTORE_SCHEDULED"),
		logging.WithRequestID(job.RequestID),
		logging.WithExternalID(job.ExternalID),
		slog.Time("due_at", job.DueAt),
	)
	return nil
}
