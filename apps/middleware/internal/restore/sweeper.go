package restore

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/oyaguma3/ran-share-middleware/apps/middleware/internal/config"
	"github.com/oyaguma3/ran-share-middleware/pkg/httputil"
	"github.com/oyaguma3/ran-share-middleware/pkg/logging"
	"github.com/oyaguma3/ran-share-middleware/pkg/model"
)

// Restorer は復元処理本体のインターフェース。
type Restorer interface {
	Restore(ctx context.Context, job *model.RestoreJob) error
}

// Sweeper は期限到来済みのジョブを定期的に取得して復元を実行する。
type Sweeper struct {
	queue      Queue
	restorer   Restorer
	interval   time.Duration
	batchSize  int
	staleAfter time.Duration
	now        func() time.Time
	wg         sync.WaitGroup
}

// NewSweeper は新しいSweeperを生成する。
func NewSweeper(queue Queue, restorer Restorer, cfg *config.Config) *Sweeper {
	return &Sweeper{
		queue:      queue,
		restorer:   restorer,
		interval:   cfg.RestorePollInterval,
		batchSize:  cfg.RestoreBatchSize,
		staleAfter: config.RestoreStaleAfter,
		now:        time.Now,
	}
}

// Run はctxがキャンセルされるまでポーリングを続ける。
// 実行中の復元はキャンセルの影響を受けないため、終了時はDrainで待つ。
func (s *Sweeper) Run(ctx context.Context) error {
	slog.Info("restore sweeper started",
		logging.WithEventID("SWEEPER_START"),
		slog.Duration("interval", s.interval),
	)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.Sweep(ctx)
	for {
		select {
		case <-ctx.Done():
			slog.Info("restore sweeper stopped", logging.WithEventID("SWEEPER_STOP"))
			return nil
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// Sweep は放置された実行中ジョブを戻し、期限到来済みのジョブを取得して実行を開始する。
func (s *Sweeper) Sweep(ctx context.Context) {
	now := s.now()

	if n, err := s.queue.RequeueStale(ctx, s.staleAfter, now); err != nil {
		slog.Error("failed to requeue stale restorations",
			logging.WithEventID("SWEEPER_REQUEUE_ERR"),
			logging.WithError(err),
		)
	} else if n > 0 {
		slog.Warn("stale restorations requeued",
			logging.WithEventID("SWEEPER_REQUEUE"),
			slog.Int("count", n),
		)
	}

	jobs, err := s.queue.ClaimDue(ctx, now, s.batchSize)
	if err != nil {
		slog.Error("failed to claim due restorations",
			logging.WithEventID("SWEEPER_CLAIM_ERR"),
			logging.WithError(err),
		)
		return
	}

	for _, job := range jobs {
		s.wg.Add(1)
		go func(job *model.RestoreJob) {
			defer s.wg.Done()
			s.execute(context.WithoutCancel(ctx), job)
		}(job)
	}
}

// execute は1件の復元を実行し、結果に応じてジョブを完了させる。
// 失敗したジョブの本体は手動復旧のため残す。
func (s *Sweeper) execute(ctx context.Context, job *model.RestoreJob) {
	ctx = httputil.WithTraceID(ctx, "restore-"+job.RequestID)

	err := s.restorer.Restore(ctx, job)
	current, cerr := s.queue.Complete(ctx, job, err != nil)
	if cerr != nil {
		slog.Error("failed to complete restore job",
			logging.WithEventID("SWEEPER_COMPLETE_ERR"),
			logging.WithRequestID(job.RequestID),
			logging.WithError(cerr),
		)
		return
	}
	if !current {
		slog.Info("restore job was rescheduled while running",
			logging.WithEventID("SWEEPER_JOB_SUPERSEDED"),
			logging.WithRequestID(job.RequestID),
		)
	}
}

// Drain は実行中の復元の終了を待つ。ctxの期限までに終わらなければctx.Err()を返す。
// 終わらなかったジョブは実行中のまま残り、次回起動時に再実行される。
func (s *Sweeper) Drain(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		slog.Warn("restore drain timed out",
			logging.WithEventID("SWEEPER_DRAIN_TIMEOUT"),
			logging.WithError(ctx.Err()),
		)
		return ctx.Err()
	}
}
