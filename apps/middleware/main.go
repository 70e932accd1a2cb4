// Package main はRAN共有ミドルウェアのエントリーポイント。
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/oyaguma3/ran-share-middleware/apps/middleware/internal/agent"
	"github.com/oyaguma3/ran-share-middleware/apps/middleware/internal/config"
	"github.com/oyaguma3/ran-share-middleware/apps/middleware/internal/handler"
	"github.com/oyaguma3/ran-share-middleware/apps/middleware/internal/ledger"
	"github.com/oyaguma3/ran-share-middleware/apps/middleware/internal/metrics"
	"github.com/oyaguma3/ran-share-middleware/apps/middleware/internal/restore"
	"github.com/oyaguma3/ran-share-middleware/apps/middleware/internal/server"
	"github.com/oyaguma3/ran-share-middleware/apps/middleware/internal/store"
	"github.com/oyaguma3/ran-share-middleware/apps/middleware/internal/usecase"
	"github.com/oyaguma3/ran-share-middleware/pkg/logging"
)

func main() {
	// 1. 設定読み込み
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// 2. ロガー初期化
	slog.SetDefault(logging.NewJSONLogger(os.Stdout, "middleware", cfg.LogLevel))

	slog.Info("starting middleware",
		"listen_addr", cfg.ListenAddr,
		"log_level", cfg.LogLevel,
		"ledger_url", cfg.LedgerURL,
		"agent_url", cfg.AgentURL,
	)

	// 3. Valkey接続
	valkeyClient, err := store.NewValkeyClient(cfg)
	if err != nil {
		slog.Error("failed to connect to Valkey", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()

	slog.Info("connected to Valkey", "addr", cfg.RedisAddr())

	// 4. 依存オブジェクト生成
	collector, err := metrics.NewCollector(nil)
	if err != nil {
		slog.Error("failed to register metrics", "error", err)
		os.Exit(1)
	}

	requestStore := store.NewRequestStore(valkeyClient)
	restoreQueue := store.NewRestoreQueue(valkeyClient)
	ledgerClient := ledger.NewClient(cfg, collector)
	agentClient := agent.NewClient(cfg, collector)
	scheduler := restore.NewScheduler(restoreQueue)

	// ユースケース
	requestUseCase := usecase.NewRequestUseCase(
		requestStore,
		ledgerClient,
		agentClient,
		scheduler,
		collector,
		cfg,
	)
	sweeper := restore.NewSweeper(restoreQueue, requestUseCase, cfg)

	// ハンドラー
	requestHandler := handler.NewRequestHandler(requestUseCase, valkeyClient)

	// 5. サーバーと復元スイーパーを起動
	srv := server.New(cfg, requestHandler, collector)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		return sweeper.Run(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	// 6. 終了待機
	if err := g.Wait(); err != nil {
		slog.Error("server error", "error", err)
	}

	drainCtx, cancel := context.WithTimeout(context.Background(), cfg.RestoreDrainTimeout)
	defer cancel()
	if err := sweeper.Drain(drainCtx); err != nil {
		slog.Warn("restorations still running at exit", "error", err)
	}

	slog.Info("server stopped")
}
