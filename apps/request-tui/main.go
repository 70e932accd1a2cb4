// Request TUI - テナント割当リクエストの監視コンソール
package main

import (
	"context"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/redis/go-redis/v9"

	"github.com/oyaguma3/ran-share-middleware/apps/request-tui/internal/config"
	"github.com/oyaguma3/ran-share-middleware/apps/request-tui/internal/store"
	"github.com/oyaguma3/ran-share-middleware/apps/request-tui/internal/ui"
	"github.com/oyaguma3/ran-share-middleware/apps/request-tui/internal/ui/requests"
	"github.com/oyaguma3/ran-share-middleware/pkg/model"
	"github.com/oyaguma3/ran-share-middleware/pkg/valkey"
)

// Application はアプリケーション全体を管理する。
type Application struct {
	app         *ui.App
	cfg         *config.Config
	redisClient *redis.Client
	store       *store.RequestStore
	list        *requests.ListScreen
	stopRefresh context.CancelFunc
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}

	application := &Application{
		app: ui.NewApp(),
		cfg: cfg,
	}
	application.setupGlobalKeyBindings()

	if err := application.connectValkey(); err != nil {
		application.showStartupError(err.Error())
	} else {
		application.showRequestList()
	}

	if err := application.app.Run(); err != nil {
		log.Fatalf("Application error: %v", err)
	}
	application.cleanup()
}

func (a *Application) connectValkey() error {
	opts := valkey.TUIOptions().
		WithAddr(a.cfg.ValkeyAddr).
		WithPassword(a.cfg.ValkeyPassword)

	client, err := valkey.NewClient(opts)
	if err != nil {
		return err
	}

	a.redisClient = client
	a.store = store.NewRequestStore(client)
	return nil
}

func (a *Application) showStartupError(errorMessage string) {
	modal := ui.NewStartupErrorModal(a.cfg.ValkeyAddr, errorMessage,
		func() {
			if err := a.connectValkey(); err != nil {
				a.app.GetStatusBar().ShowError("Connection failed: " + err.Error())
				return
			}
			a.app.RemovePage("startup-error")
			a.showRequestList()
		},
		a.app.Stop,
	)
	a.app.AddPage("startup-error", modal, true, true)
}

func (a *Application) showRequestList() {
	a.list = requests.NewListScreen(a.app, a.store)
	detail := requests.NewDetailScreen(a.app, a.store)

	a.list.SetOnSelect(func(req *model.Request) {
		detail.Show(req)
		a.app.SwitchToPage("request-detail")
		a.app.SetFocus(detail.GetTextView())
	})
	a.list.SetOnQuit(a.app.Stop)
	detail.SetOnBack(func() {
		a.app.SwitchToPage("request-list")
		a.app.SetFocus(a.list.GetTable())
	})

	a.app.AddPage("request-list", a.list.GetTable(), true, true)
	a.app.AddPage("request-detail", detail.GetTextView(), true, false)
	a.app.SwitchToPage("request-list")
	a.app.SetFocus(a.list.GetTable())

	if err := a.list.Load(context.Background()); err != nil {
		a.app.GetStatusBar().ShowError("Failed to load requests: " + err.Error())
	}
	a.startAutoRefresh()
}

func (a *Application) startAutoRefresh() {
	if a.cfg.RefreshInterval <= 0 {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	a.stopRefresh = cancel

	go func() {
		ticker := time.NewTicker(a.cfg.RefreshInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				a.list.Refresh(true)
			}
		}
	}()
}

func (a *Application) setupGlobalKeyBindings() {
	a.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyCtrlQ {
			a.app.Stop()
			return nil
		}
		return event
	})
}

func (a *Application) cleanup() {
	if a.stopRefresh != nil {
		a.stopRefresh()
	}
	if a.redisClient != nil {
		_ = a.redisClient.Close()
	}
}
