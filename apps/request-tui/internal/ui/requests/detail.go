package requests

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/oyaguma3/ran-share-middleware/apps/request-tui/internal/format"
	"github.com/oyaguma3/ran-share-middleware/apps/request-tui/internal/ui"
	"github.com/oyaguma3/ran-share-middleware/pkg/model"
)

// DetailScreen はリクエスト詳細画面を表す。
type DetailScreen struct {
	textView *tview.TextView
	app      *ui.App
	source   Source
	now      func() time.Time
	onBack   func()
}

// NewDetailScreen は新しいDetailScreenを生成する。
func NewDetailScreen(app *ui.App, source Source) *DetailScreen {
	textView := tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true)
	textView.SetBorder(true).
		SetTitle(" Request Detail ").
		SetBorderColor(tcell.ColorBlue)

	screen := &DetailScreen{
		textView: textView,
		app:      app,
		source:   source,
		now:      time.Now,
	}

	textView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEsc || event.Rune() == 'q' {
			if screen.onBack != nil {
				screen.onBack()
			}
			return nil
		}
		return event
	})
	return screen
}

// SetOnBack は戻る時のコールバックを設定する。
func (s *DetailScreen) SetOnBack(handler func()) {
	s.onBack = handler
}

// GetTextView は内部のtview.TextViewを返す。
func (s *DetailScreen) GetTextView() *tview.TextView {
	return s.textView
}

// Show はリクエストを表示し、復元ジョブの情報をバックグラウンドで読み込む。
func (s *DetailScreen) Show(req *model.Request) {
	s.textView.SetText(RenderDetail(req, nil, s.now()))
	s.textView.ScrollToBeginning()

	if !req.HasDuration() {
		return
	}
	go func() {
		job, err := s.source.RestoreJob(context.Background(), req.ID)
		s.app.QueueUpdateDraw(func() {
			if err != nil {
				s.app.GetStatusBar().ShowError("Failed to load restore job: " + err.Error())
				return
			}
			s.textView.SetText(RenderDetail(req, job, s.now()))
		})
	}()
}

// RenderDetail はリクエストの詳細テキストを組み立てる。秘密鍵は表示しない。
func RenderDetail(req *model.Request, job *model.RestoreJob, now time.Time) string {
	var b strings.Builder
	line := func(label, value string) {
		if value == "" {
			value = "-"
		}
		fmt.Fprintf(&b, "[yellow]%-18s[-] %s\n", label+":", value)
	}

	line("ID", req.ID)
	line("External ID", req.ExternalID)
	fmt.Fprintf(&b, "[yellow]%-18s[-] [%s]%s[-]\n", "State:", StateColor(req.State).Name(), req.State)
	line("Created", req.CreatedAt)
	line("Contract", req.ContractAddress)
	line("Shared TAC", req.SharedTAC)
	line("Duration", format.DurationMins(req.DurationMins))
	line("Tenant PLMN", req.TenantPLMN)
	line("Tenant AMF", req.TenantAMFAddr())
	line("Tenant NSSAI", req.TenantNSSAIJSON)

	b.WriteString("\n[cyan]UE IMSIs[-]\n")
	imsis, err := req.IMSIs()
	switch {
	case err != nil:
		b.WriteString("  [red]" + err.Error() + "[-]\n")
	case len(imsis) == 0:
		b.WriteString("  (none)\n")
	default:
		for _, imsi := range imsis {
			b.WriteString("  " + imsi + "\n")
		}
	}

	if !req.HasDuration() {
		return b.String()
	}

	b.WriteString("\n[cyan]Restoration[-]\n")
	if job == nil {
		switch req.State {
		case model.StateExpired:
			b.WriteString("  restored\n")
		case model.StateRestoreFailed:
			b.WriteString("  [red]failed (job removed)[-]\n")
		default:
			b.WriteString("  not scheduled\n")
		}
		return b.String()
	}
	line("  Scheduled", format.DateTime(job.ScheduledAt))
	line("  Due", format.DateTime(job.DueAt))
	line("  Remaining", format.Until(job.DueAt, now))
	line("  Saved UEs", fmt.Sprintf("%d", len(job.OriginalUEs)))
	return b.String()
}
