// Package requests はリクエスト一覧・詳細画面を提供する。
package requests

import (
	"context"
	"fmt"
	"sort"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"golang.org/x/sync/errgroup"

	"github.com/oyaguma3/ran-share-middleware/apps/request-tui/internal/format"
	"github.com/oyaguma3/ran-share-middleware/apps/request-tui/internal/store"
	"github.com/oyaguma3/ran-share-middleware/apps/request-tui/internal/ui"
	"github.com/oyaguma3/ran-share-middleware/pkg/model"
)

// Source は画面が参照するデータ取得元。
type Source interface {
	List(ctx context.Context) ([]*model.Request, error)
	RestoreSummary(ctx context.Context) (*store.RestoreSummary, error)
	RestoreJob(ctx context.Context, id string) (*model.RestoreJob, error)
}

// SortField はソートフィールドを表す。
type SortField int

const (
	// SortByCreatedAt は作成日時でソート
	SortByCreatedAt SortField = iota
	// SortByState は状態でソート
	SortByState
	// SortByExternalID は外部IDでソート
	SortByExternalID
)

var sortColumns = map[SortField]int{
	SortByCreatedAt:  5,
	SortByState:      1,
	SortByExternalID: 0,
}

// ListScreen はリクエスト一覧画面を表す。
type ListScreen struct {
	table    *tview.Table
	app      *ui.App
	source   Source
	requests []*model.Request
	filter   *ui.Filter
	sortBy   SortField
	onSelect func(req *model.Request)
	onQuit   func()
}

// NewListScreen は新しいListScreenを生成する。
func NewListScreen(app *ui.App, source Source) *ListScreen {
	table := tview.NewTable().
		SetBorders(false).
		SetSelectable(true, false).
		SetFixed(1, 0)

	table.SetTitle(" Requests ").
		SetTitleAlign(tview.AlignCenter).
		SetBorder(true).
		SetBorderColor(tcell.ColorBlue)

	screen := &ListScreen{
		table:  table,
		app:    app,
		source: source,
		filter: &ui.Filter{},
		sortBy: SortByCreatedAt,
	}
	screen.setupKeyBindings()
	return screen
}

// SetOnSelect はリクエスト選択時のコールバックを設定する。
func (s *ListScreen) SetOnSelect(handler func(req *model.Request)) {
	s.onSelect = handler
}

// SetOnQuit は終了時のコールバックを設定する。
func (s *ListScreen) SetOnQuit(handler func()) {
	s.onQuit = handler
}

// GetTable は内部のtview.Tableを返す。
func (s *ListScreen) GetTable() *tview.Table {
	return s.table
}

// Load はリクエスト一覧と復元キューの状況を読み込んで描画する。
func (s *ListScreen) Load(ctx context.Context) error {
	requests, summary, err := s.fetch(ctx)
	if err != nil {
		return err
	}
	s.apply(requests, summary)
	return nil
}

func (s *ListScreen) fetch(ctx context.Context) ([]*model.Request, *store.RestoreSummary, error) {
	var (
		requests []*model.Request
		summary  *store.RestoreSummary
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		requests, err = s.source.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		summary, err = s.source.RestoreSummary(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return requests, summary, nil
}

func (s *ListScreen) apply(requests []*model.Request, summary *store.RestoreSummary) {
	s.requests = requests
	s.sortRequests()
	s.render()
	s.app.SetHeader(headerText(requests, summary))
}

// Selected は選択中のリクエストを返す。
func (s *ListScreen) Selected() *model.Request {
	row, _ := s.table.GetSelection()
	filtered := s.filtered()
	idx := row - 1
	if idx < 0 || idx >= len(filtered) {
		return nil
	}
	return filtered[idx]
}

// SetFilter はフィルタを設定する。
func (s *ListScreen) SetFilter(query string) {
	s.filter.SetQuery(query)
	s.render()
}

// ToggleSort はソートを切り替える。
func (s *ListScreen) ToggleSort() {
	s.sortBy = (s.sortBy + 1) % 3
	s.sortRequests()
	s.render()
}

func (s *ListScreen) sortRequests() {
	sort.SliceStable(s.requests, func(i, j int) bool {
		a, b := s.requests[i], s.requests[j]
		switch s.sortBy {
		case SortByState:
			return a.State < b.State
		case SortByExternalID:
			return a.ExternalID < b.ExternalID
		default:
			// 新しい順
			return a.CreatedAt > b.CreatedAt
		}
	})
}

func (s *ListScreen) filtered() []*model.Request {
	return ui.FilterItems(s.requests, s.filter, func(r *model.Request) []string {
		return []string{r.ID, r.ExternalID, string(r.State), r.SharedTAC, r.TenantPLMN}
	})
}

func (s *ListScreen) render() {
	s.table.Clear()

	headers := []string{"External ID", "State", "TAC", "Tenant PLMN", "Duration", "Created"}
	for col, header := range headers {
		if col == sortColumns[s.sortBy] {
			header += " ▼"
		}
		s.table.SetCell(0, col, tview.NewTableCell(header).
			SetTextColor(tcell.ColorYellow).
			SetAlign(tview.AlignLeft).
			SetSelectable(false).
			SetExpansion(1))
	}

	filtered := s.filtered()
	for i, r := range filtered {
		row := i + 1
		externalID := r.ExternalID
		if externalID == "" {
			externalID = "(" + format.TruncateMiddle(r.ID, 13) + ")"
		}
		cells := []*tview.TableCell{
			tview.NewTableCell(format.TruncateMiddle(externalID, 20)).SetTextColor(tcell.ColorWhite),
			tview.NewTableCell(string(r.State)).SetTextColor(StateColor(r.State)),
			tview.NewTableCell(r.SharedTAC).SetTextColor(tcell.ColorWhite),
			tview.NewTableCell(r.TenantPLMN).SetTextColor(tcell.ColorWhite),
			tview.NewTableCell(format.DurationMins(r.DurationMins)).SetTextColor(tcell.ColorTeal),
			tview.NewTableCell(format.DateTimeShort(r.CreatedAt)).SetTextColor(tcell.ColorGray),
		}
		for col, cell := range cells {
			s.table.SetCell(row, col, cell.SetAlign(tview.AlignLeft).SetExpansion(1))
		}
	}

	title := fmt.Sprintf(" Requests (%d) ", len(filtered))
	if s.filter.Active {
		title += "[yellow](" + s.filter.FormatFilterStatus() + ")[-] "
	}
	s.table.SetTitle(title)

	if len(filtered) > 0 {
		s.table.Select(1, 0)
	}
}

// Refresh はValkeyをバックグラウンドで読み直し、UIスレッドで再描画する。
func (s *ListScreen) Refresh(quiet bool) {
	go func() {
		requests, summary, err := s.fetch(context.Background())
		s.app.QueueUpdateDraw(func() {
			if err != nil {
				s.app.GetStatusBar().ShowError("Failed to refresh: " + err.Error())
				return
			}
			s.apply(requests, summary)
			if !quiet {
				s.app.GetStatusBar().ShowSuccess("Refreshed")
			}
		})
	}()
}

func (s *ListScreen) setupKeyBindings() {
	s.table.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEsc:
			if s.filter.Active {
				s.SetFilter("")
			}
			return nil
		case tcell.KeyF5:
			s.Refresh(false)
			return nil
		case tcell.KeyEnter:
			if req := s.Selected(); req != nil && s.onSelect != nil {
				s.onSelect(req)
			}
			return nil
		}

		switch event.Rune() {
		case 'r':
			s.Refresh(false)
			return nil
		case 's':
			s.ToggleSort()
			return nil
		case '/':
			s.showFilterDialog()
			return nil
		case 'q':
			if s.onQuit != nil {
				s.onQuit()
			}
			return nil
		}
		return event
	})
}

func (s *ListScreen) showFilterDialog() {
	closeDialog := func() {
		s.app.RemovePage("filter-dialog")
		s.app.SetFocus(s.table)
	}
	form := ui.NewInputDialog("Filter Requests", "ID/state/TAC contains:", s.filter.Query,
		func(value string) {
			s.SetFilter(value)
			closeDialog()
		},
		closeDialog,
	)
	s.app.AddPage("filter-dialog", ui.Centered(form, 50, 7), true, true)
	s.app.SetFocus(form)
}

// StateColor は状態の表示色を返す。
func StateColor(st model.State) tcell.Color {
	switch st {
	case model.StateCompleted:
		return tcell.ColorGreen
	case model.StateAccepted, model.StatePending, model.StateCreated:
		return tcell.ColorYellow
	case model.StateRejected, model.StateRestoreFailed:
		return tcell.ColorRed
	default:
		return tcell.ColorGray
	}
}

func headerText(requests []*model.Request, summary *store.RestoreSummary) string {
	counts := map[model.State]int{}
	for _, r := range requests {
		counts[r.State]++
	}
	text := fmt.Sprintf(" [::b]RAN Share Requests[::-]  total:%d  completed:%d  pending:%d  restore-failed:%d",
		len(requests), counts[model.StateCompleted], counts[model.StatePending], counts[model.StateRestoreFailed])
	if summary != nil {
		text += fmt.Sprintf("  | restore queue due:%d inflight:%d next:%s",
			summary.Due, summary.Inflight, format.DateTime(summary.NextDue))
	}
	return text
}
