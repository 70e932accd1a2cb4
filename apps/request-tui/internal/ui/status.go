package ui

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// StatusType はステータスメッセージの種類を表す。
type StatusType int

const (
	// StatusInfo は情報メッセージ
	StatusInfo StatusType = iota
	// StatusSuccess は成功メッセージ
	StatusSuccess
	// StatusError はエラーメッセージ
	StatusError
)

// DefaultStatusText はステータスバーの既定表示。
const DefaultStatusText = " Enter:Detail | r:Refresh | /:Filter | s:Sort | q:Back/Quit | Ctrl+Q:Exit"

// StatusBar はステータスバーを管理する。
type StatusBar struct {
	view        *tview.TextView
	app         *tview.Application
	clearTimer  *time.Timer
	defaultText string
}

// NewStatusBar は新しいStatusBarを生成する。
func NewStatusBar() *StatusBar {
	view := tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignLeft)

	view.SetBackgroundColor(tcell.ColorDarkBlue)
	view.SetTextColor(tcell.ColorWhite)

	s := &StatusBar{
		view:        view,
		defaultText: DefaultStatusText,
	}
	s.ShowDefault()
	return s
}

// SetApp はtview.Applicationへの参照を設定する。
func (s *StatusBar) SetApp(app *tview.Application) {
	s.app = app
}

// ShowDefault はデフォルトのステータスメッセージを表示する。
func (s *StatusBar) ShowDefault() {
	s.view.SetText(s.defaultText)
}

// Text は現在の表示内容を返す。
func (s *StatusBar) Text() string {
	return s.view.GetText(false)
}

// Show は5秒後にデフォルトに戻るステータスメッセージを表示する。
func (s *StatusBar) Show(statusType StatusType, message string) {
	if s.clearTimer != nil {
		s.clearTimer.Stop()
	}

	s.view.SetText(colorize(statusType, message))

	s.clearTimer = time.AfterFunc(5*time.Second, func() {
		if s.app != nil {
			s.app.QueueUpdateDraw(s.ShowDefault)
		}
	})
}

// ShowSuccess は成功メッセージを表示する。
func (s *StatusBar) ShowSuccess(message string) {
	s.Show(StatusSuccess, message)
}

// ShowError はエラーメッセージを表示する。
func (s *StatusBar) ShowError(message string) {
	s.Show(StatusError, message)
}

func colorize(statusType StatusType, message string) string {
	switch statusType {
	case StatusSuccess:
		return "[green::b] ✓ " + message + " [-::-]"
	case StatusError:
		return "[red::b] ✗ " + message + " [-::-]"
	default:
		return "[cyan] ℹ " + message + " [-]"
	}
}
