package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// NewStartupErrorModal はValkey接続失敗時のモーダルを生成する。
func NewStartupErrorModal(addr, errorMessage string, onRetry, onExit func()) *tview.Modal {
	modal := tview.NewModal().
		SetText("Failed to connect to Valkey:\n\n" + errorMessage +
			"\n\nPlease check:\n- Valkey is running on " + addr +
			"\n- VALKEY_PASSWORD environment variable is set correctly").
		AddButtons([]string{"Retry", "Exit"}).
		SetDoneFunc(func(_ int, buttonLabel string) {
			if buttonLabel == "Retry" {
				if onRetry != nil {
					onRetry()
				}
				return
			}
			if onExit != nil {
				onExit()
			}
		})

	modal.SetTitle(" Connection Error ").
		SetBorder(true).
		SetBorderColor(tcell.ColorRed)
	modal.SetBackgroundColor(tcell.ColorBlack)
	return modal
}
