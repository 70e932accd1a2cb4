package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// NewInputDialog は1行入力のダイアログを生成する。
func NewInputDialog(title, label, initial string, onSubmit func(string), onCancel func()) *tview.Form {
	form := tview.NewForm()
	form.AddInputField(label, initial, 30, nil, nil).
		AddButton("OK", func() {
			value := form.GetFormItem(0).(*tview.InputField).GetText()
			if onSubmit != nil {
				onSubmit(value)
			}
		}).
		AddButton("Cancel", func() {
			if onCancel != nil {
				onCancel()
			}
		})

	form.SetCancelFunc(func() {
		if onCancel != nil {
			onCancel()
		}
	})
	form.SetTitle(" " + title + " ").
		SetBorder(true).
		SetBorderColor(tcell.ColorYellow)
	return form
}

// Centered はプリミティブを画面中央に配置する。
func Centered(p tview.Primitive, width, height int) tview.Primitive {
	return tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(nil, 0, 1, false).
			AddItem(p, height, 1, true).
			AddItem(nil, 0, 1, false), width, 1, true).
		AddItem(nil, 0, 1, false)
}
