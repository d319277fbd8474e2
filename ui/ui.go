package ui

import (
	"image/color"
	"time"

	"Pomodoro/control"
	"Pomodoro/i18n"
	"Pomodoro/timer"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// replyTimeout bounds how long a button waits for the command loop.
const replyTimeout = 200 * time.Millisecond

type App interface {
	Snapshot() timer.Snapshot
	EnqueueCommand(cmd control.Command)
	UpdateControlButtonState()
	HandleKeyRune(rune)
	SetTimeText(*canvas.Text)
	SetStartButton(*widget.Button)
	SetStopButton(*widget.Button)
	SetResetButton(*widget.Button)
}

// Icons are the images shown on the Start and Stop buttons.
type Icons struct {
	Start fyne.Resource
	Stop  fyne.Resource
}

// SendCommand posts a command and waits briefly for the loop to apply it so
// the buttons reflect the new state straight away.
func SendCommand(a App, t control.CommandType) {
	reply := make(chan error, 1)
	a.EnqueueCommand(control.Command{Type: t, Reply: reply})
	select {
	case <-reply:
	case <-time.After(replyTimeout):
	}
	a.UpdateControlButtonState()
}

// BuildHeader creates the title and the large countdown text.
func BuildHeader(a App) (*canvas.Text, fyne.CanvasObject) {
	titleText := canvas.NewText(i18n.T("Pomodoro Timer"), timer.TitleColor)
	titleText.TextSize = timer.FontSizeTitle
	titleText.Alignment = fyne.TextAlignCenter

	timeText := canvas.NewText(a.Snapshot().Display, timer.TimeColor)
	timeText.TextSize = timer.FontSizeTime
	timeText.TextStyle.Bold = true
	timeText.Alignment = fyne.TextAlignCenter

	header := container.NewVBox(
		container.New(layout.NewCenterLayout(), titleText),
		container.New(layout.NewCenterLayout(), timeText),
	)
	return timeText, header
}

// BuildFooter creates the Start, Stop and Reset buttons.
func BuildFooter(a App, icons Icons) (*widget.Button, *widget.Button, *widget.Button, fyne.CanvasObject) {
	startButton := widget.NewButtonWithIcon(i18n.T("Start"), icons.Start, func() {
		SendCommand(a, control.CmdStart)
	})
	startButton.Importance = widget.LowImportance

	stopButton := widget.NewButtonWithIcon(i18n.T("Stop"), icons.Stop, func() {
		SendCommand(a, control.CmdStop)
	})
	stopButton.Importance = widget.LowImportance

	resetButton := widget.NewButton(i18n.T("Reset"), func() {
		SendCommand(a, control.CmdReset)
	})
	resetButton.Importance = widget.LowImportance
	resetBackground := canvas.NewRectangle(timer.ResetColor)
	resetBackground.CornerRadius = 4

	controls := container.NewBorder(nil, nil,
		container.NewHBox(gap(), startButton),
		container.NewHBox(stopButton, gap()),
	)

	footer := container.NewVBox(
		controls,
		container.New(layout.NewCenterLayout(), container.NewStack(resetBackground, resetButton)),
	)
	return startButton, stopButton, resetButton, footer
}

// CreateMainWindow builds the fixed-size timer window.
func CreateMainWindow(a App, fyneApp fyne.App, icons Icons) fyne.Window {
	w := fyneApp.NewWindow(i18n.T("Pomodoro Timer"))

	timeText, header := BuildHeader(a)
	startButton, stopButton, resetButton, footer := BuildFooter(a, icons)

	a.SetTimeText(timeText)
	a.SetStartButton(startButton)
	a.SetStopButton(stopButton)
	a.SetResetButton(resetButton)

	w.Canvas().SetOnTypedRune(a.HandleKeyRune)

	content := container.NewVBox(
		header,
		layout.NewSpacer(),
		footer,
	)

	a.UpdateControlButtonState()

	w.SetContent(container.NewPadded(content))
	w.Resize(fyne.NewSize(timer.WindowWidth, timer.WindowHeight))
	w.SetFixedSize(true)
	return w
}

func gap() fyne.CanvasObject {
	spacer := canvas.NewRectangle(color.Transparent)
	spacer.SetMinSize(fyne.NewSize(timer.ButtonGap, 0))
	return spacer
}
