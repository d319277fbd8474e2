// Package main contains the application wiring and the AppManager which
// connects the timer controller, audio and the UI.
//
// Maintenance notes / tips:
//   - The control.Controller owns the timer state and calls back into the
//     AppManager (Render, PlayCompletionSound, ShowCompletionDialog) from
//     its command-loop goroutine. Anything touching widgets from those
//     callbacks must go through fyne.Do.
//   - Buttons and key presses never mutate state directly; they post
//     commands through ui.SendCommand.
package main

import (
	"log"

	"Pomodoro/audio"
	"Pomodoro/control"
	"Pomodoro/i18n"
	"Pomodoro/resource"
	"Pomodoro/timer"
	"Pomodoro/ui"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/pkg/errors"
)

// AppManager is the main application struct, holding all state.
type AppManager struct {
	mainWindow fyne.Window
	config     *timer.TimerConfig
	controller *control.Controller
	player     *audio.Player
	icons      ui.Icons

	timeText    *canvas.Text
	startButton *widget.Button
	stopButton  *widget.Button
	resetButton *widget.Button
}

// NewAppManager loads the configuration, icons and completion sound and
// starts the timer controller. A missing or broken asset is an error.
func NewAppManager(res *resource.Resolver, sched timer.Scheduler) (*AppManager, error) {
	cfg, err := timer.LoadTimerConfig(res)
	if err != nil {
		return nil, err
	}
	log.Printf("Loaded timer config, session length %s.", timer.FormatTime(cfg.DefaultDuration()))

	a := &AppManager{config: cfg, player: audio.NewPlayer()}

	if a.icons.Start, err = loadIcon(res, cfg.StartIconFilename); err != nil {
		return nil, err
	}
	if a.icons.Stop, err = loadIcon(res, cfg.StopIconFilename); err != nil {
		return nil, err
	}
	if err := a.loadAudio(res); err != nil {
		return nil, err
	}

	a.controller = control.NewController(cfg.DefaultDuration(), sched, a)
	return a, nil
}

func loadIcon(res *resource.Resolver, name string) (fyne.Resource, error) {
	data, err := res.ReadFile(name)
	if err != nil {
		return nil, errors.Wrap(err, "load icon")
	}
	return fyne.NewStaticResource(name, data), nil
}

func (a *AppManager) loadAudio(res *resource.Resolver) error {
	if err := a.player.Init(); err != nil {
		log.Printf("Audio disabled: %v", err)
	}

	rc, err := res.Open(a.config.SoundFilename)
	if err != nil {
		return errors.Wrap(err, "load completion sound")
	}
	return a.player.Load(a.config.SoundFilename, rc)
}

// Snapshot returns the current timer state.
func (a *AppManager) Snapshot() timer.Snapshot {
	return a.controller.Snapshot()
}

// EnqueueCommand posts a command to the timer controller.
func (a *AppManager) EnqueueCommand(cmd control.Command) {
	a.controller.EnqueueCommand(cmd)
}

// Render shows the countdown and refreshes the buttons.
func (a *AppManager) Render(s timer.Snapshot) {
	fyne.Do(func() {
		if a.timeText != nil {
			a.timeText.Text = s.Display
			a.timeText.Refresh()
		}
	})
	a.UpdateControlButtonState()
}

// PlayCompletionSound plays the completion sound. Failures are logged and
// never hold up the dialog.
func (a *AppManager) PlayCompletionSound() {
	if err := a.player.Play(a.config.SoundFilename); err != nil {
		log.Printf("Completion sound: %v", err)
	}
}

// ShowCompletionDialog tells the user the session is over.
func (a *AppManager) ShowCompletionDialog() {
	log.Println("Pomodoro session finished")
	fyne.Do(func() {
		if a.mainWindow == nil {
			return
		}
		a.mainWindow.RequestFocus()
		dialog.ShowInformation(i18n.T("Time's up!"), i18n.T("Your Pomodoro session is over!"), a.mainWindow)
	})
}

// UpdateControlButtonState enables the buttons that make sense for the
// current state.
func (a *AppManager) UpdateControlButtonState() {
	s := a.controller.Snapshot()

	fyne.Do(func() {
		if a.startButton == nil {
			return
		}
		if s.Running {
			a.startButton.Disable()
			a.stopButton.Enable()
		} else {
			a.startButton.Enable()
			a.stopButton.Disable()
		}
		if s.Running || s.Remaining != s.Duration {
			a.resetButton.Enable()
		} else {
			a.resetButton.Disable()
		}
	})
}

// HandleKeyRune handles key presses for the application.
func (a *AppManager) HandleKeyRune(r rune) {
	if a.startButton == nil {
		return
	}
	switch r {
	case ' ':
		if !a.stopButton.Disabled() {
			a.stopButton.Tapped(&fyne.PointEvent{})
		} else if !a.startButton.Disabled() {
			a.startButton.Tapped(&fyne.PointEvent{})
		}
	case 'r', 'R':
		a.resetButton.Tapped(&fyne.PointEvent{})
	}
}

// SetTimeText sets the countdown text.
func (a *AppManager) SetTimeText(t *canvas.Text) {
	a.timeText = t
}

// SetStartButton sets the start button widget.
func (a *AppManager) SetStartButton(btn *widget.Button) {
	a.startButton = btn
}

// SetStopButton sets the stop button widget.
func (a *AppManager) SetStopButton(btn *widget.Button) {
	a.stopButton = btn
}

// SetResetButton sets the reset button widget.
func (a *AppManager) SetResetButton(btn *widget.Button) {
	a.resetButton = btn
}

// Shutdown stops the controller, cancelling any pending tick, and silences
// the speaker.
func (a *AppManager) Shutdown() {
	a.controller.Shutdown()
	a.player.Close()
}
