// Package timer contains the domain logic for the Pomodoro countdown: the
// TimerConfig definition, the State transitions and the Scheduler used to
// drive ticks.
//
// Maintenance notes:
//   - State is a plain value. Start, Stop, Reset and Tick never touch the UI,
//     the scheduler or the speaker; they return the next State together with
//     the Intents the caller must carry out. The control package owns the
//     single live State and executes those intents on its command loop.
//   - A tick is only ever pending while Running is true. Any transition that
//     clears Running while a tick is pending emits IntentCancelTick.
package timer

import "fmt"

// Intent is a side effect requested by a state transition.
type Intent int

const (
	IntentScheduleTick Intent = iota
	IntentCancelTick
	IntentRender
	IntentPlaySound
	IntentShowDialog
)

func (i Intent) String() string {
	switch i {
	case IntentScheduleTick:
		return "schedule-tick"
	case IntentCancelTick:
		return "cancel-tick"
	case IntentRender:
		return "render"
	case IntentPlaySound:
		return "play-sound"
	case IntentShowDialog:
		return "show-dialog"
	}
	return "unknown"
}

// State holds the countdown. The zero value is a stopped timer with no time
// on it; use NewState to start from a configured duration.
type State struct {
	Remaining int
	Running   bool
	Duration  int
}

// NewState creates a stopped timer holding the full duration.
func NewState(durationSec int) State {
	if durationSec < 0 {
		durationSec = 0
	}
	return State{Remaining: durationSec, Duration: durationSec}
}

// Start begins the countdown. Starting a running timer changes nothing.
func (s State) Start() (State, []Intent) {
	if s.Running {
		return s, nil
	}
	s.Running = true
	return s, []Intent{IntentScheduleTick, IntentRender}
}

// Stop pauses the countdown, keeping the remaining time.
func (s State) Stop() (State, []Intent) {
	if !s.Running {
		return s, nil
	}
	s.Running = false
	return s, []Intent{IntentCancelTick, IntentRender}
}

// Reset puts the timer back to its full duration, stopped.
func (s State) Reset() (State, []Intent) {
	var intents []Intent
	if s.Running {
		intents = append(intents, IntentCancelTick)
	}
	s.Running = false
	s.Remaining = s.Duration
	return s, append(intents, IntentRender)
}

// Tick processes one second of time passing. The session completes on the
// tick that reaches zero.
func (s State) Tick() (State, []Intent) {
	if !s.Running {
		return s, nil
	}

	if s.Remaining <= 0 {
		s.Remaining = 0
		s.Running = false
		return s, []Intent{IntentPlaySound, IntentShowDialog}
	}

	s.Remaining--
	if s.Remaining == 0 {
		s.Running = false
		return s, []Intent{IntentRender, IntentPlaySound, IntentShowDialog}
	}
	return s, []Intent{IntentRender, IntentScheduleTick}
}

// Snapshot is a consistent copy of the state for the UI to render.
type Snapshot struct {
	Remaining int
	Running   bool
	Duration  int
	Display   string
}

// Snapshot returns the state together with its MM:SS rendering.
func (s State) Snapshot() Snapshot {
	return Snapshot{
		Remaining: s.Remaining,
		Running:   s.Running,
		Duration:  s.Duration,
		Display:   FormatTime(s.Remaining),
	}
}

// FormatTime renders seconds as MM:SS. Negative values render as 00:00.
func FormatTime(sec int) string {
	if sec < 0 {
		sec = 0
	}
	return fmt.Sprintf("%02d:%02d", sec/60, sec%60)
}
