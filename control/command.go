// Package control defines lightweight command messages used by the UI to
// request actions from the timer command loop. The command loop centralizes
// state changes to avoid races and to simplify synchronization.
package control

import "Pomodoro/timer"

// CommandType enumerates supported command operations.
type CommandType int

const (
	CmdStart CommandType = iota
	CmdStop
	CmdReset
	cmdTick
)

func (c CommandType) String() string {
	switch c {
	case CmdStart:
		return "start"
	case CmdStop:
		return "stop"
	case CmdReset:
		return "reset"
	case cmdTick:
		return "tick"
	}
	return "unknown"
}

// Command is the message sent from the UI to Controller.commandLoop. The
// optional Reply channel is used by the loop to confirm completion back to
// the sender (useful for keeping UI state in sync).
type Command struct {
	Type   CommandType
	Ticket timer.Ticket // set on tick commands only
	Reply  chan error   // optional reply channel
}
