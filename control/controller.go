package control

import (
	"context"
	"log"
	"sync"
	"time"

	"Pomodoro/timer"

	"github.com/pkg/errors"
)

// TickInterval is the delay between two countdown ticks.
const TickInterval = time.Second

// ErrClosed is returned by Submit once the controller has been shut down.
var ErrClosed = errors.New("control: controller closed")

// Effects is what the controller needs from the application to carry out
// the intents of a state transition. Methods are called from the command
// loop goroutine; implementations that touch widgets must hop onto the UI
// thread themselves.
type Effects interface {
	Render(timer.Snapshot)
	PlayCompletionSound()
	ShowCompletionDialog()
}

// Controller owns the live timer.State. Every mutation, including scheduled
// ticks, goes through the command loop so the state is never shared.
type Controller struct {
	sched   timer.Scheduler
	effects Effects

	// owned by the command loop
	state   timer.State
	pending timer.Ticket

	snapMu sync.RWMutex
	snap   timer.Snapshot

	cmdCh     chan Command
	cmdCtx    context.Context
	cmdCancel context.CancelFunc
	done      chan struct{}
}

// NewController creates a controller for a countdown of durationSec seconds
// and starts its command loop.
func NewController(durationSec int, sched timer.Scheduler, effects Effects) *Controller {
	c := &Controller{
		sched:   sched,
		effects: effects,
		state:   timer.NewState(durationSec),
		cmdCh:   make(chan Command, 64),
		done:    make(chan struct{}),
	}
	c.snap = c.state.Snapshot()
	c.cmdCtx, c.cmdCancel = context.WithCancel(context.Background())
	go c.commandLoop()
	return c
}

// EnqueueCommand posts a command to the command loop without waiting for it
// to run. If the loop stays busy for a short while the command is dropped.
func (c *Controller) EnqueueCommand(cmd Command) {
	select {
	case c.cmdCh <- cmd:
	case <-c.cmdCtx.Done():
	case <-time.After(150 * time.Millisecond):
		log.Printf("EnqueueCommand timeout: dropping %s command", cmd.Type)
	}
}

// Submit posts a command and waits until the command loop has applied it.
func (c *Controller) Submit(cmd Command) error {
	reply := make(chan error, 1)
	cmd.Reply = reply

	select {
	case c.cmdCh <- cmd:
	case <-c.cmdCtx.Done():
		return ErrClosed
	}

	select {
	case err := <-reply:
		return err
	case <-c.done:
		return ErrClosed
	}
}

// Start begins or resumes the countdown.
func (c *Controller) Start() error { return c.Submit(Command{Type: CmdStart}) }

// Stop pauses the countdown.
func (c *Controller) Stop() error { return c.Submit(Command{Type: CmdStop}) }

// Reset stops the countdown and restores the full duration.
func (c *Controller) Reset() error { return c.Submit(Command{Type: CmdReset}) }

// Snapshot returns the state as of the last applied command.
func (c *Controller) Snapshot() timer.Snapshot {
	c.snapMu.RLock()
	defer c.snapMu.RUnlock()
	return c.snap
}

// Shutdown stops the command loop and cancels any pending tick. It blocks
// until the loop has exited.
func (c *Controller) Shutdown() {
	c.cmdCancel()
	<-c.done
}

func (c *Controller) commandLoop() {
	defer close(c.done)
	for {
		select {
		case <-c.cmdCtx.Done():
			c.cancelPending()
			return
		case cmd := <-c.cmdCh:
			err := c.handle(cmd)
			if cmd.Reply != nil {
				select {
				case cmd.Reply <- err:
				default:
				}
			}
		}
	}
}

func (c *Controller) handle(cmd Command) error {
	var next timer.State
	var intents []timer.Intent

	switch cmd.Type {
	case CmdStart:
		next, intents = c.state.Start()
	case CmdStop:
		next, intents = c.state.Stop()
	case CmdReset:
		next, intents = c.state.Reset()
	case cmdTick:
		if cmd.Ticket != c.pending {
			// Cancelled after the scheduler had already handed it over.
			log.Printf("Dropping stale tick %d (pending %d)", cmd.Ticket, c.pending)
			return nil
		}
		c.pending = 0
		next, intents = c.state.Tick()
	default:
		return errors.Errorf("unknown command type %d", cmd.Type)
	}

	c.state = next
	c.snapMu.Lock()
	c.snap = next.Snapshot()
	c.snapMu.Unlock()

	for _, in := range intents {
		c.apply(in)
	}
	return nil
}

func (c *Controller) apply(in timer.Intent) {
	switch in {
	case timer.IntentScheduleTick:
		if c.pending != 0 {
			log.Printf("Tick %d already pending, not scheduling another", c.pending)
			return
		}
		c.pending = c.sched.Schedule(TickInterval, c.onTick)
	case timer.IntentCancelTick:
		if err := c.cancelPending(); err != nil {
			log.Printf("Cancel tick: %v", err)
		}
	case timer.IntentRender:
		c.effects.Render(c.Snapshot())
	case timer.IntentPlaySound:
		c.effects.PlayCompletionSound()
	case timer.IntentShowDialog:
		c.effects.ShowCompletionDialog()
	}
}

func (c *Controller) cancelPending() error {
	if c.pending == 0 {
		return errors.Wrap(timer.ErrUnknownTicket, "no tick pending")
	}
	t := c.pending
	c.pending = 0
	return c.sched.Cancel(t)
}

// onTick runs on the scheduler's goroutine.
func (c *Controller) onTick(t timer.Ticket) {
	if err := c.Submit(Command{Type: cmdTick, Ticket: t}); err != nil && !errors.Is(err, ErrClosed) {
		log.Printf("Tick %d: %v", t, err)
	}
}
