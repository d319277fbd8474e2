package timer

import (
	"sync"
	"time"

	"github.com/pkg/errors"
)

// ErrUnknownTicket is returned when cancelling a ticket that is not pending.
var ErrUnknownTicket = errors.New("timer: unknown ticket")

// Ticket identifies one scheduled callback. The zero Ticket is never issued.
type Ticket uint64

// Scheduler runs one-shot callbacks after a delay. The callback receives the
// ticket it was scheduled under so late deliveries can be told apart.
type Scheduler interface {
	Schedule(d time.Duration, fn func(Ticket)) Ticket
	Cancel(Ticket) error
}

// ClockScheduler is the Scheduler backed by time.AfterFunc.
type ClockScheduler struct {
	mu      sync.Mutex
	next    Ticket
	pending map[Ticket]*time.Timer
}

// NewClockScheduler creates an empty ClockScheduler.
func NewClockScheduler() *ClockScheduler {
	return &ClockScheduler{pending: make(map[Ticket]*time.Timer)}
}

// Schedule runs fn once after d on its own goroutine.
func (c *ClockScheduler) Schedule(d time.Duration, fn func(Ticket)) Ticket {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.next++
	t := c.next
	c.pending[t] = time.AfterFunc(d, func() {
		c.mu.Lock()
		_, ok := c.pending[t]
		delete(c.pending, t)
		c.mu.Unlock()
		if ok {
			fn(t)
		}
	})
	return t
}

// Cancel stops a pending callback. Once Cancel returns nil the callback
// will not run.
func (c *ClockScheduler) Cancel(t Ticket) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	tm, ok := c.pending[t]
	if !ok {
		return errors.Wrapf(ErrUnknownTicket, "cancel ticket %d", t)
	}
	tm.Stop()
	delete(c.pending, t)
	return nil
}

// Pending returns the number of callbacks that have not fired yet.
func (c *ClockScheduler) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending)
}
