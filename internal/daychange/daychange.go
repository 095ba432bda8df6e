// Package daychange announces date rollovers to open conversations.
//
// A Scheduler owns a ticker with a roughly 24 hour period. The owning
// event loop selects on Ticks and calls Fire when a tick arrives; the
// scheduler itself runs no goroutine. Arming and disarming follow a
// boolean option, so both are idempotent.
package daychange

import (
	"time"

	"github.com/ncruces/go-strftime"

	"github.com/parleychat/parley/internal/clock"
)

const interval = 24 * time.Hour

// Target receives day-change notices. Conversation buffers satisfy it.
type Target interface {
	Notice(text string)
}

// Scheduler arms and fires the day-change announcement.
//
// Scheduler is not safe for concurrent use; it belongs to the
// event-loop goroutine.
type Scheduler struct {
	clk     clock.Clock
	targets func() []Target
	format  func() string
	ticker  *clock.Ticker
}

// New creates a disarmed scheduler. targets yields the fan-out set at
// fire time; format yields the strftime date format at fire time, so
// option changes take effect without rearming.
func New(clk clock.Clock, targets func() []Target, format func() string) *Scheduler {
	return &Scheduler{
		clk:     clk,
		targets: targets,
		format:  format,
	}
}

// Arm starts the ticker. Arming an armed scheduler does nothing; the
// running ticker keeps its phase.
func (s *Scheduler) Arm() {
	if s.ticker != nil {
		return
	}
	s.ticker = s.clk.NewTicker(interval)
}

// Disarm stops the ticker. Disarming a disarmed scheduler does nothing.
func (s *Scheduler) Disarm() {
	if s.ticker == nil {
		return
	}
	s.ticker.Stop()
	s.ticker = nil
}

// Armed reports whether the ticker is running.
func (s *Scheduler) Armed() bool {
	return s.ticker != nil
}

// Ticks returns the tick channel, or nil when disarmed. A select case
// on a nil channel never fires, so the event loop can select on Ticks
// unconditionally.
func (s *Scheduler) Ticks() <-chan time.Time {
	if s.ticker == nil {
		return nil
	}
	return s.ticker.C
}

// Fire sends the day-change notice for now to every target.
func (s *Scheduler) Fire(now time.Time) {
	text := "Day changed to " + strftime.Format(s.format(), now)
	for _, t := range s.targets() {
		t.Notice(text)
	}
}
