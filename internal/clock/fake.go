package clock

import (
	"sync"
	"time"
)

// Fake is a Clock under test control. Time stands still until Advance
// moves it, delivering any ticks that come due along the way.
type Fake struct {
	mu      sync.Mutex
	now     time.Time
	tickers []*fakeTicker
}

type fakeTicker struct {
	clk      *Fake
	ch       chan time.Time
	interval time.Duration
	next     time.Time
}

// NewFake returns a Fake whose current time is start.
func NewFake(start time.Time) *Fake {
	return &Fake{now: start}
}

// Now returns the fake current time.
func (f *Fake) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

// NewTicker returns a ticker whose first tick comes due one interval
// after the current fake time.
func (f *Fake) NewTicker(d time.Duration) *Ticker {
	if d <= 0 {
		panic("clock: non-positive ticker interval")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	ft := &fakeTicker{
		clk:      f,
		ch:       make(chan time.Time, 1),
		interval: d,
		next:     f.now.Add(d),
	}
	f.tickers = append(f.tickers, ft)
	return &Ticker{C: ft.ch, stopFunc: ft.stop}
}

// Advance moves the fake time forward by d. Ticks that come due inside
// the window are delivered in deadline order, each stamped with its due
// time. Delivery is non-blocking: when a ticker's buffer is full the
// tick is dropped, matching time.Ticker.
func (f *Fake) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	target := f.now.Add(d)
	for {
		var earliest *fakeTicker
		for _, t := range f.tickers {
			if t.next.After(target) {
				continue
			}
			if earliest == nil || t.next.Before(earliest.next) {
				earliest = t
			}
		}
		if earliest == nil {
			break
		}
		f.now = earliest.next
		select {
		case earliest.ch <- f.now:
		default:
		}
		earliest.next = earliest.next.Add(earliest.interval)
	}
	f.now = target
}

// PendingCount returns the number of live tickers.
func (f *Fake) PendingCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.tickers)
}

func (t *fakeTicker) stop() {
	t.clk.mu.Lock()
	defer t.clk.mu.Unlock()
	for i, other := range t.clk.tickers {
		if other == t {
			t.clk.tickers = append(t.clk.tickers[:i], t.clk.tickers[i+1:]...)
			break
		}
	}
}
