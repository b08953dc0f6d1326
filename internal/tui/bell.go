package tui

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// Bell stands in for device vibration in a terminal: each pulse of the
// pattern rings the terminal bell.
type Bell struct {
	mu    sync.Mutex
	out   io.Writer
	sleep func(time.Duration)
}

// NewBell rings on out.
func NewBell(out io.Writer) *Bell {
	return &Bell{out: out, sleep: time.Sleep}
}

// Vibrate rings once per "on" entry of pattern, waiting out the "off" entries.
func (bell *Bell) Vibrate(pattern []time.Duration) error {
	bell.mu.Lock()
	defer bell.mu.Unlock()
	for i, step := range pattern {
		if i%2 == 1 {
			bell.sleep(step)
			continue
		}
		if _, err := fmt.Fprint(bell.out, "\a"); err != nil {
			return fmt.Errorf("ring bell: %w", err)
		}
	}
	return nil
}
