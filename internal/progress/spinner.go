// Package progress renders a terminal status indicator while a batch runs.
package progress

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/goodnatureofminers/coinbase-pool-attributor/internal/clock"
	"golang.org/x/term"
)

const defaultInterval = 100 * time.Millisecond

var frames = [...]string{"|", "/", "-", "\\"}

// Interactive reports whether w is a terminal worth animating.
func Interactive(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Spinner animates a single status line. It carries no data: Start and Stop are the only signals.
type Spinner struct {
	out      io.Writer
	message  string
	interval time.Duration
	enabled  bool

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewSpinner returns a spinner writing to out. A disabled spinner never writes.
func NewSpinner(out io.Writer, message string, enabled bool) *Spinner {
	return &Spinner{
		out:      out,
		message:  message,
		interval: defaultInterval,
		enabled:  enabled,
	}
}

// Start begins animating until Stop is called or ctx is done.
func (s *Spinner) Start(ctx context.Context) {
	if !s.enabled {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done != nil {
		return
	}

	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})
	go func(done chan struct{}) {
		defer close(done)
		clock.Every(ctx, s.interval, func(tick int) {
			_, _ = fmt.Fprintf(s.out, "\r%s %s", s.message, frames[tick%len(frames)])
		})
	}(s.done)
}

// Stop ends the animation and waits for the final line to be written. It is safe to call repeatedly.
func (s *Spinner) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done == nil {
		return
	}

	s.cancel()
	<-s.done
	s.done = nil
	_, _ = fmt.Fprintf(s.out, "\r%s Done!      \n", s.message)
}
