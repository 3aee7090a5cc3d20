package render

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/san-kum/termsaver/internal/pattern"
)

// DefaultInterval is the 60 Hz cadence.
const DefaultInterval = time.Second / 60

// ErrEmptyViewport is returned when the terminal reports a zero dimension.
var ErrEmptyViewport = errors.New("render: empty viewport")

// Terminal is the display the loop draws on.
type Terminal interface {
	io.Writer
	Size() (width, height int, err error)
	Clear()
	Home()
	Flush() error
	EnterFullscreen()
	ExitFullscreen()
	SetCursorVisible(visible bool)
}

type Loop struct {
	term     Terminal
	pattern  pattern.Pattern
	interval time.Duration
	logger   *log.Logger

	frame         int
	width, height int
	buf           *pattern.Frame
}

// New returns a loop drawing p on t every interval. A non-positive interval
// selects DefaultInterval; a nil logger discards.
func New(t Terminal, p pattern.Pattern, interval time.Duration, logger *log.Logger) *Loop {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Loop{
		term:     t,
		pattern:  p,
		interval: interval,
		logger:   logger,
		buf:      pattern.NewFrame(0, 0),
	}
}

func (l *Loop) Frame() int               { return l.frame }
func (l *Loop) Viewport() (int, int)     { return l.width, l.height }
func (l *Loop) Interval() time.Duration  { return l.interval }
func (l *Loop) Pattern() pattern.Pattern { return l.pattern }

// Tick draws one frame and advances the frame counter.
func (l *Loop) Tick() error {
	w, h, err := l.term.Size()
	if err != nil {
		return err
	}
	if w <= 0 || h <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrEmptyViewport, w, h)
	}
	if w != l.width || h != l.height {
		l.logger.Debug("viewport changed", "width", w, "height", h, "frame", l.frame)
		l.term.Clear()
		l.setViewport(w, h)
	}

	l.term.Home()
	l.pattern.Render(l.buf, l.frame)
	if _, err := l.buf.WriteTo(l.term); err != nil {
		return fmt.Errorf("render: write frame: %w", err)
	}
	if err := l.term.Flush(); err != nil {
		return err
	}

	// Overflow wraps; patterns reduce the index with a non-negative modulo.
	l.frame++
	return nil
}

func (l *Loop) setViewport(w, h int) {
	l.width, l.height = w, h
	l.buf.Resize(w, h)
}

// Run ticks forever at the loop interval. It returns the first tick error, or
// nil once ctx is cancelled.
func (l *Loop) Run(ctx context.Context) error {
	timer := time.NewTimer(l.interval)
	defer timer.Stop()

	for {
		if ctx.Err() != nil {
			return nil
		}
		if err := l.Tick(); err != nil {
			return err
		}
		timer.Reset(l.interval)
		select {
		case <-ctx.Done():
			return nil
		case <-timer.C:
		}
	}
}

// Session runs the loop inside the alternate screen with the cursor hidden.
// The viewport is checked before anything is written, and the cursor and the
// original screen are restored on every return path.
func (l *Loop) Session(ctx context.Context) (err error) {
	w, h, err := l.term.Size()
	if err != nil {
		return err
	}
	if w <= 0 || h <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrEmptyViewport, w, h)
	}

	defer func() {
		l.term.SetCursorVisible(true)
		l.term.ExitFullscreen()
		if ferr := l.term.Flush(); ferr != nil && err == nil {
			err = ferr
		}
	}()

	l.term.EnterFullscreen()
	l.term.SetCursorVisible(false)
	l.setViewport(w, h)
	if err := l.term.Flush(); err != nil {
		return err
	}

	l.logger.Debug("session started", "pattern", l.pattern.Name(), "interval", l.interval, "width", w, "height", h)
	return l.Run(ctx)
}
