// Package term controls an ANSI terminal: viewport size, the alternate
// screen, cursor visibility and buffered frame output.
package term

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	xterm "golang.org/x/term"
)

// ErrNotTerminal is returned by Size when the output is not a terminal.
var ErrNotTerminal = errors.New("term: output is not a terminal")

// Sizer reports the viewport in character cells.
type Sizer func() (width, height int, err error)

// Controller writes escape sequences and frames to a buffered output. Nothing
// reaches the device until Flush.
type Controller struct {
	out  *bufio.Writer
	size Sizer
}

// New returns a controller for a terminal file, usually os.Stdout.
func New(f *os.File) *Controller {
	fd := int(f.Fd())
	return NewWithSizer(f, func() (int, int, error) {
		if !xterm.IsTerminal(fd) {
			return 0, 0, ErrNotTerminal
		}
		return xterm.GetSize(fd)
	})
}

// NewWithSizer returns a controller writing to w and querying size.
func NewWithSizer(w io.Writer, size Sizer) *Controller {
	return &Controller{
		out:  bufio.NewWriterSize(w, 64*1024),
		size: size,
	}
}

// Size queries the current viewport. There is no fallback size.
func (c *Controller) Size() (int, int, error) {
	w, h, err := c.size()
	if err != nil {
		return 0, 0, fmt.Errorf("term: query viewport: %w", err)
	}
	return w, h, nil
}

// EnterFullscreen switches to the alternate screen and clears it.
func (c *Controller) EnterFullscreen() {
	c.out.Write(seqAltScreenEnter)
	c.out.Write(seqClear)
}

// ExitFullscreen resets attributes and returns to the original screen.
func (c *Controller) ExitFullscreen() {
	c.out.Write(seqReset)
	c.out.Write(seqAltScreenExit)
}

func (c *Controller) SetCursorVisible(visible bool) {
	if visible {
		c.out.Write(seqCursorShow)
		return
	}
	c.out.Write(seqCursorHide)
}

func (c *Controller) Home()  { c.out.Write(seqHome) }
func (c *Controller) Clear() { c.out.Write(seqClear) }

func (c *Controller) Write(p []byte) (int, error) { return c.out.Write(p) }

func (c *Controller) Flush() error {
	if err := c.out.Flush(); err != nil {
		return fmt.Errorf("term: flush: %w", err)
	}
	return nil
}
