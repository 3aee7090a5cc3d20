package term

import (
	"bytes"
	"errors"
	"testing"
)

func fixedSize(w, h int) Sizer {
	return func() (int, int, error) { return w, h, nil }
}

func TestControllerSequences(t *testing.T) {
	tests := []struct {
		name string
		op   func(c *Controller)
		want string
	}{
		{"enter", func(c *Controller) { c.EnterFullscreen() }, "\x1b[?1049h\x1b[2J"},
		{"exit", func(c *Controller) { c.ExitFullscreen() }, "\x1b[0m\x1b[?1049l"},
		{"hide cursor", func(c *Controller) { c.SetCursorVisible(false) }, "\x1b[?25l"},
		{"show cursor", func(c *Controller) { c.SetCursorVisible(true) }, "\x1b[?25h"},
		{"home", func(c *Controller) { c.Home() }, "\x1b[H"},
		{"clear", func(c *Controller) { c.Clear() }, "\x1b[2J"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			c := NewWithSizer(&buf, fixedSize(80, 24))
			tt.op(c)
			if err := c.Flush(); err != nil {
				t.Fatalf("flush failed: %v", err)
			}
			if buf.String() != tt.want {
				t.Errorf("got %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestControllerBuffersUntilFlush(t *testing.T) {
	var buf bytes.Buffer
	c := NewWithSizer(&buf, fixedSize(80, 24))

	c.Home()
	c.Write([]byte("frame"))
	if buf.Len() != 0 {
		t.Fatalf("expected nothing written before flush, got %q", buf.String())
	}
	if err := c.Flush(); err != nil {
		t.Fatalf("flush failed: %v", err)
	}
	if buf.String() != "\x1b[Hframe" {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestControllerSize(t *testing.T) {
	c := NewWithSizer(&bytes.Buffer{}, fixedSize(132, 43))
	w, h, err := c.Size()
	if err != nil {
		t.Fatalf("size failed: %v", err)
	}
	if w != 132 || h != 43 {
		t.Errorf("expected 132x43, got %dx%d", w, h)
	}
}

func TestControllerSizeError(t *testing.T) {
	c := NewWithSizer(&bytes.Buffer{}, func() (int, int, error) {
		return 0, 0, ErrNotTerminal
	})
	_, _, err := c.Size()
	if !errors.Is(err, ErrNotTerminal) {
		t.Errorf("expected wrapped ErrNotTerminal, got %v", err)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestControllerFlushError(t *testing.T) {
	c := NewWithSizer(failingWriter{}, fixedSize(1, 1))
	c.Home()
	if err := c.Flush(); err == nil {
		t.Error("expected flush error")
	}
}
