package pattern

import (
	"bytes"
	"testing"
)

func TestStyleSGR(t *testing.T) {
	tests := []struct {
		name  string
		style Style
		want  string
	}{
		{"default", Style{}, "\x1b[0m"},
		{"red", Fg(ColorRed), "\x1b[0;31m"},
		{"black", Fg(ColorBlack), "\x1b[0;30m"},
		{"white bold", Fg(ColorWhite).Bold(), "\x1b[0;1;37m"},
		{"highlight", Fg(ColorGreen).Bold().On(ColorBlue), "\x1b[0;1;44;32m"},
		{"dim reverse", Fg(ColorCyan).Dim().Reverse(), "\x1b[0;2;7;36m"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.style.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFrameEncoding(t *testing.T) {
	f := NewFrame(3, 2)
	red, blue := Fg(ColorRed), Fg(ColorBlue)
	f.Set(0, 0, 'a', red)
	f.Set(1, 0, 'b', red)
	f.Set(2, 0, 'c', blue)
	f.Set(0, 1, 'd', blue)
	f.Set(1, 1, 'e', blue)

	var buf bytes.Buffer
	n, err := f.WriteTo(&buf)
	if err != nil {
		t.Fatalf("write failed: %v", err)
	}

	want := "\x1b[0;31mab\x1b[0;34mc\x1b[0m\n" +
		"\x1b[0;34mde\x1b[0m \x1b[0m"
	if buf.String() != want {
		t.Errorf("got %q\nwant %q", buf.String(), want)
	}
	if int(n) != buf.Len() {
		t.Errorf("reported %d bytes, wrote %d", n, buf.Len())
	}
}

func TestFrameBounds(t *testing.T) {
	f := NewFrame(2, 2)
	f.Set(-1, 0, 'x', Style{})
	f.Set(2, 0, 'x', Style{})
	f.Set(0, 5, 'x', Style{})
	if f.String() != "  \n  " {
		t.Errorf("out-of-range writes leaked: %q", f.String())
	}
	if c := f.At(9, 9); c != (Cell{}) {
		t.Errorf("expected zero cell, got %+v", c)
	}
	if f.Row(3) != nil {
		t.Error("expected nil row")
	}
}

func TestFrameResize(t *testing.T) {
	f := NewFrame(10, 10)
	f.Resize(3, 2)
	if f.Width != 3 || f.Height != 2 || f.Len() != 6 {
		t.Fatalf("unexpected size %dx%d (%d cells)", f.Width, f.Height, f.Len())
	}
	f.Resize(-1, 4)
	if f.Width != 0 || f.Len() != 0 {
		t.Errorf("negative width not clamped: %d", f.Width)
	}
}
