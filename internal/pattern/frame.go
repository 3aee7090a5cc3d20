package pattern

import (
	"io"
	"strings"
	"unicode/utf8"
)

var sgrReset = []byte("\x1b[0m")

// Frame is a row-major grid of cells sized to the viewport.
type Frame struct {
	Width, Height int

	cells []Cell
	buf   []byte
}

func NewFrame(width, height int) *Frame {
	f := &Frame{}
	f.Resize(width, height)
	return f
}

// Resize changes the frame dimensions, reusing the cell storage when it is
// large enough. Cell contents are undefined afterwards.
func (f *Frame) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	n := width * height
	if cap(f.cells) < n {
		f.cells = make([]Cell, n)
	}
	f.cells = f.cells[:n]
	f.Width, f.Height = width, height
}

// Set writes a cell; out-of-range coordinates are ignored.
func (f *Frame) Set(col, row int, glyph rune, style Style) {
	if col < 0 || row < 0 || col >= f.Width || row >= f.Height {
		return
	}
	f.cells[row*f.Width+col] = Cell{Glyph: glyph, Style: style}
}

// At returns the cell at (col, row), or the zero cell when out of range.
func (f *Frame) At(col, row int) Cell {
	if col < 0 || row < 0 || col >= f.Width || row >= f.Height {
		return Cell{}
	}
	return f.cells[row*f.Width+col]
}

// Row returns the cells of one row. The slice aliases the frame.
func (f *Frame) Row(row int) []Cell {
	if row < 0 || row >= f.Height {
		return nil
	}
	return f.cells[row*f.Width : (row+1)*f.Width]
}

// Len is the number of cells in the frame.
func (f *Frame) Len() int { return len(f.cells) }

// AppendANSI appends the frame as an SGR stream: Height rows of Width glyphs,
// a style sequence only where the style changes, rows joined by a reset and a
// newline, and a trailing reset without a newline after the last row.
func (f *Frame) AppendANSI(b []byte) []byte {
	for row := 0; row < f.Height; row++ {
		var last Style
		styled := false
		for _, c := range f.Row(row) {
			if !styled || c.Style != last {
				b = c.Style.appendSGR(b)
				last, styled = c.Style, true
			}
			b = utf8.AppendRune(b, c.glyph())
		}
		b = append(b, sgrReset...)
		if row < f.Height-1 {
			b = append(b, '\n')
		}
	}
	return b
}

// WriteTo encodes the frame into w in a single write.
func (f *Frame) WriteTo(w io.Writer) (int64, error) {
	f.buf = f.AppendANSI(f.buf[:0])
	n, err := w.Write(f.buf)
	return int64(n), err
}

// String returns the glyphs only, one line per row.
func (f *Frame) String() string {
	var sb strings.Builder
	sb.Grow(f.Len() + f.Height)
	for row := 0; row < f.Height; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range f.Row(row) {
			sb.WriteRune(c.glyph())
		}
	}
	return sb.String()
}
