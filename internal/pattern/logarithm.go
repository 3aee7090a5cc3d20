package pattern

// logScale is the full-scale value of a bar before it is mapped to the width.
const logScale = 5.0

// Logarithm draws one horizontal bar per row, growing with the row, and
// highlights one row every three frames.
type Logarithm struct{}

func NewLogarithm() *Logarithm         { return &Logarithm{} }
func (*Logarithm) Name() string        { return "logarithm" }
func (*Logarithm) Description() string { return "gradient bars with a sweeping highlighted row" }

// BarLength is the number of filled cells in row.
func (*Logarithm) BarLength(row, width, height int) int {
	if height <= 0 {
		return 0
	}
	v := float64(row) / float64(height) * logScale
	return int(v / logScale * float64(width))
}

// Highlighted is the row drawn bold on blue for frame.
func (*Logarithm) Highlighted(frame, height int) int {
	return mod(frame/3, height)
}

func (l *Logarithm) Render(f *Frame, frame int) {
	hl := l.Highlighted(frame, f.Height)
	for row := 0; row < f.Height; row++ {
		style := Fg(Gradient[row*GradientSize/f.Height])
		if row == hl {
			style = style.Bold().On(ColorBlue)
		}
		bar := l.BarLength(row, f.Width, f.Height)
		for col := 0; col < f.Width; col++ {
			glyph := glyphBarEmpty
			if col < bar {
				glyph = glyphBarFull
			}
			f.Set(col, row, glyph, style)
		}
	}
}
