package pattern

// Modulo colours each cell by (col + row + frame) mod a divisor that cycles
// through 3..10.
type Modulo struct{}

func NewModulo() *Modulo              { return &Modulo{} }
func (*Modulo) Name() string          { return "modulo" }
func (*Modulo) Description() string   { return "diagonal bands of (col + row + frame) mod a cycling divisor" }
func (*Modulo) Divisor(frame int) int { return mod(frame, 8) + 3 }

// Value is the field value of one cell.
func (m *Modulo) Value(col, row, frame int) int {
	return mod(col+frame+row, m.Divisor(frame))
}

func (m *Modulo) Render(f *Frame, frame int) {
	for row := 0; row < f.Height; row++ {
		for col := 0; col < f.Width; col++ {
			v := m.Value(col, row, frame)
			f.Set(col, row, ModuloGlyphs[v%GlyphSize], Fg(Rainbow[v%RainbowSize]))
		}
	}
}
