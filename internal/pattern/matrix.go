package pattern

// streamTrail is the number of lit rows behind a stream head.
const streamTrail = 12

// Matrix drops one glyph stream per column, each at a speed and phase derived
// from the column index.
type Matrix struct{}

func NewMatrix() *Matrix            { return &Matrix{} }
func (*Matrix) Name() string        { return "matrix" }
func (*Matrix) Description() string { return "falling glyph streams" }

// columnHash scrambles a column index into a stable non-negative value.
func columnHash(col int) int {
	h := uint32(col)*2654435761 + 0x9e3779b9
	h ^= h >> 16
	h *= 0x85ebca6b
	h ^= h >> 13
	return int(h & 0x7fffffff)
}

// Speed is the number of rows col's stream advances every two frames.
func (*Matrix) Speed(col int) int { return 1 + columnHash(col)%3 }

// Head returns the head row of col's stream. Values past the last row mean the
// tail is still draining off the bottom.
func (m *Matrix) Head(col, frame, height int) int {
	cycle := height + streamTrail
	offset := (columnHash(col) / 3) % cycle
	return mod(frame*m.Speed(col)/2+offset, cycle)
}

func streamStyle(dist int) Style {
	switch {
	case dist == 0:
		return Fg(ColorWhite).Bold()
	case dist < streamTrail/3:
		return Fg(ColorGreen).Bold()
	case dist < streamTrail-2:
		return Fg(ColorGreen)
	default:
		return Fg(ColorGreen).Dim()
	}
}

func (m *Matrix) Render(f *Frame, frame int) {
	for col := 0; col < f.Width; col++ {
		head := m.Head(col, frame, f.Height)
		for row := 0; row < f.Height; row++ {
			dist := head - row
			if dist < 0 || dist >= streamTrail {
				f.Set(col, row, glyphFiller, Fg(ColorGreen).Dim())
				continue
			}
			g := StreamGlyphs[mod(columnHash(col*31+row)+frame/4, len(StreamGlyphs))]
			f.Set(col, row, g, streamStyle(dist))
		}
	}
}
