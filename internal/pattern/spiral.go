package pattern

import "math"

// Spiral twists log-distance and angle from the centre into rotating arms.
type Spiral struct{}

func NewSpiral() *Spiral            { return &Spiral{} }
func (*Spiral) Name() string        { return "spiral" }
func (*Spiral) Description() string { return "logarithmic spiral arms turning around the centre" }

// Indices returns the ramp and rainbow indices of one cell. The angle terms
// span exactly one palette length, so the seam at ±π does not show.
func (*Spiral) Indices(col, row, frame int, cx, cy float64) (glyph, color int) {
	d, a := polar(col, row, cx, cy)
	ld := math.Log1p(d)
	t := float64(frame)
	glyph = floorMod(ld*4+a*5/math.Pi-t*0.25, GlyphSize)
	color = floorMod(ld*3-a*3/math.Pi+t*0.1, RainbowSize)
	return glyph, color
}

func (s *Spiral) Render(f *Frame, frame int) {
	cx, cy := centre(f)
	for row := 0; row < f.Height; row++ {
		for col := 0; col < f.Width; col++ {
			g, c := s.Indices(col, row, frame, cx, cy)
			style := Fg(Rainbow[c])
			if g >= 7 {
				style = style.Bold()
			}
			f.Set(col, row, Ramp[g], style)
		}
	}
}
