package pattern

import "math"

// Plasma blends four sinusoids: horizontal, vertical, radial and a product
// term that breaks up the symmetry.
type Plasma struct{}

func NewPlasma() *Plasma            { return &Plasma{} }
func (*Plasma) Name() string        { return "plasma" }
func (*Plasma) Description() string { return "four-term sinusoidal plasma" }

// Level normalises the sum of the four terms into [0, 1].
func Level(sum float64) float64 {
	return math.Max(0, math.Min(1, (sum/4+1)/2))
}

// Value returns the normalised plasma value of one cell.
func (*Plasma) Value(col, row, frame int, cx, cy float64) float64 {
	t := float64(frame) * 0.1
	x, y := float64(col), float64(row)
	sum := math.Sin(x*0.15+t) +
		math.Sin(y*0.3-t*0.7) +
		math.Sin(logDistance(col, row, cx, cy)*4-t) +
		math.Sin(x*y*0.02+t*0.5)
	return Level(sum)
}

func (p *Plasma) Render(f *Frame, frame int) {
	cx, cy := centre(f)
	for row := 0; row < f.Height; row++ {
		for col := 0; col < f.Width; col++ {
			n := p.Value(col, row, frame, cx, cy)
			c := min(RainbowSize-1, int(n*RainbowSize))
			g := min(GlyphSize-1, int(n*GlyphSize))
			f.Set(col, row, Ramp[g], Fg(Rainbow[c]))
		}
	}
}
