package pattern

import "math"

const (
	waveFreq  = 6.0
	waveSpeed = 0.2
)

// Wave superimposes ripples from two point sources on the horizontal axis.
type Wave struct{}

func NewWave() *Wave              { return &Wave{} }
func (*Wave) Name() string        { return "wave" }
func (*Wave) Description() string { return "interference of two damped ripples" }

// Sources returns the x positions of both sources and their shared row.
func (*Wave) Sources(width, height int) (x1, x2, y float64) {
	return float64(width / 3), float64(2 * width / 3), float64(height / 2)
}

// ripple is a sinusoid of log distance, decaying exponentially with distance.
func ripple(d, t, decay float64) float64 {
	return math.Sin(math.Log1p(d)*waveFreq-t) * math.Exp(-d/decay)
}

// Intensity maps a summed amplitude in [-2, 2] to a ramp index.
func Intensity(sum float64) int {
	return clamp(int(math.Floor((sum+2)/4*9)), 0, GlyphSize-1)
}

func (w *Wave) Render(f *Frame, frame int) {
	x1, x2, y := w.Sources(f.Width, f.Height)
	decay := math.Max(float64(f.Width), 1) / 2
	t := float64(frame) * waveSpeed
	for row := 0; row < f.Height; row++ {
		for col := 0; col < f.Width; col++ {
			d1, _ := polar(col, row, x1, y)
			d2, _ := polar(col, row, x2, y)
			i := Intensity(ripple(d1, t, decay) + ripple(d2, t, decay))
			f.Set(col, row, Ramp[i], Fg(Gradient[i]))
		}
	}
}
