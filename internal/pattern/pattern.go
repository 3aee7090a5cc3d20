package pattern

import "math"

// Pattern renders one full frame for a frame index. Render must fill every
// cell of f and depend only on the frame index and f's dimensions.
type Pattern interface {
	Name() string
	Description() string
	Render(f *Frame, frame int)
}

// mod is the non-negative remainder of a/n. A wrapped frame counter can be
// negative, and palette indices must not be.
func mod(a, n int) int {
	if n <= 0 {
		return 0
	}
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}

func floorMod(x float64, n int) int {
	return mod(int(math.Floor(x)), n)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// polar returns the distance and angle of (col, row) from (cx, cy). Row
// offsets are doubled since a cell is roughly twice as tall as it is wide.
func polar(col, row int, cx, cy float64) (dist, angle float64) {
	dx := float64(col) - cx
	dy := (float64(row) - cy) * 2
	return math.Hypot(dx, dy), math.Atan2(dy, dx)
}

// centre returns the grid centre in cell coordinates.
func centre(f *Frame) (float64, float64) {
	return float64(f.Width / 2), float64(f.Height / 2)
}

// logDistance is the natural log of the aspect-corrected distance from the
// centre, shifted so the centre cell maps to 0.
func logDistance(col, row int, cx, cy float64) float64 {
	d, _ := polar(col, row, cx, cy)
	return math.Log1p(d)
}
