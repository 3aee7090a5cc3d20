package pattern

import (
	"math"
	"time"
)

// Clock shows the wall-clock time as 9x9 digit bitmaps over a radial field.
type Clock struct {
	now func() time.Time
}

// NewClock returns a clock reading the time from now, or time.Now when nil.
func NewClock(now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	return &Clock{now: now}
}

func (*Clock) Name() string        { return "clock" }
func (*Clock) Description() string { return "HH:MM:SS in block digits over a radial field" }

// Origin is the top-left cell of the centred layout. It is negative when the
// viewport is smaller than the layout, which clips the clock symmetrically.
func (*Clock) Origin(width, height int) (int, int) {
	return (width - LayoutWidth) / 2, (height - LayoutHeight) / 2
}

func (c *Clock) Render(f *Frame, frame int) {
	t := c.now()
	sec := t.Second()
	layout := Layout(t)
	x0, y0 := c.Origin(f.Width, f.Height)
	cx, cy := centre(f)

	for row := 0; row < f.Height; row++ {
		ly := row - y0
		for col := 0; col < f.Width; col++ {
			lx := col - x0
			if ly >= 0 && ly < LayoutHeight && lx >= 0 && lx < LayoutWidth {
				if layout[ly][lx] == bitmapLit {
					slot := lx / (BitmapSize + layoutGap)
					f.Set(col, row, glyphBlock, Fg(Rainbow[(sec+slot)%RainbowSize]).Bold())
				} else {
					f.Set(col, row, ' ', Style{})
				}
				continue
			}
			ld := logDistance(col, row, cx, cy)
			g := floorMod(ld*4-float64(frame)*0.25, GlyphSize)
			ci := mod(int(math.Floor(ld*2))+sec, RainbowSize)
			f.Set(col, row, Ramp[g], Fg(Rainbow[ci]).Dim())
		}
	}
}
