// Package bench times pattern rendering off screen.
package bench

import (
	"fmt"
	"io"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/termsaver/internal/pattern"
)

// Result holds per-frame render and encode durations for one pattern.
type Result struct {
	Pattern string
	Width   int
	Height  int
	Samples []time.Duration
	Bytes   int64
}

// Run renders frames ticks of p at width x height, encoding each frame to
// io.Discard the same way the render loop encodes to the terminal.
func Run(p pattern.Pattern, frames, width, height int) Result {
	f := pattern.NewFrame(width, height)
	res := Result{
		Pattern: p.Name(),
		Width:   width,
		Height:  height,
		Samples: make([]time.Duration, 0, max(frames, 0)),
	}
	for i := 0; i < frames; i++ {
		start := time.Now()
		p.Render(f, i)
		n, _ := f.WriteTo(io.Discard)
		res.Samples = append(res.Samples, time.Since(start))
		res.Bytes += n
	}
	return res
}

func (r Result) Total() time.Duration {
	var total time.Duration
	for _, s := range r.Samples {
		total += s
	}
	return total
}

func (r Result) Mean() time.Duration {
	if len(r.Samples) == 0 {
		return 0
	}
	return r.Total() / time.Duration(len(r.Samples))
}

func (r Result) Max() time.Duration {
	var m time.Duration
	for _, s := range r.Samples {
		m = max(m, s)
	}
	return m
}

// Budget is the share of frames rendered within interval.
func (r Result) Budget(interval time.Duration) float64 {
	if len(r.Samples) == 0 {
		return 0
	}
	within := 0
	for _, s := range r.Samples {
		if s <= interval {
			within++
		}
	}
	return float64(within) / float64(len(r.Samples))
}

// Plot draws the frame times in milliseconds.
func (r Result) Plot() string {
	if len(r.Samples) == 0 {
		return ""
	}
	data := make([]float64, len(r.Samples))
	for i, s := range r.Samples {
		data[i] = float64(s) / float64(time.Millisecond)
	}
	return asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("%s frame time (ms) at %dx%d", r.Pattern, r.Width, r.Height)),
	)
}
