package pattern

// Fibonacci plots the Fibonacci recurrence reduced modulo the height, one
// point per column, with a cursor column sweeping across.
type Fibonacci struct{}

func NewFibonacci() *Fibonacci         { return &Fibonacci{} }
func (*Fibonacci) Name() string        { return "fibonacci" }
func (*Fibonacci) Description() string { return "fibonacci numbers mod the height, one point per column" }

// Sequence returns n terms of seq[0]=0, seq[1]=1, seq[i]=(seq[i-1]+seq[i-2]) mod modulus.
func Sequence(n, modulus int) []int {
	if n <= 0 {
		return nil
	}
	seq := make([]int, n)
	if n > 1 {
		seq[1] = 1
	}
	for i := 2; i < n; i++ {
		seq[i] = mod(seq[i-1]+seq[i-2], modulus)
	}
	return seq
}

func (*Fibonacci) Render(f *Frame, frame int) {
	if f.Width == 0 || f.Height == 0 {
		return
	}
	seq := Sequence(f.Width, f.Height)
	active := mod(frame, f.Width)
	for col := 0; col < f.Width; col++ {
		lit := mod(seq[col], f.Height)
		for row := 0; row < f.Height; row++ {
			switch {
			case row == lit && col == active:
				f.Set(col, row, glyphPoint, Fg(ColorWhite).Bold().Reverse())
			case row == lit:
				f.Set(col, row, glyphPoint, Fg(Rainbow[col%RainbowSize]).Bold())
			case col == active:
				f.Set(col, row, glyphDot, Fg(ColorWhite))
			default:
				f.Set(col, row, glyphDot, Fg(ColorBlue).Dim())
			}
		}
	}
}
