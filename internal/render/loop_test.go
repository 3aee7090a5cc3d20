package render_test

import (
	"bytes"
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/termsaver/internal/pattern"
	"github.com/san-kum/termsaver/internal/render"
)

var sgr = regexp.MustCompile("\x1b\\[[0-9;?]*[a-zA-Z]")

type fakeTerminal struct {
	bytes.Buffer
	sizes   [][2]int
	sizeErr error
	queries int

	clears     int
	ops        []string
	fullscreen bool
	cursor     bool
}

func newFakeTerminal(sizes ...[2]int) *fakeTerminal {
	return &fakeTerminal{sizes: sizes, cursor: true}
}

func (f *fakeTerminal) Size() (int, int, error) {
	if f.sizeErr != nil {
		return 0, 0, f.sizeErr
	}
	i := min(f.queries, len(f.sizes)-1)
	f.queries++
	return f.sizes[i][0], f.sizes[i][1], nil
}

func (f *fakeTerminal) Clear()       { f.clears++; f.ops = append(f.ops, "clear") }
func (f *fakeTerminal) Home()        { f.ops = append(f.ops, "home") }
func (f *fakeTerminal) Flush() error { f.ops = append(f.ops, "flush"); return nil }

func (f *fakeTerminal) EnterFullscreen() { f.fullscreen = true; f.ops = append(f.ops, "enter") }
func (f *fakeTerminal) ExitFullscreen()  { f.fullscreen = false; f.ops = append(f.ops, "exit") }

func (f *fakeTerminal) SetCursorVisible(v bool) {
	f.cursor = v
	if v {
		f.ops = append(f.ops, "show")
	} else {
		f.ops = append(f.ops, "hide")
	}
}

// cancelAfter cancels a context once it has rendered n frames.
type cancelAfter struct {
	pattern.Pattern
	n       int
	renders int
	cancel  context.CancelFunc
}

func (c *cancelAfter) Render(f *pattern.Frame, frame int) {
	c.Pattern.Render(f, frame)
	c.renders++
	if c.renders >= c.n {
		c.cancel()
	}
}

func visibleLines(out string) []string {
	return strings.Split(sgr.ReplaceAllString(out, ""), "\n")
}

var _ = Describe("Loop", func() {
	var (
		fake *fakeTerminal
		loop *render.Loop
	)

	Describe("Tick", func() {
		BeforeEach(func() {
			fake = newFakeTerminal([2]int{20, 5})
			loop = render.New(fake, pattern.NewModulo(), time.Millisecond, nil)
		})

		It("draws exactly one viewport-sized frame", func() {
			Expect(loop.Tick()).To(Succeed())

			lines := visibleLines(fake.String())
			Expect(lines).To(HaveLen(5))
			for _, line := range lines {
				Expect([]rune(line)).To(HaveLen(20))
			}
			w, h := loop.Viewport()
			Expect([]int{w, h}).To(Equal([]int{20, 5}))
		})

		It("homes the cursor before drawing and flushes after", func() {
			Expect(loop.Tick()).To(Succeed())
			Expect(fake.ops).To(Equal([]string{"clear", "home", "flush"}))
		})

		It("advances the frame counter once per tick", func() {
			for i := 0; i < 3; i++ {
				Expect(loop.Tick()).To(Succeed())
			}
			Expect(loop.Frame()).To(Equal(3))
		})

		It("does not clear again while the viewport is unchanged", func() {
			Expect(loop.Tick()).To(Succeed())
			clears := fake.clears
			Expect(loop.Tick()).To(Succeed())
			Expect(loop.Tick()).To(Succeed())
			Expect(fake.clears).To(Equal(clears))
		})

		It("clears exactly once when the viewport changes", func() {
			fake.sizes = [][2]int{{20, 5}, {30, 8}, {30, 8}}
			Expect(loop.Tick()).To(Succeed())
			before := fake.clears
			fake.ops = nil

			Expect(loop.Tick()).To(Succeed())
			Expect(fake.clears).To(Equal(before + 1))
			Expect(fake.ops[0]).To(Equal("clear"))

			Expect(loop.Tick()).To(Succeed())
			Expect(fake.clears).To(Equal(before + 1))
		})

		It("redraws at the new size after a resize", func() {
			fake.sizes = [][2]int{{20, 5}, {7, 3}}
			Expect(loop.Tick()).To(Succeed())
			fake.Reset()

			Expect(loop.Tick()).To(Succeed())
			lines := visibleLines(fake.String())
			Expect(lines).To(HaveLen(3))
			Expect([]rune(lines[0])).To(HaveLen(7))
		})

		It("fails on a viewport query error without drawing", func() {
			queryErr := errors.New("ioctl failed")
			fake.sizeErr = queryErr

			Expect(loop.Tick()).To(MatchError(queryErr))
			Expect(fake.Len()).To(BeZero())
			Expect(loop.Frame()).To(BeZero())
		})

		It("rejects an empty viewport", func() {
			fake.sizes = [][2]int{{0, 24}}
			Expect(errors.Is(loop.Tick(), render.ErrEmptyViewport)).To(BeTrue())
		})
	})

	Describe("Run", func() {
		It("keeps ticking until the context is cancelled", func() {
			fake = newFakeTerminal([2]int{10, 4})
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			p := &cancelAfter{Pattern: pattern.NewPlasma(), n: 5, cancel: cancel}
			loop = render.New(fake, p, time.Millisecond, nil)

			Expect(loop.Run(ctx)).To(Succeed())
			Expect(p.renders).To(Equal(5))
			Expect(loop.Frame()).To(Equal(5))
		})

		It("returns the first tick error", func() {
			fake = newFakeTerminal([2]int{10, 4}, [2]int{0, 0})
			loop = render.New(fake, pattern.NewWave(), time.Millisecond, nil)

			err := loop.Run(context.Background())
			Expect(errors.Is(err, render.ErrEmptyViewport)).To(BeTrue())
			Expect(loop.Frame()).To(Equal(1))
		})

		It("uses the 60 Hz cadence by default", func() {
			loop = render.New(newFakeTerminal([2]int{1, 1}), pattern.NewWave(), 0, nil)
			Expect(loop.Interval()).To(Equal(time.Second / 60))
		})
	})

	Describe("Session", func() {
		It("writes nothing when the viewport cannot be read", func() {
			fake = newFakeTerminal()
			fake.sizeErr = errors.New("not a tty")
			loop = render.New(fake, pattern.NewMatrix(), time.Millisecond, nil)

			Expect(loop.Session(context.Background())).NotTo(Succeed())
			Expect(fake.ops).To(BeEmpty())
			Expect(fake.Len()).To(BeZero())
		})

		It("enters fullscreen, hides the cursor and restores both on cancel", func() {
			fake = newFakeTerminal([2]int{12, 6})
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			loop = render.New(fake, &cancelAfter{Pattern: pattern.NewSpiral(), n: 2, cancel: cancel}, time.Millisecond, nil)

			Expect(loop.Session(ctx)).To(Succeed())

			Expect(fake.ops[:2]).To(Equal([]string{"enter", "hide"}))
			n := len(fake.ops)
			Expect(fake.ops[n-3:]).To(Equal([]string{"show", "exit", "flush"}))
			Expect(fake.fullscreen).To(BeFalse())
			Expect(fake.cursor).To(BeTrue())
		})

		It("does not clear twice at startup", func() {
			fake = newFakeTerminal([2]int{12, 6})
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			loop = render.New(fake, &cancelAfter{Pattern: pattern.NewFibonacci(), n: 3, cancel: cancel}, time.Millisecond, nil)

			Expect(loop.Session(ctx)).To(Succeed())
			Expect(fake.clears).To(BeZero())
		})

		It("restores the terminal when a tick fails", func() {
			fake = newFakeTerminal([2]int{12, 6}, [2]int{12, 6}, [2]int{0, 0})
			loop = render.New(fake, pattern.NewLogarithm(), time.Millisecond, nil)

			err := loop.Session(context.Background())
			Expect(errors.Is(err, render.ErrEmptyViewport)).To(BeTrue())
			Expect(fake.fullscreen).To(BeFalse())
			Expect(fake.cursor).To(BeTrue())
		})
	})
})
