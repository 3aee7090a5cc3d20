// Package tui plays patterns in an interactive Bubble Tea program.
//
// Key bindings:
//
//	n, right  next pattern
//	p, left   previous pattern
//	space     pause / resume
//	?         toggle the status bar
//	q, esc    quit
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/termsaver/internal/pattern"
)

type TickMsg time.Time

// Model holds the pattern being played and the animation clock.
type Model struct {
	registry *pattern.Registry
	names    []string
	index    int
	current  pattern.Pattern
	interval time.Duration

	frame         int
	width, height int
	paused        bool
	showStatus    bool
	buf           *pattern.Frame
}

// NewModel starts on the named pattern.
func NewModel(reg *pattern.Registry, name string, interval time.Duration) (Model, error) {
	p, err := reg.Get(name)
	if err != nil {
		return Model{}, err
	}
	names := reg.Names()
	index := 0
	for i, n := range names {
		if n == name {
			index = i
		}
	}
	return Model{
		registry: reg,
		names:    names,
		index:    index,
		current:  p,
		interval: interval,
		buf:      pattern.NewFrame(0, 0),
	}, nil
}

func (m Model) Pattern() pattern.Pattern { return m.current }
func (m Model) Frame() int               { return m.frame }
func (m Model) Paused() bool             { return m.paused }

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return tick(m.interval)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case TickMsg:
		if !m.paused {
			m.frame++
		}
		return m, tick(m.interval)
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "n", "right":
			m.cycle(1)
		case "p", "left":
			m.cycle(-1)
		case " ":
			m.paused = !m.paused
		case "?":
			m.showStatus = !m.showStatus
		}
	}
	return m, nil
}

func (m *Model) cycle(step int) {
	n := len(m.names)
	m.index = ((m.index+step)%n + n) % n
	p, err := m.registry.Get(m.names[m.index])
	if err != nil {
		return
	}
	m.current = p
}

func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	rows := m.height
	if m.showStatus && rows > 1 {
		rows--
	}
	m.buf.Resize(m.width, rows)
	m.current.Render(m.buf, m.frame)

	var sb strings.Builder
	m.buf.WriteTo(&sb)
	if rows < m.height {
		sb.WriteByte('\n')
		sb.WriteString(m.statusBar())
	}
	return sb.String()
}

func (m Model) statusBar() string {
	text := fmt.Sprintf(" %s  frame %d  %.1f fps  [n]ext [p]rev [space] pause [q]uit",
		m.current.Name(), m.frame, float64(time.Second)/float64(m.interval))
	style := statusStyle
	if m.paused {
		text = " paused ·" + text
		style = pausedStyle
	}
	if r := []rune(text); len(r) > m.width {
		text = string(r[:m.width])
	}
	return style.Width(m.width).Render(text)
}

// Run plays the named pattern until the user quits.
func Run(reg *pattern.Registry, name string, interval time.Duration) error {
	m, err := NewModel(reg, name, interval)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
