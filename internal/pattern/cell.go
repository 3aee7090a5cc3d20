package pattern

import "strconv"

// Color is one of the eight base ANSI colours, or the terminal default.
type Color uint8

const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
)

// Attr is a set of SGR emphasis flags.
type Attr uint8

const (
	AttrBold Attr = 1 << iota
	AttrDim
	AttrReverse
)

// Style is the colour and emphasis of a single cell.
type Style struct {
	Fg    Color
	Bg    Color
	Attrs Attr
}

// Cell is one glyph of a frame.
type Cell struct {
	Glyph rune
	Style Style
}

// Fg returns a style with only a foreground colour set.
func Fg(c Color) Style { return Style{Fg: c} }

func (s Style) Bold() Style       { s.Attrs |= AttrBold; return s }
func (s Style) Dim() Style        { s.Attrs |= AttrDim; return s }
func (s Style) Reverse() Style    { s.Attrs |= AttrReverse; return s }
func (s Style) On(bg Color) Style { s.Bg = bg; return s }
func (s Style) Has(a Attr) bool   { return s.Attrs&a != 0 }
func (s Style) String() string    { return string(s.appendSGR(nil)) }

func (c Color) fgCode() int { return 29 + int(c) }
func (c Color) bgCode() int { return 39 + int(c) }

// glyph returns the printable rune of c; an unset cell prints as a space.
func (c Cell) glyph() rune {
	if c.Glyph == 0 {
		return ' '
	}
	return c.Glyph
}

// appendSGR appends the select-graphic-rendition sequence for s. The sequence
// always starts with 0 so attributes from the previous cell never leak.
func (s Style) appendSGR(b []byte) []byte {
	b = append(b, "\x1b[0"...)
	if s.Has(AttrBold) {
		b = append(b, ";1"...)
	}
	if s.Has(AttrDim) {
		b = append(b, ";2"...)
	}
	if s.Has(AttrReverse) {
		b = append(b, ";7"...)
	}
	if s.Bg != ColorDefault {
		b = append(b, ';')
		b = strconv.AppendInt(b, int64(s.Bg.bgCode()), 10)
	}
	if s.Fg != ColorDefault {
		b = append(b, ';')
		b = strconv.AppendInt(b, int64(s.Fg.fgCode()), 10)
	}
	return append(b, 'm')
}
