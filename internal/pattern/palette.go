package pattern

// Palette sizes are part of each pattern's index arithmetic.
const (
	RainbowSize  = 6
	GradientSize = 10
	GlyphSize    = 10
)

// Rainbow is the 6-entry colour ramp shared by most patterns.
var Rainbow = [RainbowSize]Color{
	ColorRed, ColorGreen, ColorYellow, ColorBlue, ColorMagenta, ColorCyan,
}

// Gradient runs warm to cold, two steps per hue.
var Gradient = [GradientSize]Color{
	ColorRed, ColorRed,
	ColorYellow, ColorYellow,
	ColorGreen, ColorGreen,
	ColorCyan, ColorCyan,
	ColorBlue, ColorMagenta,
}

// ModuloGlyphs is indexed by value mod 10 in the modulo field.
var ModuloGlyphs = [GlyphSize]rune{'*', '+', 'o', '#', '@', '&', '%', '$', '!', '~'}

// Ramp orders glyphs from empty to dense.
var Ramp = [GlyphSize]rune{' ', '.', ':', '-', '=', '+', '*', '#', '%', '@'}

// StreamGlyphs is the alphabet of the falling streams.
var StreamGlyphs = []rune("01ｱｲｳｴｵｶｷｸｹｺｻｼｽｾｿﾀﾁﾂﾃﾄ<>*+=:$#@%&")

const (
	glyphBarFull  = '█'
	glyphBarEmpty = '░'
	glyphPoint    = '●'
	glyphDot      = '·'
	glyphBlock    = '█'
	glyphFiller   = '.'
)
