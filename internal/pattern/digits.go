package pattern

import "time"

// BitmapSize is the side of a clock glyph bitmap.
const BitmapSize = 9

// bitmapLit marks a lit cell in a bitmap row.
const bitmapLit = '#'

// Bitmap is one clock glyph: 9 rows of 9 cells.
type Bitmap [BitmapSize]string

// DigitBitmaps holds the glyphs for 0-9.
var DigitBitmaps = [10]Bitmap{
	{
		" ####### ",
		"##     ##",
		"##     ##",
		"##     ##",
		"##     ##",
		"##     ##",
		"##     ##",
		"##     ##",
		" ####### ",
	},
	{
		"   ###   ",
		"  ####   ",
		" ## ##   ",
		"    ##   ",
		"    ##   ",
		"    ##   ",
		"    ##   ",
		"    ##   ",
		" ####### ",
	},
	{
		" ####### ",
		"##     ##",
		"       ##",
		"      ## ",
		"   ###   ",
		"  ##     ",
		" ##      ",
		"##       ",
		"#########",
	},
	{
		" ####### ",
		"##     ##",
		"       ##",
		"       ##",
		"  ###### ",
		"       ##",
		"       ##",
		"##     ##",
		" ####### ",
	},
	{
		"     ### ",
		"    #### ",
		"   ## ## ",
		"  ##  ## ",
		" ##   ## ",
		"#########",
		"      ## ",
		"      ## ",
		"      ## ",
	},
	{
		"#########",
		"##       ",
		"##       ",
		"######## ",
		"       ##",
		"       ##",
		"       ##",
		"##     ##",
		" ####### ",
	},
	{
		" ####### ",
		"##     ##",
		"##       ",
		"##       ",
		"######## ",
		"##     ##",
		"##     ##",
		"##     ##",
		" ####### ",
	},
	{
		"#########",
		"       ##",
		"      ## ",
		"     ##  ",
		"    ##   ",
		"   ##    ",
		"   ##    ",
		"   ##    ",
		"   ##    ",
	},
	{
		" ####### ",
		"##     ##",
		"##     ##",
		"##     ##",
		" ####### ",
		"##     ##",
		"##     ##",
		"##     ##",
		" ####### ",
	},
	{
		" ####### ",
		"##     ##",
		"##     ##",
		"##     ##",
		" ########",
		"       ##",
		"       ##",
		"##     ##",
		" ####### ",
	},
}

// SeparatorBitmap sits between hours, minutes and seconds.
var SeparatorBitmap = Bitmap{
	"         ",
	"         ",
	"   ###   ",
	"   ###   ",
	"         ",
	"   ###   ",
	"   ###   ",
	"         ",
	"         ",
}

const (
	// layoutSlots is HH:MM:SS as bitmaps.
	layoutSlots = 8
	layoutGap   = 1
	// LayoutWidth is the width of the assembled clock in cells.
	LayoutWidth = layoutSlots*BitmapSize + (layoutSlots-1)*layoutGap
	// LayoutHeight is the height of the assembled clock in cells.
	LayoutHeight = BitmapSize
)

// slots returns the eight bitmaps of t in display order.
func slots(t time.Time) [layoutSlots]Bitmap {
	h, m, s := t.Clock()
	return [layoutSlots]Bitmap{
		DigitBitmaps[h/10], DigitBitmaps[h%10],
		SeparatorBitmap,
		DigitBitmaps[m/10], DigitBitmaps[m%10],
		SeparatorBitmap,
		DigitBitmaps[s/10], DigitBitmaps[s%10],
	}
}

// Layout assembles the HH:MM:SS bitmaps of t into LayoutHeight rows of
// LayoutWidth cells, one blank column between glyphs.
func Layout(t time.Time) [LayoutHeight]string {
	var rows [LayoutHeight]string
	bitmaps := slots(t)
	for r := range rows {
		line := make([]byte, 0, LayoutWidth)
		for i, bm := range bitmaps {
			if i > 0 {
				line = append(line, ' ')
			}
			line = append(line, bm[r]...)
		}
		rows[r] = string(line)
	}
	return rows
}
