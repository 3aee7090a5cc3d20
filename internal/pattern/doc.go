// Package pattern provides the per-cell pattern generators drawn by termsaver.
//
// Every pattern maps a frame index and a viewport to a full grid of styled
// glyphs:
//
//   - [Pattern]: the single "render one frame" capability
//   - [Frame]: row-major cell buffer that encodes itself as an ANSI SGR stream
//   - [Registry]: name lookup over the built-in patterns
//
// # Palettes
//
// Colour and glyph tables are fixed arrays indexed with a non-negative modulo,
// so the same (frame, width, height) always yields the same image:
//
//	Rainbow       6 colours
//	Gradient     10 colours
//	ModuloGlyphs 10 glyphs
//	Ramp         10 glyphs, dark to bright
//	DigitBitmaps 10 x 9 rows of 9 cells
//
// # Example
//
//	p, _ := pattern.NewRegistry().Get("plasma")
//	f := pattern.NewFrame(80, 24)
//	p.Render(f, 0)
//	f.WriteTo(os.Stdout)
package pattern
