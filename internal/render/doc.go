// Package render drives a pattern onto a terminal at a fixed cadence.
//
// A [Loop] owns the frame counter and the cached viewport. Every tick it
// re-queries the viewport, clears the screen when the size changed, homes the
// cursor, renders the pattern into a reused frame buffer and flushes it.
//
// # Termination
//
// The loop has no exit condition of its own: a screensaver runs until it is
// killed. [Loop.Run] only returns on a tick error or when its context is
// cancelled, which the CLI wires to SIGINT and SIGTERM so that
// [Loop.Session] can restore the cursor and the original screen.
package render
