package term

// Escape sequences written by the controller.
var (
	seqAltScreenEnter = []byte("\x1b[?1049h")
	seqAltScreenExit  = []byte("\x1b[?1049l")
	seqClear          = []byte("\x1b[2J")
	seqHome           = []byte("\x1b[H")
	seqCursorHide     = []byte("\x1b[?25l")
	seqCursorShow     = []byte("\x1b[?25h")
	seqReset          = []byte("\x1b[0m")
)
