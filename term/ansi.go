package term

// ANSI control sequences for the terminal lifecycle (spec 4.13, 6.).
// Each "enable" sequence has a symmetric "disable" emitted on cleanup,
// and only for the features actually enabled during Init.
const (
	CursorHide = "\x1b[?25l"
	CursorShow = "\x1b[?25h"

	// MouseAllEnable turns on SGR-extended mouse reporting with
	// all-motion tracking; MouseAllDisable reverses both, in the
	// opposite order they were enabled.
	MouseAllEnable  = "\x1b[?1003h\x1b[?1006h"
	MouseAllDisable = "\x1b[?1006l\x1b[?1003l"

	AltScreenEnable  = "\x1b[?1049h"
	AltScreenDisable = "\x1b[?1049l"
)
