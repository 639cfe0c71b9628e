package color

// Named constants carried over from the original renderer's color
// table (see SPEC_FULL.md §12). Used as style defaults.
var (
	White   = New(255, 255, 255)
	Black   = New(0, 0, 0)
	Red     = New(255, 0, 0)
	Green   = New(0, 255, 0)
	Blue    = New(0, 0, 255)
	Yellow  = New(255, 255, 0)
	Cyan    = New(0, 255, 255)
	Magenta = New(255, 0, 255)
	Gray    = New(128, 128, 128)
	DarkGray = New(64, 64, 64)
	LightGray = New(192, 192, 192)
	Orange  = New(255, 165, 0)
	Purple  = New(128, 0, 128)
	Brown   = New(139, 69, 19)
	Pink    = New(255, 192, 203)
	Lime    = New(0, 255, 0)
	Navy    = New(0, 0, 128)
	Teal    = New(0, 128, 128)
	Maroon  = New(128, 0, 0)
	Olive   = New(128, 128, 0)

	// Transparent is the zero-alpha sentinel used by shadow/opacity math.
	Transparent = NewA(0, 0, 0, 0)
)
