package cell

// decimalTable[i] is the decimal ASCII representation of byte value i,
// precomputed once so each color emission costs three table lookups
// instead of three strconv.Itoa calls (spec 4.1).
var decimalTable [256]string

func init() {
	for i := 0; i < 256; i++ {
		decimalTable[i] = itoaSmall(i)
	}
}

func itoaSmall(v int) string {
	if v == 0 {
		return "0"
	}
	var buf [3]byte
	n := 0
	for v > 0 {
		buf[n] = byte('0' + v%10)
		v /= 10
		n++
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = buf[n-1-i]
	}
	return string(out)
}

const (
	escPrefix  = "\x1b["
	textColor  = "38"
	backColor  = "48"
	useRGB     = "2"
	sep        = ";"
	mSuffix    = "m"
	resetSGR   = "\x1b[0m"
)

// writeColorHead appends the 5-token overhead ("ESC[", "38" or "48",
// ";", "2", ";") for text (isText=true) or background color.
func writeColorHead(dst *SuperString, isText bool) {
	dst.AddString(escPrefix)
	if isText {
		dst.AddString(textColor)
	} else {
		dst.AddString(backColor)
	}
	dst.AddString(sep)
	dst.AddString(useRGB)
	dst.AddString(sep)
}

// writeColorValue appends "R;G;B" using the precomputed decimal table.
func writeColorValue(dst *SuperString, r, g, b uint8) {
	dst.AddString(decimalTable[r])
	dst.AddString(sep)
	dst.AddString(decimalTable[g])
	dst.AddString(sep)
	dst.AddString(decimalTable[b])
}

// RenderPlain emits foreground + background + payload + reset into
// dst, unconditionally (spec 4.1 "plain mode").
func (c Cell) RenderPlain(dst *SuperString) {
	writeColorHead(dst, true)
	writeColorValue(dst, c.Foreground.R, c.Foreground.G, c.Foreground.B)
	dst.AddString(mSuffix)

	writeColorHead(dst, false)
	writeColorValue(dst, c.Background.R, c.Background.G, c.Background.B)
	dst.AddString(mSuffix)

	for _, b := range c.Payload() {
		dst.AddByte(b)
	}
	dst.AddString(resetSGR)
}

// RenderEncoded emits the color block only when Flags has FlagStart,
// the payload unconditionally, and the reset only when Flags has
// FlagEnd (spec 4.1 "encoded mode").
func (c Cell) RenderEncoded(dst *SuperString) {
	if c.Flags&FlagStart != 0 {
		writeColorHead(dst, true)
		writeColorValue(dst, c.Foreground.R, c.Foreground.G, c.Foreground.B)
		dst.AddString(mSuffix)

		writeColorHead(dst, false)
		writeColorValue(dst, c.Background.R, c.Background.G, c.Background.B)
		dst.AddString(mSuffix)
	}

	for _, b := range c.Payload() {
		dst.AddByte(b)
	}

	if c.Flags&FlagEnd != 0 {
		dst.AddString(resetSGR)
	}
}
