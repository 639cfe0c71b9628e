// Package cell implements the allocation-free hot-path primitives:
// compact strings, the append-only super string, the grow-only vector
// of compact strings with reservable write windows, and the UTF cell
// itself.
package cell

// CompactString is a length-tagged view as described in spec 3.:
// length 0 is empty, length 1 is an inline byte, length >= 2 is a
// reference to an existing Go string (itself already a non-owning
// pointer+length pair, so no copy is made).
type CompactString struct {
	length uint8
	inline byte
	ext    string
}

// Empty is the zero-length compact string.
var Empty = CompactString{}

// FromByte builds a length-1 compact string.
func FromByte(b byte) CompactString {
	return CompactString{length: 1, inline: b}
}

// FromString builds a compact string viewing s without copying.
func FromString(s string) CompactString {
	switch len(s) {
	case 0:
		return Empty
	case 1:
		return FromByte(s[0])
	default:
		return CompactString{length: uint8(min(len(s), 255)), ext: s}
	}
}

// Len returns the byte length of the view.
func (c CompactString) Len() int {
	if c.length <= 1 {
		return int(c.length)
	}
	return len(c.ext)
}

// AppendTo appends the view's bytes to dst and returns the grown slice.
func (c CompactString) AppendTo(dst []byte) []byte {
	switch {
	case c.length == 0:
		return dst
	case c.length == 1:
		return append(dst, c.inline)
	default:
		return append(dst, c.ext...)
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// SuperString is a fixed-capacity, append-only sequence of compact
// strings plus a running liquefied byte count (spec 3.). Capacity is
// advisory here (Go slices grow), but Cap records the compile-time
// bound the caller reserved so that overflow can be treated as a bug
// rather than silently tolerated.
type SuperString struct {
	parts   []CompactString
	byteLen int
	cap     int
}

// NewSuperString allocates a super string sized to hold at most
// capacity compact-string parts — the worst case for one cell's
// worth of ANSI expansion (spec 4.1: two color overheads, two color
// triplets, two 'm' terminators, a <=4 byte payload, and a reset).
func NewSuperString(capacity int) *SuperString {
	return &SuperString{parts: make([]CompactString, 0, capacity), cap: capacity}
}

// NewSuperStringOverWindow builds a SuperString whose backing array is
// a window already reserved from a FastVector (spec 4.7 step 4:
// "reserve a fixed-size super-string window into the scratch vector,
// emit the cell in encoded mode, commit the actually-used size").
// Writes land directly in the vector's backing array with no copy;
// the caller commits with vector.ReleaseWindow(ss.PartCount()).
func NewSuperStringOverWindow(window []CompactString) *SuperString {
	return &SuperString{parts: window[:0], cap: len(window)}
}

// Add appends one compact string.
func (s *SuperString) Add(cs CompactString) {
	s.parts = append(s.parts, cs)
	s.byteLen += cs.Len()
}

// AddByte appends a single byte as a length-1 compact string.
func (s *SuperString) AddByte(b byte) { s.Add(FromByte(b)) }

// AddString appends an existing string without copying its bytes.
func (s *SuperString) AddString(str string) { s.Add(FromString(str)) }

// Reset clears the super string for reuse without releasing capacity.
func (s *SuperString) Reset() {
	s.parts = s.parts[:0]
	s.byteLen = 0
}

// Len returns the total liquefied byte length accumulated so far.
func (s *SuperString) Len() int { return s.byteLen }

// PartCount returns how many compact strings have been appended —
// exposed so FastVector.ReleaseWindow knows how many slots were used.
func (s *SuperString) PartCount() int { return len(s.parts) }

// Liquefy concatenates every part into a single contiguous byte
// buffer, growing dst if needed, and returns the used slice.
func (s *SuperString) Liquefy(dst []byte) []byte {
	dst = dst[:0]
	for _, p := range s.parts {
		dst = p.AppendTo(dst)
	}
	return dst
}

// Parts exposes the underlying compact strings (read-only use by
// FastVector callers that want to copy a window's contents in bulk).
func (s *SuperString) Parts() []CompactString { return s.parts }
