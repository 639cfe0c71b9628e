package cell

// FastVector is the grow-only contiguous buffer of compact-string
// records described in spec 3.: "a getWindow<N>() / releaseWindow(k)
// pair that reserves a fixed-size region the caller fills via a super
// string, then commits k <= N entries." It is the render thread's
// scratch buffer between frames and is cleared each frame via Reset.
type FastVector struct {
	data []CompactString
	len  int
}

// NewFastVector preallocates capacity records.
func NewFastVector(capacity int) *FastVector {
	return &FastVector{data: make([]CompactString, capacity)}
}

// Reset clears the vector for a new frame without releasing capacity.
func (v *FastVector) Reset() { v.len = 0 }

// Len returns the number of committed entries.
func (v *FastVector) Len() int { return v.len }

// Entries returns the committed slice (index [0,Len())).
func (v *FastVector) Entries() []CompactString { return v.data[:v.len] }

// Window reserves n slots starting at the current length, growing the
// backing array if necessary, and returns them for the caller to fill.
// The reservation is not committed until ReleaseWindow is called.
func (v *FastVector) Window(n int) []CompactString {
	need := v.len + n
	if need > cap(v.data) {
		grown := make([]CompactString, need, need*2)
		copy(grown, v.data[:v.len])
		v.data = grown
	} else if need > len(v.data) {
		v.data = v.data[:need]
	}
	return v.data[v.len:need]
}

// ReleaseWindow commits k of the most recently reserved entries,
// advancing Len by k. k must be <= the n passed to the preceding
// Window call.
func (v *FastVector) ReleaseWindow(k int) { v.len += k }

// Liquefy concatenates every committed entry into a single contiguous
// byte buffer, growing dst if needed, and returns the used slice — the
// final step of spec 4.7's liquefaction (SuperString.Liquefy does the
// same for a single cell's parts; this does it for the whole frame).
func (v *FastVector) Liquefy(dst []byte) []byte {
	dst = dst[:0]
	for _, p := range v.Entries() {
		dst = p.AppendTo(dst)
	}
	return dst
}

// Append is a convenience for committing a single compact string
// without going through the Window/Release pair.
func (v *FastVector) Append(cs CompactString) {
	w := v.Window(1)
	w[0] = cs
	v.ReleaseWindow(1)
}
