package ahocorasick

import "github.com/coregx/ahocorasick/simd"

// startBytes skips stretches of the haystack that cannot begin a match.
//
// While a scan sits in the root state, any byte that is not a root label
// leaves it in the root state, and the root carries no outputs; jumping
// straight to the next root label is therefore semantics-neutral. The skip
// is worthwhile when the root has at most three distinct labels, which is
// where single-pass multi-byte search stops paying off.
type startBytes struct {
	n  int
	b1 byte
	b2 byte
	b3 byte
}

// newStartBytes returns a prefilter for the given root labels, or nil when
// skipping would not help.
func newStartBytes(labels []byte) *startBytes {
	p := &startBytes{n: len(labels)}
	switch len(labels) {
	case 1:
		p.b1 = labels[0]
	case 2:
		p.b1, p.b2 = labels[0], labels[1]
	case 3:
		p.b1, p.b2, p.b3 = labels[0], labels[1], labels[2]
	default:
		return nil
	}
	return p
}

// find returns the position of the next possible match start at or after
// at, or -1 if the rest of the haystack contains none.
func (p *startBytes) find(haystack []byte, at int) int {
	var i int
	switch p.n {
	case 1:
		i = simd.Memchr(haystack[at:], p.b1)
	case 2:
		i = simd.Memchr2(haystack[at:], p.b1, p.b2)
	default:
		i = simd.Memchr3(haystack[at:], p.b1, p.b2, p.b3)
	}
	if i < 0 {
		return -1
	}
	return at + i
}
