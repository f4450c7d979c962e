package ahocorasick

// Match is a single occurrence of a pattern in a haystack.
//
// Start and End are byte offsets; the matched bytes are haystack[Start:End].
// Value is the value registered with the pattern: the pattern's position in
// the input sequence for automatons built with New, or the caller-supplied
// value for NewWithValues.
type Match struct {
	Start int
	End   int
	Value uint32
}

// Len returns the length of the matched pattern in bytes.
func (m Match) Len() int {
	return m.End - m.Start
}
