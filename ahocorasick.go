// Package ahocorasick provides fast multiple-pattern string matching using
// the Aho-Corasick algorithm over a compact double-array trie.
//
// The automaton matches a set of byte patterns against arbitrary haystacks
// in a single linear scan. For time- and memory-efficiency the goto trie is
// stored as a double array: two parallel integer vectors supporting
// constant-time state-to-state traversal with a fixed 12-byte footprint per
// state. Construction is done once; the resulting Automaton is immutable
// and safe for concurrent searches.
//
// Basic usage:
//
//	pma, err := ahocorasick.New([][]byte{
//	    []byte("bcd"), []byte("ab"), []byte("a"),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	it := pma.FindOverlappingIter([]byte("abcd"))
//	for m, ok := it.Next(); ok; m, ok = it.Next() {
//	    fmt.Println(m.Start, m.End, m.Value)
//	}
//
// Patterns registered with New are assigned their input position as the
// match value; NewWithValues associates caller-supplied 32-bit values
// instead. The builder's MatchKind option selects between the standard
// streaming semantics and the non-overlapping leftmost semantics
// (LeftmostLongest or LeftmostFirst); the kind decides which search
// iterators are legal.
//
// Limitations: the alphabet is raw bytes (no rune awareness), and failure
// pointers are stored in 24 bits for cache efficiency, so pattern sets
// needing more than 2^24-1 states are rejected at build time.
package ahocorasick

// Automaton is an immutable pattern match automaton built by a Builder.
//
// It owns the frozen state and output vectors; search iterators borrow them
// read-only, so one Automaton can serve any number of concurrent searches.
type Automaton struct {
	states    []state
	outputs   []output
	matchKind MatchKind
	numStates int

	// pf skips runs of bytes that cannot start a match while a scan sits
	// in the root state. Nil when the root has too many outgoing labels
	// for single-pass byte search to pay off.
	pf *startBytes
}

// New creates an Automaton from the given patterns with the default
// Standard match kind. The value i is associated with patterns[i].
//
// Errors are reported for an empty pattern set, an empty pattern, a
// duplicate pattern, and pattern sets exceeding the automaton's scale
// limits.
func New(patterns [][]byte) (*Automaton, error) {
	return NewBuilder().AddPatterns(patterns).Build()
}

// NewStrings is like New for string patterns.
func NewStrings(patterns []string) (*Automaton, error) {
	b := NewBuilder()
	for _, p := range patterns {
		b.AddPattern([]byte(p))
	}
	return b.Build()
}

// NewWithValues creates an Automaton from pattern-value pairs with the
// default Standard match kind. Values need not be unique; patterns must be.
func NewWithValues(patvals []PatternValue) (*Automaton, error) {
	b := NewBuilder()
	for _, pv := range patvals {
		b.AddPatternValue(pv.Pattern, pv.Value)
	}
	return b.Build()
}

// FindIter returns an iterator of non-overlapping matches in the haystack.
//
// Each match ends at the earliest position at which any pattern ends, with
// ties broken by the longest pattern; the following match starts strictly
// after the previous one ends.
//
// Panics if the automaton was not built with the Standard match kind.
func (a *Automaton) FindIter(haystack []byte) *FindIterator {
	if !a.matchKind.isStandard() {
		panic("ahocorasick: FindIter requires MatchKind Standard")
	}
	return &FindIterator{pma: a, haystack: haystack}
}

// FindOverlappingIter returns an iterator of all matches in the haystack,
// including positionally overlapping ones.
//
// Panics if the automaton was not built with the Standard match kind.
func (a *Automaton) FindOverlappingIter(haystack []byte) *FindOverlappingIterator {
	if !a.matchKind.isStandard() {
		panic("ahocorasick: FindOverlappingIter requires MatchKind Standard")
	}
	return &FindOverlappingIterator{
		pma:      a,
		haystack: haystack,
		stateID:  rootStateIdx,
	}
}

// FindOverlappingNoSuffixIter returns an iterator of overlapping matches
// that reports only the longest match per end position: the scan reaches
// the end of several patterns at once when one is a proper suffix of
// another, and this iterator keeps just the head of each report.
//
// Panics if the automaton was not built with the Standard match kind.
func (a *Automaton) FindOverlappingNoSuffixIter(haystack []byte) *FindOverlappingNoSuffixIterator {
	if !a.matchKind.isStandard() {
		panic("ahocorasick: FindOverlappingNoSuffixIter requires MatchKind Standard")
	}
	return &FindOverlappingNoSuffixIterator{
		pma:      a,
		haystack: haystack,
		stateID:  rootStateIdx,
	}
}

// LeftmostFindIter returns an iterator of non-overlapping leftmost matches
// in the haystack.
//
// When several patterns start at the same position, LeftmostLongest
// automatons report the longest one and LeftmostFirst automatons report
// the earliest-registered one.
//
// Panics if the automaton was not built with a leftmost match kind.
func (a *Automaton) LeftmostFindIter(haystack []byte) *LeftmostFindIterator {
	if !a.matchKind.isLeftmost() {
		panic("ahocorasick: LeftmostFindIter requires MatchKind LeftmostLongest or LeftmostFirst")
	}
	return &LeftmostFindIterator{pma: a, haystack: haystack}
}

// Find returns the first match at or after position at, or nil if there is
// none. For Standard automatons this is the first match reported by
// FindIter; for leftmost automatons it is the first leftmost match.
func (a *Automaton) Find(haystack []byte, at int) *Match {
	if at < 0 {
		at = 0
	}
	if a.matchKind.isLeftmost() {
		it := LeftmostFindIterator{pma: a, haystack: haystack, pos: at}
		if m, ok := it.Next(); ok {
			return &m
		}
		return nil
	}
	it := FindIterator{pma: a, haystack: haystack, pos: at}
	if m, ok := it.Next(); ok {
		return &m
	}
	return nil
}

// IsMatch reports whether any pattern occurs in the haystack. It stops at
// the first acceptance and allocates nothing.
func (a *Automaton) IsMatch(haystack []byte) bool {
	leftmost := a.matchKind.isLeftmost()
	s := rootStateIdx
	pos := 0
	for pos < len(haystack) {
		if s == rootStateIdx && a.pf != nil {
			if pos = a.pf.find(haystack, pos); pos < 0 {
				return false
			}
		}
		if leftmost {
			s = a.nextStateLeftmost(s, haystack[pos])
		} else {
			s = a.nextState(s, haystack[pos])
		}
		pos++
		if _, ok := a.states[s].getOutputPos(); ok {
			return true
		}
	}
	return false
}

// NumStates returns the logical state count of the automaton: the root and
// every trie state, not counting vacant double-array slots.
func (a *Automaton) NumStates() int {
	return a.numStates
}

// HeapBytes returns the total heap held by the automaton's state and
// output vectors in bytes.
func (a *Automaton) HeapBytes() int {
	return len(a.states)*stateBytes + len(a.outputs)*outputBytes
}

// MatchKind returns the match kind the automaton was built with.
func (a *Automaton) MatchKind() MatchKind {
	return a.matchKind
}

// childIndex returns the state reached from s by byte c, if that edge
// exists.
//
// The candidate index base^c is always in range: the state vector length
// is a multiple of 256 and XOR with a byte cannot leave the 256-aligned
// block containing base.
func childIndex(states []state, s uint32, c byte) (uint32, bool) {
	base, ok := states[s].getBase()
	if !ok {
		return 0, false
	}
	idx := base ^ uint32(c)
	if states[idx].getCheck() != c {
		return 0, false
	}
	return idx, true
}

// nextState returns the state after reading byte c in state s, following
// failure links until a state with a child on c is found or the root is
// reached. Every failure step strictly shortens the matched prefix, so the
// loop terminates.
func (a *Automaton) nextState(s uint32, c byte) uint32 {
	for {
		if t, ok := childIndex(a.states, s, c); ok {
			return t
		}
		if s == rootStateIdx {
			return rootStateIdx
		}
		s = a.states[s].getFail()
	}
}

// nextStateLeftmost is nextState for leftmost automatons: a failure link
// into the dead state ends the walk, signalling that no match can extend
// or supersede the current tentative one.
func (a *Automaton) nextStateLeftmost(s uint32, c byte) uint32 {
	for {
		if t, ok := childIndex(a.states, s, c); ok {
			return t
		}
		if s == rootStateIdx {
			return rootStateIdx
		}
		f := a.states[s].getFail()
		if f == deadStateIdx {
			return deadStateIdx
		}
		s = f
	}
}
