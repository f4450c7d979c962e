package ahocorasick

// Search iterators.
//
// Each iterator borrows the automaton and the haystack and owns only its
// cursor, so it costs nothing to drop mid-stream. None of them is safe for
// concurrent use; run one iterator per goroutine instead, against the same
// automaton.

// FindIterator streams non-overlapping matches. Created by
// (*Automaton).FindIter.
type FindIterator struct {
	pma      *Automaton
	haystack []byte
	pos      int
}

// Next returns the next match, or ok == false when the haystack is
// exhausted.
func (it *FindIterator) Next() (Match, bool) {
	a := it.pma
	h := it.haystack
	s := rootStateIdx
	pos := it.pos
	for pos < len(h) {
		if s == rootStateIdx && a.pf != nil {
			if pos = a.pf.find(h, pos); pos < 0 {
				break
			}
		}
		s = a.nextState(s, h[pos])
		pos++
		if op, ok := a.states[s].getOutputPos(); ok {
			// The head record is the longest pattern ending here.
			out := a.outputs[op]
			it.pos = pos
			return Match{Start: pos - int(out.getLength()), End: pos, Value: out.getValue()}, true
		}
	}
	it.pos = len(h)
	return Match{}, false
}

// FindOverlappingIterator streams every match, including positionally
// overlapping ones. Created by (*Automaton).FindOverlappingIter.
type FindOverlappingIterator struct {
	pma       *Automaton
	haystack  []byte
	stateID   uint32
	pos       int
	outputPos int
}

// Next returns the next match, or ok == false when the haystack is
// exhausted.
//
// When the previous report ended several patterns at once (one a proper
// suffix of another), the pending run is drained first, in decreasing
// length order, before the scan resumes.
func (it *FindOverlappingIterator) Next() (Match, bool) {
	a := it.pma
	if out := a.outputs[it.outputPos]; !out.isBegin() {
		it.outputPos++
		return Match{Start: it.pos - int(out.getLength()), End: it.pos, Value: out.getValue()}, true
	}
	h := it.haystack
	s := it.stateID
	pos := it.pos
	for pos < len(h) {
		if s == rootStateIdx && a.pf != nil {
			if pos = a.pf.find(h, pos); pos < 0 {
				break
			}
		}
		s = a.nextState(s, h[pos])
		pos++
		if op, ok := a.states[s].getOutputPos(); ok {
			out := a.outputs[op]
			it.stateID = s
			it.pos = pos
			it.outputPos = int(op) + 1
			return Match{Start: pos - int(out.getLength()), End: pos, Value: out.getValue()}, true
		}
	}
	it.stateID = s
	it.pos = len(h)
	return Match{}, false
}

// FindOverlappingNoSuffixIterator streams overlapping matches but reports
// only the head record per acceptance: inherited suffix matches are
// skipped. Created by (*Automaton).FindOverlappingNoSuffixIter.
type FindOverlappingNoSuffixIterator struct {
	pma      *Automaton
	haystack []byte
	stateID  uint32
	pos      int
}

// Next returns the next match, or ok == false when the haystack is
// exhausted.
func (it *FindOverlappingNoSuffixIterator) Next() (Match, bool) {
	a := it.pma
	h := it.haystack
	s := it.stateID
	pos := it.pos
	for pos < len(h) {
		if s == rootStateIdx && a.pf != nil {
			if pos = a.pf.find(h, pos); pos < 0 {
				break
			}
		}
		s = a.nextState(s, h[pos])
		pos++
		if op, ok := a.states[s].getOutputPos(); ok {
			out := a.outputs[op]
			it.stateID = s
			it.pos = pos
			return Match{Start: pos - int(out.getLength()), End: pos, Value: out.getValue()}, true
		}
	}
	it.stateID = s
	it.pos = len(h)
	return Match{}, false
}

// LeftmostFindIterator streams non-overlapping leftmost matches. Created
// by (*Automaton).LeftmostFindIter.
type LeftmostFindIterator struct {
	pma      *Automaton
	haystack []byte
	pos      int
}

// Next returns the next leftmost match, or ok == false when no further
// match exists.
//
// Each call scans from the end of the previous match, recording the last
// acceptance seen; reaching the dead state (or the end of the haystack)
// finalizes it. Which acceptance survives — longest or earliest-registered
// — was decided at construction time by the match kind.
func (it *LeftmostFindIterator) Next() (Match, bool) {
	a := it.pma
	h := it.haystack
	s := rootStateIdx
	lastOutputPos := outputPosInvalid
	pos := it.pos
	for pos < len(h) {
		// Once an acceptance is recorded the scan can no longer sit in
		// the root, so the skip never discards a tentative match.
		if s == rootStateIdx && a.pf != nil {
			if pos = a.pf.find(h, pos); pos < 0 {
				break
			}
		}
		s = a.nextStateLeftmost(s, h[pos])
		if s == deadStateIdx {
			break
		}
		pos++
		if op, ok := a.states[s].getOutputPos(); ok {
			lastOutputPos = op
			it.pos = pos
		}
	}
	if lastOutputPos == outputPosInvalid {
		it.pos = len(h)
		return Match{}, false
	}
	out := a.outputs[lastOutputPos]
	return Match{Start: it.pos - int(out.getLength()), End: it.pos, Value: out.getValue()}, true
}
