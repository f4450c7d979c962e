package ahocorasick

import "fmt"

// MatchKind selects the match semantics an automaton is built with.
//
// The kind decides which search iterators are legal and changes how failure
// and output links are constructed, so it must be chosen at build time.
type MatchKind uint8

const (
	// Standard reports matches the way the textbook Aho-Corasick
	// algorithm does: every time the scan reaches the end of a pattern.
	// It enables FindIter, FindOverlappingIter, and
	// FindOverlappingNoSuffixIter.
	Standard MatchKind = iota

	// LeftmostLongest reports one non-overlapping match per position,
	// preferring the longest pattern when several start at the same
	// position. For patterns ab|a|abcd over "abcd", abcd is reported.
	// It enables LeftmostFindIter.
	LeftmostLongest

	// LeftmostFirst reports one non-overlapping match per position,
	// preferring the earliest-registered pattern when several start at
	// the same position. For patterns ab|a|abcd over "abcd", ab is
	// reported. It enables LeftmostFindIter.
	LeftmostFirst
)

// String returns the match kind name.
func (k MatchKind) String() string {
	switch k {
	case Standard:
		return "Standard"
	case LeftmostLongest:
		return "LeftmostLongest"
	case LeftmostFirst:
		return "LeftmostFirst"
	default:
		return fmt.Sprintf("UnknownMatchKind(%d)", uint8(k))
	}
}

func (k MatchKind) isStandard() bool {
	return k == Standard
}

func (k MatchKind) isLeftmost() bool {
	return k == LeftmostFirst || k == LeftmostLongest
}

func (k MatchKind) isLeftmostFirst() bool {
	return k == LeftmostFirst
}
