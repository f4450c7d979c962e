package ahocorasick

import (
	"errors"
	"strings"
	"testing"
)

// collectPrefixStates walks every pattern through the double array and
// returns the state index of each distinct pattern prefix, including the
// root's empty prefix. Every trie state is some pattern's prefix, so this
// enumerates all logical states.
func collectPrefixStates(t *testing.T, pma *Automaton, patterns []string) map[string]uint32 {
	t.Helper()
	states := map[string]uint32{"": rootStateIdx}
	for _, p := range patterns {
		s := rootStateIdx
		for i := 0; i < len(p); i++ {
			next, ok := childIndex(pma.states, s, p[i])
			if !ok {
				t.Fatalf("missing transition for prefix %q of pattern %q", p[:i+1], p)
			}
			states[p[:i+1]] = next
			s = next
		}
	}
	return states
}

// TestChildCheckInvariant verifies, over all 256 byte values, that child
// lookup succeeds exactly for the trie's edges: check bytes of real
// children match their label, and no vacant slot (whose check byte is
// repaired after layout) masquerades as a child.
func TestChildCheckInvariant(t *testing.T) {
	sets := [][]string{
		{"bcd", "ab", "a"},
		{"abc", "b\x00", "\x00", "\xff\xfe"},
		{"aaaa", "aaab", "aaba", "abaa", "baaa", "bbbb"},
	}

	for _, patterns := range sets {
		pma := mustBuild(t, Standard, patterns...)
		byPrefix := collectPrefixStates(t, pma, patterns)

		expected := make(map[string]struct{})
		for _, p := range patterns {
			for i := 1; i <= len(p); i++ {
				expected[p[:i]] = struct{}{}
			}
		}

		for prefix, s := range byPrefix {
			for c := 0; c < 256; c++ {
				child, ok := childIndex(pma.states, s, byte(c))
				_, want := expected[prefix+string([]byte{byte(c)})]
				if ok != want {
					t.Fatalf("patterns %q: state %q child on %#x = %v, want %v",
						patterns, prefix, c, ok, want)
				}
				if ok && pma.states[child].getCheck() != byte(c) {
					t.Fatalf("patterns %q: child of %q on %#x has check %#x",
						patterns, prefix, c, pma.states[child].getCheck())
				}
			}
		}

		if got, want := pma.NumStates(), len(expected)+1; got != want {
			t.Errorf("patterns %q: NumStates() = %d, want %d", patterns, got, want)
		}
	}
}

// TestFailureLinksAreProperSuffixes verifies that every state's failure
// link targets the longest proper suffix of its prefix that is itself a
// trie prefix.
func TestFailureLinksAreProperSuffixes(t *testing.T) {
	patterns := []string{"abcab", "bcab", "cab", "abd", "bd", "d", "ca"}
	pma := mustBuild(t, Standard, patterns...)
	byPrefix := collectPrefixStates(t, pma, patterns)

	byState := make(map[uint32]string, len(byPrefix))
	for prefix, s := range byPrefix {
		byState[s] = prefix
	}

	for prefix, s := range byPrefix {
		if s == rootStateIdx {
			continue
		}
		want := ""
		for i := 1; i <= len(prefix); i++ {
			suffix := prefix[i:]
			if _, ok := byPrefix[suffix]; ok {
				want = suffix
				break
			}
		}
		failPrefix, ok := byState[pma.states[s].getFail()]
		if !ok {
			t.Fatalf("fail link of %q targets a non-state slot", prefix)
		}
		if failPrefix != want {
			t.Errorf("fail(%q) spells %q, want %q", prefix, failPrefix, want)
		}
		if len(failPrefix) >= len(prefix) || !strings.HasSuffix(prefix, failPrefix) {
			t.Errorf("fail(%q) = %q is not a proper suffix", prefix, failPrefix)
		}
	}
}

// TestDenseRoot forces XOR-collision resolution and block growth: 256
// single-byte patterns occupy a full block's worth of root children while
// slots 0 and 1 are reserved, so layout must grow and relocate.
func TestDenseRoot(t *testing.T) {
	patterns := make([][]byte, 0, 260)
	for c := 0; c < 256; c++ {
		patterns = append(patterns, []byte{byte(c)})
	}
	patterns = append(patterns,
		[]byte("ab"), []byte("abc"), []byte("\x00\x00"), []byte("\xff\x00"))

	pma, err := New(patterns)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	// root + 256 single-byte states + ab, abc, \x00\x00, \xff\x00
	if got := pma.NumStates(); got != 261 {
		t.Errorf("NumStates() = %d, want 261", got)
	}

	got := drain(pma.FindOverlappingIter([]byte("ab\x00\x00")))
	want := []Match{
		{Start: 0, End: 1, Value: uint32('a')},
		{Start: 0, End: 2, Value: 256},
		{Start: 1, End: 2, Value: uint32('b')},
		{Start: 2, End: 3, Value: 0},
		{Start: 2, End: 4, Value: 258},
		{Start: 3, End: 4, Value: 0},
	}
	assertMatches(t, got, want)
}

// TestSharedPrefixLayout exercises base selection when sibling label sets
// collide across levels.
func TestSharedPrefixLayout(t *testing.T) {
	patterns := []string{"roman", "romance", "romantic", "rome", "rose", "rosa", "ruse"}
	pma := mustBuild(t, Standard, patterns...)

	for _, p := range patterns {
		if !pma.IsMatch([]byte("x" + p + "x")) {
			t.Errorf("pattern %q not found after layout", p)
		}
	}
	got := drain(pma.FindIter([]byte("romance rose")))
	assertMatches(t, got, []Match{{0, 5, 0}, {8, 12, 4}})
}

func TestBuilderErrors(t *testing.T) {
	t.Run("duplicate via AddPatternValue", func(t *testing.T) {
		_, err := NewBuilder().
			AddPatternValue([]byte("x"), 7).
			AddPatternValue([]byte("x"), 9).
			Build()
		if !errors.Is(err, ErrDuplicatePattern) {
			t.Errorf("error = %v, want ErrDuplicatePattern", err)
		}
	})

	t.Run("empty pattern under leftmost", func(t *testing.T) {
		_, err := NewBuilder().
			MatchKind(LeftmostLongest).
			AddPattern(nil).
			Build()
		if !errors.Is(err, ErrEmptyPattern) {
			t.Errorf("error = %v, want ErrEmptyPattern", err)
		}
	})

	t.Run("error kinds stringify", func(t *testing.T) {
		kinds := map[ErrorKind]string{
			DuplicatePattern: "DuplicatePattern",
			EmptyPattern:     "EmptyPattern",
			NoPatterns:       "NoPatterns",
			ScaleExceeded:    "ScaleExceeded",
		}
		for k, want := range kinds {
			if k.String() != want {
				t.Errorf("ErrorKind(%d).String() = %q, want %q", k, k.String(), want)
			}
		}
	})
}

func TestMatchKindString(t *testing.T) {
	tests := []struct {
		kind MatchKind
		want string
	}{
		{Standard, "Standard"},
		{LeftmostLongest, "LeftmostLongest"},
		{LeftmostFirst, "LeftmostFirst"},
		{MatchKind(9), "UnknownMatchKind(9)"},
	}
	for _, tc := range tests {
		if got := tc.kind.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}

// TestHeapBytesFormula pins HeapBytes to the record sizes across shapes.
func TestHeapBytesFormula(t *testing.T) {
	sets := [][]string{
		{"a"},
		{"bcd", "ab", "a"},
		{"aaaa", "aaab", "aaba"},
	}
	for _, patterns := range sets {
		pma := mustBuild(t, Standard, patterns...)
		want := len(pma.states)*12 + len(pma.outputs)*8
		if got := pma.HeapBytes(); got != want {
			t.Errorf("patterns %q: HeapBytes() = %d, want %d", patterns, got, want)
		}
		if len(pma.states)%256 != 0 {
			t.Errorf("patterns %q: state vector length %d is not a whole number of blocks",
				patterns, len(pma.states))
		}
	}
}
