package ahocorasick

import (
	"math"
	"sort"

	"github.com/coregx/ahocorasick/internal/conv"
)

// PatternValue pairs a pattern with the 32-bit value reported when it
// matches.
type PatternValue struct {
	Pattern []byte
	Value   uint32
}

// Builder accumulates patterns and configuration and builds an Automaton.
//
// All configuration methods return the builder for chaining:
//
//	pma, err := ahocorasick.NewBuilder().
//	    MatchKind(ahocorasick.LeftmostLongest).
//	    AddPattern([]byte("ab")).
//	    AddPattern([]byte("abcd")).
//	    Build()
type Builder struct {
	matchKind MatchKind
	patvals   []PatternValue
}

// NewBuilder creates a Builder with the default configuration
// (MatchKind Standard).
func NewBuilder() *Builder {
	return &Builder{}
}

// MatchKind sets the match semantics the automaton is built with. The
// default is Standard.
func (b *Builder) MatchKind(k MatchKind) *Builder {
	b.matchKind = k
	return b
}

// AddPattern registers a pattern. Its value is its registration position:
// the i-th added pattern reports value i.
func (b *Builder) AddPattern(pattern []byte) *Builder {
	return b.AddPatternValue(pattern, conv.IntToUint32(len(b.patvals)))
}

// AddPatterns registers each pattern in order, as AddPattern does.
func (b *Builder) AddPatterns(patterns [][]byte) *Builder {
	for _, p := range patterns {
		b.AddPattern(p)
	}
	return b
}

// AddPatternValue registers a pattern with an explicit value.
func (b *Builder) AddPatternValue(pattern []byte, value uint32) *Builder {
	b.patvals = append(b.patvals, PatternValue{Pattern: pattern, Value: value})
	return b
}

// Build validates the pattern set and constructs the automaton: the
// patterns become a trie, the trie is laid out into the double array, and
// failure and output links are installed by breadth-first traversal.
func (b *Builder) Build() (*Automaton, error) {
	if len(b.patvals) == 0 {
		return nil, ErrNoPatterns
	}
	seen := make(map[string]struct{}, len(b.patvals))
	for _, pv := range b.patvals {
		if len(pv.Pattern) == 0 {
			return nil, ErrEmptyPattern
		}
		if len(pv.Pattern) > math.MaxInt32 {
			return nil, scaleExceededError("pattern longer than 31-bit length field")
		}
		key := string(pv.Pattern)
		if _, dup := seen[key]; dup {
			return nil, duplicatePatternError(pv.Pattern)
		}
		seen[key] = struct{}{}
	}

	tr := newTrie()
	leftmostFirst := b.matchKind.isLeftmostFirst()
	for _, pv := range b.patvals {
		if err := tr.insert(pv.Pattern, pv.Value, leftmostFirst); err != nil {
			return nil, err
		}
	}

	da, err := newDoubleArray()
	if err != nil {
		return nil, err
	}
	if err := da.arrange(tr); err != nil {
		return nil, err
	}

	// Failure construction relies on child lookup, so vacant slots must
	// stop posing as children on byte 0x00 first.
	da.repairVacantChecks()

	outputs, err := makeFailureAndOutputs(da, tr, b.matchKind)
	if err != nil {
		return nil, err
	}

	da.states[deadStateIdx].setFail(deadStateIdx)

	return &Automaton{
		states:    da.states,
		outputs:   outputs,
		matchKind: b.matchKind,
		numStates: da.numStates,
		pf:        newStartBytes(tr.rootLabels()),
	}, nil
}

// trieEdge is one labeled edge of a trie node. Edges are kept sorted by
// label so that children are always visited in ascending byte order.
type trieEdge struct {
	label byte
	next  uint32
}

// trieNode is a node of the nucleus trie built from the pattern set before
// double-array layout. length > 0 marks a terminal node; empty patterns
// are rejected up front, so zero is free to mean "no pattern ends here".
type trieNode struct {
	edges  []trieEdge
	length uint32
	value  uint32
	daIdx  uint32
}

func (n *trieNode) child(label byte) (uint32, bool) {
	i := sort.Search(len(n.edges), func(i int) bool { return n.edges[i].label >= label })
	if i < len(n.edges) && n.edges[i].label == label {
		return n.edges[i].next, true
	}
	return 0, false
}

func (n *trieNode) insertEdge(label byte, next uint32) {
	i := sort.Search(len(n.edges), func(i int) bool { return n.edges[i].label >= label })
	n.edges = append(n.edges, trieEdge{})
	copy(n.edges[i+1:], n.edges[i:])
	n.edges[i] = trieEdge{label: label, next: next}
}

type trie struct {
	nodes []trieNode
}

func newTrie() *trie {
	return &trie{nodes: make([]trieNode, 1)}
}

func (t *trie) addNode() (uint32, error) {
	if uint32(len(t.nodes)) > failMax {
		return 0, scaleExceededError("state count beyond 24-bit failure links")
	}
	t.nodes = append(t.nodes, trieNode{})
	return uint32(len(t.nodes) - 1), nil
}

// insert adds one pattern to the trie.
//
// Under leftmost-first semantics a pattern whose proper prefix already
// terminates an earlier pattern can never win: at any shared start
// position the earlier, shorter pattern is preferred, and the scan commits
// to it before this pattern could complete. Such patterns are dropped
// without creating states.
func (t *trie) insert(pattern []byte, value uint32, leftmostFirst bool) error {
	cur := uint32(0)
	for _, c := range pattern {
		if leftmostFirst && t.nodes[cur].length > 0 {
			return nil
		}
		next, ok := t.nodes[cur].child(c)
		if !ok {
			var err error
			next, err = t.addNode()
			if err != nil {
				return err
			}
			t.nodes[cur].insertEdge(c, next)
		}
		cur = next
	}
	// Duplicates were rejected before insertion, so the terminal node is
	// unclaimed.
	t.nodes[cur].length = conv.IntToUint31(len(pattern))
	t.nodes[cur].value = value
	return nil
}

func (t *trie) rootLabels() []byte {
	labels := make([]byte, 0, len(t.nodes[0].edges))
	for _, e := range t.nodes[0].edges {
		labels = append(labels, e.label)
	}
	return labels
}
