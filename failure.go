package ahocorasick

import "github.com/coregx/ahocorasick/internal/conv"

// Failure-link and output-run construction.
//
// After the goto trie is laid out, a breadth-first traversal installs the
// failure link of every state and assembles the output table. Outputs of
// one state form a contiguous run headed by a begin-tagged record; the
// table ends with an explicit begin-tagged sentinel so run enumeration
// never walks past the slice.

type bfsItem struct {
	node     uint32 // trie node index
	parentDa uint32 // parent's double-array index
	label    byte
}

func makeFailureAndOutputs(da *doubleArray, tr *trie, kind MatchKind) ([]output, error) {
	outputs := make([]output, 0, len(tr.nodes))

	queue := make([]bfsItem, 0, len(tr.nodes))
	for _, e := range tr.nodes[0].edges {
		queue = append(queue, bfsItem{node: e.next, parentDa: rootStateIdx, label: e.label})
	}

	leftmost := kind.isLeftmost()
	for qi := 0; qi < len(queue); qi++ {
		item := queue[qi]
		node := &tr.nodes[item.node]
		s := node.daIdx

		var err error
		if leftmost {
			outputs, err = installLeftmost(da.states, outputs, item, node)
		} else {
			outputs, err = installStandard(da.states, outputs, item, node)
		}
		if err != nil {
			return nil, err
		}

		for _, e := range node.edges {
			queue = append(queue, bfsItem{node: e.next, parentDa: s, label: e.label})
		}
	}

	// Sentinel: the record after the last run reads as the head of a
	// (nonexistent) next run.
	if outputTableFull(outputs) {
		return nil, scaleExceededError("output table beyond 32-bit positions")
	}
	outputs = append(outputs, newOutput(0, 0, true))
	return outputs, nil
}

// installStandard computes the failure link of one state and assembles its
// output run: the pattern terminating here (if any) followed by a copy of
// the failure target's run, i.e. every pattern ending at the current scan
// position in strictly decreasing length order. States without a pattern
// of their own share the failure target's run head.
func installStandard(states []state, outputs []output, item bfsItem, node *trieNode) ([]output, error) {
	s := node.daIdx
	f := states[item.parentDa].getFail()
	for {
		if t, ok := childIndex(states, f, item.label); ok && t != s {
			states[s].setFail(t)
			break
		}
		if f == rootStateIdx {
			states[s].setFail(rootStateIdx)
			break
		}
		f = states[f].getFail()
	}

	failPos, failHas := states[states[s].getFail()].getOutputPos()
	if node.length == 0 {
		if failHas {
			states[s].setOutputPos(failPos)
		}
		return outputs, nil
	}

	if outputTableFull(outputs) {
		return nil, scaleExceededError("output table beyond 32-bit positions")
	}
	head := conv.IntToUint32(len(outputs))
	outputs = append(outputs, newOutput(node.value, node.length, true))
	if failHas {
		outputs = appendRunCopy(outputs, failPos)
	}
	states[s].setOutputPos(head)
	return outputs, nil
}

// installLeftmost is installStandard for the leftmost match kinds.
//
// Every state that carries an output fails to the dead state: reaching it
// commits the scan to a start position, and any mismatch afterwards must
// end the scan rather than slide the window. The dead link propagates to
// all descendants of such states. A state without a pattern of its own
// whose failure walk lands on a match state adopts that state's run head,
// so the shorter match is still recorded when the scan passes through;
// runs are never concatenated, since only the head record is ever
// reported.
func installLeftmost(states []state, outputs []output, item bfsItem, node *trieNode) ([]output, error) {
	s := node.daIdx

	appendOwn := func() ([]output, error) {
		if outputTableFull(outputs) {
			return nil, scaleExceededError("output table beyond 32-bit positions")
		}
		head := conv.IntToUint32(len(outputs))
		outputs = append(outputs, newOutput(node.value, node.length, true))
		states[s].setOutputPos(head)
		return outputs, nil
	}

	_, parentHas := states[item.parentDa].getOutputPos()
	if parentHas || states[item.parentDa].getFail() == deadStateIdx {
		states[s].setFail(deadStateIdx)
		if node.length > 0 {
			return appendOwn()
		}
		return outputs, nil
	}

	target := rootStateIdx
	f := states[item.parentDa].getFail()
	for {
		if t, ok := childIndex(states, f, item.label); ok && t != s {
			target = t
			break
		}
		if f == rootStateIdx {
			target = rootStateIdx
			break
		}
		f = states[f].getFail()
		if f == deadStateIdx {
			target = deadStateIdx
			break
		}
	}

	if node.length > 0 {
		states[s].setFail(deadStateIdx)
		return appendOwn()
	}
	if pos, ok := states[target].getOutputPos(); ok {
		// Adopt the match visible through the failure link; the scan
		// must record it when it passes through this state.
		states[s].setOutputPos(pos)
		states[s].setFail(deadStateIdx)
		return outputs, nil
	}
	states[s].setFail(target)
	return outputs, nil
}

// outputTableFull reports whether one more record would collide with the
// invalid-position sentinel.
func outputTableFull(outputs []output) bool {
	return uint64(len(outputs)) >= uint64(outputPosInvalid)
}

// appendRunCopy appends the run starting at from as continuation records
// (begin flag cleared).
func appendRunCopy(outputs []output, from uint32) []output {
	start := int(from)
	end := start + 1
	for end < len(outputs) && !outputs[end].isBegin() {
		end++
	}
	for _, o := range outputs[start:end] {
		outputs = append(outputs, output{value: o.value, lenBegin: o.lenBegin &^ 1})
	}
	return outputs
}
