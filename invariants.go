package wordtree

import "fmt"

// Check validates the structural invariants of a tree:
// keys are in strictly ascending in-order sequence, every node is reachable
// exactly once, and the shape counters maintained by Insert match the actual
// shape.
//
// Check walks the complete tree and is meant for tests and debugging.
func (t *Tree) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrIllegalArguments)
	}
	if len(t.nodes) == 0 {
		if t.height != 0 || t.depthSum != 0 || t.leaves != 0 {
			return fmt.Errorf("%w: empty tree with non-zero shape counters", ErrInvariant)
		}
		return nil
	}
	type frame struct{ at, depth int }
	seen := make([]bool, len(t.nodes))
	stack := []frame{{0, 1}}
	var height, depthSum, leaves, count int
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.at < 0 || f.at >= len(t.nodes) {
			return fmt.Errorf("%w: link to node %d outside of arena", ErrInvariant, f.at)
		}
		if seen[f.at] {
			return fmt.Errorf("%w: node %d reachable more than once", ErrInvariant, f.at)
		}
		seen[f.at] = true
		count++
		depthSum += f.depth
		height = max(height, f.depth)
		n := t.nodes[f.at]
		if n.isLeaf() {
			leaves++
		}
		for _, child := range []int{n.left, n.right} {
			if child != absent {
				stack = append(stack, frame{child, f.depth + 1})
			}
		}
	}
	if count != len(t.nodes) {
		return fmt.Errorf("%w: %d of %d nodes reachable", ErrInvariant, count, len(t.nodes))
	}
	if height != t.height {
		return fmt.Errorf("%w: height mismatch (%d != %d)", ErrInvariant, height, t.height)
	}
	if depthSum != t.depthSum {
		return fmt.Errorf("%w: depth sum mismatch (%d != %d)", ErrInvariant, depthSum, t.depthSum)
	}
	if leaves != t.leaves {
		return fmt.Errorf("%w: leaf count mismatch (%d != %d)", ErrInvariant, leaves, t.leaves)
	}
	var prev string
	i := 0
	for key := range t.Range() {
		if i > 0 && key <= prev {
			T().Debugf("wordtree check: %q follows %q", key, prev)
			return fmt.Errorf("%w: key %q out of order", ErrInvariant, key)
		}
		prev = key
		i++
	}
	if i != len(t.nodes) {
		return fmt.Errorf("%w: in-order walk visits %d of %d keys", ErrInvariant, i, len(t.nodes))
	}
	return nil
}
