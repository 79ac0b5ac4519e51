package wordtree

// Side tells which link of its parent a node hangs on.
type Side int8

// Sides of a node relative to its parent
const (
	Root Side = iota
	Left
	Right
)

func (s Side) String() string {
	return [...]string{"root", "left", "right"}[s]
}

// NodeInfo describes a node visited by EachNode.
type NodeInfo struct {
	Key      string
	Depth    int  // root has depth 1
	Side     Side // link of the parent this node hangs on
	HasLeft  bool
	HasRight bool
}

// IsLeaf reports whether the node has no children.
func (ni NodeInfo) IsLeaf() bool {
	return !ni.HasLeft && !ni.HasRight
}

// EachNode visits all nodes of the tree in pre-order, i.e. a node before its
// left subtree and its left subtree before its right subtree.
// Iteration stops at the first callback error and returns that error to the
// caller.
func (t *Tree) EachNode(f func(NodeInfo) error) error {
	if t.IsEmpty() {
		return nil
	}
	type frame struct {
		at, depth int
		side      Side
	}
	stack := make([]frame, 1, t.height+1)
	stack[0] = frame{0, 1, Root}
	for len(stack) > 0 {
		fr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := t.nodes[fr.at]
		info := NodeInfo{
			Key:      n.key,
			Depth:    fr.depth,
			Side:     fr.side,
			HasLeft:  n.left != absent,
			HasRight: n.right != absent,
		}
		if err := f(info); err != nil {
			return err
		}
		if n.right != absent {
			stack = append(stack, frame{n.right, fr.depth + 1, Right})
		}
		if n.left != absent {
			stack = append(stack, frame{n.left, fr.depth + 1, Left})
		}
	}
	return nil
}
