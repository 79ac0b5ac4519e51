package wordtree

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// Tree is an ordered set of strings, organized as a binary search tree.
//
// A tree created by
//
//	Tree{}
//
// is a valid object and behaves like the empty set.
//
// Keys are compared byte-wise, i.e. the same way Go compares strings. The empty
// string is a valid key.
//
//	Operation     |   Tree           |  balanced tree
//	--------------+------------------+---------------
//	Insert        |   O(height)      |   O(log n)
//	Exists        |   O(height)      |   O(log n)
//	Size          |   O(1)           |   O(1)
//	Iterate       |   O(n)           |   O(n)
//
// Height ranges from log2(n) to n, depending on the order of insertions only.
//
// A tree is not safe for concurrent use. Clients must not insert while a
// cursor or a Range sequence over the tree is alive.
type Tree struct {
	nodes    []node // arena of nodes; nodes[0] is the root
	height   int    // longest root-to-leaf path, counted in nodes
	depthSum int    // sum of all node depths, root has depth 1
	leaves   int    // number of nodes without children
}

// node is an entry in the node arena of a tree. Children are referenced by
// arena index. As the root always lives at index 0 and nodes are never
// removed, no node may have the root as a child and index 0 serves as the
// 'absent' link.
type node struct {
	key         string
	left, right int
}

const absent = 0

func (n *node) isLeaf() bool {
	return n.left == absent && n.right == absent
}

// New creates an empty tree.
func New() *Tree {
	return &Tree{}
}

// Size returns the number of distinct keys in the tree.
func (t *Tree) Size() int {
	if t == nil {
		return 0
	}
	return len(t.nodes)
}

// IsEmpty reports whether the tree holds no keys.
func (t *Tree) IsEmpty() bool {
	return t.Size() == 0
}

// Height returns the number of nodes on the longest path from the root to a
// leaf. An empty tree has height 0, a tree with a single key has height 1.
func (t *Tree) Height() int {
	if t == nil {
		return 0
	}
	return t.height
}

// Insert adds key to the set. It returns false if key has already been
// present, in which case neither the size nor the shape of the tree changes.
//
// The new key always ends up as a leaf. No rotations or other rebalancing
// operations are performed.
//
// Unlike the query methods, Insert needs a non-nil tree.
func (t *Tree) Insert(key string) bool {
	if len(t.nodes) == 0 {
		t.nodes = append(t.nodes, node{key: key})
		t.height, t.depthSum, t.leaves = 1, 1, 1
		return true
	}
	at, depth := 0, 1
	for {
		n := &t.nodes[at]
		var link *int
		switch {
		case key < n.key:
			link = &n.left
		case key > n.key:
			link = &n.right
		default:
			return false
		}
		depth++
		if *link != absent {
			at = *link
			continue
		}
		if !n.isLeaf() {
			t.leaves++
		}
		// append may move the arena, so write the link first
		*link = len(t.nodes)
		t.nodes = append(t.nodes, node{key: key})
		t.depthSum += depth
		if depth > t.height {
			t.height = depth
		}
		return true
	}
}

// Exists reports whether key is a member of the set.
//
// The number of comparisons is bounded by the depth of key's search path.
func (t *Tree) Exists(key string) bool {
	if t == nil || len(t.nodes) == 0 {
		return false
	}
	at := 0
	for {
		n := &t.nodes[at]
		switch {
		case key < n.key:
			at = n.left
		case key > n.key:
			at = n.right
		default:
			return true
		}
		if at == absent {
			return false
		}
	}
}

// Keys returns all keys in ascending order.
func (t *Tree) Keys() []string {
	keys := make([]string, 0, t.Size())
	for key := range t.Range() {
		keys = append(keys, key)
	}
	return keys
}

// Median returns the key at position Size()/2 in ascending order. For an
// even number of keys this is the upper one of the two middle keys.
// If the tree is empty, ok is false.
func (t *Tree) Median() (key string, ok bool) {
	if t.IsEmpty() {
		return "", false
	}
	c := t.Begin()
	c.Advance(t.Size() / 2)
	return c.Key(), c.Valid()
}
