package wordtree

import "iter"

// Cursor walks the keys of a tree in ascending order.
//
// A cursor is bound to one tree and keeps the path of pending ancestors on an
// explicit stack, so walking a degenerated (list-shaped) tree does not recurse.
// Cursors never modify the tree. Inserting into the tree while a cursor is in
// use leaves the cursor in an undefined state.
type Cursor struct {
	tree  *Tree
	stack []int // ancestors still to visit, top is the current node
}

// Begin returns a cursor positioned at the smallest key of t. For an empty
// tree the cursor is already exhausted. Every call to Begin starts a fresh
// traversal.
func (t *Tree) Begin() *Cursor {
	c := &Cursor{tree: t}
	if !t.IsEmpty() {
		c.stack = make([]int, 0, t.height)
		c.pushLeftSpine(0)
	}
	return c
}

// End returns an exhausted cursor. It is the position a cursor from Begin
// reaches after Size() steps.
func (t *Tree) End() *Cursor {
	return &Cursor{tree: t}
}

// pushLeftSpine pushes at and all of its left descendants.
func (c *Cursor) pushLeftSpine(at int) {
	nodes := c.tree.nodes
	for {
		c.stack = append(c.stack, at)
		if nodes[at].left == absent {
			return
		}
		at = nodes[at].left
	}
}

// Valid reports whether the cursor is positioned on a key.
func (c *Cursor) Valid() bool {
	return c != nil && len(c.stack) > 0
}

// Done reports whether the cursor has moved past the largest key.
func (c *Cursor) Done() bool {
	return !c.Valid()
}

// Key returns the key at the current cursor position, or "" if the cursor is
// exhausted. Use Valid to tell the empty key from an exhausted cursor.
func (c *Cursor) Key() string {
	if !c.Valid() {
		return ""
	}
	return c.tree.nodes[c.stack[len(c.stack)-1]].key
}

// Next moves the cursor to the next larger key. It returns false if there is
// no such key, leaving the cursor exhausted.
func (c *Cursor) Next() bool {
	if !c.Valid() {
		return false
	}
	top := len(c.stack) - 1
	at := c.stack[top]
	c.stack = c.stack[:top]
	if r := c.tree.nodes[at].right; r != absent {
		c.pushLeftSpine(r)
	}
	return c.Valid()
}

// Advance moves the cursor n keys forward and returns the number of steps
// actually taken. Advancing stops early if the cursor runs past the largest
// key. Negative n are treated as 0.
func (c *Cursor) Advance(n int) int {
	steps := 0
	for ; steps < n && c.Valid(); steps++ {
		c.Next()
	}
	return steps
}

// Range returns an iterator over all keys of t in ascending order.
//
// The sequence is lazy and may be ranged over any number of times; each
// iteration starts at the smallest key.
func (t *Tree) Range() iter.Seq[string] {
	return func(yield func(string) bool) {
		for c := t.Begin(); c.Valid(); c.Next() {
			if !yield(c.Key()) {
				return
			}
		}
	}
}
