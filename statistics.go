package wordtree

import (
	"fmt"
	"io"
	"math/bits"
)

// Statistics describes the shape of a tree.
type Statistics struct {
	Size      int     // number of keys
	Height    int     // nodes on the longest root-to-leaf path
	MinHeight int     // smallest height possible for Size keys
	Leaves    int     // nodes without children
	AvgDepth  float64 // mean node depth, the root having depth 1
}

// Balance is the ratio of the minimum height to the actual height, 1.0
// denoting a perfectly balanced tree. For an empty tree it is 1.0.
func (s Statistics) Balance() float64 {
	if s.Height == 0 {
		return 1.0
	}
	return float64(s.MinHeight) / float64(s.Height)
}

func (s Statistics) String() string {
	return fmt.Sprintf("%d nodes, height %d (minimum %d), average depth %.2f, %d leaves",
		s.Size, s.Height, s.MinHeight, s.AvgDepth, s.Leaves)
}

// MinHeight returns ⌈log2(n+1)⌉, the height of a complete binary tree with n
// nodes.
func MinHeight(n int) int {
	if n <= 0 {
		return 0
	}
	return bits.Len(uint(n))
}

// Statistics returns the shape statistics of t. All values are maintained
// during insertion, no tree walk is necessary.
func (t *Tree) Statistics() Statistics {
	if t.IsEmpty() {
		return Statistics{}
	}
	return Statistics{
		Size:      t.Size(),
		Height:    t.height,
		MinHeight: MinHeight(t.Size()),
		Leaves:    t.leaves,
		AvgDepth:  float64(t.depthSum) / float64(t.Size()),
	}
}

// ShowStatistics writes a one-line summary of the tree's shape to w,
// terminated by a newline. The line always starts with the number of keys and
// the height:
//
//	3 nodes, height 2 (minimum 2), average depth 1.67, 2 leaves
func (t *Tree) ShowStatistics(w io.Writer) error {
	if w == nil {
		return ErrIllegalArguments
	}
	_, err := fmt.Fprintln(w, t.Statistics().String())
	return err
}
