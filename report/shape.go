package report

import (
	"errors"
	"fmt"
	"io"

	"github.com/npillmayer/wordtree"
	"github.com/pterm/pterm"
)

// ErrTooLarge is returned by RenderShape for trees with more nodes than
// requested.
var ErrTooLarge = errors.New("report: tree too large to render")

// DefaultShapeLimit is the largest tree RenderShape is normally asked to draw.
const DefaultShapeLimit = 64

// RenderShape draws tree as an indented tree, the root at the top, each node
// followed by its left and right subtree. Children are prefixed by '<' (left)
// or '>' (right), so single children show their side. Trees with more than
// limit nodes are refused with ErrTooLarge.
//
// RenderShape writes plain text without escape sequences.
func RenderShape(tree *wordtree.Tree, w io.Writer, limit int) error {
	return renderShape(tree, w, limit, false)
}

// plainTree is a tree printer without styles.
var plainTree = pterm.DefaultTree.WithTreeStyle(pterm.NewStyle()).WithTextStyle(pterm.NewStyle())

func renderShape(tree *wordtree.Tree, w io.Writer, limit int, colored bool) error {
	if w == nil {
		return ErrNoOutput
	}
	if tree.Size() > limit {
		return fmt.Errorf("%w: %d nodes, limit is %d", ErrTooLarge, tree.Size(), limit)
	}
	if tree.IsEmpty() {
		_, err := io.WriteString(w, "(empty)\n")
		return err
	}
	ll := shapeList(tree)
	tracer().Debugf("|ll| = %d", len(ll))
	root := pterm.NewTreeFromLeveledList(ll)
	printer := plainTree
	if colored {
		printer = &pterm.DefaultTree
	}
	out, err := printer.WithRoot(root).Srender()
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

// shapeList converts tree to a pterm leveled list in pre-order.
func shapeList(tree *wordtree.Tree) pterm.LeveledList {
	ll := make(pterm.LeveledList, 0, tree.Size())
	_ = tree.EachNode(func(n wordtree.NodeInfo) error {
		ll = append(ll, pterm.LeveledListItem{
			Level: n.Depth - 1,
			Text:  sideMarker(n.Side) + n.Key,
		})
		return nil
	})
	return ll
}

func sideMarker(s wordtree.Side) string {
	switch s {
	case wordtree.Left:
		return "< "
	case wordtree.Right:
		return "> "
	}
	return ""
}

// Shape renders tree to the reporter's output, see RenderShape. The tree
// lines are styled only if r is colored.
func (r *Reporter) Shape(tree *wordtree.Tree, limit int) error {
	if r == nil {
		return ErrNoOutput
	}
	return renderShape(tree, r.w, limit, r.colored)
}
