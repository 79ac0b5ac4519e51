package wordtree

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Tree2Dot outputs the internal structure of a Tree in Graphviz DOT format
// (for debugging purposes). Absent children are drawn as small empty circles,
// which makes the left/right position of single children visible.
func Tree2Dot(tree *Tree, w io.Writer) error {
	if w == nil {
		return ErrIllegalArguments
	}
	bw := bufio.NewWriter(w)
	bw.WriteString("strict digraph {\n")
	bw.WriteString("\tnode [fontname=Arial,fontsize=12];\n")
	if tree != nil {
		var nodelist, edgelist strings.Builder
		for id, n := range tree.nodes {
			fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\" %s];\n", id, dotEscape(n.key), nodeDotStyles(n.isLeaf()))
			if n.isLeaf() {
				continue
			}
			for i, child := range []int{n.left, n.right} {
				if child == absent {
					nilid := fmt.Sprintf("nil%d_%d", id, i)
					fmt.Fprintf(&nodelist, "\"%s\" %s;\n", nilid, emptyNode())
					fmt.Fprintf(&edgelist, "\"%d\" -> \"%s\";\n", id, nilid)
				} else {
					fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", id, child)
				}
			}
		}
		bw.WriteString(nodelist.String())
		bw.WriteString(edgelist.String())
	}
	bw.WriteString("}\n")
	if err := bw.Flush(); err != nil {
		T().Errorf("tree DOT: %s", err.Error())
		return err
	}
	return nil
}

func dotEscape(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s)
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.2]"
}

func nodeDotStyles(isleaf bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",fillcolor=\"#a3d7e4\",shape=box"
	} else {
		s += ",color=black,fillcolor=white,shape=ellipse"
	}
	return s
}
