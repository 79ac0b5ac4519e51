/*
Package order provides insertion-order producers for word trees.

A tree without rebalancing takes its shape from the order of insertions. This
package offers three ways to feed the same list of words into a tree:

	AsRead      words in the order given (for a sorted dictionary this
	            degrades the tree into a list)
	Shuffled    words in random order
	Balanced    words sorted, then the middle word first, recursively for
	            both halves; this yields a tree of minimal height

Producers accept any Inserter, not only *wordtree.Tree.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package order

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'wordtree'
func tracer() tracing.Trace {
	return tracing.Select("wordtree")
}
