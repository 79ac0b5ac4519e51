/*
Command minispell is a tiny spell checker, built to show how the order of
insertions shapes an unbalanced binary search tree.

It reads a dictionary into a word tree, either in the order of the file,
shuffled, or in "perfect-balance" order, reports the insertion time and the
shape of the resulting tree, and then looks up every word of a second file.

	minispell [options] [file-to-check]

	-f, --file-order       Insert words in the order they appear (default).
	-s, --shuffled-order   Insert words in a random order.
	-b, --balanced-order   Insert words in a balanced order.
	-n, --num-dict-words   Number of words to read from the dictionary.
	-m, --num-check-words  Number of words to check for spelling.
	-d, --dict-file        Use a different dictionary file.

Environment variables WORDTREE_DICT and WORDTREE_CHECK override the default
files; flags override the environment.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2020–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'wordtree'
func tracer() tracing.Trace {
	return tracing.Select("wordtree")
}
