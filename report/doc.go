/*
Package report formats the results of a word tree run for a console.

Output mirrors the classic spell checker benchmark:

	 - insertion took 0.0213 seconds
	 - 45392 nodes, height 44 (minimum 16), average depth 21.37, 15188 leaves
	 - median word in dictionary: 'loaf'

	 - looking up took 0.0185 seconds
	 - 45392 words read, 45391 in dictionary

Values are colored if the output is a terminal. Small trees may be rendered
as an indented tree, to make their shape visible.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package report

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'wordtree'
func tracer() tracing.Trace {
	return tracing.Select("wordtree")
}
