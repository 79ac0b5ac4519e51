/*
Package textfile provides API helpers to load word lists from text files.

A word list is a plain text file; words are separated by white space. Loading
uses a bounded asynchronous prefetch pipeline internally, while preserving a
synchronous `ReadWords` API: a loader goroutine publishes batches of words,
the caller collects them into a slice.

Besides plain white space splitting, words may be delimited by the line
breaking opportunities of UAX #14, which handles scripts without spaces
between words more gracefully.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package textfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'wordtree'
func tracer() tracing.Trace {
	return tracing.Select("wordtree")
}
