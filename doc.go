/*
Package wordtree offers an ordered set of strings, backed by an unbalanced
binary search tree.

Word Trees

A word tree stores every distinct word exactly once and keeps the words in
lexicographic (byte-wise) order. Lookups, insertions and ordered iteration are
supported; there is no deletion.

The tree never rebalances itself. Its shape is a pure function of the order in
which words have been inserted, and this is the whole point: inserting a
dictionary in file order, in shuffled order, or in a "middle element first"
order produces trees of wildly different heights, and lookup times follow
the height.

	Insertion order    |   Height
	-------------------+------------------------
	sorted             |   n   (a linked list)
	shuffled           |   ~ 2.99 · log2(n)
	balanced-recursive |   ⌈log2(n+1)⌉

Clients usually fill a tree by one of the producers of package order and
inspect it with Statistics, Median or a Cursor.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package wordtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the tracer with key 'wordtree'.
func T() tracing.Trace {
	return tracing.Select("wordtree")
}

// TreeError is an error type for the wordtree module
type TreeError string

func (e TreeError) Error() string {
	return string(e)
}

// ErrInvariant is flagged by Check whenever the structure of a tree is
// inconsistent.
const ErrInvariant = TreeError("tree invariant violated")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = TreeError("illegal arguments")
