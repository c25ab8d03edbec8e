/*
Package rbtree implements an ordered associative container: a red-black tree
backing set, multiset, map and multimap semantics.

# Tree

A Tree stores values of type V, ordered by a key of type K which is extracted
from every value by a key function. Keys are ordered by a single comparator,
a strict weak ordering

	Less(a, b K) bool

Keys a and b for which neither Less(a, b) nor Less(b, a) holds are
equivalent. The tree never tests keys for equality by other means.

	tree, _ := rbtree.New(rbtree.Config[int, int]{
	    Less:  func(a, b int) bool { return a < b },
	    KeyOf: rbtree.Identity[int](),
	})
	tree.InsertUnique(10)
	tree.InsertUnique(5)
	for it := tree.Begin(); !it.IsEnd(); it = it.Next() {
	    fmt.Println(it.Value())
	}

Sets use Identity as the key function, maps store a Pair and use Select1st.
Unique-key semantics are selected by calling InsertUnique, multi-key semantics
by calling InsertEqual. Equivalent keys inserted with InsertEqual keep their
insertion order.

# Header

Every tree owns a header node which never carries a payload. Its parent link
is the root of the tree, its left link caches the minimum node and its right
link caches the maximum node. An empty tree has no root and both caches point
back to the header. The header is the end position of the tree: incrementing
the maximum yields the header, decrementing the header yields the maximum.
The header is marked by an explicit flag, not by its color.

# Iterators

Iterators are bidirectional and compare by node identity. Erasing an element
invalidates only iterators to that element. When a node with two children is
erased, its in-order successor node is relinked into its place; the successor
keeps its payload, so iterators to the successor stay valid.

# Concurrency

A tree is a single-owner data structure without internal synchronization.
Concurrent readers are fine as long as no goroutine mutates the tree;
mutations require exclusive access.

	Operation            |  Complexity
	---------------------+------------------
	Insert/Find/Erase    |  O(log n)
	Begin/End/Len        |  O(1)
	Next/Prev            |  O(1) amortized
	Clone                |  O(n)
	Swap                 |  O(1)

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
package rbtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'rbtree'
func tracer() tracing.Trace {
	return tracing.Select("rbtree")
}

func assertThat(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
