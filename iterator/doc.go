/*
Package iterator classifies iterators by capability and provides the generic
algorithms Distance and Advance, which select their strategy from an
iterator's category.

Iterators in this package have value semantics: stepping an iterator returns
a new iterator and leaves the receiver untouched,

	for it := first; !it.Equal(last); it = it.Next() {
	    ...
	}

A random access iterator computes distances in constant time, all other
iterators are stepped one position at a time.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package iterator
