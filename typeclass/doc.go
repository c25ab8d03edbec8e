/*
Package typeclass answers simple questions about types: is T an integer,
a floating point number, a pointer?

Two flavours are offered. Constraint interfaces (Integer, Float, Arithmetic,
Ordered) restrict type parameters at compile time. Predicates (IsInteger,
IsFloating, IsPointer, IsArithmetic, IsScalar, Same) answer the same questions
as booleans, so generic code may select a specialized path for a class of
element types without needing a value of that type.

Classification looks at the underlying kind of a type. A defined type like

	type Celsius float64

is floating, just like float64. Booleans count as integers.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package typeclass
