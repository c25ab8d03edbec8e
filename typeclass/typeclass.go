package typeclass

import (
	"reflect"
	"sync"

	"golang.org/x/exp/constraints"
)

// Integer is satisfied by all signed and unsigned integer types, including
// byte, rune and uintptr.
type Integer interface {
	constraints.Integer
}

// Float is satisfied by float32 and float64.
type Float interface {
	constraints.Float
}

// Arithmetic is the union of Integer and Float.
type Arithmetic interface {
	constraints.Integer | constraints.Float
}

// Ordered is satisfied by every type supporting the operators < <= >= >.
type Ordered = constraints.Ordered

// Traits holds the classification of a type.
type Traits struct {
	Integer  bool // signed/unsigned integers of any width, bool, byte, rune, uintptr
	Floating bool // float32, float64
	Pointer  bool // *X for any X, unsafe.Pointer
}

// Arithmetic is true for integer and floating types.
func (tr Traits) Arithmetic() bool {
	return tr.Integer || tr.Floating
}

// Scalar is true for arithmetic and pointer types.
func (tr Traits) Scalar() bool {
	return tr.Arithmetic() || tr.Pointer
}

var traitsCache sync.Map // reflect.Type -> Traits

// Of returns the classification of type T. The first call for a type
// inspects it with package reflect, later calls are answered from a cache.
func Of[T any]() Traits {
	typ := reflect.TypeFor[T]()
	if tr, ok := traitsCache.Load(typ); ok {
		return tr.(Traits)
	}
	tr := classify(typ)
	traitsCache.Store(typ, tr)
	return tr
}

func classify(typ reflect.Type) Traits {
	switch typ.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr:
		return Traits{Integer: true}
	case reflect.Float32, reflect.Float64:
		return Traits{Floating: true}
	case reflect.Pointer, reflect.UnsafePointer:
		return Traits{Pointer: true}
	}
	return Traits{}
}

// IsInteger reports whether T is an integer type.
// The first call for a type T does a reflect lookup, see Of.
func IsInteger[T any]() bool { return Of[T]().Integer }

// IsFloating reports whether T is a floating point type.
// The first call for a type T does a reflect lookup, see Of.
func IsFloating[T any]() bool { return Of[T]().Floating }

// IsPointer reports whether T is a pointer type.
// The first call for a type T does a reflect lookup, see Of.
func IsPointer[T any]() bool { return Of[T]().Pointer }

// IsArithmetic reports whether T is an integer or floating point type.
// The first call for a type T does a reflect lookup, see Of.
func IsArithmetic[T any]() bool { return Of[T]().Arithmetic() }

// IsScalar reports whether T is an arithmetic or pointer type.
// The first call for a type T does a reflect lookup, see Of.
func IsScalar[T any]() bool { return Of[T]().Scalar() }

// Same reports whether A and B denote identical types. Defined types are
// distinct from their underlying type, aliases are not.
func Same[A, B any]() bool {
	_, ok := any((*A)(nil)).(*B)
	return ok
}
