package goprops

import (
	"reflect"

	"github.com/reoring/goprops/internal/kind"
)

// AssertType reports whether v matches t and returns t's label.
//
// Primitive descriptors compare the value's fundamental kind; a pointer to a
// primitive also matches (the boxed form). Object matches any non-nil object
// value, Array any slice or array, and nominal descriptors match values of
// the named type, pointers to it, and implementations when it is an
// interface.
func AssertType(v any, t Type) (matches bool, label string) {
	label = t.Name()
	switch t.class {
	case classPrimitive:
		k := kind.Of(v)
		matches = k == t.prim
		if !matches && k == kind.Object {
			boxed, ok := kind.Boxed(v)
			matches = ok && boxed == t.prim
		}
	case classObject:
		matches = kind.IsObject(v)
	case classArray:
		matches = kind.IsSequence(v)
	default:
		matches = instanceOf(v, t.rt)
	}
	return matches, label
}

func instanceOf(v any, rt reflect.Type) bool {
	if rt == nil || kind.IsNil(v) {
		return false
	}
	vt := reflect.TypeOf(v)
	switch {
	case vt == rt:
		return true
	case rt.Kind() == reflect.Interface:
		return vt.Implements(rt)
	case vt.Kind() == reflect.Pointer && vt.Elem() == rt:
		return true
	case rt.Kind() == reflect.Pointer && rt.Elem() == vt:
		return true
	}
	return false
}
