package goprops

import (
	"reflect"
	"time"

	"github.com/reoring/goprops/internal/kind"
)

// typeClass is the closed set of descriptor variants.
type typeClass int

const (
	classNominal typeClass = iota
	classPrimitive
	classObject
	classArray
)

// Type identifies an expected type: a primitive kind, one of the built-in
// containers Object and Array, or a nominal Go type. The zero Type is an
// unnamed nominal type that matches nothing.
type Type struct {
	class typeClass
	prim  kind.Kind
	name  string
	rt    reflect.Type
}

// Primitive descriptors, matched by the value's fundamental kind.
var (
	String   = Type{class: classPrimitive, prim: kind.String, name: "String"}
	Number   = Type{class: classPrimitive, prim: kind.Number, name: "Number"}
	Boolean  = Type{class: classPrimitive, prim: kind.Boolean, name: "Boolean"}
	Function = Type{class: classPrimitive, prim: kind.Function, name: "Function"}
	Symbol   = Type{class: classPrimitive, prim: kind.Symbol, name: "Symbol"}
	BigInt   = Type{class: classPrimitive, prim: kind.BigInt, name: "BigInt"}
)

// Built-in container descriptors.
var (
	// Object matches any non-nil value of object kind, including slices and
	// structs.
	Object = Type{class: classObject, name: "Object"}
	// Array matches slices and arrays.
	Array = Type{class: classArray, name: "Array"}
	// Date matches time.Time and *time.Time.
	Date = Nominal("Date", reflect.TypeOf(time.Time{}))
)

// TypeOf returns a nominal descriptor for T named after T.
func TypeOf[T any]() Type {
	return Nominal("", reflect.TypeOf((*T)(nil)).Elem())
}

// Nominal returns a descriptor matching values of rt (see AssertType). An
// empty name defaults to rt's declared name; unnamed types keep an empty
// label.
func Nominal(name string, rt reflect.Type) Type {
	if name == "" && rt != nil {
		name = rt.Name()
		if name == "" && rt.Kind() == reflect.Pointer {
			name = rt.Elem().Name()
		}
	}
	return Type{class: classNominal, name: name, rt: rt}
}

// Name returns the descriptor's label used in diagnostics.
func (t Type) Name() string { return t.name }

func (t Type) String() string { return t.name }

// Types is a list of candidate descriptors; a value matches if any
// candidate matches.
type Types []Type

// TypeSpec is implemented by Type and Types.
type TypeSpec interface {
	candidates() []Type
}

func (t Type) candidates() []Type   { return []Type{t} }
func (ts Types) candidates() []Type { return ts }

// SymbolValue is the runtime value matched by the Symbol descriptor.
type SymbolValue = kind.SymbolValue

// NewSymbol returns a new symbol with the given description.
func NewSymbol(description string) *SymbolValue { return &SymbolValue{Description: description} }
