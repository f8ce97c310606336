package kind

import (
	"math/big"
	"reflect"
	"regexp"
	"time"
)

// Kind is the fundamental kind of a runtime value. It plays the role of a
// dynamic language's typeof: every value belongs to exactly one Kind.
type Kind int

const (
	Null Kind = iota
	String
	Number
	Boolean
	Function
	Symbol
	BigInt
	Object
)

var kindNames = [...]string{
	Null:     "null",
	String:   "string",
	Number:   "number",
	Boolean:  "boolean",
	Function: "function",
	Symbol:   "symbol",
	BigInt:   "bigint",
	Object:   "object",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// SymbolValue is a unique, non-string identity token. Two symbols with the
// same description are still distinct values when compared by pointer.
type SymbolValue struct {
	Description string
}

func (s SymbolValue) String() string { return "Symbol(" + s.Description + ")" }

var (
	_symbolType  = reflect.TypeOf(SymbolValue{})
	_bigIntType  = reflect.TypeOf(big.Int{})
	_timeType    = reflect.TypeOf(time.Time{})
	_regexpType  = reflect.TypeOf(regexp.Regexp{})
	_errorType   = reflect.TypeOf((*error)(nil)).Elem()
	_numberIface = reflect.TypeOf((*numberLike)(nil)).Elem()
)

// numberLike matches json.Number and compatible decimal string types.
type numberLike interface {
	Float64() (float64, error)
	Int64() (int64, error)
	String() string
}

// IsNil reports whether v is an untyped nil or a typed nil of a nillable kind.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// Of returns the fundamental kind of v.
func Of(v any) Kind {
	if IsNil(v) {
		return Null
	}
	return ofType(reflect.TypeOf(v))
}

func ofType(t reflect.Type) Kind {
	switch t {
	case _symbolType, reflect.PointerTo(_symbolType):
		return Symbol
	case _bigIntType, reflect.PointerTo(_bigIntType):
		return BigInt
	}
	switch t.Kind() {
	case reflect.String:
		if t.Implements(_numberIface) {
			return Number
		}
		return String
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return Number
	case reflect.Bool:
		return Boolean
	case reflect.Func:
		return Function
	}
	return Object
}

// Boxed reports the kind held behind a non-nil pointer to a primitive, the
// closest analogue of a primitive wrapper object. ok is false when v is not
// such a pointer.
func Boxed(v any) (Kind, bool) {
	if IsNil(v) {
		return Null, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer {
		return Null, false
	}
	k := ofType(rv.Type().Elem())
	switch k {
	case String, Number, Boolean, Function:
		return k, true
	}
	return Null, false
}

// IsSequence reports whether v is a non-nil slice or an array.
func IsSequence(v any) bool {
	if IsNil(v) {
		return false
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		return true
	}
	return false
}

// IsObject reports whether v is a non-nil value of object kind.
func IsObject(v any) bool { return Of(v) == Object }

// RawType returns the type tag used in diagnostics ("String", "Array",
// "Date", ...). Boxed primitives report the tag of the value they hold.
func RawType(v any) string {
	switch Of(v) {
	case Null:
		return "Null"
	case String:
		return "String"
	case Number:
		return "Number"
	case Boolean:
		return "Boolean"
	case Function:
		return "Function"
	case Symbol:
		return "Symbol"
	case BigInt:
		return "BigInt"
	}
	if k, ok := Boxed(v); ok {
		return titles[k]
	}
	t := reflect.TypeOf(v)
	if t.Implements(_errorType) {
		return "Error"
	}
	base := t
	if base.Kind() == reflect.Pointer {
		base = base.Elem()
	}
	switch {
	case base == _timeType:
		return "Date"
	case base == _regexpType:
		return "RegExp"
	case t.Kind() == reflect.Slice || t.Kind() == reflect.Array:
		return "Array"
	}
	return "Object"
}

var titles = map[Kind]string{
	String:   "String",
	Number:   "Number",
	Boolean:  "Boolean",
	Function: "Function",
}
