package kind

import (
	"fmt"
	"math"
	"math/big"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// ToNumber converts v to a float64 the way a loosely typed runtime would:
// numeric strings parse, booleans become 0/1, null becomes 0, dates become
// epoch milliseconds and everything else is NaN.
func ToNumber(v any) float64 {
	switch Of(v) {
	case Null:
		return 0
	case Boolean:
		if reflect.ValueOf(v).Bool() {
			return 1
		}
		return 0
	case Number:
		return numberValue(v)
	case String:
		return parseNumber(reflect.ValueOf(v).String())
	case BigInt:
		f, _ := bigIntOf(v).Float64()
		return f
	}
	if _, ok := Boxed(v); ok {
		return ToNumber(reflect.ValueOf(v).Elem().Interface())
	}
	switch t := v.(type) {
	case time.Time:
		return float64(t.UnixMilli())
	case *time.Time:
		return float64(t.UnixMilli())
	}
	return math.NaN()
}

func numberValue(v any) float64 {
	if n, ok := v.(numberLike); ok {
		if f, err := n.Float64(); err == nil {
			return f
		}
		return math.NaN()
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	}
	return math.NaN()
}

func parseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	switch s {
	case "":
		return 0
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !isRangeErr(err) {
		return math.NaN()
	}
	if math.IsInf(f, 0) && !isRangeErr(err) || math.IsNaN(f) {
		// strconv accepts "inf" and "nan" spellings that are not numbers here.
		return math.NaN()
	}
	return f
}

func isRangeErr(err error) bool {
	ne, ok := err.(*strconv.NumError)
	return ok && ne.Err == strconv.ErrRange
}

func bigIntOf(v any) *big.Float {
	switch b := v.(type) {
	case *big.Int:
		return new(big.Float).SetInt(b)
	case big.Int:
		return new(big.Float).SetInt(&b)
	}
	return new(big.Float)
}

// FormatNumber renders f the way a JavaScript runtime prints numbers:
// integers without exponent below 1e21, NaN and Infinity spelled out.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}
	abs := math.Abs(f)
	if abs < 1e21 && abs >= 1e-6 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	s := strconv.FormatFloat(f, 'e', -1, 64)
	// Go pads the exponent to two digits ("1e-07"); trim to "1e-7".
	if i := strings.IndexByte(s, 'e'); i >= 0 && len(s) > i+3 && s[i+2] == '0' {
		s = s[:i+2] + s[i+3:]
	}
	return s
}

// ToString converts v to text the way string interpolation would: strings
// verbatim, numbers via FormatNumber, sequences comma-joined and other
// objects as "[object Object]".
func ToString(v any) string {
	switch Of(v) {
	case Null:
		return "null"
	case String:
		return reflect.ValueOf(v).String()
	case Number:
		return FormatNumber(numberValue(v))
	case Boolean:
		return strconv.FormatBool(reflect.ValueOf(v).Bool())
	case BigInt:
		switch b := v.(type) {
		case *big.Int:
			return b.String()
		case big.Int:
			return b.String()
		}
	case Symbol, Function:
		return fmt.Sprint(v)
	}
	if _, ok := Boxed(v); ok {
		return ToString(reflect.ValueOf(v).Elem().Interface())
	}
	switch t := v.(type) {
	case fmt.Stringer:
		return t.String()
	case error:
		return t.Error()
	}
	if IsSequence(v) {
		rv := reflect.ValueOf(v)
		parts := make([]string, rv.Len())
		for i := range parts {
			ev := rv.Index(i).Interface()
			if !IsNil(ev) {
				parts[i] = ToString(ev)
			}
		}
		return strings.Join(parts, ",")
	}
	return "[object Object]"
}
