// Package rules provides ready-made predicates for Prop.Validator and
// combinators to compose them.
package rules

import (
	"fmt"
	"math"
	"reflect"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/reoring/goprops/internal/kind"
)

// Rule reports whether a value is acceptable. It has the shape of
// goprops.Prop.Validator.
type Rule = func(any) bool

// Op defines simple comparison operators for Compare and If.
type Op int

const (
	Eq Op = iota
	Ne
	Lt
	Le
	Gt
	Ge
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func engine() *validator.Validate {
	validateOnce.Do(func() { validate = validator.New() })
	return validate
}

// Tag checks a value with a go-playground/validator tag such as "email" or
// "min=3,max=20". An unknown tag makes the rule fail.
func Tag(tag string) Rule {
	return func(v any) (ok bool) {
		if kind.IsNil(v) {
			return false
		}
		defer func() {
			if recover() != nil {
				ok = false
			}
		}()
		return engine().Var(v, tag) == nil
	}
}

// OneOf accepts values deeply equal to one of allowed.
func OneOf(allowed ...any) Rule {
	return func(v any) bool {
		for _, a := range allowed {
			if reflect.DeepEqual(v, a) {
				return true
			}
		}
		return false
	}
}

// All accepts a value every rule accepts. Nil rules are skipped.
func All(rules ...Rule) Rule {
	return func(v any) bool {
		for _, r := range rules {
			if r != nil && !r(v) {
				return false
			}
		}
		return true
	}
}

// Any accepts a value at least one rule accepts.
func Any(rules ...Rule) Rule {
	return func(v any) bool {
		for _, r := range rules {
			if r != nil && r(v) {
				return true
			}
		}
		return false
	}
}

// Not inverts r.
func Not(r Rule) Rule { return func(v any) bool { return !r(v) } }

// Len accepts strings (counted in runes), slices, arrays and maps whose
// length is within [min, max]. A negative max means no upper bound.
func Len(min, max int) Rule {
	return func(v any) bool {
		n, ok := length(v)
		if !ok {
			return false
		}
		return n >= min && (max < 0 || n <= max)
	}
}

// NonEmpty accepts strings and collections with at least one element.
func NonEmpty() Rule { return Len(1, -1) }

// Range accepts numbers within [min, max]. NaN never matches.
func Range(min, max float64) Rule {
	return func(v any) bool {
		if kind.Of(v) != kind.Number {
			return false
		}
		f := kind.ToNumber(v)
		return !math.IsNaN(f) && f >= min && f <= max
	}
}

// Compare accepts values for which `v op want` holds. Eq and Ne use deep
// equality; the ordering operators need two numbers.
func Compare(op Op, want any) Rule {
	return func(v any) bool { return compare(v, op, want) }
}

// At applies r to the value found by following a slash-separated path of
// keys and indices inside the checked value. A missing path fails.
func At(path string, r Rule) Rule {
	segs := splitPath(path)
	return func(v any) bool {
		cur, ok := valueAt(v, segs)
		return ok && r(cur)
	}
}

// Conditional gates rules on a predicate.
type Conditional struct {
	cond Rule
}

// If starts a conditional rule on cond.
func If(cond Rule) Conditional { return Conditional{cond: cond} }

// IfAt starts a conditional on the value at path compared against want, as
// in IfAt("status", Eq, "archived").
func IfAt(path string, op Op, want any) Conditional {
	return Conditional{cond: At(path, Compare(op, want))}
}

// And narrows the condition.
func (c Conditional) And(others ...Rule) Conditional {
	return Conditional{cond: All(append([]Rule{c.cond}, others...)...)}
}

// Or widens the condition.
func (c Conditional) Or(others ...Rule) Conditional {
	return Conditional{cond: Any(append([]Rule{c.cond}, others...)...)}
}

// Then returns a rule that applies rules only when the condition holds.
func (c Conditional) Then(rules ...Rule) Rule {
	then := All(rules...)
	return func(v any) bool {
		if !c.cond(v) {
			return true
		}
		return then(v)
	}
}

// UniqueBy accepts sequences whose elements have distinct values at key.
// Elements lacking key are ignored. Keys compare by their printed form.
func UniqueBy(key string) Rule {
	segs := splitPath(key)
	return func(v any) bool {
		if !kind.IsSequence(v) {
			return false
		}
		rv := reflect.ValueOf(v)
		seen := make(map[string]struct{}, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			kv, ok := valueAt(rv.Index(i).Interface(), segs)
			if !ok {
				continue
			}
			s := fmt.Sprint(kv)
			if _, dup := seen[s]; dup {
				return false
			}
			seen[s] = struct{}{}
		}
		return true
	}
}

// ------- helpers -------

func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}

func valueAt(v any, segs []string) (any, bool) {
	cur := v
	for _, s := range segs {
		next, ok := kind.Lookup(cur, s)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

func length(v any) (int, bool) {
	if s, ok := v.(string); ok {
		return utf8.RuneCountInString(s), true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return utf8.RuneCountInString(rv.String()), true
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len(), true
	}
	return 0, false
}

func compare(cur any, op Op, want any) bool {
	switch op {
	case Eq:
		return reflect.DeepEqual(cur, want)
	case Ne:
		return !reflect.DeepEqual(cur, want)
	case Lt, Le, Gt, Ge:
		if kind.Of(cur) != kind.Number || kind.Of(want) != kind.Number {
			return false
		}
		a, b := kind.ToNumber(cur), kind.ToNumber(want)
		switch op {
		case Lt:
			return a < b
		case Le:
			return a <= b
		case Gt:
			return a > b
		case Ge:
			return a >= b
		}
	}
	return false
}
