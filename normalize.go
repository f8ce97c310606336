package goprops

import (
	"fmt"
	"reflect"
)

// Prop is the canonical schema entry for one value.
type Prop struct {
	// Type is a Type, Types, or nil for no type constraint. An empty Types
	// matches nothing.
	Type TypeSpec
	// Required fails the check when the key is absent.
	Required bool
	// Validator is an optional predicate run after the type check. It may
	// itself call another validator's Validate to compose schemas; schemas
	// must be acyclic.
	Validator func(any) bool
}

// Normalize canonicalizes a schema entry. A Type, Types, []Type or
// reflect.Type is shorthand for Prop{Type: entry, Required: true}; a Prop or
// *Prop is returned as an equal record. Candidate lists are copied, so the
// result does not alias entry. Normalizing a Prop twice yields the same
// record.
func Normalize(entry any) (Prop, error) {
	switch e := entry.(type) {
	case Prop:
		return e.clone(), nil
	case *Prop:
		if e == nil {
			return Prop{}, fmt.Errorf("%w: nil *Prop", ErrUnsupportedEntry)
		}
		return e.clone(), nil
	case Type:
		return Prop{Type: e, Required: true}, nil
	case Types:
		return Prop{Type: append(make(Types, 0, len(e)), e...), Required: true}, nil
	case []Type:
		return Prop{Type: append(make(Types, 0, len(e)), e...), Required: true}, nil
	case reflect.Type:
		if e == nil {
			break
		}
		return Prop{Type: Nominal("", e), Required: true}, nil
	}
	return Prop{}, fmt.Errorf("%w: %T", ErrUnsupportedEntry, entry)
}

func (p Prop) clone() Prop {
	if ts, ok := p.Type.(Types); ok {
		p.Type = append(make(Types, 0, len(ts)), ts...)
	}
	return p
}

// hasTypeConstraint reports whether a type check applies. A nil Type is no
// constraint; an empty Types is a constraint nothing satisfies.
func (p Prop) hasTypeConstraint() bool { return p.Type != nil }

// candidateTypes returns the descriptors to try in declaration order.
func (p Prop) candidateTypes() []Type {
	if p.Type == nil {
		return nil
	}
	return p.Type.candidates()
}

func mustNormalize(entry any) Prop {
	p, err := Normalize(entry)
	if err != nil {
		panic(err)
	}
	return p
}
