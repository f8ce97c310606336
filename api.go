package goprops

import (
	"reflect"
	"strconv"

	"github.com/reoring/goprops/internal/kind"
)

// Checker is implemented by ObjectSchema and ArraySchema.
type Checker interface {
	// Validate reports whether v conforms. Under LogThrow a diagnosed failure
	// panics with *ValidationError.
	Validate(v any) bool
	// Check runs the same validation and returns the failure as an error:
	// *ValidationError for a diagnosed failure (including one raised under
	// LogThrow), ErrNotObject/ErrNotArray for a wrong input shape.
	Check(v any) error
}

// Field pairs an object key with its schema entry. A nil Entry imposes no
// constraint.
type Field struct {
	Key   string
	Entry any
}

// Key builds a Field.
func Key(name string, entry any) Field { return Field{Key: name, Entry: entry} }

// ---------------- Object ----------------

// ObjectSchema validates the attributes of an object against per-key
// entries, in declaration order.
type ObjectSchema struct {
	store *Store
	keys  []string
	props []Prop
}

var _ Checker = (*ObjectSchema)(nil)

// ObjectValidator returns an object validator bound to the Default store.
// It panics if an entry cannot be normalized.
func ObjectValidator(fields ...Field) *ObjectSchema { return defaultStore.ObjectValidator(fields...) }

// ObjectValidator returns an object validator bound to st.
func (st *Store) ObjectValidator(fields ...Field) *ObjectSchema {
	o := &ObjectSchema{store: st}
	for _, f := range fields {
		if isNilEntry(f.Entry) {
			continue
		}
		o.keys = append(o.keys, f.Key)
		o.props = append(o.props, mustNormalize(f.Entry))
	}
	return o
}

// Keys returns the constrained keys in declaration order.
func (o *ObjectSchema) Keys() []string { return append([]string(nil), o.keys...) }

// Validate reports whether v conforms. It is true when validation is
// disabled and false, without a diagnostic, when v is not an object. Keys
// missing from v fail only when required; keys not in the schema are
// ignored. Validation stops at the first failing key.
func (o *ObjectSchema) Validate(v any) bool {
	ok, _ := o.run(v)
	return ok
}

// Check is Validate returning the failure as an error.
func (o *ObjectSchema) Check(v any) (err error) {
	defer recoverValidation(&err)
	_, err = o.run(v)
	return err
}

func (o *ObjectSchema) run(v any) (bool, error) {
	snap := o.store.load()
	if !snap.cfg.Enabled {
		return true, nil
	}
	if !kind.IsObject(v) {
		return false, ErrNotObject
	}
	for i, key := range o.keys {
		val, present := kind.Lookup(v, key)
		if iss := validateProp(snap, contextProp, key, val, o.props[i], !present); iss != nil {
			return false, validationError(*iss)
		}
	}
	return true, nil
}

// ---------------- Array ----------------

// ArraySchema validates every element of a sequence against one entry.
type ArraySchema struct {
	store *Store
	prop  Prop
}

var _ Checker = (*ArraySchema)(nil)

// ArrayValidator returns an array validator bound to the Default store. It
// panics if entry cannot be normalized.
func ArrayValidator(entry any) *ArraySchema { return defaultStore.ArrayValidator(entry) }

// ArrayValidator returns an array validator bound to st.
func (st *Store) ArrayValidator(entry any) *ArraySchema {
	return &ArraySchema{store: st, prop: mustNormalize(entry)}
}

// Validate reports whether every element of v conforms. It is true when
// validation is disabled and false, without a diagnostic, when v is not a
// slice or array. A nil slice is an empty sequence. Elements are never
// absent, so only the type and custom checks apply.
func (a *ArraySchema) Validate(v any) bool {
	ok, _ := a.run(v)
	return ok
}

// Check is Validate returning the failure as an error.
func (a *ArraySchema) Check(v any) (err error) {
	defer recoverValidation(&err)
	_, err = a.run(v)
	return err
}

func (a *ArraySchema) run(v any) (bool, error) {
	snap := a.store.load()
	if !snap.cfg.Enabled {
		return true, nil
	}
	if elems, ok := v.([]any); ok {
		for i, e := range elems {
			if iss := validateProp(snap, contextElement, strconv.Itoa(i), e, a.prop, false); iss != nil {
				return false, validationError(*iss)
			}
		}
		return true, nil
	}
	rv := reflect.ValueOf(v)
	if k := rv.Kind(); k != reflect.Slice && k != reflect.Array {
		return false, ErrNotArray
	}
	for i := 0; i < rv.Len(); i++ {
		if iss := validateProp(snap, contextElement, strconv.Itoa(i), rv.Index(i).Interface(), a.prop, false); iss != nil {
			return false, validationError(*iss)
		}
	}
	return true, nil
}

// ---- helpers ----

func validationError(iss Issue) *ValidationError {
	return &ValidationError{Issue: iss, tagged: tag(iss.Message)}
}

// recoverValidation turns a LogThrow panic into the returned error. Other
// panics propagate.
func recoverValidation(err *error) {
	r := recover()
	if r == nil {
		return
	}
	if ve, ok := r.(*ValidationError); ok {
		*err = ve
		return
	}
	panic(r)
}

func isNilEntry(e any) bool {
	if e == nil {
		return true
	}
	if p, ok := e.(*Prop); ok && p == nil {
		return true
	}
	return false
}
