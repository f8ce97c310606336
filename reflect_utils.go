package goprops

import (
	"reflect"

	"github.com/reoring/goprops/internal/kind"
)

// ResolveStructKey returns the key under which the object validator finds a
// struct field.
// Priority: goprops:"name=..." > json tag name > field name; "-" hides the field.
func ResolveStructKey(sf reflect.StructField) string { return kind.FieldKey(sf) }
