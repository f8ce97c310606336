package kind

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// TagName is the struct tag consulted before the json tag when resolving a
// struct field's external key.
const TagName = "goprops"

// FieldKey resolves a struct field's external key.
// Priority: goprops:"name=..." > json tag name > field name; "-" disables the field.
func FieldKey(sf reflect.StructField) string {
	if gt := sf.Tag.Get(TagName); gt != "" {
		for _, p := range strings.Split(gt, ",") {
			p = strings.TrimSpace(p)
			if strings.HasPrefix(p, "name=") {
				return strings.TrimPrefix(p, "name=")
			}
			if p == "-" {
				return "-"
			}
		}
	}
	if jt := sf.Tag.Get("json"); jt != "" {
		if jt == "-" {
			return "-"
		}
		if i := strings.IndexByte(jt, ','); i >= 0 {
			if jt[:i] != "" {
				return jt[:i]
			}
			return sf.Name
		}
		return jt
	}
	return sf.Name
}

// Lookup returns the value stored under key in v and whether key is an own
// property of v. Maps are keyed by their keys, structs by resolved field keys,
// and slices or arrays by decimal index. Pointers are followed. Other values
// have no own properties.
// Lookup never modifies v.
func Lookup(v any, key string) (any, bool) {
	if IsNil(v) {
		return nil, false
	}
	if m, ok := v.(map[string]any); ok {
		val, present := m[key]
		return val, present
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		return lookupMap(rv, key)
	case reflect.Pointer:
		return Lookup(rv.Elem().Interface(), key)
	case reflect.Struct:
		return lookupStruct(rv, key)
	case reflect.Slice, reflect.Array:
		i, err := strconv.Atoi(key)
		if err != nil || i < 0 || i >= rv.Len() || strconv.Itoa(i) != key {
			return nil, false
		}
		return rv.Index(i).Interface(), true
	}
	return nil, false
}

func lookupMap(rv reflect.Value, key string) (any, bool) {
	kt := rv.Type().Key()
	if kt.Kind() == reflect.String {
		mv := rv.MapIndex(reflect.ValueOf(key).Convert(kt))
		if !mv.IsValid() {
			return nil, false
		}
		return mv.Interface(), true
	}
	iter := rv.MapRange()
	for iter.Next() {
		if fmt.Sprint(iter.Key().Interface()) == key {
			return iter.Value().Interface(), true
		}
	}
	return nil, false
}

func lookupStruct(rv reflect.Value, key string) (any, bool) {
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if sf.Anonymous && sf.Tag.Get("json") == "" && sf.Tag.Get(TagName) == "" {
			fv := rv.Field(i)
			if fv.Kind() == reflect.Pointer {
				if fv.IsNil() {
					continue
				}
				fv = fv.Elem()
			}
			if fv.Kind() == reflect.Struct {
				if val, ok := lookupStruct(fv, key); ok {
					return val, true
				}
				continue
			}
		}
		if !sf.IsExported() {
			continue
		}
		name := FieldKey(sf)
		if name == "-" || name != key {
			continue
		}
		fv := rv.Field(i)
		if !fv.CanInterface() {
			return nil, false
		}
		return fv.Interface(), true
	}
	return nil, false
}
