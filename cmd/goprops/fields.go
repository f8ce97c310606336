package main

import (
	"fmt"
	"strings"

	goprops "github.com/reoring/goprops"
)

var typeNames = map[string]goprops.Type{
	"String":   goprops.String,
	"Number":   goprops.Number,
	"Boolean":  goprops.Boolean,
	"Function": goprops.Function,
	"Symbol":   goprops.Symbol,
	"BigInt":   goprops.BigInt,
	"Object":   goprops.Object,
	"Array":    goprops.Array,
	"Date":     goprops.Date,
}

// parseProp reads "Type[|Type...][!]".
func parseProp(s string) (goprops.Prop, error) {
	var p goprops.Prop
	if strings.HasSuffix(s, "!") {
		p.Required = true
		s = strings.TrimSuffix(s, "!")
	}
	var ts goprops.Types
	for _, name := range splitList(s, "|") {
		t, ok := typeNames[name]
		if !ok {
			return goprops.Prop{}, fmt.Errorf("unknown type %q", name)
		}
		ts = append(ts, t)
	}
	switch len(ts) {
	case 0:
	case 1:
		p.Type = ts[0]
	default:
		p.Type = ts
	}
	return p, nil
}

// parseFields reads repeated "name:Type[|Type...][!]" flags.
func parseFields(specs []string) ([]goprops.Field, error) {
	out := make([]goprops.Field, 0, len(specs))
	for _, spec := range specs {
		name, typ, ok := strings.Cut(spec, ":")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid field %q, want name:Type", spec)
		}
		p, err := parseProp(typ)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", name, err)
		}
		out = append(out, goprops.Key(name, p))
	}
	return out, nil
}

func splitList(s, sep string) []string {
	parts := strings.Split(s, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
