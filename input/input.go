// Package input decodes loosely typed documents into the values goprops
// validators inspect: objects become map[string]any, arrays []any, and JSON
// numbers json.Number so no precision is lost before validation.
package input

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime"
	"strings"

	gojson "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Format names a document encoding.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

func (f Format) String() string {
	if f == FormatYAML {
		return "yaml"
	}
	return "json"
}

// ErrTrailingData is returned when a JSON document is followed by more data.
var ErrTrailingData = errors.New("input: trailing data after document")

// JSON decodes a single JSON document.
func JSON(data []byte) (any, error) { return JSONReader(bytes.NewReader(data)) }

// JSONReader decodes a single JSON document from r.
func JSONReader(r io.Reader) (any, error) {
	dec := gojson.NewDecoder(r)
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("input: decode json: %w", err)
	}
	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, ErrTrailingData
	}
	return v, nil
}

// YAML decodes the first YAML document in data. An empty document decodes
// to nil.
func YAML(data []byte) (any, error) { return YAMLReader(bytes.NewReader(data)) }

// YAMLReader decodes the first YAML document from r.
func YAMLReader(r io.Reader) (any, error) {
	var v any
	if err := yaml.NewDecoder(r).Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("input: decode yaml: %w", err)
	}
	return v, nil
}

// Decode decodes data in the given format.
func Decode(data []byte, f Format) (any, error) {
	if f == FormatYAML {
		return YAML(data)
	}
	return JSON(data)
}

// DecodeReader decodes a document from r in the given format.
func DecodeReader(r io.Reader, f Format) (any, error) {
	if f == FormatYAML {
		return YAMLReader(r)
	}
	return JSONReader(r)
}

// FormatFromContentType picks a Format from an HTTP Content-Type header.
// Anything that is not a YAML media type is treated as JSON.
func FormatFromContentType(ct string) Format {
	mt, _, err := mime.ParseMediaType(ct)
	if err != nil {
		mt = strings.ToLower(strings.TrimSpace(ct))
	}
	switch mt {
	case "application/yaml", "application/x-yaml", "text/yaml", "text/x-yaml":
		return FormatYAML
	}
	if strings.HasSuffix(mt, "+yaml") {
		return FormatYAML
	}
	return FormatJSON
}
