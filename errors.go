package goprops

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes
const (
	CodeRequired        = "required"
	CodeInvalidType     = "invalid_type"
	CodeCustomValidator = "custom_validator"
)

// Issue represents a single validation failure.
type Issue struct {
	Path    string `json:"path"`    // JSON Pointer of the offending key or index (for example: /items/2).
	Code    string `json:"code"`    // One of the codes listed above.
	Message string `json:"message"` // Untagged diagnostic text.
	// Params carries structured parameters ({"expected": [...], "received": "Number"})
	// for translation and observability.
	Params map[string]any `json:"params,omitempty"`
}

// Issues is a collection of validation failures that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	lim := min(len(iss), maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(b, "%s at %s", iss[i].Code, iss[i].Path)
	}
	if len(iss) > lim {
		fmt.Fprintf(b, "; ... (total %d)", len(iss))
	}
	return b.String()
}

var (
	// ErrInvalidConfiguration is matched by every *ConfigError.
	ErrInvalidConfiguration = errors.New("goprops: invalid configuration")
	// ErrNotObject is returned by Check when the input is not an object.
	ErrNotObject = errors.New("goprops: value is not an object")
	// ErrNotArray is returned by Check when the input is not a slice or array.
	ErrNotArray = errors.New("goprops: value is not an array")
	// ErrUnsupportedEntry is returned by Normalize for schema entries it cannot interpret.
	ErrUnsupportedEntry = errors.New("goprops: unsupported schema entry")
)

// ConfigError reports a log level outside the recognized set.
type ConfigError struct {
	Value   string
	Allowed []string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("Invalid log level: %s, specify one of these: %s", e.Value, strings.Join(e.Allowed, ","))
}

// Is makes errors.Is(err, ErrInvalidConfiguration) hold.
func (e *ConfigError) Is(target error) bool { return target == ErrInvalidConfiguration }

// ValidationError carries a diagnosed validation failure. It is the panic
// value under LogThrow and the error returned by Check.
type ValidationError struct {
	Issue
	tagged string
}

func (e *ValidationError) Error() string {
	if e.tagged != "" {
		return e.tagged
	}
	return tag(e.Message)
}

// Issues returns the failure as a one-element Issues.
func (e *ValidationError) Issues() Issues { return Issues{e.Issue} }

// AsValidationError extracts a *ValidationError from err using errors.As.
func AsValidationError(err error) (*ValidationError, bool) {
	if err == nil {
		return nil, false
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// AsIssues extracts Issues from an error. A *ValidationError yields its
// single issue.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	if ve, ok := AsValidationError(err); ok {
		return ve.Issues(), true
	}
	return nil, false
}
