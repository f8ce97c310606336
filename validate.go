package goprops

import (
	"strings"

	"github.com/reoring/goprops/internal/kind"
)

// validateProp runs the decision sequence for one value: required-absence,
// optional-missing, type check, custom validator. It returns nil when the
// value passes. Failures are reported through snap before returning.
func validateProp(snap *snapshot, c fieldContext, name string, value any, p Prop, isAbsent bool) *Issue {
	if p.Required && isAbsent {
		return report(snap, Issue{
			Path:    pointer(name),
			Code:    CodeRequired,
			Message: requiredMessage(c, name),
		})
	}
	if !p.Required && kind.IsNil(value) {
		return nil
	}
	if p.hasTypeConstraint() {
		types := p.candidateTypes()
		valid := false
		expected := make([]string, 0, len(types))
		for i := 0; i < len(types) && !valid; i++ {
			var label string
			valid, label = AssertType(value, types[i])
			expected = append(expected, label)
		}
		if !valid {
			return report(snap, Issue{
				Path:    pointer(name),
				Code:    CodeInvalidType,
				Message: invalidTypeMessage(c, name, value, expected),
				Params:  map[string]any{"expected": expected, "received": kind.RawType(value)},
			})
		}
	}
	if p.Validator != nil && !p.Validator(value) {
		return report(snap, Issue{
			Path:    pointer(name),
			Code:    CodeCustomValidator,
			Message: customValidatorMessage(c, name),
		})
	}
	return nil
}

// report applies the log level policy to iss and returns it.
func report(snap *snapshot, iss Issue) *Issue {
	lvl := snap.cfg.LogLevel
	switch lvl {
	case LogNone:
	case LogThrow:
		panic(&ValidationError{Issue: iss, tagged: tag(iss.Message)})
	default:
		snap.sink.Log(Diagnostic{Level: lvl, Message: tag(iss.Message), Issue: iss})
	}
	return &iss
}

// pointer renders name as a one-segment JSON Pointer (RFC 6901).
func pointer(name string) string {
	return "/" + strings.ReplaceAll(strings.ReplaceAll(name, "~", "~0"), "/", "~1")
}
