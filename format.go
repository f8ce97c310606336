package goprops

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/reoring/goprops/i18n"
	"github.com/reoring/goprops/internal/kind"
)

// LibraryTag prefixes every diagnostic message as "[GoProps] ...".
const LibraryTag = "GoProps"

func tag(msg string) string { return "[" + LibraryTag + "] " + msg }

// fieldContext says whether a name refers to an object attribute or an
// array element.
type fieldContext int

const (
	contextProp fieldContext = iota
	contextElement
)

func (c fieldContext) noun() string {
	if c == contextElement {
		return i18n.T(i18n.KeyNounElement, nil)
	}
	return i18n.T(i18n.KeyNounProp, nil)
}

// display quotes attribute names; element indices stay bare.
func (c fieldContext) display(name string) string {
	if c == contextElement {
		return name
	}
	return `"` + name + `"`
}

func requiredMessage(c fieldContext, name string) string {
	return i18n.T(i18n.KeyRequired, map[string]string{"kind": c.noun(), "name": c.display(name)})
}

func customValidatorMessage(c fieldContext, name string) string {
	return i18n.T(i18n.KeyCustomValidator, map[string]string{"kind": c.noun(), "name": c.display(name)})
}

// invalidTypeMessage lists every expected label and the received raw type.
// Literal values are shown only for explicable types, and the expected-value
// clause is left out when there are several candidates or either side is
// Boolean.
func invalidTypeMessage(c fieldContext, name string, value any, expected []string) string {
	labels := make([]string, len(expected))
	for i, e := range expected {
		labels[i] = capitalize(e)
	}
	var b strings.Builder
	b.WriteString(i18n.T(i18n.KeyInvalidType, map[string]string{
		"kind":     c.noun(),
		"name":     c.display(name),
		"expected": strings.Join(labels, ", "),
	}))
	expectedType := ""
	if len(expected) > 0 {
		expectedType = expected[0]
	}
	receivedType := kind.RawType(value)
	if len(expected) == 1 && isExplicable(expectedType) && !isBoolean(expectedType, receivedType) {
		b.WriteString(i18n.T(i18n.KeyExpectedValue, map[string]string{"value": styleValue(value, expectedType)}))
	}
	b.WriteString(i18n.T(i18n.KeyReceived, map[string]string{"type": receivedType}))
	if isExplicable(receivedType) {
		b.WriteString(i18n.T(i18n.KeyReceivedValue, map[string]string{"value": styleValue(value, receivedType)}))
	}
	return b.String()
}

func styleValue(v any, typ string) string {
	switch typ {
	case "String":
		return `"` + kind.ToString(v) + `"`
	case "Number":
		return kind.FormatNumber(kind.ToNumber(v))
	default:
		return kind.ToString(v)
	}
}

func isExplicable(typ string) bool {
	switch strings.ToLower(typ) {
	case "string", "number", "boolean":
		return true
	}
	return false
}

func isBoolean(types ...string) bool {
	for _, t := range types {
		if strings.ToLower(t) == "boolean" {
			return true
		}
	}
	return false
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || unicode.IsUpper(r) {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
