package i18n

import (
	"strings"
	"sync/atomic"
)

// Message keys understood by the built-in catalogue.
const (
	KeyRequired        = "required"         // {kind} {name}
	KeyInvalidType     = "invalid_type"     // {kind} {name} {expected}
	KeyCustomValidator = "custom_validator" // {kind} {name}
	KeyExpectedValue   = "expected_value"   // {value}
	KeyReceived        = "received"         // {type}
	KeyReceivedValue   = "received_value"   // {value}
	KeyNounProp        = "noun.prop"
	KeyNounElement     = "noun.element"
)

// Translator retrieves localized message templates and renders them.
// data provides the values substituted for {placeholders}.
type Translator interface {
	Message(key string, data map[string]string) string
}

var catalogues = map[string]map[string]string{
	"en": {
		// Names the missing prop or element rather than a generic "value".
		KeyRequired:        "Missing required {kind}: {name}",
		KeyInvalidType:     "Invalid {kind}: type check failed for {kind} {name}. Expected {expected}",
		KeyCustomValidator: "Invalid {kind}: custom validator check failed for {kind} {name}.",
		KeyExpectedValue:   " with value {value}",
		KeyReceived:        ", got {type}",
		KeyReceivedValue:   " with value {value}.",
		KeyNounProp:        "prop",
		KeyNounElement:     "element",
	},
	"ja": {
		KeyRequired:        "必須の{kind}がありません: {name}",
		KeyInvalidType:     "不正な{kind}: {kind} {name} の型チェックに失敗しました。期待する型 {expected}",
		KeyCustomValidator: "不正な{kind}: {kind} {name} のカスタムバリデータが失敗しました。",
		KeyExpectedValue:   "（値 {value}）",
		KeyReceived:        "、実際の型 {type}",
		KeyReceivedValue:   "（値 {value}）。",
		KeyNounProp:        "プロパティ",
		KeyNounElement:     "要素",
	},
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(key string, data map[string]string) string {
	tmpl, ok := catalogues[t.lang][key]
	if !ok {
		tmpl, ok = catalogues["en"][key]
	}
	if !ok {
		return key
	}
	return Render(tmpl, data)
}

// Render substitutes {name} placeholders in tmpl with values from data.
// Placeholders without a value are left as is.
func Render(tmpl string, data map[string]string) string {
	if len(data) == 0 || !strings.Contains(tmpl, "{") {
		return tmpl
	}
	pairs := make([]string, 0, 2*len(data))
	for k, v := range data {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

type holder struct{ tr Translator }

var current atomic.Pointer[holder]

func init() { current.Store(&holder{tr: dictTranslator{lang: "en"}}) }

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if _, ok := catalogues[lang]; !ok {
		lang = "en"
	}
	current.Store(&holder{tr: dictTranslator{lang: lang}})
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version). nil restores English.
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	current.Store(&holder{tr: tr})
}

// T renders the message for key using the current Translator.
func T(key string, data map[string]string) string { return current.Load().tr.Message(key, data) }
