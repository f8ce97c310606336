package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	got := T(KeyRequired, map[string]string{"kind": "prop", "name": `"name"`})
	assert.Equal(t, `Missing required prop: "name"`, got)

	SetLanguage("ja")
	t.Cleanup(func() { SetLanguage("en") })
	assert.Equal(t, "要素", T(KeyNounElement, nil))
	assert.NotEqual(t, "Missing required prop: 1", T(KeyRequired, map[string]string{"kind": "prop", "name": "1"}))
}

func TestSetLanguage_UnknownFallsBackToEnglish(t *testing.T) {
	SetLanguage("xx")
	t.Cleanup(func() { SetLanguage("en") })
	assert.Equal(t, "prop", T(KeyNounProp, nil))
}

func TestRender_LeavesUnknownPlaceholders(t *testing.T) {
	assert.Equal(t, "a {b} c", Render("a {b} {c}", map[string]string{"c": "c"}))
	assert.Equal(t, "plain", Render("plain", map[string]string{"x": "y"}))
}

type upper struct{}

func (upper) Message(key string, data map[string]string) string { return "X:" + key }

func TestSetTranslator(t *testing.T) {
	SetTranslator(upper{})
	t.Cleanup(func() { SetTranslator(nil) })
	assert.Equal(t, "X:required", T(KeyRequired, nil))
}
