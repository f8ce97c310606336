package goprops_test

import (
	"encoding/json"
	"errors"
	"math/big"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	goprops "github.com/reoring/goprops"
)

type person struct {
	FirstName string
	LastName  string
}

type animal struct {
	ID    any    `json:"id"`
	Name  string `json:"name,omitempty"`
	Owner *person
}

func TestObjectValidator_ValidAttribute(t *testing.T) {
	st, rec := newStore(t)
	v := st.ObjectValidator(goprops.Key("name", goprops.String))
	assert.True(t, v.Validate(map[string]any{"name": "Chili"}))
	assert.Empty(t, rec.messages())
}

func TestObjectValidator_InvalidAttribute(t *testing.T) {
	st, rec := newStore(t)
	v := st.ObjectValidator(goprops.Key("name", goprops.String))
	assert.False(t, v.Validate(map[string]any{"name": 123}))
	assert.Equal(t, []string{
		`[GoProps] Invalid prop: type check failed for prop "name". Expected String with value "123", got Number with value 123.`,
	}, rec.messages())
	assert.Equal(t, goprops.LogError, rec.got[0].Level)
	assert.Equal(t, goprops.CodeInvalidType, rec.got[0].Issue.Code)
	assert.Equal(t, "/name", rec.got[0].Issue.Path)
}

func TestObjectValidator_NativeTypes(t *testing.T) {
	st, rec := newStore(t)
	cases := []struct {
		name  string
		typ   goprops.Type
		value any
	}{
		{"string", goprops.String, "string"},
		{"number", goprops.Number, 123},
		{"float", goprops.Number, 1.5},
		{"json number", goprops.Number, json.Number("42")},
		{"boolean", goprops.Boolean, false},
		{"object", goprops.Object, map[string]any{"val": 1}},
		{"struct object", goprops.Object, person{}},
		{"array", goprops.Array, []int{1, 2}},
		{"function", goprops.Function, func() string { return "fun" }},
		{"symbol", goprops.Symbol, goprops.NewSymbol("foo")},
		{"bigint", goprops.BigInt, big.NewInt(9007199254740991)},
		{"date", goprops.Date, time.Now()},
		{"nominal", goprops.TypeOf[person](), person{FirstName: "John", LastName: "Doe"}},
		{"nominal pointer", goprops.TypeOf[person](), &person{FirstName: "John"}},
		{"interface", goprops.TypeOf[error](), errors.New("boom")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := st.ObjectValidator(goprops.Key("value", tc.typ))
			assert.True(t, v.Validate(map[string]any{"value": tc.value}))
		})
	}
	assert.Empty(t, rec.messages())
}

func TestObjectValidator_BoxedPrimitives(t *testing.T) {
	st, _ := newStore(t)
	s, n, b := "x", 3, true
	assert.True(t, st.ObjectValidator(goprops.Key("v", goprops.String)).Validate(map[string]any{"v": &s}))
	assert.True(t, st.ObjectValidator(goprops.Key("v", goprops.Number)).Validate(map[string]any{"v": &n}))
	assert.True(t, st.ObjectValidator(goprops.Key("v", goprops.Boolean)).Validate(map[string]any{"v": &b}))
	assert.False(t, st.ObjectValidator(goprops.Key("v", goprops.Number)).Validate(map[string]any{"v": &s}))
}

func TestObjectValidator_RequiredAttribute(t *testing.T) {
	st, rec := newStore(t)
	v := st.ObjectValidator(goprops.Key("name", goprops.Prop{Type: goprops.String, Required: true}))
	assert.False(t, v.Validate(map[string]any{"id": "Peppers"}))
	assert.Equal(t, []string{`[GoProps] Missing required prop: "name"`}, rec.messages())
	assert.Equal(t, goprops.CodeRequired, rec.got[0].Issue.Code)
}

func TestObjectValidator_RequiredWithoutType(t *testing.T) {
	st, rec := newStore(t)
	v := st.ObjectValidator(goprops.Key("token", goprops.Prop{Required: true}))
	assert.True(t, v.Validate(map[string]any{"token": 12}))
	assert.False(t, v.Validate(map[string]any{}))
	assert.Equal(t, []string{`[GoProps] Missing required prop: "token"`}, rec.messages())
}

func TestObjectValidator_PresentNullIsNotAbsent(t *testing.T) {
	st, rec := newStore(t)
	v := st.ObjectValidator(goprops.Key("name", goprops.String))
	assert.False(t, v.Validate(map[string]any{"name": nil}))
	assert.Equal(t, []string{
		`[GoProps] Invalid prop: type check failed for prop "name". Expected String with value "null", got Null`,
	}, rec.messages())
}

func TestObjectValidator_OptionalMissingNeverFailsOrLogs(t *testing.T) {
	st, rec := newStore(t)
	called := false
	v := st.ObjectValidator(goprops.Key("name", goprops.Prop{
		Type:      goprops.String,
		Required:  false,
		Validator: func(any) bool { called = true; return false },
	}))
	assert.True(t, v.Validate(map[string]any{"id": "Peppers"}))
	assert.True(t, v.Validate(map[string]any{"name": nil}))
	var nilPtr *string
	assert.True(t, v.Validate(map[string]any{"name": nilPtr}))
	assert.False(t, called)
	assert.Empty(t, rec.messages())
}

func TestObjectValidator_MultipleTypes(t *testing.T) {
	st, rec := newStore(t)
	v := st.ObjectValidator(goprops.Key("id", goprops.Types{goprops.Number, goprops.String}))
	assert.True(t, v.Validate(map[string]any{"id": "Peppers"}))
	assert.True(t, v.Validate(map[string]any{"id": 123}))
	assert.False(t, v.Validate(map[string]any{"id": false}))
	assert.Equal(t, []string{
		`[GoProps] Invalid prop: type check failed for prop "id". Expected Number, String, got Boolean with value false.`,
	}, rec.messages())
}

func TestObjectValidator_BooleanExpectationOmitsExpectedValue(t *testing.T) {
	st, rec := newStore(t)
	v := st.ObjectValidator(goprops.Key("flag", goprops.Boolean))
	assert.False(t, v.Validate(map[string]any{"flag": 1}))
	assert.Equal(t, []string{
		`[GoProps] Invalid prop: type check failed for prop "flag". Expected Boolean, got Number with value 1.`,
	}, rec.messages())
}

func TestObjectValidator_NominalLabelIsCapitalized(t *testing.T) {
	st, rec := newStore(t)
	v := st.ObjectValidator(goprops.Key("owner", goprops.TypeOf[person]()))
	assert.False(t, v.Validate(map[string]any{"owner": "bob"}))
	assert.Equal(t, []string{
		`[GoProps] Invalid prop: type check failed for prop "owner". Expected Person, got String with value "bob".`,
	}, rec.messages())
}

func TestObjectValidator_CustomValidator(t *testing.T) {
	st, rec := newStore(t)
	v := st.ObjectValidator(goprops.Key("email", goprops.Prop{
		Type:      goprops.String,
		Validator: func(v any) bool { return strings.Contains(v.(string), "@") },
	}))
	assert.True(t, v.Validate(map[string]any{"email": "hello@google.com"}))
	assert.False(t, v.Validate(map[string]any{"email": "not an email"}))
	assert.Equal(t, []string{
		`[GoProps] Invalid prop: custom validator check failed for prop "email".`,
	}, rec.messages())
	assert.Equal(t, goprops.CodeCustomValidator, rec.got[0].Issue.Code)
}

func TestObjectValidator_Nested(t *testing.T) {
	st, rec := newStore(t)
	v := st.ObjectValidator(
		goprops.Key("name", goprops.String),
		goprops.Key("animal", goprops.Prop{
			Type:      goprops.Object,
			Validator: st.ObjectValidator(goprops.Key("id", goprops.Types{goprops.Number, goprops.String})).Validate,
		}),
	)
	assert.True(t, v.Validate(map[string]any{"name": "Chili", "animal": map[string]any{"id": 2}}))
	assert.False(t, v.Validate(map[string]any{"name": "Chili", "animal": map[string]any{"id": []any{"_id_"}}}))
	assert.Equal(t, []string{
		`[GoProps] Invalid prop: type check failed for prop "id". Expected Number, String, got Array`,
		`[GoProps] Invalid prop: custom validator check failed for prop "animal".`,
	}, rec.messages())
}

func TestObjectValidator_ShortCircuitsAtFirstFailingKey(t *testing.T) {
	st, rec := newStore(t)
	v := st.ObjectValidator(
		goprops.Key("a", goprops.String),
		goprops.Key("b", goprops.String),
	)
	assert.False(t, v.Validate(map[string]any{"a": 1, "b": 2}))
	require.Len(t, rec.messages(), 1)
	assert.Contains(t, rec.messages()[0], `prop "a"`)
}

func TestObjectValidator_NilEntryAndExtraKeysIgnored(t *testing.T) {
	st, rec := newStore(t)
	v := st.ObjectValidator(
		goprops.Key("anything", nil),
		goprops.Key("name", goprops.String),
	)
	assert.Equal(t, []string{"name"}, v.Keys())
	assert.True(t, v.Validate(map[string]any{"name": "x", "extra": 1}))
	assert.Empty(t, rec.messages())
}

func TestObjectValidator_NonObjectInputFailsSilently(t *testing.T) {
	st, rec := newStore(t)
	v := st.ObjectValidator(goprops.Key("name", goprops.String))
	for _, in := range []any{nil, "str", 12, true, (map[string]any)(nil)} {
		assert.False(t, v.Validate(in), "%#v", in)
		assert.ErrorIs(t, v.Check(in), goprops.ErrNotObject)
	}
	assert.Empty(t, rec.messages())
}

func TestObjectValidator_Structs(t *testing.T) {
	st, rec := newStore(t)
	v := st.ObjectValidator(
		goprops.Key("id", goprops.Types{goprops.Number, goprops.String}),
		goprops.Key("name", goprops.String),
		goprops.Key("Owner", goprops.Prop{Type: goprops.TypeOf[person]()}),
	)
	assert.True(t, v.Validate(animal{ID: 2, Name: "Chili"}))
	assert.True(t, v.Validate(&animal{ID: "a2", Name: "Chili", Owner: &person{FirstName: "Jo"}}))
	assert.False(t, v.Validate(animal{ID: true, Name: "Chili"}))
	rec.reset()

	missing := st.ObjectValidator(goprops.Key("age", goprops.Number))
	assert.False(t, missing.Validate(animal{}))
	assert.Equal(t, []string{`[GoProps] Missing required prop: "age"`}, rec.messages())
}

func TestObjectValidator_PointerCarriers(t *testing.T) {
	st, rec := newStore(t)
	v := st.ObjectValidator(goprops.Key("name", goprops.String))

	m := map[string]any{"name": "x"}
	assert.True(t, v.Validate(&m))
	assert.NoError(t, v.Check(&m))

	empty := map[string]any{}
	assert.False(t, v.Validate(&empty))
	assert.Equal(t, []string{`[GoProps] Missing required prop: "name"`}, rec.messages())
	rec.reset()

	first := st.ObjectValidator(goprops.Key("0", goprops.Number), goprops.Key("1", goprops.Prop{Type: goprops.String}))
	s := []any{1, "b"}
	assert.True(t, first.Validate(&s))
	bad := []any{"a"}
	assert.False(t, first.Validate(&bad))
	assert.Equal(t, []string{
		`[GoProps] Invalid prop: type check failed for prop "0". Expected Number with value NaN, got String with value "a".`,
	}, rec.messages())
}

func TestObjectValidator_EmptyTypesMatchesNothing(t *testing.T) {
	st, rec := newStore(t)
	v := st.ObjectValidator(goprops.Key("id", goprops.Types{}))
	assert.False(t, v.Validate(map[string]any{"id": 1}))
	assert.Equal(t, []string{
		`[GoProps] Invalid prop: type check failed for prop "id". Expected , got Number with value 1.`,
	}, rec.messages())
	rec.reset()

	optional := st.ObjectValidator(goprops.Key("id", goprops.Prop{Type: goprops.Types{}}))
	assert.True(t, optional.Validate(map[string]any{}))
	assert.False(t, optional.Validate(map[string]any{"id": "x"}))
	rec.reset()

	unconstrained := st.ObjectValidator(goprops.Key("id", goprops.Prop{Required: true}))
	assert.True(t, unconstrained.Validate(map[string]any{"id": 1}))
	assert.Empty(t, rec.messages())
}

func TestObjectValidator_DoesNotMutateInput(t *testing.T) {
	st, _ := newStore(t)
	in := map[string]any{"name": 1, "tags": []any{"a"}}
	st.ObjectValidator(goprops.Key("name", goprops.String), goprops.Key("tags", goprops.Array)).Validate(in)
	assert.Equal(t, map[string]any{"name": 1, "tags": []any{"a"}}, in)
}

func TestArrayValidator_Valid(t *testing.T) {
	st, rec := newStore(t)
	assert.True(t, st.ArrayValidator(goprops.Number).Validate([]any{1, 2, 3}))
	assert.True(t, st.ArrayValidator(goprops.Number).Validate([]int{1, 2, 3}))
	assert.True(t, st.ArrayValidator(goprops.Number).Validate([3]float64{1, 2, 3}))
	assert.True(t, st.ArrayValidator(goprops.Number).Validate([]int(nil)))
	assert.Empty(t, rec.messages())
}

func TestArrayValidator_Invalid(t *testing.T) {
	st, rec := newStore(t)
	assert.False(t, st.ArrayValidator(goprops.Number).Validate([]any{1, "2", 3}))
	assert.Equal(t, []string{
		`[GoProps] Invalid element: type check failed for element 1. Expected Number with value 2, got String with value "2".`,
	}, rec.messages())
	assert.Equal(t, "/1", rec.got[0].Issue.Path)
}

func TestArrayValidator_MultipleTypes(t *testing.T) {
	st, rec := newStore(t)
	v := st.ArrayValidator(goprops.Types{goprops.Number, goprops.String})
	assert.True(t, v.Validate([]any{1, "2", 3}))
	assert.False(t, v.Validate([]any{1, "2", map[string]any{}}))
	assert.Equal(t, []string{
		`[GoProps] Invalid element: type check failed for element 2. Expected Number, String, got Object`,
	}, rec.messages())
}

func TestArrayValidator_ElementCustomValidator(t *testing.T) {
	st, rec := newStore(t)
	v := st.ArrayValidator(goprops.Prop{
		Type:      goprops.Number,
		Validator: func(v any) bool { return v.(int) > 18 },
	})
	assert.True(t, v.Validate([]any{21, 35, 100}))
	assert.False(t, v.Validate([]any{21, 17, 100}))
	assert.Equal(t, []string{
		`[GoProps] Invalid element: custom validator check failed for element 1.`,
	}, rec.messages())
}

func TestArrayValidator_NullElementIsNotMissing(t *testing.T) {
	st, rec := newStore(t)
	assert.False(t, st.ArrayValidator(goprops.Number).Validate([]any{1, nil}))
	assert.Equal(t, []string{
		`[GoProps] Invalid element: type check failed for element 1. Expected Number with value 0, got Null`,
	}, rec.messages())

	rec.reset()
	optional := st.ArrayValidator(goprops.Prop{Type: goprops.Number})
	assert.True(t, optional.Validate([]any{1, nil}))
	assert.Empty(t, rec.messages())
}

func TestArrayValidator_NonSequenceInputFailsSilently(t *testing.T) {
	st, rec := newStore(t)
	v := st.ArrayValidator(goprops.Number)
	for _, in := range []any{nil, "abc", map[string]any{"0": 1}, 5} {
		assert.False(t, v.Validate(in), "%#v", in)
		assert.ErrorIs(t, v.Check(in), goprops.ErrNotArray)
	}
	assert.Empty(t, rec.messages())
}

func TestObjectAndArrayValidatorsTogether(t *testing.T) {
	st, rec := newStore(t)
	v := st.ArrayValidator(goprops.Prop{
		Type: goprops.Object,
		Validator: st.ObjectValidator(
			goprops.Key("id", goprops.Number),
			goprops.Key("name", goprops.String),
			goprops.Key("isCat", goprops.Boolean),
		).Validate,
	})
	assert.True(t, v.Validate([]any{
		map[string]any{"id": 1, "name": "chili", "isCat": true},
		map[string]any{"id": 2, "name": "Peppers", "isCat": false},
	}))
	assert.False(t, v.Validate([]any{
		map[string]any{"id": 1, "name": "chili", "isCat": true},
		map[string]any{"id": 2, "name": "Peppers", "isCat": "yes"},
	}))
	assert.Equal(t, []string{
		`[GoProps] Invalid prop: type check failed for prop "isCat". Expected Boolean, got String with value "yes".`,
		`[GoProps] Invalid element: custom validator check failed for element 1.`,
	}, rec.messages())
}

func TestValidation_IsIdempotent(t *testing.T) {
	st, rec := newStore(t)
	v := st.ObjectValidator(goprops.Key("name", goprops.String))
	in := map[string]any{"name": 123}
	first := v.Validate(in)
	firstMsgs := rec.messages()
	rec.reset()
	second := v.Validate(in)
	assert.Equal(t, first, second)
	assert.Equal(t, firstMsgs, rec.messages())
}

func TestCheck_ReturnsValidationError(t *testing.T) {
	st, rec := newStore(t)
	v := st.ObjectValidator(goprops.Key("name", goprops.String))
	require.NoError(t, v.Check(map[string]any{"name": "ok"}))

	err := v.Check(map[string]any{"name": 123})
	ve, ok := goprops.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, goprops.CodeInvalidType, ve.Code)
	assert.Equal(t, rec.messages()[0], err.Error())

	iss, ok := goprops.AsIssues(err)
	require.True(t, ok)
	assert.Equal(t, "invalid_type at /name", iss.Error())
}

func TestConfig_DisabledPassesEverything(t *testing.T) {
	st, rec := newStore(t)
	require.NoError(t, st.SetConfig(goprops.ConfigOptions{Enabled: goprops.Bool(false)}))
	assert.True(t, st.ObjectValidator(goprops.Key("name", goprops.String)).Validate(map[string]any{"name": 123}))
	assert.True(t, st.ArrayValidator(goprops.Number).Validate([]any{1, "2", 3}))
	assert.True(t, st.ObjectValidator(goprops.Key("name", goprops.String)).Validate("not an object"))
	assert.True(t, st.ArrayValidator(goprops.Number).Validate(42))
	assert.NoError(t, st.ArrayValidator(goprops.Number).Check(42))
	assert.Empty(t, rec.messages())
}

func TestConfig_WarnLevel(t *testing.T) {
	st, rec := newStore(t)
	require.NoError(t, st.SetConfig(goprops.ConfigOptions{LogLevel: goprops.Level("warn")}))
	st.ArrayValidator(goprops.Number).Validate([]any{1, "2", 3})
	require.Len(t, rec.got, 1)
	assert.Equal(t, goprops.LogWarn, rec.got[0].Level)
	assert.Equal(t, `[GoProps] Invalid element: type check failed for element 1. Expected Number with value 2, got String with value "2".`, rec.got[0].Message)
}

func TestConfig_NoneSuppresses(t *testing.T) {
	st, rec := newStore(t)
	require.NoError(t, st.SetConfig(goprops.ConfigOptions{LogLevel: goprops.Level("none")}))
	assert.False(t, st.ArrayValidator(goprops.Number).Validate([]any{"x"}))
	assert.Empty(t, rec.messages())
}

func TestConfig_ThrowLevelPanics(t *testing.T) {
	st, rec := newStore(t)
	require.NoError(t, st.SetConfig(goprops.ConfigOptions{LogLevel: goprops.Level("throw")}))
	v := st.ObjectValidator(goprops.Key("name", goprops.String))
	require.PanicsWithError(t,
		`[GoProps] Invalid prop: type check failed for prop "name". Expected String with value "123", got Number with value 123.`,
		func() { v.Validate(map[string]any{"name": 123}) })
	assert.True(t, v.Validate(map[string]any{"name": "fine"}))
	assert.Empty(t, rec.messages())

	err := v.Check(map[string]any{"name": 123})
	_, ok := goprops.AsValidationError(err)
	assert.True(t, ok)
}

func TestConfig_NestedFailurePropagatesWithoutPanicking(t *testing.T) {
	st, rec := newStore(t)
	inner := st.ObjectValidator(goprops.Key("id", goprops.Number))
	outer := st.ObjectValidator(goprops.Key("pet", goprops.Prop{Type: goprops.Object, Validator: inner.Validate}))
	in := map[string]any{"pet": map[string]any{"id": "x"}}

	assert.NotPanics(t, func() { assert.False(t, outer.Validate(in)) })
	assert.Len(t, rec.messages(), 2)

	require.NoError(t, st.SetConfig(goprops.ConfigOptions{LogLevel: goprops.Level("throw")}))
	require.PanicsWithError(t,
		`[GoProps] Invalid prop: type check failed for prop "id". Expected Number with value NaN, got String with value "x".`,
		func() { outer.Validate(in) })
	err := outer.Check(in)
	ve, ok := goprops.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "/id", ve.Path)
}

func TestConfig_ValidatorsSeeLiveStore(t *testing.T) {
	st, _ := newStore(t)
	v := st.ObjectValidator(goprops.Key("name", goprops.String))
	assert.False(t, v.Validate(map[string]any{}))
	require.NoError(t, st.SetConfig(goprops.ConfigOptions{Enabled: goprops.Bool(false)}))
	assert.True(t, v.Validate(map[string]any{}))
}

func TestDefaultStore_PackageLevelFunctions(t *testing.T) {
	rec := &recorder{}
	goprops.SetSink(rec)
	t.Cleanup(goprops.Default().Reset)

	v := goprops.ObjectValidator(goprops.Key("name", goprops.String))
	assert.False(t, v.Validate(map[string]any{"name": 1}))
	assert.Len(t, rec.messages(), 1)
	assert.True(t, goprops.IsEnabled())
	assert.Equal(t, goprops.LogError, goprops.CurrentLogLevel())

	require.NoError(t, goprops.SetConfig(goprops.ConfigOptions{Enabled: goprops.Bool(false)}))
	assert.False(t, goprops.IsEnabled())
	assert.True(t, goprops.ArrayValidator(goprops.String).Validate([]any{1}))
}

func TestValidators_PanicOnUnsupportedEntry(t *testing.T) {
	st, _ := newStore(t)
	assert.Panics(t, func() { st.ObjectValidator(goprops.Key("x", "String")) })
	assert.Panics(t, func() { st.ArrayValidator(42) })
}
