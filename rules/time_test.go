package rules_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/reoring/goprops/rules"
)

func TestRFC3339(t *testing.T) {
	r := rules.RFC3339()
	assert.True(t, r("2024-05-01T10:00:00Z"))
	assert.True(t, r("2024-05-01T10:00:00.123456+09:00"))
	assert.False(t, r("2024-05-01"))
	assert.False(t, r(time.Now()))
}

func TestBeforeAfter(t *testing.T) {
	pivot := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.True(t, rules.Before(pivot)("2023-12-31T23:59:59Z"))
	assert.False(t, rules.Before(pivot)(pivot))
	later := pivot.Add(time.Hour)
	assert.True(t, rules.After(pivot)(&later))
	assert.False(t, rules.After(pivot)((*time.Time)(nil)))
	assert.False(t, rules.After(pivot)("soon"))
}
