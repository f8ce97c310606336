package rules

import "time"

// RFC3339 accepts strings holding an RFC 3339 timestamp, with or without
// fractional seconds.
func RFC3339() Rule {
	return func(v any) bool {
		s, ok := v.(string)
		if !ok {
			return false
		}
		_, err := parseRFC3339(s)
		return err == nil
	}
}

// Before accepts time.Time values and RFC 3339 strings earlier than t.
func Before(t time.Time) Rule {
	return func(v any) bool {
		tv, ok := asTime(v)
		return ok && tv.Before(t)
	}
}

// After accepts time.Time values and RFC 3339 strings later than t.
func After(t time.Time) Rule {
	return func(v any) bool {
		tv, ok := asTime(v)
		return ok && tv.After(t)
	}
}

func asTime(v any) (time.Time, bool) {
	switch x := v.(type) {
	case time.Time:
		return x, true
	case *time.Time:
		if x == nil {
			return time.Time{}, false
		}
		return *x, true
	case string:
		t, err := parseRFC3339(x)
		return t, err == nil
	}
	return time.Time{}, false
}

func parseRFC3339(s string) (time.Time, error) {
	// RFC3339Nano also accepts a missing fraction.
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		if t2, err2 := time.Parse(time.RFC3339, s); err2 == nil {
			return t2, nil
		}
		return time.Time{}, err
	}
	return t, nil
}
