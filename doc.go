// Package goprops validates loosely typed runtime values against declarative
// shape schemas.
//
// A schema describes either the attributes of an object (ObjectValidator) or
// the elements of a sequence (ArrayValidator). Each entry names the expected
// type or types, whether the value is required, and an optional custom
// predicate. Validation is pass/fail only and never mutates the input.
//
// Failures are reported as a boolean. The diagnostic for a failure is routed
// through the Store's log level policy: suppressed, logged to a Sink at warn
// or error level, or raised as a *ValidationError panic when the level is
// LogThrow. Check returns the same diagnostic as an error instead.
//
// Typical usage:
//
//	user := goprops.ObjectValidator(
//		goprops.Key("name", goprops.String),
//		goprops.Key("id", goprops.Types{goprops.Number, goprops.String}),
//		goprops.Key("email", goprops.Prop{Type: goprops.String, Validator: rules.Tag("email")}),
//	)
//	ok := user.Validate(payload)
//
// Validators consult their Store on every call, so SetConfig affects
// validators created before and after the update.
package goprops
