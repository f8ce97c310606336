// Package middleware validates decoded request bodies at an HTTP boundary.
//
// Body decodes the request with package input (JSON, or YAML for YAML
// content types), runs a goprops Checker and either answers 400 or passes
// the decoded value to the next handler through the request context.
package middleware

import (
	"context"
	"errors"
	"io"
	"net/http"

	gojson "github.com/goccy/go-json"

	goprops "github.com/reoring/goprops"
	"github.com/reoring/goprops/input"
)

// DefaultMaxBytes caps request bodies read by Body.
const DefaultMaxBytes int64 = 1 << 20

// ctxKeyValue is the context key for the decoded body.
type ctxKeyValue struct{}

// decoded boxes the body so a JSON null is still found.
type decoded struct{ v any }

// ContextWithValue attaches a decoded body to ctx.
func ContextWithValue(ctx context.Context, v any) context.Context {
	return context.WithValue(ctx, ctxKeyValue{}, decoded{v: v})
}

// ValueFromContext retrieves the body decoded by Body.
func ValueFromContext(ctx context.Context) (any, bool) {
	d, ok := ctx.Value(ctxKeyValue{}).(decoded)
	return d.v, ok
}

// Options tunes Validate.
type Options struct {
	// MaxBytes caps the request body; zero means DefaultMaxBytes, negative
	// means unlimited.
	MaxBytes int64
}

// Failure is a rejected request: the status and JSON payload to answer with.
type Failure struct {
	Status  int
	Payload any
}

func (o Options) withDefaults() Options {
	if o.MaxBytes == 0 {
		o.MaxBytes = DefaultMaxBytes
	}
	return o
}

// Decode reads and decodes the body of r, then checks it with v. It is the
// framework-independent core of Validate.
func Decode(w http.ResponseWriter, r *http.Request, v goprops.Checker, o Options) (any, *Failure) {
	o = o.withDefaults()
	body := r.Body
	if o.MaxBytes > 0 {
		body = http.MaxBytesReader(w, r.Body, o.MaxBytes)
	}
	data, err := io.ReadAll(body)
	if err != nil {
		status := http.StatusBadRequest
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			status = http.StatusRequestEntityTooLarge
		}
		return nil, &Failure{Status: status, Payload: map[string]any{"error": err.Error()}}
	}
	val, err := input.Decode(data, input.FormatFromContentType(r.Header.Get("Content-Type")))
	if err != nil {
		return nil, &Failure{Status: http.StatusBadRequest, Payload: map[string]any{"error": err.Error()}}
	}
	if err := v.Check(val); err != nil {
		if iss, ok := goprops.AsIssues(err); ok {
			return nil, &Failure{Status: http.StatusBadRequest, Payload: ErrorPayload(iss)}
		}
		return nil, &Failure{Status: http.StatusBadRequest, Payload: map[string]any{"error": err.Error()}}
	}
	return val, nil
}

// Validate returns chi/net-http style middleware validating request bodies
// with v.
func Validate(v goprops.Checker, opts ...Options) func(http.Handler) http.Handler {
	var o Options
	if len(opts) > 0 {
		o = opts[0]
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			val, f := Decode(w, r, v, o)
			if f != nil {
				WriteJSON(w, f.Status, f.Payload)
				return
			}
			next.ServeHTTP(w, r.WithContext(ContextWithValue(r.Context(), val)))
		})
	}
}

// Body wraps next with Validate(v).
func Body(v goprops.Checker, next http.Handler) http.Handler { return Validate(v)(next) }

// ErrorPayload shapes Issues for JSON responses.
func ErrorPayload(issues []goprops.Issue) map[string]any {
	return map[string]any{"issues": issues}
}

// WriteJSON writes payload as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = gojson.NewEncoder(w).Encode(payload)
}
