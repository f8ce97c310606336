package echomw

import (
	"github.com/labstack/echo/v4"
	goprops "github.com/reoring/goprops"
	"github.com/reoring/goprops/middleware"
)

// ValidateJSON decodes the request body, checks it with v, stores the value
// in the request context on success, or answers 400 with the issues.
func ValidateJSON(v goprops.Checker, opts ...middleware.Options) echo.MiddlewareFunc {
	var o middleware.Options
	if len(opts) > 0 {
		o = opts[0]
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			val, f := middleware.Decode(c.Response(), c.Request(), v, o)
			if f != nil {
				return c.JSON(f.Status, f.Payload)
			}
			ctx := middleware.ContextWithValue(c.Request().Context(), val)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

// GetValue fetches the validated body from echo.Context.
func GetValue(c echo.Context) (any, bool) {
	return middleware.ValueFromContext(c.Request().Context())
}
