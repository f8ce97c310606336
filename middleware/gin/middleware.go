package ginmw

import (
	"github.com/gin-gonic/gin"
	goprops "github.com/reoring/goprops"
	"github.com/reoring/goprops/middleware"
)

// ValidateJSON decodes the request body, checks it with v, stores the value
// in the request context, and on failure aborts with 400 and the issues.
func ValidateJSON(v goprops.Checker, opts ...middleware.Options) gin.HandlerFunc {
	var o middleware.Options
	if len(opts) > 0 {
		o = opts[0]
	}
	return func(c *gin.Context) {
		val, f := middleware.Decode(c.Writer, c.Request, v, o)
		if f != nil {
			c.AbortWithStatusJSON(f.Status, f.Payload)
			return
		}
		c.Request = c.Request.WithContext(middleware.ContextWithValue(c.Request.Context(), val))
		c.Next()
	}
}

// GetValue fetches the validated body from gin.Context.
func GetValue(c *gin.Context) (any, bool) {
	return middleware.ValueFromContext(c.Request.Context())
}
