package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// Logger logs one line per request after it completes.
func (m Middleware) Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		c.Next()

		status := c.Writer.Status()
		ctx := c.Request.Context()
		format := "%s %s status=%d latency=%s client_ip=%s size=%d"
		args := []any{c.Request.Method, path, status, time.Since(start), c.ClientIP(), c.Writer.Size()}

		switch {
		case status >= 500:
			m.l.Errorf(ctx, format, args...)
		case status >= 400:
			m.l.Warnf(ctx, format, args...)
		default:
			m.l.Infof(ctx, format, args...)
		}
	}
}
