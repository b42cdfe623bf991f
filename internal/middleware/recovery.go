package middleware

import (
	"runtime/debug"

	"report-srv/pkg/discord"
	"report-srv/pkg/log"
	"report-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Recovery turns a panic into a 500. The panic value and stack are logged and
// reported to d when it is set. Nothing is written if the handler already responded.
func Recovery(l log.Logger, d discord.IDiscord) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			ctx := c.Request.Context()
			l.Errorf(ctx, "middleware.Recovery: %s %s panicked: %v\n%s",
				c.Request.Method, c.Request.URL.Path, rec, debug.Stack())

			if !c.Writer.Written() {
				response.PanicError(c, rec, d)
			}
			c.Abort()
		}()
		c.Next()
	}
}
