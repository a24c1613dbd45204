package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/learncodes/mynote-sync/pkg/app"
	"github.com/learncodes/mynote-sync/pkg/code"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RecoveryWithLogger 捕获 handler panic，记录堆栈并返回统一错误响应
func RecoveryWithLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		defer func() {
			if err := recover(); err != nil {
				errorMsg := fmt.Sprintf("%v", err)
				logger.Error("recovered from panic",
					zap.Int("status", c.Writer.Status()),
					zap.String("router", path),
					zap.String("method", c.Request.Method),
					zap.String("ip", c.ClientIP()),
					zap.String("panic_value", errorMsg),
					zap.String("stack", string(debug.Stack())),
				)

				app.NewResponse(c).ToResponse(code.ErrorServerInternal.WithDetails(errorMsg))
				c.Abort()
			}
		}()

		c.Next()
	}
}
