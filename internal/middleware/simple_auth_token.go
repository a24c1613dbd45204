package middleware

import (
	"github.com/learncodes/mynote-sync/pkg/app"
	"github.com/learncodes/mynote-sync/pkg/code"

	"github.com/gin-gonic/gin"
)

// SimpleAuthTokenWithConfig token 认证中间件；authToken 为空时放行所有请求
func SimpleAuthTokenWithConfig(authToken string) gin.HandlerFunc {
	return func(c *gin.Context) {

		if authToken == "" {
			c.Next()
			return
		}

		response := app.NewResponse(c)

		var token string

		if s, exist := c.GetQuery("authorization"); exist {
			token = s
		} else if s = c.GetHeader("Authorization"); len(s) != 0 {
			token = s
		}

		if token != authToken {
			response.ToResponse(code.ErrorInvalidAuthToken)
			c.Abort()
			return
		}
		c.Next()
	}
}
