package middleware

import (
	"fmt"
	"runtime/debug"

	apperrors "github.com/haierkeys/cloud-notes-api/pkg/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RecoveryWithLogger 创建带日志器的 Recovery 中间件（支持依赖注入）
func RecoveryWithLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery
		defer func() {
			if err := recover(); err != nil {
				var cause error
				switch v := err.(type) {
				case error:
					cause = v
				default:
					cause = fmt.Errorf("%v", v)
				}

				logger.Error("Recovered from panic",
					zap.Int("status", c.Writer.Status()),
					zap.String("router", path),
					zap.String("method", c.Request.Method),
					zap.String("query", query),
					zap.String("ip", c.ClientIP()),
					zap.String("user-agent", c.Request.UserAgent()),
					zap.String("errors", c.Errors.ByType(gin.ErrorTypePrivate).String()),
					zap.Error(cause),
					zap.String("stack", string(debug.Stack())),
				)

				// 返回统一的错误响应
				apperrors.ErrorResponse(c, apperrors.NewStoreError("Internal Server Error", cause), "Internal Server Error")
				c.Abort()
			}
		}()

		c.Next()
	}
}
