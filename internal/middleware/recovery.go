package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/haierkeys/note-crud-service/pkg/app"
	"github.com/haierkeys/note-crud-service/pkg/code"
	"github.com/haierkeys/note-crud-service/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RecoveryWithLogger 创建带日志器的 Recovery 中间件（支持依赖注入）
// panic 记录日志后以 500 纯文本响应
func RecoveryWithLogger(lg *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery
		defer func() {
			if err := recover(); err != nil {
				var errorMsg string
				switch v := err.(type) {
				case error:
					errorMsg = v.Error()
				default:
					// 其它类型的 panic（字符串等）
					errorMsg = fmt.Sprintf("%v", v)
				}

				lg.Error("Recovered from panic",
					zap.String(logger.FieldTraceID, GetTraceIDFromGin(c)),
					zap.String("router", path),
					zap.String(logger.FieldMethod, c.Request.Method),
					zap.String("query", query),
					zap.String("ip", c.ClientIP()),
					zap.String("user-agent", c.Request.UserAgent()),
					zap.String("panic_value", errorMsg),
					zap.String("stack", string(debug.Stack())), // 错误堆栈
				)

				// 返回统一的错误响应
				app.NewResponse(c).ToText(code.ErrorServerInternal.WithDetails(errorMsg))
				c.Abort()
			}
		}()

		c.Next()
	}
}
