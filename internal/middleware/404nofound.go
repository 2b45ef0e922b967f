package middleware

import (
	"github.com/haierkeys/note-crud-service/pkg/app"
	"github.com/haierkeys/note-crud-service/pkg/code"

	"github.com/gin-gonic/gin"
)

// NoFound 404 handler
// NoFound 404 处理
func NoFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		app.NewResponse(c).ToText(code.ErrorNotFoundAPI)
		c.Abort()
	}
}
