// Package api_router 提供 HTTP API 路由处理器
package api_router

import (
	"context"

	"github.com/haierkeys/note-crud-service/internal/app"
	"github.com/haierkeys/note-crud-service/internal/middleware"
	"github.com/haierkeys/note-crud-service/pkg/logger"

	"go.uber.org/zap"
)

// Handler 基础 Handler 结构体，封装 App Container
// 所有 API Handler 都应该嵌入此结构体以获得依赖注入能力
type Handler struct {
	App *app.App
}

// NewHandler 创建基础 Handler 实例
func NewHandler(a *app.App) *Handler {
	return &Handler{App: a}
}

// logDebug 记录请求参数错误，客户端错误不按 error 级别记录
func (h *Handler) logDebug(ctx context.Context, method string, err error) {
	h.App.Logger().Debug(method,
		zap.Error(err),
		zap.String(logger.FieldTraceID, middleware.GetTraceID(ctx)),
	)
}
