package api_router

import (
	"context"
	"time"

	"github.com/haierkeys/note-crud-service/internal/app"
	"github.com/haierkeys/note-crud-service/internal/store"
	pkgapp "github.com/haierkeys/note-crud-service/pkg/app"
	"github.com/haierkeys/note-crud-service/pkg/code"

	"github.com/gin-gonic/gin"
)

// healthPingTimeout 健康检查探活超时
const healthPingTimeout = 2 * time.Second

// HealthHandler 健康检查处理器
type HealthHandler struct {
	*Handler
}

// NewHealthHandler 创建健康检查处理器实例
func NewHealthHandler(a *app.App) *HealthHandler {
	return &HealthHandler{Handler: NewHandler(a)}
}

// HealthResponse 健康检查响应
type HealthResponse struct {
	Status  string  `json:"status"`  // "healthy" 或 "unhealthy"
	Version string  `json:"version"` // 服务版本号
	Uptime  float64 `json:"uptime"`  // 运行时间（秒）
	Driver  string  `json:"driver"`  // mongodb 或 sqlite
	Store   string  `json:"store"`   // connecting / connected / unavailable / closed / error
}

// Check 健康检查接口
// @Summary 健康检查
// @Description 检查服务健康状态，包括存储连接，不会触发重连
// @Tags system
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	response := HealthResponse{
		Status:  "healthy",
		Version: h.App.Version().Version,
		Uptime:  h.App.Uptime().Seconds(),
		Driver:  h.App.Store.Driver(),
		Store:   h.App.Store.State().String(),
	}

	if h.App.Store.State() == store.StateConnected {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthPingTimeout)
		defer cancel()
		if err := h.App.Store.Ping(ctx); err != nil {
			response.Store = "error"
		}
	}

	if response.Store != store.StateConnected.String() {
		response.Status = "unhealthy"
		pkgapp.NewResponse(c).ToJSON(code.ErrorStoreUnavailable, response)
		return
	}

	pkgapp.NewResponse(c).ToJSON(code.Success, response)
}
