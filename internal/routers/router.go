package routers

import (
	"net/http"

	_ "github.com/haierkeys/note-crud-service/docs"
	"github.com/haierkeys/note-crud-service/internal/app"
	"github.com/haierkeys/note-crud-service/internal/middleware"
	"github.com/haierkeys/note-crud-service/internal/routers/api_router"
	"github.com/haierkeys/note-crud-service/pkg/metrics"

	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// DocsPath API 文档挂载路径
const DocsPath = "/api-docs"

// NewRouter 创建公开 API 路由
func NewRouter(appContainer *app.App, uni *ut.UniversalTranslator, m *metrics.Metrics) *gin.Engine {

	// 获取配置
	cfg := appContainer.Config()

	r := gin.New()

	r.Use(middleware.AppInfo(app.Name, appContainer.Version().Version))
	r.Use(middleware.TraceMiddleware(middleware.TracerOptions{
		Enabled: cfg.Tracer.Enabled,
		Header:  cfg.Tracer.Header,
	})) // Trace ID 中间件
	r.Use(middleware.AccessLogWithLogger(appContainer.Logger()))
	r.Use(middleware.RecoveryWithLogger(appContainer.Logger()))
	if m != nil {
		r.Use(middleware.Metrics(m))
	}
	r.Use(middleware.ContextTimeout(cfg.GetContextTimeout()))
	r.Use(middleware.LangWithTranslator(uni))

	// 创建 Handlers（注入 App Container）
	noteHandler := api_router.NewNoteHandler(appContainer)
	healthHandler := api_router.NewHealthHandler(appContainer)

	notes := r.Group("/notes")
	{
		notes.GET("", noteHandler.List)
		notes.POST("", noteHandler.Create)
		notes.DELETE("/:id", noteHandler.Delete)
		notes.PUT("/:id", noteHandler.Update)
	}

	r.GET("/health", healthHandler.Check)

	// /api-docs 与 /api-docs/ 均跳转到 /api-docs/index.html
	r.GET(DocsPath+"/*any", docsHandler(ginSwagger.WrapHandler(swaggerFiles.Handler)))

	r.NoRoute(middleware.NoFound())

	return r
}

// docsHandler 目录根路径跳转到 Swagger UI 首页
func docsHandler(swagger gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if p := c.Param("any"); p == "" || p == "/" {
			c.Redirect(http.StatusMovedPermanently, DocsPath+"/index.html")
			return
		}
		swagger(c)
	}
}
