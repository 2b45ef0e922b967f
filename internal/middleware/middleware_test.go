package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/haierkeys/note-crud-service/pkg/app"
	"github.com/haierkeys/note-crud-service/pkg/code"
	"github.com/haierkeys/note-crud-service/pkg/logger"
	"github.com/haierkeys/note-crud-service/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRecoveryAnswersText(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	r := gin.New()
	r.Use(RecoveryWithLogger(zap.New(core)))
	r.GET("/boom", func(c *gin.Context) { panic("kaboom") })

	w := serve(r, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal server error.", w.Body.String())
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "kaboom", logs.All()[0].ContextMap()["panic_value"])
}

func TestTraceMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(TraceMiddleware(TracerOptions{Enabled: true, Header: "X-Request-ID"}))
	r.GET("/t", func(c *gin.Context) {
		assert.Equal(t, GetTraceIDFromGin(c), logger.TraceIDFromContext(c.Request.Context()))
		c.String(http.StatusOK, GetTraceID(c.Request.Context()))
	})

	req := httptest.NewRequest(http.MethodGet, "/t", nil)
	req.Header.Set("X-Request-ID", "abc")
	w := serve(r, req)
	assert.Equal(t, "abc", w.Body.String())
	assert.Equal(t, "abc", w.Header().Get("X-Request-ID"))

	w = serve(r, httptest.NewRequest(http.MethodGet, "/t", nil))
	assert.Len(t, w.Body.String(), 36)
	assert.Equal(t, w.Body.String(), w.Header().Get("X-Request-ID"))
}

func TestTraceMiddlewareDisabled(t *testing.T) {
	r := gin.New()
	r.Use(TraceMiddleware(TracerOptions{Enabled: false}))
	r.GET("/t", func(c *gin.Context) { c.String(http.StatusOK, GetTraceIDFromGin(c)) })

	w := serve(r, httptest.NewRequest(http.MethodGet, "/t", nil))
	assert.Empty(t, w.Body.String())
	assert.Empty(t, w.Header().Get(DefaultTraceIDHeader))
}

func TestLangHeaderOnly(t *testing.T) {
	uni := ut.New(en.New(), en.New(), zh.New())
	r := gin.New()
	r.Use(LangWithTranslator(uni))
	r.GET("/x", func(c *gin.Context) {
		app.NewResponse(c).ToText(code.ErrorNoteNotFound)
	})

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("lang", "zh-CN")
	assert.Equal(t, "笔记不存在。", serve(r, req).Body.String())

	// lang in the query string is a list filter, not a language switch
	w := serve(r, httptest.NewRequest(http.MethodGet, "/x?lang=zh_cn", nil))
	assert.Equal(t, "Note not found.", w.Body.String())
}

func TestContextTimeout(t *testing.T) {
	r := gin.New()
	r.GET("/none", ContextTimeout(0), func(c *gin.Context) {
		_, ok := c.Request.Context().Deadline()
		assert.False(t, ok)
	})
	r.GET("/some", ContextTimeout(time.Second), func(c *gin.Context) {
		_, ok := c.Request.Context().Deadline()
		assert.True(t, ok)
	})

	serve(r, httptest.NewRequest(http.MethodGet, "/none", nil))
	serve(r, httptest.NewRequest(http.MethodGet, "/some", nil))
}

func TestNoFoundAndMetrics(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	r := gin.New()
	r.Use(Metrics(m))
	r.NoRoute(NoFound())
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := serve(r, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Not found.", w.Body.String())
	serve(r, httptest.NewRequest(http.MethodGet, "/ok", nil))

	assert.Equal(t, float64(1), testutil.ToFloat64(m.RequestsTotal.WithLabelValues("unmatched", "GET", "404")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.RequestsTotal.WithLabelValues("/ok", "GET", "200")))
}

func TestAccessLog(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	r := gin.New()
	r.Use(TraceMiddleware(TracerOptions{Enabled: true}), AccessLogWithLogger(zap.New(core)))
	r.GET("/notes", func(c *gin.Context) {
		app.NewResponse(c).ToText(code.ErrorNoteListFailed.WithDetails("socket closed"))
	})

	req := httptest.NewRequest(http.MethodGet, "/notes?title=A", nil)
	req.Header.Set(DefaultTraceIDHeader, "t-1")
	serve(r, req)

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "t-1", fields[logger.FieldTraceID])
	assert.Equal(t, int64(500), fields["status"])
	assert.Equal(t, "socket closed", fields["details"])
	assert.Equal(t, "/notes?title=A", fields["url"])
}
