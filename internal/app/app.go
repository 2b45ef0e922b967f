// Package app 提供应用容器，封装所有依赖和服务
package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/haierkeys/note-crud-service/internal/dao"
	"github.com/haierkeys/note-crud-service/internal/domain"
	"github.com/haierkeys/note-crud-service/internal/service"
	"github.com/haierkeys/note-crud-service/internal/store"
	pkgapp "github.com/haierkeys/note-crud-service/pkg/app"
	"github.com/haierkeys/note-crud-service/pkg/logger"

	"go.uber.org/zap"
)

// App 应用容器，封装所有依赖和服务
type App struct {
	// 基础设施（注入的依赖）
	config *AppConfig
	logger *zap.Logger

	// Store 文档存储连接，进程内只建立一次
	Store store.Lifecycle

	// Repository 层
	NoteRepo domain.NoteRepository

	// Service 层
	NoteService service.NoteService

	StartTime time.Time

	// 关闭控制
	openCtx    context.Context
	cancelOpen context.CancelFunc
	shutdownCh chan struct{}
	wg         sync.WaitGroup
}

// NewApp 创建应用容器实例
// 初始化所有依赖并进行依赖注入，存储连接由 OpenStore 在后台建立
// cfg: 应用配置（必须）
// logger: zap 日志器（必须）
func NewApp(cfg *AppConfig, lg *zap.Logger) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is required")
	}
	if lg == nil {
		return nil, fmt.Errorf("logger is required")
	}

	a := &App{
		config:     cfg,
		logger:     lg,
		StartTime:  time.Now(),
		shutdownCh: make(chan struct{}),
	}
	a.openCtx, a.cancelOpen = context.WithCancel(context.Background())

	storeCfg := cfg.GetStoreConfig()
	switch storeCfg.Driver {
	case store.DriverSQLite:
		conn := store.NewSQLite(storeCfg, lg)
		a.Store = conn
		a.NoteRepo = dao.NewSQLiteNoteRepository(conn, storeCfg.Collection)
	case store.DriverMongo:
		conn := store.NewMongo(storeCfg, lg)
		a.Store = conn
		a.NoteRepo = dao.NewMongoNoteRepository(conn)
	default:
		return nil, fmt.Errorf("unknown store driver %q", storeCfg.Driver)
	}

	a.NoteService = service.NewNoteService(a.NoteRepo, lg)

	lg.Info("App container initialized successfully",
		zap.String(logger.FieldDriver, storeCfg.Driver),
		zap.String(logger.FieldDatabase, storeCfg.Database),
		zap.String(logger.FieldCollection, storeCfg.Collection))

	return a, nil
}

// OpenStore 在后台执行唯一一次连接尝试
// 连接建立前到达的请求直接返回 503
func (a *App) OpenStore() {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		// 失败已由连接器记录，不重试
		_ = a.Store.Open(a.openCtx)
	}()
}

// Config 获取应用配置
func (a *App) Config() *AppConfig {
	return a.config
}

// Logger 获取日志器
func (a *App) Logger() *zap.Logger {
	return a.logger
}

// Version 获取版本信息
func (a *App) Version() pkgapp.VersionInfo {
	return pkgapp.VersionInfo{
		Version:   Version,
		GitTag:    GitTag,
		BuildTime: BuildTime,
	}
}

// Uptime 运行时长
func (a *App) Uptime() time.Duration {
	return time.Since(a.StartTime)
}

// IsProductionMode 是否为生产模式
// 根据日志配置中的 Production 字段判断
func (a *App) IsProductionMode() bool {
	return a.config.Log.Production
}

// DefaultShutdownTimeout 默认关闭超时时间
const DefaultShutdownTimeout = 30 * time.Second

// Shutdown 优雅关闭应用容器
// 按顺序关闭：取消连接尝试 -> 等待后台操作 -> 关闭存储连接
// ctx 用于控制关闭超时，如果为 nil 则使用默认 30 秒超时
func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("App container shutting down...")

	// 如果没有提供 context，使用默认超时
	if ctx == nil {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(context.Background(), DefaultShutdownTimeout)
		defer cancel()
	}

	// 标记关闭
	select {
	case <-a.shutdownCh:
		// 已经关闭
		return nil
	default:
		close(a.shutdownCh)
	}

	a.cancelOpen()

	var errs []error

	done := make(chan struct{})
	go func() {
		a.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		a.logger.Info("All background operations completed")
	case <-ctx.Done():
		a.logger.Warn("Shutdown timeout waiting for background operations")
		errs = append(errs, fmt.Errorf("background operations timeout: %w", ctx.Err()))
	}

	if err := a.Store.Close(ctx); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		a.logger.Warn("App container shutdown completed with errors",
			zap.Int("errorCount", len(errs)))
		return fmt.Errorf("shutdown completed with %d errors: %v", len(errs), errs)
	}

	a.logger.Info("App container shutdown completed successfully")
	return nil
}

// IsShuttingDown 检查应用是否正在关闭
func (a *App) IsShuttingDown() bool {
	select {
	case <-a.shutdownCh:
		return true
	default:
		return false
	}
}

// TrackOperation 跟踪后台操作（用于优雅关闭时等待）
// 返回一个函数，在操作完成时调用
func (a *App) TrackOperation() func() {
	a.wg.Add(1)
	return func() {
		a.wg.Done()
	}
}
