package cmd

import (
	"os"
	"os/signal"
	"path/filepath"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/radovskyb/watcher"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type runFlags struct {
	dir     string // Project root directory // 项目根目录
	port    string // Startup port // 启动端口
	runMode string // Startup mode // 启动模式
	config  string // Specified configuration file path // 指定要使用的配置文件路径
}

// configCandidates 未指定配置文件时按顺序查找
var configCandidates = []string{
	"config/config-dev.yaml",
	"config.yaml",
	"config/config.yaml",
}

func init() {
	runEnv := new(runFlags)

	var runCommand = &cobra.Command{
		Use:   "run [-c config_file] [-d working_dir] [-p port]",
		Short: "Run service",
		Run: func(cmd *cobra.Command, args []string) {
			if len(runEnv.dir) > 0 {
				err := os.Chdir(runEnv.dir)
				if err != nil {
					bootstrapLogger.Error("failed to change the current working directory", zap.Error(err))
				}
				bootstrapLogger.Info("working directory changed", zap.String("dir", runEnv.dir))
			}

			if len(runEnv.config) <= 0 {
				path, created, err := resolveConfig(configCandidates, configDefault)
				if err != nil {
					bootstrapLogger.Error("config file auto create error", zap.Error(err))
					return
				}
				if created {
					bootstrapLogger.Info("config file auto create successfully", zap.String("path", path))
				}
				runEnv.config = path
			}

			s, err := NewServer(runEnv)
			if err != nil {
				bootstrapLogger.Error("api service start err", zap.Error(err))
				return
			}

			// 热重载会替换当前 server
			var current atomic.Pointer[Server]
			current.Store(s)
			go watchConfig(runEnv, &current)

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			<-quit

			s = current.Load()

			s.logger.Info("Received shutdown signal, initiating graceful shutdown...")
			s.sc.SendCloseSignal(nil)

			// Wait for all shutdown handlers to complete (including App Container graceful shutdown)
			// 等待所有关闭处理器完成（包括 App Container 的优雅关闭）
			if err := s.sc.WaitClosed(); err != nil {
				s.logger.Error("Shutdown completed with error", zap.Error(err))
			} else {
				s.logger.Info("Service has been shut down gracefully.")
			}
		},
	}

	rootCmd.AddCommand(runCommand)
	fs := runCommand.Flags()
	fs.StringVarP(&runEnv.dir, "dir", "d", "", "run dir")
	fs.StringVarP(&runEnv.port, "port", "p", "", "run port")
	fs.StringVarP(&runEnv.runMode, "mode", "m", "", "run mode")
	fs.StringVarP(&runEnv.config, "config", "c", "", "config file")
}

// resolveConfig returns the first existing candidate, or writes def to the last candidate
// resolveConfig 返回第一个存在的配置文件，都不存在时将默认配置写入最后一个候选路径
func resolveConfig(candidates []string, def string) (string, bool, error) {
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p, false, nil
		}
	}

	path := candidates[len(candidates)-1]
	bootstrapLogger.Warn("config file not found, creating default config", zap.String("path", path))

	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return "", false, errors.Wrap(err, "create config directory")
	}
	if err := os.WriteFile(path, []byte(def), 0666); err != nil {
		return "", false, errors.Wrap(err, "write default config")
	}
	return path, true, nil
}

// watchConfig 配置文件写入后关闭当前 server 并重新初始化
func watchConfig(runEnv *runFlags, current *atomic.Pointer[Server]) {
	w := watcher.New()

	// Set MaxEvents to 1 to receive at most 1 event in each listening cycle
	// 将 SetMaxEvents 设置为 1，以便在每个监听周期中至多接收 1 个事件
	w.SetMaxEvents(1)

	// Only notify write events.
	// 只通知写入事件。
	w.FilterOps(watcher.Write)

	go func() {
		for {
			select {
			case event := <-w.Event:
				current.Load().logger.Info("config watcher change", zap.String("event", event.Op.String()), zap.String("file", event.Path))

				// Re-initialize server
				// 重新初始化 server
				if err := reload(current, func() (*Server, error) { return NewServer(runEnv) }); err != nil {
					bootstrapLogger.Error("service start err", zap.Error(err))
				}

			case err := <-w.Error:
				bootstrapLogger.Error("config watcher error", zap.Error(err))
			case <-w.Closed:
				bootstrapLogger.Info("config watcher closed")
				return
			}
		}
	}()

	// Watch config.yaml file
	// 监听 config.yaml 文件
	if err := w.Add(runEnv.config); err != nil {
		bootstrapLogger.Error("config watcher file error", zap.Error(err))
		return
	}

	// Start watching
	// 启动监听
	if err := w.Start(time.Second * 5); err != nil {
		bootstrapLogger.Error("config watcher start error", zap.Error(err))
	}
}

// reload closes the current server and publishes the one built by build
// reload 关闭当前 server，端口释放后再用 build 创建新的 server
func reload(current *atomic.Pointer[Server], build func() (*Server, error)) error {
	s := current.Load()
	s.sc.SendCloseSignal(nil)
	_ = s.sc.WaitClosed()

	ns, err := build()
	if err != nil {
		return err
	}
	current.Store(ns)
	return nil
}
