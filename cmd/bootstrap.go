package cmd

import (
	"os"

	"github.com/haierkeys/note-crud-service/pkg/logger"

	"go.uber.org/zap"
)

// bootstrapLogger 启动阶段日志器
// 主日志器按配置文件初始化之前使用，只输出到 stderr，DEBUG 环境变量非空时输出 debug 级别
var bootstrapLogger *zap.Logger

func init() {
	level := "info"
	if os.Getenv("DEBUG") != "" {
		level = "debug"
	}
	lg, err := logger.NewLogger(logger.Config{Level: level})
	if err != nil {
		lg = zap.NewNop()
	}
	bootstrapLogger = lg
}
