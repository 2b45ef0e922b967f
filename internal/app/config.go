// Package app 提供应用容器，封装所有依赖和服务
package app

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/haierkeys/note-crud-service/internal/store"
	"github.com/haierkeys/note-crud-service/pkg/logger"
	"github.com/haierkeys/note-crud-service/pkg/util"

	"github.com/creasty/defaults"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// 环境变量覆盖
const (
	EnvStoreURI = "NOTES_STORE_URI"
	EnvHttpPort = "NOTES_HTTP_PORT"
)

// AppConfig 应用配置
type AppConfig struct {
	File   string       `yaml:"-"` // 配置文件路径，不序列化
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
	Store  StoreConfig  `yaml:"store"`
	App    AppSettings  `yaml:"app"`
	Tracer TracerConfig `yaml:"tracer"`
	Task   TaskConfig   `yaml:"task"`
}

// LogConfig 日志配置
type LogConfig struct {
	// Level 日志级别，参见 zapcore.ParseLevel
	Level string `yaml:"level" default:"info"`
	// File 日志文件路径，为空时只输出到 stderr
	File string `yaml:"file"`
	// Production 是否启用 JSON 输出
	Production bool `yaml:"production"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	// RunMode 运行模式
	RunMode string `yaml:"run-mode" default:"release"`
	// HttpPort HTTP 端口
	HttpPort string `yaml:"http-port" default:":3000"`
	// ReadTimeout 读取超时（秒）
	ReadTimeout int `yaml:"read-timeout" default:"60"`
	// WriteTimeout 写入超时（秒）
	WriteTimeout int `yaml:"write-timeout" default:"60"`
	// PrivateHttpListen 私有 HTTP 监听地址，为空时不启动
	PrivateHttpListen string `yaml:"private-http-listen"`
}

// StoreConfig 文档存储配置
type StoreConfig struct {
	// Driver mongodb 或 sqlite
	Driver string `yaml:"driver" default:"mongodb"`
	// URI mongodb 连接串
	URI string `yaml:"uri" default:"mongodb://localhost:27017"`
	// Database 数据库名
	Database string `yaml:"database" default:"tutor"`
	// Collection 集合名
	Collection string `yaml:"collection" default:"notes"`
	// Path SQLite 数据库文件路径
	Path string `yaml:"path" default:"storage/database/notes.sqlite3"`
	// ConnectTimeout 连接超时，支持格式：10s（秒）、1m（分钟）
	ConnectTimeout string `yaml:"connect-timeout" default:"10s"`
}

// AppSettings 应用设置
type AppSettings struct {
	// DefaultContextTimeout 默认上下文超时时间（秒），0 表示不限制
	DefaultContextTimeout int `yaml:"default-context-timeout"`
	// Lang 默认响应语言
	Lang string `yaml:"lang" default:"en"`
}

// TracerConfig 请求追踪配置
type TracerConfig struct {
	// Enabled 是否启用追踪
	Enabled bool `yaml:"enabled" default:"true"`
	// Header 追踪 ID 请求头名称，默认 X-Trace-ID
	Header string `yaml:"header" default:"X-Trace-ID"`
	// JaegerAgent jaeger agent 地址，为空时不上报
	JaegerAgent string `yaml:"jaeger-agent"`
}

// TaskConfig 定时任务配置
type TaskConfig struct {
	// StoreProbeInterval 存储探活间隔，0 表示关闭
	StoreProbeInterval string `yaml:"store-probe-interval" default:"30s"`
}

// LoadConfig 从文件加载配置
// 返回配置实例和配置文件的绝对路径
func LoadConfig(f string) (*AppConfig, string, error) {
	realpath, err := filepath.Abs(f)
	if err != nil {
		return nil, "", err
	}
	realpath = filepath.Clean(realpath)

	c := new(AppConfig)
	c.File = realpath

	// 设置默认值
	if err := defaults.Set(c); err != nil {
		return nil, realpath, errors.Wrap(err, "set default config failed")
	}

	file, err := os.ReadFile(realpath)
	if err != nil {
		return nil, realpath, errors.Wrap(err, "read config file failed")
	}

	err = yaml.Unmarshal(file, c)
	if err != nil {
		return nil, realpath, errors.Wrap(err, "parse config file failed")
	}

	// 再次设置默认值，以填充 YAML 中存在但值为空的字段
	// defaults.Set 只有在字段为该类型的零值时才会填充
	if err := defaults.Set(c); err != nil {
		return nil, realpath, errors.Wrap(err, "re-set default config failed")
	}

	c.applyEnv()

	if err := c.Validate(); err != nil {
		return nil, realpath, err
	}

	return c, realpath, nil
}

// applyEnv 环境变量优先于配置文件
func (c *AppConfig) applyEnv() {
	if v := os.Getenv(EnvStoreURI); v != "" {
		c.Store.URI = v
	}
	if v := os.Getenv(EnvHttpPort); v != "" {
		c.Server.HttpPort = NormalizeAddr(v)
	}
}

// NormalizeAddr 将纯端口转换为监听地址，"3000" -> ":3000"
func NormalizeAddr(port string) string {
	port = strings.TrimSpace(port)
	if strings.Contains(port, ":") {
		return port
	}
	return ":" + port
}

// Validate 校验配置取值
func (c *AppConfig) Validate() error {
	switch c.Store.Driver {
	case store.DriverMongo, store.DriverSQLite:
	default:
		return errors.Errorf("unknown store driver %q", c.Store.Driver)
	}
	if _, err := util.ParseDuration(c.Store.ConnectTimeout); err != nil {
		return errors.Wrap(err, "parse store.connect-timeout failed")
	}
	if _, err := util.ParseDuration(c.Task.StoreProbeInterval); err != nil {
		return errors.Wrap(err, "parse task.store-probe-interval failed")
	}
	return nil
}

// Save 保存配置到文件
func (c *AppConfig) Save() error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "marshal config failed")
	}

	err = os.WriteFile(c.File, data, 0644)
	if err != nil {
		return errors.Wrap(err, "write config file failed")
	}

	return nil
}

// GetStoreConfig 获取存储连接配置
func (c *AppConfig) GetStoreConfig() store.Config {
	timeout, _ := util.ParseDuration(c.Store.ConnectTimeout)
	return store.Config{
		Driver:         c.Store.Driver,
		URI:            c.Store.URI,
		Database:       c.Store.Database,
		Collection:     c.Store.Collection,
		Path:           c.Store.Path,
		ConnectTimeout: timeout,
		RunMode:        c.Server.RunMode,
	}
}

// GetLoggerConfig 获取日志配置
func (c *AppConfig) GetLoggerConfig() logger.Config {
	return logger.Config{
		Level:      c.Log.Level,
		File:       c.Log.File,
		Production: c.Log.Production,
	}
}

// GetContextTimeout 获取请求上下文超时，0 表示不限制
func (c *AppConfig) GetContextTimeout() time.Duration {
	return time.Duration(c.App.DefaultContextTimeout) * time.Second
}

// GetStoreProbeInterval 获取存储探活间隔
func (c *AppConfig) GetStoreProbeInterval() time.Duration {
	d, _ := util.ParseDuration(c.Task.StoreProbeInterval)
	return d
}
