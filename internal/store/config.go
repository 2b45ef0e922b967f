package store

import "time"

// Supported drivers
// 支持的存储驱动
const (
	DriverMongo  = "mongodb"
	DriverSQLite = "sqlite"
)

// Config store connection settings
// Config 存储连接配置
type Config struct {
	// Driver mongodb or sqlite
	Driver string
	// URI mongodb connection string
	URI string
	// Database mongodb database name
	Database string
	// Collection collection name, also the sqlite table name
	Collection string
	// Path sqlite database file
	Path string
	// ConnectTimeout bounds the single connection attempt
	ConnectTimeout time.Duration
	// RunMode debug enables store command logging
	RunMode string
}
