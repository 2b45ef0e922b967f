package store

import (
	"context"
	"os"
	"path/filepath"

	"github.com/haierkeys/note-crud-service/internal/model"
	"github.com/haierkeys/note-crud-service/pkg/logger"

	"github.com/glebarez/sqlite"
	"github.com/haierkeys/gormTracing"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

// NewSQLite creates a connector to an embedded sqlite file; the collection maps to a table
// NewSQLite 创建嵌入式 sqlite 连接器，集合对应一张表
func NewSQLite(cfg Config, lg *zap.Logger) *Connector[gorm.DB] {
	if lg == nil {
		lg = zap.NewNop()
	}

	dial := func(ctx context.Context) (*gorm.DB, func(context.Context) error, func(context.Context) error, error) {
		if dir := filepath.Dir(cfg.Path); dir != "" {
			if err := os.MkdirAll(dir, 0754); err != nil {
				return nil, nil, nil, errors.Wrap(err, "create sqlite directory")
			}
		}

		logMode := gormlogger.Silent
		if cfg.RunMode == "debug" {
			logMode = gormlogger.Info
		}

		db, err := gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{
			Logger: gormlogger.Default.LogMode(logMode),
			NamingStrategy: schema.NamingStrategy{
				SingularTable: true,
			},
		})
		if err != nil {
			return nil, nil, nil, err
		}

		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, nil, err
		}
		// sqlite 单写连接
		sqlDB.SetMaxOpenConns(1)

		if err := sqlDB.PingContext(ctx); err != nil {
			_ = sqlDB.Close()
			return nil, nil, nil, err
		}

		if err := model.AutoMigrate(db.WithContext(ctx), "NoteDocument", cfg.Collection); err != nil {
			_ = sqlDB.Close()
			return nil, nil, nil, errors.Wrap(err, "create collection table")
		}

		_ = db.Use(&gormTracing.OpentracingPlugin{})

		lg.Info("sqlite collection bound",
			zap.String(logger.FieldDatabase, cfg.Path),
			zap.String(logger.FieldCollection, cfg.Collection))

		ping := func(ctx context.Context) error {
			return sqlDB.PingContext(ctx)
		}
		closeFn := func(context.Context) error {
			return sqlDB.Close()
		}
		return db, ping, closeFn, nil
	}

	return NewConnector[gorm.DB](DriverSQLite, cfg.ConnectTimeout, dial, lg)
}
