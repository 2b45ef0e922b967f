package store

import (
	"context"

	"github.com/haierkeys/note-crud-service/pkg/logger"

	"go.mongodb.org/mongo-driver/v2/event"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
	"go.uber.org/zap"
)

// NewMongo creates a connector bound to cfg.Database / cfg.Collection
// NewMongo 创建绑定到 cfg.Database / cfg.Collection 的连接器
func NewMongo(cfg Config, lg *zap.Logger) *Connector[mongo.Collection] {
	if lg == nil {
		lg = zap.NewNop()
	}

	dial := func(ctx context.Context) (*mongo.Collection, func(context.Context) error, func(context.Context) error, error) {
		opts := options.Client().ApplyURI(cfg.URI)
		if cfg.ConnectTimeout > 0 {
			opts.SetConnectTimeout(cfg.ConnectTimeout)
			opts.SetServerSelectionTimeout(cfg.ConnectTimeout)
		}
		if cfg.RunMode == "debug" {
			opts.SetMonitor(commandMonitor(lg))
		}

		client, err := mongo.Connect(opts)
		if err != nil {
			return nil, nil, nil, err
		}

		// mongo.Connect does not dial, Ping verifies the server is reachable
		if err := client.Ping(ctx, readpref.Primary()); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, nil, nil, err
		}

		lg.Info("mongodb collection bound",
			zap.String(logger.FieldDatabase, cfg.Database),
			zap.String(logger.FieldCollection, cfg.Collection))

		coll := client.Database(cfg.Database).Collection(cfg.Collection)
		ping := func(ctx context.Context) error {
			return client.Ping(ctx, readpref.Primary())
		}
		return coll, ping, client.Disconnect, nil
	}

	return NewConnector[mongo.Collection](DriverMongo, cfg.ConnectTimeout, dial, lg)
}

// commandMonitor logs every command in debug run mode
// commandMonitor debug 模式下记录每条命令
func commandMonitor(lg *zap.Logger) *event.CommandMonitor {
	return &event.CommandMonitor{
		Succeeded: func(_ context.Context, e *event.CommandSucceededEvent) {
			lg.Debug("mongodb command",
				zap.String(logger.FieldMethod, e.CommandName),
				zap.Duration(logger.FieldDuration, e.Duration))
		},
		Failed: func(_ context.Context, e *event.CommandFailedEvent) {
			lg.Warn("mongodb command failed",
				zap.String(logger.FieldMethod, e.CommandName),
				zap.Duration(logger.FieldDuration, e.Duration))
		},
	}
}
