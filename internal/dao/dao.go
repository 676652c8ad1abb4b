// Package dao 实现数据访问层
package dao

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// DatabaseConfig 数据访问层配置
type DatabaseConfig struct {
	// URI MongoDB 连接串
	URI string
	// Name 数据库名
	Name string
	// Collection 笔记集合名
	Collection string
	// ConnectTimeout 连接超时
	ConnectTimeout time.Duration
}

// Dao 数据访问容器，持有 Mongo 客户端和集合句柄
type Dao struct {
	client *mongo.Client
	db     *mongo.Database
	config *DatabaseConfig
	logger *zap.Logger
}

// NewMongoEngine creates the Mongo client and returns the Dao container.
// NewMongoEngine 创建 Mongo 客户端并返回 Dao 容器。
// 连接是惰性建立的：这里不阻塞等待存储就绪，就绪状态通过 Ping 观测。
func NewMongoEngine(cfg *DatabaseConfig, lg *zap.Logger) (*Dao, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, errors.Wrap(err, "connect mongodb failed")
	}

	d := &Dao{
		client: client,
		db:     client.Database(cfg.Name),
		config: cfg,
		logger: lg,
	}

	// 后台探测一次连通性，结果只记日志，不影响启动
	go func() {
		pingCtx, pingCancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
		defer pingCancel()
		if err := d.Ping(pingCtx); err != nil {
			lg.Warn("mongodb not reachable at startup", zap.String("uri", cfg.URI), zap.Error(err))
			return
		}
		lg.Info("mongodb connected", zap.String("database", cfg.Name))
	}()

	return d, nil
}

// Ping 探测存储连通性，用于就绪检查
func (d *Dao) Ping(ctx context.Context) error {
	return d.client.Ping(ctx, readpref.Primary())
}

// Collection 获取笔记集合句柄
func (d *Dao) Collection() *mongo.Collection {
	return d.db.Collection(d.config.Collection)
}

// Close 关闭 Mongo 客户端
func (d *Dao) Close(ctx context.Context) error {
	return d.client.Disconnect(ctx)
}
