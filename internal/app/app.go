// Package app 提供应用容器，封装所有依赖和服务
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/haierkeys/cloud-notes-api/internal/dao"
	"github.com/haierkeys/cloud-notes-api/internal/domain"
	"github.com/haierkeys/cloud-notes-api/internal/service"
	pkgapp "github.com/haierkeys/cloud-notes-api/pkg/app"

	"go.uber.org/zap"
)

// App 应用容器，封装所有依赖和服务
type App struct {
	// 基础设施（注入的依赖）
	config *AppConfig
	logger *zap.Logger
	Dao    *dao.Dao

	// Repository 层
	NoteRepo domain.NoteRepository

	// Service 层
	NoteService service.NoteService

	// StartTime 进程启动时间，用于健康检查上报
	StartTime time.Time
}

// NewApp 创建应用容器实例
// 初始化所有依赖并进行依赖注入
// cfg: 应用配置（必须）
// logger: zap 日志器（必须）
// d: 数据访问容器（必须）
func NewApp(cfg *AppConfig, logger *zap.Logger, d *dao.Dao) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is required")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if d == nil {
		return nil, fmt.Errorf("dao is required")
	}

	a := &App{
		config:    cfg,
		logger:    logger,
		Dao:       d,
		StartTime: time.Now(),
	}

	// 初始化 Repository 层
	a.NoteRepo = dao.NewNoteRepository(d)

	// 初始化 Service 层
	a.NoteService = service.NewNoteService(a.NoteRepo, logger)

	return a, nil
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

// Ready 探测存储连通性，用于就绪检查
func (a *App) Ready(ctx context.Context) error {
	return a.Dao.Ping(ctx)
}

// Shutdown 优雅关闭容器持有的资源
func (a *App) Shutdown(ctx context.Context) error {
	if err := a.Dao.Close(ctx); err != nil {
		return err
	}
	a.logger.Info("dao closed")
	return nil
}
