// Package routers 组装 HTTP 路由
package routers

import (
	"time"

	_ "github.com/haierkeys/cloud-notes-api/docs"
	"github.com/haierkeys/cloud-notes-api/internal/app"
	"github.com/haierkeys/cloud-notes-api/internal/middleware"
	"github.com/haierkeys/cloud-notes-api/internal/routers/api_router"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// NewRouter 创建公共 API 路由
func NewRouter(appContainer *app.App) *gin.Engine {

	// 获取配置
	cfg := appContainer.Config()

	r := gin.New()

	// Swagger 文档（由路由注解生成）
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	{
		api.Use(middleware.AppInfoWithConfig(app.Name, appContainer.Version().Version))
		api.Use(middleware.TraceMiddlewareWithConfig(cfg.Tracer.Enabled, cfg.Tracer.Header))
		api.Use(middleware.ContextTimeout(time.Duration(cfg.App.DefaultContextTimeout) * time.Second))
		api.Use(middleware.CorsWithConfig(cfg.Cors.AllowOrigin))
		api.Use(middleware.AccessLogWithLogger(appContainer.Logger()))
		api.Use(middleware.RecoveryWithLogger(appContainer.Logger()))

		// 创建 Handlers（注入 App Container）
		noteHandler := api_router.NewNoteHandler(appContainer)
		healthHandler := api_router.NewHealthHandler(appContainer)

		api.GET("/health", healthHandler.Check)

		api.GET("/notes", noteHandler.List)
		api.POST("/notes", noteHandler.Create)
		api.GET("/notes/:id", noteHandler.Get)
		api.PUT("/notes/:id", noteHandler.Update)
		api.DELETE("/notes/:id", noteHandler.Delete)
	}

	r.NoRoute(middleware.NoFound())

	return r
}
