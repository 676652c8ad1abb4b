// Package api_router 提供 HTTP API 路由处理器
package api_router

import (
	"github.com/haierkeys/cloud-notes-api/internal/app"
	"github.com/haierkeys/cloud-notes-api/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler 基础 Handler 结构体，封装 App Container
// 所有 API Handler 都应该嵌入此结构体以获得依赖注入能力
type Handler struct {
	App *app.App
}

// NewHandler 创建基础 Handler 实例
func NewHandler(a *app.App) *Handler {
	return &Handler{App: a}
}

// logError 记录带追踪 ID 的处理器错误
func (h *Handler) logError(c *gin.Context, method string, err error) {
	h.App.Logger().Error(method,
		zap.String("traceId", middleware.GetTraceIDFromGin(c)),
		zap.Error(err),
	)
}
