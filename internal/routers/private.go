package routers

import (
	"net/http"
	"net/http/pprof"

	"github.com/haierkeys/cloud-notes-api/internal/middleware"
	"github.com/haierkeys/cloud-notes-api/internal/routers/api_router"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// NewPrivateRouterWithLogger creates the private listener router (using injected logger).
// NewPrivateRouterWithLogger 创建私有监听路由（使用注入的日志器）。
// 提供 /metrics 和 /debug/vars，debug 模式下额外暴露 pprof，
// 该监听不对公网开放，不挂载业务路由
func NewPrivateRouterWithLogger(runMode string, logger *zap.Logger) *gin.Engine {

	r := gin.New()
	r.Use(middleware.RecoveryWithLogger(logger))

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/debug/vars", api_router.Expvar)

	if runMode == "debug" {
		p := r.Group("/debug/pprof")
		{
			p.GET("/", pprofHandler(pprof.Index))
			p.GET("/cmdline", pprofHandler(pprof.Cmdline))
			p.GET("/profile", pprofHandler(pprof.Profile))
			p.POST("/symbol", pprofHandler(pprof.Symbol))
			p.GET("/symbol", pprofHandler(pprof.Symbol))
			p.GET("/trace", pprofHandler(pprof.Trace))
			p.GET("/allocs", pprofHandler(pprof.Handler("allocs").ServeHTTP))
			p.GET("/block", pprofHandler(pprof.Handler("block").ServeHTTP))
			p.GET("/goroutine", pprofHandler(pprof.Handler("goroutine").ServeHTTP))
			p.GET("/heap", pprofHandler(pprof.Handler("heap").ServeHTTP))
			p.GET("/mutex", pprofHandler(pprof.Handler("mutex").ServeHTTP))
			p.GET("/threadcreate", pprofHandler(pprof.Handler("threadcreate").ServeHTTP))
		}
	}

	return r
}

// pprofHandler 将标准库 pprof 处理函数适配为 gin 处理函数
func pprofHandler(h http.HandlerFunc) gin.HandlerFunc {
	handler := http.HandlerFunc(h)
	return func(c *gin.Context) {
		handler.ServeHTTP(c.Writer, c.Request)
	}
}
