package middleware

import (
	"net/http"

	pkgapp "github.com/haierkeys/cloud-notes-api/pkg/app"

	"github.com/gin-gonic/gin"
)

// NoFound 404 handler
// NoFound 404 处理
func NoFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		response := pkgapp.NewResponse(c)
		response.ToMessageResponse(http.StatusNotFound, "API not found")
		c.Abort()
	}
}
