// Package app 提供 HTTP 响应辅助工具
package app

import (
	"github.com/gin-gonic/gin"
)

// VersionInfo version information // 版本信息
type VersionInfo struct {
	Version   string `json:"version"`
	GitTag    string `json:"gitTag"`
	BuildTime string `json:"buildTime"`
}

// MessageRes 携带提示消息的响应体
// Note 为空时不序列化（删除操作只返回 message）
type MessageRes struct {
	Message string      `json:"message"`
	Note    interface{} `json:"note,omitempty"`
}

type Response struct {
	Ctx *gin.Context
}

func NewResponse(ctx *gin.Context) *Response {
	return &Response{
		Ctx: ctx,
	}
}

// GetRequestIP gets the request IP
// GetRequestIP 获取ip
func GetRequestIP(c *gin.Context) string {
	reqIP := c.ClientIP()
	if reqIP == "::1" {
		reqIP = "127.0.0.1"
	}
	return reqIP
}

// ToResponse output raw payload to browser.
// ToResponse 直接输出数据（列表为裸数组，单条为裸对象）
func (r *Response) ToResponse(statusCode int, data interface{}) {
	r.send(statusCode, data)
}

// ToMessageResponse outputs {message}.
// ToMessageResponse 输出 {message} 响应体
func (r *Response) ToMessageResponse(statusCode int, message string) {
	r.send(statusCode, MessageRes{Message: message})
}

// ToNoteResponse outputs {message, note}.
// ToNoteResponse 输出 {message, note} 响应体
func (r *Response) ToNoteResponse(statusCode int, message string, note interface{}) {
	r.send(statusCode, MessageRes{Message: message, Note: note})
}

func (r *Response) send(statusCode int, content interface{}) {
	r.Ctx.JSON(statusCode, content)
}
