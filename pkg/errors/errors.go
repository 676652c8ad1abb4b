// Package errors 提供统一的应用错误结构和响应转换
package errors

import (
	"errors"
	"net/http"

	"github.com/haierkeys/cloud-notes-api/internal/domain"

	"github.com/gin-gonic/gin"
)

// AppError 统一应用错误结构体
// 序列化结果即对外错误响应体：{message, error?}
type AppError struct {
	// StatusCode HTTP 状态码，不序列化
	StatusCode int `json:"-"`
	// Message 错误消息
	Message string `json:"message"`
	// Detail 底层错误文本（仅 500 类错误携带）
	Detail string `json:"error,omitempty"`
	// Cause 原始错误，不序列化
	Cause error `json:"-"`
}

// Error 实现 error 接口
func (e *AppError) Error() string {
	return e.Message
}

// Unwrap 实现 errors.Unwrap 接口，支持错误链路追踪
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewValidationError 创建校验错误（400）
func NewValidationError(message string) *AppError {
	return &AppError{
		StatusCode: http.StatusBadRequest,
		Message:    message,
	}
}

// NewNotFoundError 创建未找到错误（404）
// 未找到是正常的控制流结果，不携带底层错误文本
func NewNotFoundError(message string) *AppError {
	return &AppError{
		StatusCode: http.StatusNotFound,
		Message:    message,
	}
}

// NewStoreError 创建存储错误（500），底层错误文本随响应返回
func NewStoreError(message string, cause error) *AppError {
	e := &AppError{
		StatusCode: http.StatusInternalServerError,
		Message:    message,
		Cause:      cause,
	}
	if cause != nil {
		e.Detail = cause.Error()
	}
	return e
}

// FromError converts an arbitrary error into an AppError.
// FromError 将任意错误转换为 AppError。
// 已是 AppError 的保持不变；仓储层的 not-found 哨兵映射为 404；
// 其余（含非法 ID、连接故障）映射为携带 fallbackMessage 的存储错误。
func FromError(err error, fallbackMessage string) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	if errors.Is(err, domain.ErrNoteNotFound) {
		return NewNotFoundError("Note not found")
	}

	return NewStoreError(fallbackMessage, err)
}

// ErrorResponse 统一错误响应处理
// 将错误转换为 AppError 并按其状态码输出 JSON 响应
func ErrorResponse(c *gin.Context, err error, fallbackMessage string) {
	appErr := FromError(err, fallbackMessage)
	c.JSON(appErr.StatusCode, appErr)
}
