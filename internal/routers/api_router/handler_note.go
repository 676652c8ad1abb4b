package api_router

import (
	"net/http"

	"github.com/haierkeys/cloud-notes-api/internal/app"
	"github.com/haierkeys/cloud-notes-api/internal/dto"
	pkgapp "github.com/haierkeys/cloud-notes-api/pkg/app"
	apperrors "github.com/haierkeys/cloud-notes-api/pkg/errors"

	"github.com/gin-gonic/gin"
)

// NoteHandler 笔记 API 路由处理器
// 使用 App Container 注入依赖，支持统一错误处理
type NoteHandler struct {
	*Handler
}

// NewNoteHandler 创建 NoteHandler 实例
func NewNoteHandler(a *app.App) *NoteHandler {
	return &NoteHandler{
		Handler: NewHandler(a),
	}
}

// List 获取笔记列表
// @Summary 获取全部笔记
// @Description 返回数据库中全部笔记，顺序为存储层默认顺序
// @Tags 笔记
// @Produce json
// @Success 200 {array} dto.NoteDTO "成功"
// @Failure 500 {object} apperrors.AppError "存储错误"
// @Router /api/notes [get]
func (h *NoteHandler) List(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	ctx := c.Request.Context()

	notes, err := h.App.NoteService.List(ctx)
	if err != nil {
		h.logError(c, "NoteHandler.List", err)
		apperrors.ErrorResponse(c, err, "Error fetching notes")
		return
	}

	response.ToResponse(http.StatusOK, notes)
}

// Get 获取单条笔记详情
// @Summary 获取笔记详情
// @Description 根据 ID 获取单条笔记
// @Tags 笔记
// @Produce json
// @Param id path string true "笔记 ID"
// @Success 200 {object} dto.NoteDTO "成功"
// @Failure 404 {object} apperrors.AppError "笔记不存在"
// @Failure 500 {object} apperrors.AppError "存储错误"
// @Router /api/notes/{id} [get]
func (h *NoteHandler) Get(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	ctx := c.Request.Context()

	note, err := h.App.NoteService.Get(ctx, c.Param("id"))
	if err != nil {
		h.logError(c, "NoteHandler.Get", err)
		apperrors.ErrorResponse(c, err, "Error fetching note")
		return
	}

	response.ToResponse(http.StatusOK, note)
}

// Create 创建笔记
// @Summary 创建笔记
// @Description 创建一条新笔记，标题和内容必填，作者缺省为 Anonymous
// @Tags 笔记
// @Accept json
// @Produce json
// @Param params body dto.NoteCreateRequest true "创建参数"
// @Success 201 {object} pkgapp.MessageRes{note=dto.NoteDTO} "创建成功"
// @Failure 400 {object} apperrors.AppError "标题或内容缺失"
// @Failure 500 {object} apperrors.AppError "存储错误"
// @Router /api/notes [post]
func (h *NoteHandler) Create(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.NoteCreateRequest{}

	// 参数绑定和验证
	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.logError(c, "NoteHandler.Create.BindAndValid", errs)
		apperrors.ErrorResponse(c, apperrors.NewValidationError("Title and content are required"), "")
		return
	}

	ctx := c.Request.Context()

	note, err := h.App.NoteService.Create(ctx, params)
	if err != nil {
		h.logError(c, "NoteHandler.Create", err)
		apperrors.ErrorResponse(c, err, "Error creating note")
		return
	}

	response.ToNoteResponse(http.StatusCreated, "Note created successfully", note)
}

// Update 更新笔记
// @Summary 更新笔记
// @Description 按 ID 部分更新笔记，只有请求中出现的字段会被写入
// @Tags 笔记
// @Accept json
// @Produce json
// @Param id path string true "笔记 ID"
// @Param params body dto.NoteUpdateRequest true "更新参数"
// @Success 200 {object} pkgapp.MessageRes{note=dto.NoteDTO} "更新成功"
// @Failure 404 {object} apperrors.AppError "笔记不存在"
// @Failure 500 {object} apperrors.AppError "存储错误"
// @Router /api/notes/{id} [put]
func (h *NoteHandler) Update(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.NoteUpdateRequest{}

	// 参数绑定和验证
	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.logError(c, "NoteHandler.Update.BindAndValid", errs)
		apperrors.ErrorResponse(c, apperrors.NewValidationError("Invalid request body"), "")
		return
	}

	ctx := c.Request.Context()

	note, err := h.App.NoteService.Update(ctx, c.Param("id"), params)
	if err != nil {
		h.logError(c, "NoteHandler.Update", err)
		apperrors.ErrorResponse(c, err, "Error updating note")
		return
	}

	response.ToNoteResponse(http.StatusOK, "Note updated successfully", note)
}

// Delete 删除笔记
// @Summary 删除笔记
// @Description 按 ID 物理删除笔记，重复删除返回 404
// @Tags 笔记
// @Produce json
// @Param id path string true "笔记 ID"
// @Success 200 {object} pkgapp.MessageRes "删除成功"
// @Failure 404 {object} apperrors.AppError "笔记不存在"
// @Failure 500 {object} apperrors.AppError "存储错误"
// @Router /api/notes/{id} [delete]
func (h *NoteHandler) Delete(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	ctx := c.Request.Context()

	_, err := h.App.NoteService.Delete(ctx, c.Param("id"))
	if err != nil {
		h.logError(c, "NoteHandler.Delete", err)
		apperrors.ErrorResponse(c, err, "Error deleting note")
		return
	}

	response.ToMessageResponse(http.StatusOK, "Note deleted successfully")
}
