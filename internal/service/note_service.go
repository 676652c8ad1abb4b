// Package service 实现业务逻辑层
package service

import (
	"context"
	"strings"

	"github.com/haierkeys/cloud-notes-api/internal/domain"
	"github.com/haierkeys/cloud-notes-api/internal/dto"
	apperrors "github.com/haierkeys/cloud-notes-api/pkg/errors"

	"go.uber.org/zap"
)

// NoteService 定义笔记业务服务接口
type NoteService interface {
	// List 获取全部笔记
	List(ctx context.Context) ([]*dto.NoteDTO, error)

	// Get 获取单条笔记
	Get(ctx context.Context, id string) (*dto.NoteDTO, error)

	// Create 创建笔记
	Create(ctx context.Context, params *dto.NoteCreateRequest) (*dto.NoteDTO, error)

	// Update 按 ID 部分更新笔记
	Update(ctx context.Context, id string, params *dto.NoteUpdateRequest) (*dto.NoteDTO, error)

	// Delete 按 ID 删除笔记
	Delete(ctx context.Context, id string) (*dto.NoteDTO, error)
}

// noteService 实现 NoteService 接口
type noteService struct {
	noteRepo domain.NoteRepository
	logger   *zap.Logger
}

// NewNoteService 创建 NoteService 实例
func NewNoteService(noteRepo domain.NoteRepository, lg *zap.Logger) NoteService {
	return &noteService{
		noteRepo: noteRepo,
		logger:   lg,
	}
}

// List 获取全部笔记，顺序为存储层默认顺序
func (s *noteService) List(ctx context.Context) ([]*dto.NoteDTO, error) {
	notes, err := s.noteRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewNoteDTOList(notes), nil
}

// Get 获取单条笔记
func (s *noteService) Get(ctx context.Context, id string) (*dto.NoteDTO, error) {
	note, err := s.noteRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewNoteDTO(note), nil
}

// Create 创建笔记
// 标题和内容为必填项，校验在业务层完成，存储层只做兜底
func (s *noteService) Create(ctx context.Context, params *dto.NoteCreateRequest) (*dto.NoteDTO, error) {
	title := strings.TrimSpace(params.Title)
	if title == "" || params.Content == "" {
		return nil, apperrors.NewValidationError("Title and content are required")
	}

	note, err := s.noteRepo.Create(ctx, title, params.Content, params.Author)
	if err != nil {
		return nil, err
	}

	s.logger.Info("note created", zap.String("noteId", note.ID))
	return dto.NewNoteDTO(note), nil
}

// Update 按 ID 部分更新笔记
// 只有请求中出现的字段会被写入，UpdatedAt 始终刷新
func (s *noteService) Update(ctx context.Context, id string, params *dto.NoteUpdateRequest) (*dto.NoteDTO, error) {
	note, err := s.noteRepo.UpdateByID(ctx, id, params.ToUpdate())
	if err != nil {
		return nil, err
	}

	s.logger.Info("note updated", zap.String("noteId", note.ID))
	return dto.NewNoteDTO(note), nil
}

// Delete 按 ID 删除笔记，删除是物理删除，重复删除返回 not-found
func (s *noteService) Delete(ctx context.Context, id string) (*dto.NoteDTO, error) {
	note, err := s.noteRepo.DeleteByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Info("note deleted", zap.String("noteId", note.ID))
	return dto.NewNoteDTO(note), nil
}
