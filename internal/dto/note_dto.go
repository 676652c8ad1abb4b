// Package dto Defines data transfer objects (request parameters and response structs)
// Package dto 定义数据传输对象（请求参数和响应结构体）
package dto

import (
	"time"

	"github.com/haierkeys/cloud-notes-api/internal/domain"

	"github.com/jinzhu/copier"
)

// NoteDTO Note data transfer object
// NoteDTO 笔记数据传输对象
type NoteDTO struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NoteCreateRequest Request parameters for creating a note
// NoteCreateRequest 创建笔记请求参数
type NoteCreateRequest struct {
	Title   string `json:"title" form:"title"`
	Content string `json:"content" form:"content"`
	Author  string `json:"author" form:"author"`
}

// NoteUpdateRequest Request parameters for updating a note
// NoteUpdateRequest 更新笔记请求参数
// 指针字段区分“未提供”和“提供了空值”，未提供的字段保持原值
type NoteUpdateRequest struct {
	Title   *string `json:"title" form:"title"`
	Content *string `json:"content" form:"content"`
	Author  *string `json:"author" form:"author"`
}

// ToUpdate 转换为领域部分更新字段集
func (r *NoteUpdateRequest) ToUpdate() *domain.NoteUpdate {
	return &domain.NoteUpdate{
		Title:   r.Title,
		Content: r.Content,
		Author:  r.Author,
	}
}

// NewNoteDTO 将领域模型转换为 DTO
func NewNoteDTO(note *domain.Note) *NoteDTO {
	if note == nil {
		return nil
	}
	d := &NoteDTO{}
	_ = copier.Copy(d, note)
	return d
}

// NewNoteDTOList 将领域模型列表转换为 DTO 列表
// 始终返回非 nil 切片，列表响应序列化为 [] 而不是 null
func NewNoteDTOList(notes []*domain.Note) []*NoteDTO {
	list := make([]*NoteDTO, 0, len(notes))
	for _, n := range notes {
		list = append(list, NewNoteDTO(n))
	}
	return list
}
