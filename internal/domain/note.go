// Package domain 定义领域模型和接口
package domain

import (
	"context"
	"errors"
	"time"
)

// 仓储层哨兵错误
var (
	// ErrNoteNotFound 笔记不存在（正常的查询结果，不是存储故障）
	ErrNoteNotFound = errors.New("note not found")

	// ErrInvalidNoteID 笔记 ID 格式非法
	ErrInvalidNoteID = errors.New("invalid note id")
)

// AnonymousAuthor 未提供作者时的默认值
const AnonymousAuthor = "Anonymous"

// Note 笔记领域模型
type Note struct {
	ID        string    // 存储层分配的十六进制 ObjectID
	Title     string    // 标题，非空
	Content   string    // 内容，非空
	Author    string    // 作者，缺省为 Anonymous
	CreatedAt time.Time // 创建时间，创建后不再变更
	UpdatedAt time.Time // 更新时间，每次更新刷新
}

// NoteUpdate 部分更新字段集
// nil 字段表示客户端未提供，保持原值不变
type NoteUpdate struct {
	Title   *string
	Content *string
	Author  *string
}

// IsEmpty 判断更新集是否不包含任何字段
func (u *NoteUpdate) IsEmpty() bool {
	return u.Title == nil && u.Content == nil && u.Author == nil
}

// NoteRepository 笔记仓储接口
type NoteRepository interface {
	// ListAll 获取全部笔记，顺序为存储层默认顺序
	ListAll(ctx context.Context) ([]*Note, error)

	// GetByID 根据 ID 获取笔记，不存在时返回 ErrNoteNotFound
	GetByID(ctx context.Context, id string) (*Note, error)

	// Create 创建笔记，由存储层分配 ID 和时间戳
	Create(ctx context.Context, title, content, author string) (*Note, error)

	// UpdateByID 按 ID 应用部分更新并刷新 UpdatedAt，返回更新后的笔记
	UpdateByID(ctx context.Context, id string, update *NoteUpdate) (*Note, error)

	// DeleteByID 按 ID 物理删除笔记，返回被删除的笔记
	DeleteByID(ctx context.Context, id string) (*Note, error)
}
