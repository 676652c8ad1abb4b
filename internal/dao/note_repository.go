// Package dao 实现数据访问层
package dao

import (
	"context"
	"strings"
	"time"

	"github.com/haierkeys/cloud-notes-api/internal/domain"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// noteModel 笔记数据库模型
type noteModel struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Title     string             `bson:"title"`
	Content   string             `bson:"content"`
	Author    string             `bson:"author"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

// noteRepository 实现 domain.NoteRepository 接口
type noteRepository struct {
	dao *Dao
}

// NewNoteRepository 创建 NoteRepository 实例
func NewNoteRepository(dao *Dao) domain.NoteRepository {
	return &noteRepository{dao: dao}
}

// toDomain 将数据库模型转换为领域模型
func (r *noteRepository) toDomain(m *noteModel) *domain.Note {
	if m == nil {
		return nil
	}
	return &domain.Note{
		ID:        m.ID.Hex(),
		Title:     m.Title,
		Content:   m.Content,
		Author:    m.Author,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// parseID 解析十六进制 ObjectID
// 格式非法时返回 ErrInvalidNoteID，由上层映射为存储错误而非 404
func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, errors.Wrapf(domain.ErrInvalidNoteID, "%q", id)
	}
	return oid, nil
}

// ListAll 获取全部笔记，顺序为存储层默认顺序
func (r *noteRepository) ListAll(ctx context.Context) ([]*domain.Note, error) {
	cursor, err := r.dao.Collection().Find(ctx, bson.D{})
	if err != nil {
		return nil, errors.Wrap(err, "find notes failed")
	}
	defer cursor.Close(ctx)

	var models []*noteModel
	if err := cursor.All(ctx, &models); err != nil {
		return nil, errors.Wrap(err, "decode notes failed")
	}

	notes := make([]*domain.Note, 0, len(models))
	for _, m := range models {
		notes = append(notes, r.toDomain(m))
	}
	return notes, nil
}

// GetByID 根据 ID 获取笔记
func (r *noteRepository) GetByID(ctx context.Context, id string) (*domain.Note, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	m := new(noteModel)
	err = r.dao.Collection().FindOne(ctx, bson.M{"_id": oid}).Decode(m)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNoteNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "find note failed")
	}
	return r.toDomain(m), nil
}

// Create 创建笔记
// 标题去除首尾空白，作者缺省为 Anonymous，两个时间戳取同一时刻
func (r *noteRepository) Create(ctx context.Context, title, content, author string) (*domain.Note, error) {
	title = strings.TrimSpace(title)
	if title == "" || content == "" {
		return nil, errors.New("title and content must not be empty")
	}
	if author == "" {
		author = domain.AnonymousAuthor
	}

	now := time.Now().UTC()
	m := &noteModel{
		Title:     title,
		Content:   content,
		Author:    author,
		CreatedAt: now,
		UpdatedAt: now,
	}

	result, err := r.dao.Collection().InsertOne(ctx, m)
	if err != nil {
		return nil, errors.Wrap(err, "insert note failed")
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, errors.New("unexpected inserted id type")
	}
	m.ID = oid

	return r.toDomain(m), nil
}

// UpdateByID 按 ID 应用部分更新
// 只写入客户端提供的字段，UpdatedAt 始终刷新，返回更新后的文档
func (r *noteRepository) UpdateByID(ctx context.Context, id string, update *domain.NoteUpdate) (*domain.Note, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	set := bson.M{"updatedAt": time.Now().UTC()}
	if update.Title != nil {
		set["title"] = strings.TrimSpace(*update.Title)
	}
	if update.Content != nil {
		set["content"] = *update.Content
	}
	if update.Author != nil {
		set["author"] = *update.Author
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	m := new(noteModel)
	err = r.dao.Collection().FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(m)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNoteNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "update note failed")
	}
	return r.toDomain(m), nil
}

// DeleteByID 按 ID 物理删除笔记，返回被删除的文档
func (r *noteRepository) DeleteByID(ctx context.Context, id string) (*domain.Note, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	m := new(noteModel)
	err = r.dao.Collection().FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(m)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNoteNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "delete note failed")
	}
	return r.toDomain(m), nil
}
