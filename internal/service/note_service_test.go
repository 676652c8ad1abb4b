package service

import (
	"context"
	"testing"

	"github.com/haierkeys/cloud-notes-api/internal/domain"
	"github.com/haierkeys/cloud-notes-api/internal/dto"
	apperrors "github.com/haierkeys/cloud-notes-api/pkg/errors"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type mockNoteRepo struct {
	domain.NoteRepository
	notes      []*domain.Note
	err        error
	gotTitle   string
	gotContent string
	gotAuthor  string
	gotUpdate  *domain.NoteUpdate
	gotID      string
}

func (m *mockNoteRepo) ListAll(ctx context.Context) ([]*domain.Note, error) {
	return m.notes, m.err
}

func (m *mockNoteRepo) GetByID(ctx context.Context, id string) (*domain.Note, error) {
	m.gotID = id
	if m.err != nil {
		return nil, m.err
	}
	return m.notes[0], nil
}

func (m *mockNoteRepo) Create(ctx context.Context, title, content, author string) (*domain.Note, error) {
	m.gotTitle = title
	m.gotContent = content
	m.gotAuthor = author
	if m.err != nil {
		return nil, m.err
	}
	if author == "" {
		author = domain.AnonymousAuthor
	}
	return &domain.Note{ID: "65f000000000000000000001", Title: title, Content: content, Author: author}, nil
}

func (m *mockNoteRepo) UpdateByID(ctx context.Context, id string, update *domain.NoteUpdate) (*domain.Note, error) {
	m.gotID = id
	m.gotUpdate = update
	if m.err != nil {
		return nil, m.err
	}
	return m.notes[0], nil
}

func (m *mockNoteRepo) DeleteByID(ctx context.Context, id string) (*domain.Note, error) {
	m.gotID = id
	if m.err != nil {
		return nil, m.err
	}
	return m.notes[0], nil
}

func TestNoteServiceCreateValidation(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		params  *dto.NoteCreateRequest
		wantErr bool
	}{
		{
			name:    "missing title",
			params:  &dto.NoteCreateRequest{Content: "some content"},
			wantErr: true,
		},
		{
			name:    "whitespace only title",
			params:  &dto.NoteCreateRequest{Title: "   ", Content: "some content"},
			wantErr: true,
		},
		{
			name:    "missing content",
			params:  &dto.NoteCreateRequest{Title: "a title"},
			wantErr: true,
		},
		{
			name:    "title and content present",
			params:  &dto.NoteCreateRequest{Title: "a title", Content: "some content"},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockNoteRepo{}
			svc := NewNoteService(repo, zap.NewNop())

			note, err := svc.Create(ctx, tt.params)
			if tt.wantErr {
				assert.Nil(t, note)

				var appErr *apperrors.AppError
				assert.ErrorAs(t, err, &appErr)
				assert.Equal(t, 400, appErr.StatusCode)
				assert.Equal(t, "Title and content are required", appErr.Message)

				// 校验失败时不应触达仓储层
				assert.Empty(t, repo.gotTitle)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "a title", note.Title)
			assert.Equal(t, "some content", note.Content)
		})
	}
}

func TestNoteServiceCreateTrimsTitle(t *testing.T) {
	repo := &mockNoteRepo{}
	svc := NewNoteService(repo, zap.NewNop())

	note, err := svc.Create(context.Background(), &dto.NoteCreateRequest{
		Title:   "  padded title  ",
		Content: "body",
	})
	assert.NoError(t, err)
	assert.Equal(t, "padded title", repo.gotTitle)
	assert.Equal(t, "padded title", note.Title)
}

func TestNoteServiceCreateDefaultsAuthor(t *testing.T) {
	repo := &mockNoteRepo{}
	svc := NewNoteService(repo, zap.NewNop())

	note, err := svc.Create(context.Background(), &dto.NoteCreateRequest{
		Title:   "t",
		Content: "c",
	})
	assert.NoError(t, err)
	assert.Equal(t, domain.AnonymousAuthor, note.Author)
}

func TestNoteServiceListAlwaysReturnsSlice(t *testing.T) {
	repo := &mockNoteRepo{notes: nil}
	svc := NewNoteService(repo, zap.NewNop())

	notes, err := svc.List(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, notes)
	assert.Len(t, notes, 0)
}

func TestNoteServiceGetNotFoundPassthrough(t *testing.T) {
	repo := &mockNoteRepo{err: domain.ErrNoteNotFound}
	svc := NewNoteService(repo, zap.NewNop())

	note, err := svc.Get(context.Background(), "65f000000000000000000001")
	assert.Nil(t, note)
	assert.ErrorIs(t, err, domain.ErrNoteNotFound)
}

func TestNoteServiceUpdatePartialFields(t *testing.T) {
	title := "new title"

	repo := &mockNoteRepo{notes: []*domain.Note{{ID: "65f000000000000000000001", Title: title}}}
	svc := NewNoteService(repo, zap.NewNop())

	_, err := svc.Update(context.Background(), "65f000000000000000000001", &dto.NoteUpdateRequest{
		Title: &title,
	})
	assert.NoError(t, err)
	assert.Equal(t, "65f000000000000000000001", repo.gotID)

	// 未提供的字段保持 nil，不会覆盖原值
	assert.NotNil(t, repo.gotUpdate.Title)
	assert.Equal(t, title, *repo.gotUpdate.Title)
	assert.Nil(t, repo.gotUpdate.Content)
	assert.Nil(t, repo.gotUpdate.Author)
}

func TestNoteServiceDeleteNotFoundPassthrough(t *testing.T) {
	repo := &mockNoteRepo{err: domain.ErrNoteNotFound}
	svc := NewNoteService(repo, zap.NewNop())

	note, err := svc.Delete(context.Background(), "65f000000000000000000001")
	assert.Nil(t, note)
	assert.ErrorIs(t, err, domain.ErrNoteNotFound)
}
