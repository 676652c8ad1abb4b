package api_router

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/haierkeys/cloud-notes-api/internal/app"
	"github.com/haierkeys/cloud-notes-api/internal/dao"
	"github.com/haierkeys/cloud-notes-api/internal/domain"
	"github.com/haierkeys/cloud-notes-api/internal/dto"
	"github.com/haierkeys/cloud-notes-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type mockNoteService struct {
	service.NoteService
	notes []*dto.NoteDTO
	note  *dto.NoteDTO
	err   error
}

func (m *mockNoteService) List(ctx context.Context) ([]*dto.NoteDTO, error) {
	return m.notes, m.err
}

func (m *mockNoteService) Get(ctx context.Context, id string) (*dto.NoteDTO, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.note, nil
}

func (m *mockNoteService) Create(ctx context.Context, params *dto.NoteCreateRequest) (*dto.NoteDTO, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.note, nil
}

func (m *mockNoteService) Update(ctx context.Context, id string, params *dto.NoteUpdateRequest) (*dto.NoteDTO, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.note, nil
}

func (m *mockNoteService) Delete(ctx context.Context, id string) (*dto.NoteDTO, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.note, nil
}

// newTestRouter 构建带 mock 服务的测试路由
func newTestRouter(t *testing.T, svc service.NoteService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	a, err := app.NewApp(&app.AppConfig{}, zap.NewNop(), &dao.Dao{})
	if err != nil {
		t.Fatalf("NewApp failed: %v", err)
	}
	a.NoteService = svc

	noteHandler := NewNoteHandler(a)

	r := gin.New()
	api := r.Group("/api")
	{
		api.GET("/notes", noteHandler.List)
		api.POST("/notes", noteHandler.Create)
		api.GET("/notes/:id", noteHandler.Get)
		api.PUT("/notes/:id", noteHandler.Update)
		api.DELETE("/notes/:id", noteHandler.Delete)
	}
	return r
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	body := map[string]interface{}{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response body failed: %v, body: %s", err, w.Body.String())
	}
	return body
}

func sampleNote() *dto.NoteDTO {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return &dto.NoteDTO{
		ID:        "65f000000000000000000001",
		Title:     "First Note",
		Content:   "hello",
		Author:    "Anonymous",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestNoteListReturnsBareArray(t *testing.T) {
	r := newTestRouter(t, &mockNoteService{notes: []*dto.NoteDTO{sampleNote()}})

	w := doRequest(r, http.MethodGet, "/api/notes", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var notes []map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &notes))
	assert.Len(t, notes, 1)
	assert.Equal(t, "First Note", notes[0]["title"])
	assert.Equal(t, "65f000000000000000000001", notes[0]["id"])
}

func TestNoteListEmptySerializesAsEmptyArray(t *testing.T) {
	r := newTestRouter(t, &mockNoteService{notes: []*dto.NoteDTO{}})

	w := doRequest(r, http.MethodGet, "/api/notes", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}

func TestNoteListStoreError(t *testing.T) {
	r := newTestRouter(t, &mockNoteService{err: errors.New("connection refused")})

	w := doRequest(r, http.MethodGet, "/api/notes", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "Error fetching notes", body["message"])
	assert.Equal(t, "connection refused", body["error"])
}

func TestNoteGetReturnsNote(t *testing.T) {
	r := newTestRouter(t, &mockNoteService{note: sampleNote()})

	w := doRequest(r, http.MethodGet, "/api/notes/65f000000000000000000001", "")
	assert.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "First Note", body["title"])
	assert.Equal(t, "hello", body["content"])
	assert.Equal(t, "Anonymous", body["author"])
	// 笔记详情为裸对象，不含 message 包装
	assert.NotContains(t, body, "message")
}

func TestNoteGetNotFound(t *testing.T) {
	r := newTestRouter(t, &mockNoteService{err: domain.ErrNoteNotFound})

	w := doRequest(r, http.MethodGet, "/api/notes/65f000000000000000000001", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "Note not found", body["message"])
	// 404 不携带底层错误文本
	assert.NotContains(t, body, "error")
}

func TestNoteGetStoreError(t *testing.T) {
	r := newTestRouter(t, &mockNoteService{err: errors.New("boom")})

	w := doRequest(r, http.MethodGet, "/api/notes/65f000000000000000000001", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "Error fetching note", body["message"])
	assert.Equal(t, "boom", body["error"])
}

func TestNoteCreateSuccess(t *testing.T) {
	r := newTestRouter(t, &mockNoteService{note: sampleNote()})

	w := doRequest(r, http.MethodPost, "/api/notes", `{"title":"First Note","content":"hello"}`)
	assert.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "Note created successfully", body["message"])

	note, ok := body["note"].(map[string]interface{})
	assert.True(t, ok, "note field missing: %s", w.Body.String())
	assert.Equal(t, "First Note", note["title"])
}

func TestNoteCreateMalformedBody(t *testing.T) {
	r := newTestRouter(t, &mockNoteService{note: sampleNote()})

	w := doRequest(r, http.MethodPost, "/api/notes", `{not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "Title and content are required", body["message"])
}

func TestNoteCreateValidationError(t *testing.T) {
	svc := service.NewNoteService(&stubRepo{}, zap.NewNop())
	r := newTestRouter(t, svc)

	w := doRequest(r, http.MethodPost, "/api/notes", `{"title":"","content":""}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "Title and content are required", body["message"])
}

func TestNoteCreateStoreError(t *testing.T) {
	r := newTestRouter(t, &mockNoteService{err: errors.New("insert failed")})

	w := doRequest(r, http.MethodPost, "/api/notes", `{"title":"t","content":"c"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "Error creating note", body["message"])
	assert.Equal(t, "insert failed", body["error"])
}

func TestNoteUpdateSuccess(t *testing.T) {
	r := newTestRouter(t, &mockNoteService{note: sampleNote()})

	w := doRequest(r, http.MethodPut, "/api/notes/65f000000000000000000001", `{"content":"updated"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "Note updated successfully", body["message"])
	assert.Contains(t, body, "note")
}

func TestNoteUpdateNotFound(t *testing.T) {
	r := newTestRouter(t, &mockNoteService{err: domain.ErrNoteNotFound})

	w := doRequest(r, http.MethodPut, "/api/notes/65f000000000000000000001", `{"content":"updated"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "Note not found", body["message"])
}

func TestNoteUpdateStoreError(t *testing.T) {
	r := newTestRouter(t, &mockNoteService{err: errors.New("update failed")})

	w := doRequest(r, http.MethodPut, "/api/notes/65f000000000000000000001", `{"content":"updated"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "Error updating note", body["message"])
	assert.Equal(t, "update failed", body["error"])
}

func TestNoteDeleteSuccess(t *testing.T) {
	r := newTestRouter(t, &mockNoteService{note: sampleNote()})

	w := doRequest(r, http.MethodDelete, "/api/notes/65f000000000000000000001", "")
	assert.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "Note deleted successfully", body["message"])
	// 删除响应只有 message
	assert.NotContains(t, body, "note")
}

func TestNoteDeleteNotFound(t *testing.T) {
	r := newTestRouter(t, &mockNoteService{err: domain.ErrNoteNotFound})

	w := doRequest(r, http.MethodDelete, "/api/notes/65f000000000000000000001", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "Note not found", body["message"])
}

func TestNoteDeleteStoreError(t *testing.T) {
	r := newTestRouter(t, &mockNoteService{err: errors.New("delete failed")})

	w := doRequest(r, http.MethodDelete, "/api/notes/65f000000000000000000001", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "Error deleting note", body["message"])
	assert.Equal(t, "delete failed", body["error"])
}

// stubRepo 供真实 service 层走校验路径使用
type stubRepo struct {
	domain.NoteRepository
}

func (s *stubRepo) Create(ctx context.Context, title, content, author string) (*domain.Note, error) {
	return &domain.Note{ID: "65f000000000000000000001", Title: title, Content: content, Author: author}, nil
}
