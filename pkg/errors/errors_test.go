package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/haierkeys/cloud-notes-api/internal/domain"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestFromError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		fallback    string
		wantStatus  int
		wantMessage string
		wantDetail  bool
	}{
		{
			name:        "app error passthrough",
			err:         NewValidationError("Title and content are required"),
			fallback:    "Error creating note",
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Title and content are required",
		},
		{
			name:        "not found sentinel maps to 404",
			err:         domain.ErrNoteNotFound,
			fallback:    "Error fetching note",
			wantStatus:  http.StatusNotFound,
			wantMessage: "Note not found",
		},
		{
			name:        "wrapped not found sentinel maps to 404",
			err:         errors.Wrap(domain.ErrNoteNotFound, "lookup failed"),
			fallback:    "Error fetching note",
			wantStatus:  http.StatusNotFound,
			wantMessage: "Note not found",
		},
		{
			name:        "invalid id maps to store error",
			err:         errors.Wrap(domain.ErrInvalidNoteID, `"abc"`),
			fallback:    "Error fetching note",
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Error fetching note",
			wantDetail:  true,
		},
		{
			name:        "arbitrary error maps to store error with detail",
			err:         stderrors.New("connection refused"),
			fallback:    "Error fetching notes",
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Error fetching notes",
			wantDetail:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appErr := FromError(tt.err, tt.fallback)
			assert.Equal(t, tt.wantStatus, appErr.StatusCode)
			assert.Equal(t, tt.wantMessage, appErr.Message)
			if tt.wantDetail {
				assert.NotEmpty(t, appErr.Detail)
			} else {
				assert.Empty(t, appErr.Detail)
			}
		})
	}
}

func TestAppErrorUnwrap(t *testing.T) {
	cause := stderrors.New("root cause")
	appErr := NewStoreError("Error creating note", cause)

	assert.ErrorIs(t, appErr, cause)
	assert.Equal(t, "root cause", appErr.Detail)
	assert.Equal(t, "Error creating note", appErr.Error())
}
