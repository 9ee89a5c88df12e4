package dto_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/task-manager-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/task-manager-service/internal/domain"
)

func TestNewErrorResponse_StatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		err          error
		wantStatus   int
		wantCategory string
	}{
		{
			name:         "ErrNotFound maps to 404",
			err:          domain.ErrNotFound,
			wantStatus:   http.StatusNotFound,
			wantCategory: dto.CategoryNotFound,
		},
		{
			name:         "ValidationError maps to 400",
			err:          &domain.ValidationError{Fields: map[string]string{"title": "is required"}},
			wantStatus:   http.StatusBadRequest,
			wantCategory: dto.CategoryValidation,
		},
		{
			name:         "ErrConflict maps to 409",
			err:          domain.ErrConflict,
			wantStatus:   http.StatusConflict,
			wantCategory: dto.CategoryConflict,
		},
		{
			name:         "ErrUnavailable maps to 503",
			err:          domain.ErrUnavailable,
			wantStatus:   http.StatusServiceUnavailable,
			wantCategory: dto.CategoryUnavailable,
		},
		{
			name:         "unknown error maps to 500",
			err:          errors.New("oops"),
			wantStatus:   http.StatusInternalServerError,
			wantCategory: dto.CategoryInternal,
		},
		{
			name:         "wrapped ErrNotFound preserves mapping",
			err:          fmt.Errorf("fetching task: %w", domain.ErrNotFound),
			wantStatus:   http.StatusNotFound,
			wantCategory: dto.CategoryNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := httptest.NewRequest(http.MethodGet, "/api/v1/tasks/abc", nil)
			resp := dto.NewErrorResponse(r, tt.err)

			if resp.Status != tt.wantStatus {
				t.Errorf("Status = %d, want %d", resp.Status, tt.wantStatus)
			}
			if resp.Error != tt.wantCategory {
				t.Errorf("Error = %q, want %q", resp.Error, tt.wantCategory)
			}
			if resp.Path != "/api/v1/tasks/abc" {
				t.Errorf("Path = %q, want %q", resp.Path, "/api/v1/tasks/abc")
			}
			if resp.ErrorID == uuid.Nil {
				t.Error("ErrorID is nil, want fresh UUID")
			}
		})
	}
}

func TestNewErrorResponse_InternalMessageIsGeneric(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/api/v1/users", nil)
	resp := dto.NewErrorResponse(r, errors.New("pq: password authentication failed"))

	if resp.Message == "pq: password authentication failed" {
		t.Error("internal error details leaked to the response message")
	}
}

func TestNewErrorResponse_ValidationFieldDetails(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodPost, "/api/v1/tasks", nil)
	err := &domain.ValidationError{Fields: map[string]string{
		"title":  "is required",
		"status": `invalid: "LATER"`,
	}}

	resp := dto.NewErrorResponse(r, err)

	if len(resp.FieldErrors) != 2 {
		t.Fatalf("FieldErrors has %d entries, want 2", len(resp.FieldErrors))
	}
	if resp.FieldErrors["title"] != "is required" {
		t.Errorf("FieldErrors[title] = %q, want %q", resp.FieldErrors["title"], "is required")
	}
}

func TestWriteErrorResponse(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/v1/users/123", nil)

	dto.WriteErrorResponse(w, r, domain.ErrNotFound)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshalling body: %v", err)
	}
	for _, key := range []string{"errorId", "timestamp", "status", "error", "message", "path"} {
		if _, ok := body[key]; !ok {
			t.Errorf("body missing key %q", key)
		}
	}
	if _, ok := body["fieldErrors"]; ok {
		t.Error("fieldErrors present for a non-validation error")
	}
}
