package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jsamuelsen11/task-manager-service/internal/domain/task"
	"github.com/jsamuelsen11/task-manager-service/internal/domain/user"
)

var (
	testTime   = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)
	testUserID = uuid.MustParse("6f1e9d60-8f2a-4b9b-9c3d-111111111111")
	testTaskID = uuid.MustParse("9b2c7f10-4e5d-4a6b-8c7d-222222222222")
)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func strPtr(s string) *string { return &s }

func validUser() user.User {
	return user.User{
		ID:        testUserID,
		Username:  "alice",
		Email:     strPtr("alice@example.com"),
		Role:      user.RoleUser,
		CreatedAt: testTime,
		UpdatedAt: testTime,
	}
}

func validTask() task.Task {
	return task.Task{
		ID:        testTaskID,
		Title:     "Write release notes",
		Status:    task.StatusTodo,
		Priority:  task.PriorityMedium,
		CreatedAt: testTime,
		UpdatedAt: testTime,
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
