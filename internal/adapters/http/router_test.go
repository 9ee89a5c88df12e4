package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	adapthttp "github.com/jsamuelsen11/task-manager-service/internal/adapters/http"
	"github.com/jsamuelsen11/task-manager-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/task-manager-service/internal/domain/user"
	"github.com/jsamuelsen11/task-manager-service/mocks"
)

func newTestRouter(t *testing.T) (http.Handler, *mocks.MockUserService) {
	t.Helper()
	userSvc := mocks.NewMockUserService(t)
	taskSvc := mocks.NewMockTaskService(t)
	registry := mocks.NewMockHealthRegistry(t)

	uh := handlers.NewUserHandler(userSvc)
	th := handlers.NewTaskHandler(taskSvc)
	hh := handlers.NewHealthHandler(registry)

	router := adapthttp.NewRouter(uh, th, hh)
	return router, userSvc
}

func TestRouter_AllRoutesRegistered(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	expectedRoutes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/health/live"},
		{http.MethodGet, "/health/ready"},
		{http.MethodGet, "/api/v1/users"},
		{http.MethodPost, "/api/v1/users"},
		{http.MethodGet, "/api/v1/users/{id}"},
		{http.MethodPut, "/api/v1/users/{id}"},
		{http.MethodDelete, "/api/v1/users/{id}"},
		{http.MethodGet, "/api/v1/users/username/{username}"},
		{http.MethodGet, "/api/v1/users/exists/{username}"},
		{http.MethodGet, "/api/v1/tasks"},
		{http.MethodPost, "/api/v1/tasks"},
		{http.MethodGet, "/api/v1/tasks/{id}"},
		{http.MethodPut, "/api/v1/tasks/{id}"},
		{http.MethodDelete, "/api/v1/tasks/{id}"},
		{http.MethodPut, "/api/v1/tasks/{id}/assign"},
		{http.MethodPut, "/api/v1/tasks/{id}/status"},
		{http.MethodGet, "/api/v1/tasks/{id}/estimate"},
	}

	chiRouter, ok := router.(*chi.Mux)
	if !ok {
		t.Fatal("router is not *chi.Mux")
	}

	registered := make(map[string]bool)
	err := chi.Walk(chiRouter, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered[method+" "+route] = true
		return nil
	})
	if err != nil {
		t.Fatalf("chi.Walk error: %v", err)
	}

	for _, expected := range expectedRoutes {
		key := expected.method + " " + expected.path
		if !registered[key] {
			t.Errorf("route %s not registered", key)
		}
	}
}

func TestRouter_MiddlewareApplied(t *testing.T) {
	t.Parallel()

	userSvc := mocks.NewMockUserService(t)
	taskSvc := mocks.NewMockTaskService(t)
	registry := mocks.NewMockHealthRegistry(t)

	uh := handlers.NewUserHandler(userSvc)
	th := handlers.NewTaskHandler(taskSvc)
	hh := handlers.NewHealthHandler(registry)

	called := false
	testMW := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			next.ServeHTTP(w, r)
		})
	}

	router := adapthttp.NewRouter(uh, th, hh, testMW)

	registry.EXPECT().CheckAll(mock.Anything).Return(map[string]error{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	router.ServeHTTP(rec, req)

	if !called {
		t.Error("middleware was not called")
	}
}

func TestRouter_IntegrationListUsers(t *testing.T) {
	t.Parallel()

	router, userSvc := newTestRouter(t)

	userSvc.EXPECT().ListUsers(mock.Anything).Return([]user.User{}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

// Fixed-prefix user routes must not be captured by the {id} wildcard.
func TestRouter_UsernameRouteNotShadowedByWildcard(t *testing.T) {
	t.Parallel()

	router, userSvc := newTestRouter(t)

	u := user.User{Username: "alice", Role: user.RoleUser}
	userSvc.EXPECT().GetUserByUsername(mock.Anything, "alice").Return(&u, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/username/alice", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestRouter_NotFoundReturns404(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/nonexistent", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/users", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}
