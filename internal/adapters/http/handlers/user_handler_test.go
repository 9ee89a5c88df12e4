package handlers_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/task-manager-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/task-manager-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/task-manager-service/internal/domain"
	"github.com/jsamuelsen11/task-manager-service/internal/domain/user"
	"github.com/jsamuelsen11/task-manager-service/mocks"
)

func newUserHandler(t *testing.T) (*handlers.UserHandler, *mocks.MockUserService) {
	t.Helper()
	svc := mocks.NewMockUserService(t)
	return handlers.NewUserHandler(svc), svc
}

// --- ListUsers ---

func TestListUsers_PlainList(t *testing.T) {
	t.Parallel()
	h, svc := newUserHandler(t)

	svc.EXPECT().ListUsers(mock.Anything).Return([]user.User{validUser()}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users", nil)
	h.ListUsers(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[[]dto.UserResponse](t, rec)
	if len(resp) != 1 {
		t.Fatalf("len = %d, want 1", len(resp))
	}
	if resp[0].Username != "alice" {
		t.Errorf("Username = %q, want %q", resp[0].Username, "alice")
	}
}

func TestListUsers_PaginatedWhenPageParamPresent(t *testing.T) {
	t.Parallel()
	h, svc := newUserHandler(t)

	page := domain.NewPage([]user.User{validUser()}, domain.PageRequest{Page: 0, Size: 5}, 11)
	svc.EXPECT().ListUsersPage(mock.Anything, domain.PageRequest{Page: 0, Size: 5}).Return(page, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users?page=0&size=5", nil)
	h.ListUsers(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.PageResponse[dto.UserResponse]](t, rec)
	if resp.TotalElements != 11 {
		t.Errorf("TotalElements = %d, want 11", resp.TotalElements)
	}
	if resp.TotalPages != 3 {
		t.Errorf("TotalPages = %d, want 3", resp.TotalPages)
	}
}

func TestListUsers_SortParamAloneTriggersPagination(t *testing.T) {
	t.Parallel()
	h, svc := newUserHandler(t)

	want := domain.PageRequest{Sort: []domain.SortOrder{{Field: "username", Desc: true}}}
	page := domain.NewPage([]user.User{validUser()}, want, 1)
	svc.EXPECT().ListUsersPage(mock.Anything, want).Return(page, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users?sort=username,desc", nil)
	h.ListUsers(rec, req)

	requireStatus(t, rec, http.StatusOK)
}

func TestListUsers_InvalidPageParam(t *testing.T) {
	t.Parallel()
	h, _ := newUserHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users?page=abc", nil)
	h.ListUsers(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestListUsers_ServiceError(t *testing.T) {
	t.Parallel()
	h, svc := newUserHandler(t)

	svc.EXPECT().ListUsers(mock.Anything).Return(nil, domain.ErrUnavailable)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users", nil)
	h.ListUsers(rec, req)

	requireStatus(t, rec, http.StatusServiceUnavailable)
}

// --- ListUsers: username search ---

func TestListUsers_SearchByUsername(t *testing.T) {
	t.Parallel()
	h, svc := newUserHandler(t)

	svc.EXPECT().SearchUsers(mock.Anything, "ali").Return([]user.User{validUser()}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users?username=ali", nil)
	h.ListUsers(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[[]dto.UserResponse](t, rec)
	if len(resp) != 1 {
		t.Errorf("len = %d, want 1", len(resp))
	}
}

func TestListUsers_SearchPaginated(t *testing.T) {
	t.Parallel()
	h, svc := newUserHandler(t)

	want := domain.PageRequest{Page: 1, Size: 2}
	page := domain.NewPage([]user.User{validUser()}, want, 3)
	svc.EXPECT().SearchUsersPage(mock.Anything, "ali", want).Return(page, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users?username=ali&page=1&size=2", nil)
	h.ListUsers(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.PageResponse[dto.UserResponse]](t, rec)
	if resp.Page != 1 {
		t.Errorf("Page = %d, want 1", resp.Page)
	}
}

func TestListUsers_SearchBlankTermReachesService(t *testing.T) {
	t.Parallel()
	h, svc := newUserHandler(t)

	// A blank term is not a length violation; the service answers with an
	// empty result.
	svc.EXPECT().SearchUsers(mock.Anything, "   ").Return([]user.User{}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users?username=%20%20%20", nil)
	h.ListUsers(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[[]dto.UserResponse](t, rec)
	if len(resp) != 0 {
		t.Errorf("len = %d, want 0", len(resp))
	}
}

func TestListUsers_SearchTermTooShort(t *testing.T) {
	t.Parallel()
	h, _ := newUserHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users?username=a", nil)
	h.ListUsers(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestListUsers_SearchTermTooLong(t *testing.T) {
	t.Parallel()
	h, _ := newUserHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users?username="+strings.Repeat("x", 51), nil)
	h.ListUsers(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

// --- GetUser ---

func TestGetUser_Success(t *testing.T) {
	t.Parallel()
	h, svc := newUserHandler(t)

	u := validUser()
	svc.EXPECT().GetUser(mock.Anything, testUserID).Return(&u, nil)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodGet, "/api/v1/users/"+testUserID.String(), nil),
		map[string]string{"id": testUserID.String()})
	h.GetUser(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.UserResponse](t, rec)
	if resp.ID != testUserID {
		t.Errorf("ID = %v, want %v", resp.ID, testUserID)
	}
}

func TestGetUser_InvalidID(t *testing.T) {
	t.Parallel()
	h, _ := newUserHandler(t)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodGet, "/api/v1/users/abc", nil),
		map[string]string{"id": "abc"})
	h.GetUser(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestGetUser_NotFound(t *testing.T) {
	t.Parallel()
	h, svc := newUserHandler(t)

	svc.EXPECT().GetUser(mock.Anything, testUserID).Return(nil, domain.ErrNotFound)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodGet, "/api/v1/users/"+testUserID.String(), nil),
		map[string]string{"id": testUserID.String()})
	h.GetUser(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
}

// --- GetUserByUsername ---

func TestGetUserByUsername_Success(t *testing.T) {
	t.Parallel()
	h, svc := newUserHandler(t)

	u := validUser()
	svc.EXPECT().GetUserByUsername(mock.Anything, "alice").Return(&u, nil)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodGet, "/api/v1/users/username/alice", nil),
		map[string]string{"username": "alice"})
	h.GetUserByUsername(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.UserResponse](t, rec)
	if resp.Username != "alice" {
		t.Errorf("Username = %q, want %q", resp.Username, "alice")
	}
}

func TestGetUserByUsername_NotFound(t *testing.T) {
	t.Parallel()
	h, svc := newUserHandler(t)

	svc.EXPECT().GetUserByUsername(mock.Anything, "ghost").Return(nil, domain.ErrNotFound)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodGet, "/api/v1/users/username/ghost", nil),
		map[string]string{"username": "ghost"})
	h.GetUserByUsername(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
}

// --- ExistsByUsername ---

func TestExistsByUsername(t *testing.T) {
	t.Parallel()
	h, svc := newUserHandler(t)

	svc.EXPECT().ExistsByUsername(mock.Anything, "alice").Return(true, nil)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodGet, "/api/v1/users/exists/alice", nil),
		map[string]string{"username": "alice"})
	h.ExistsByUsername(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.ExistsResponse](t, rec)
	if !resp.Exists {
		t.Error("Exists = false, want true")
	}
}

// --- CreateUser ---

func TestCreateUser_Success(t *testing.T) {
	t.Parallel()
	h, svc := newUserHandler(t)

	created := validUser()
	svc.EXPECT().CreateUser(mock.Anything, mock.AnythingOfType("*user.User")).Return(&created, nil)

	body := jsonBody(t, dto.CreateUserRequest{Username: "alice", Email: strPtr("alice@example.com"), Role: "USER"})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users", body)
	req.Header.Set("Content-Type", "application/json")
	h.CreateUser(rec, req)

	requireStatus(t, rec, http.StatusCreated)
	resp := decodeJSON[dto.UserResponse](t, rec)
	if resp.Username != "alice" {
		t.Errorf("Username = %q, want %q", resp.Username, "alice")
	}
}

func TestCreateUser_InvalidJSON(t *testing.T) {
	t.Parallel()
	h, _ := newUserHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users", bytes.NewBufferString("{bad"))
	req.Header.Set("Content-Type", "application/json")
	h.CreateUser(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestCreateUser_ValidationError(t *testing.T) {
	t.Parallel()
	h, _ := newUserHandler(t)

	body := jsonBody(t, dto.CreateUserRequest{Username: "", Role: ""})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users", body)
	req.Header.Set("Content-Type", "application/json")
	h.CreateUser(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
	resp := decodeJSON[dto.ErrorResponse](t, rec)
	if resp.Error != "Validation Error" {
		t.Errorf("Error = %q, want %q", resp.Error, "Validation Error")
	}
	if len(resp.FieldErrors) == 0 {
		t.Error("FieldErrors is empty, want per-field details")
	}
}

func TestCreateUser_Conflict(t *testing.T) {
	t.Parallel()
	h, svc := newUserHandler(t)

	svc.EXPECT().CreateUser(mock.Anything, mock.AnythingOfType("*user.User")).
		Return(nil, domain.ErrConflict)

	body := jsonBody(t, dto.CreateUserRequest{Username: "alice", Role: "USER"})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users", body)
	req.Header.Set("Content-Type", "application/json")
	h.CreateUser(rec, req)

	requireStatus(t, rec, http.StatusConflict)
}

// --- UpdateUser ---

func TestUpdateUser_Success(t *testing.T) {
	t.Parallel()
	h, svc := newUserHandler(t)

	updated := validUser()
	updated.Username = "alice2"
	svc.EXPECT().UpdateUser(mock.Anything, testUserID, mock.AnythingOfType("*user.User")).
		Return(&updated, nil)

	body := jsonBody(t, dto.UpdateUserRequest{Username: "alice2", Role: "USER"})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/users/"+testUserID.String(), body)
	req.Header.Set("Content-Type", "application/json")
	req = withChiParams(req, map[string]string{"id": testUserID.String()})
	h.UpdateUser(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.UserResponse](t, rec)
	if resp.Username != "alice2" {
		t.Errorf("Username = %q, want %q", resp.Username, "alice2")
	}
}

func TestUpdateUser_NotFound(t *testing.T) {
	t.Parallel()
	h, svc := newUserHandler(t)

	svc.EXPECT().UpdateUser(mock.Anything, testUserID, mock.AnythingOfType("*user.User")).
		Return(nil, domain.ErrNotFound)

	body := jsonBody(t, dto.UpdateUserRequest{Username: "ghost", Role: "USER"})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/users/"+testUserID.String(), body)
	req.Header.Set("Content-Type", "application/json")
	req = withChiParams(req, map[string]string{"id": testUserID.String()})
	h.UpdateUser(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
}

// --- DeleteUser ---

func TestDeleteUser_Success(t *testing.T) {
	t.Parallel()
	h, svc := newUserHandler(t)

	svc.EXPECT().DeleteUser(mock.Anything, testUserID).Return(true, nil)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodDelete, "/api/v1/users/"+testUserID.String(), nil),
		map[string]string{"id": testUserID.String()})
	h.DeleteUser(rec, req)

	requireStatus(t, rec, http.StatusNoContent)
}

func TestDeleteUser_NotFound(t *testing.T) {
	t.Parallel()
	h, svc := newUserHandler(t)

	svc.EXPECT().DeleteUser(mock.Anything, testUserID).Return(false, nil)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodDelete, "/api/v1/users/"+testUserID.String(), nil),
		map[string]string{"id": testUserID.String()})
	h.DeleteUser(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
}
