package app

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/task-manager-service/internal/domain"
	"github.com/jsamuelsen11/task-manager-service/internal/domain/user"
	"github.com/jsamuelsen11/task-manager-service/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func strPtr(s string) *string { return &s }

func validUser() user.User {
	return user.User{
		ID:        uuid.MustParse("6f1e9d60-8f2a-4b9b-9c3d-111111111111"),
		Username:  "alice",
		Email:     strPtr("alice@example.com"),
		Role:      user.RoleUser,
		CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// --- NewUserService ---

func TestNewUserService_NilLogger(t *testing.T) {
	t.Parallel()
	mockRepo := mocks.NewMockUserRepository(t)

	svc := NewUserService(mockRepo, nil)
	if svc.logger == nil {
		t.Fatal("NewUserService(nil logger) should create a no-op logger, got nil")
	}
}

// --- ListUsers ---

func TestUserService_ListUsers(t *testing.T) {
	t.Parallel()

	t.Run("returns users on success", func(t *testing.T) {
		t.Parallel()
		mockRepo := mocks.NewMockUserRepository(t)
		svc := NewUserService(mockRepo, discardLogger())

		want := []user.User{
			{ID: uuid.New(), Username: "alice"},
			{ID: uuid.New(), Username: "bob"},
		}
		mockRepo.EXPECT().FindAll(mock.Anything).Return(want, nil)

		got, err := svc.ListUsers(context.Background())
		if err != nil {
			t.Fatalf("ListUsers() error = %v, want nil", err)
		}
		if len(got) != 2 {
			t.Errorf("ListUsers() len = %d, want 2", len(got))
		}
		if got[0].Username != "alice" {
			t.Errorf("ListUsers()[0].Username = %q, want %q", got[0].Username, "alice")
		}
	})

	t.Run("returns error when store fails", func(t *testing.T) {
		t.Parallel()
		mockRepo := mocks.NewMockUserRepository(t)
		svc := NewUserService(mockRepo, discardLogger())

		mockRepo.EXPECT().FindAll(mock.Anything).Return(nil, domain.ErrUnavailable)

		_, err := svc.ListUsers(context.Background())
		if !errors.Is(err, domain.ErrUnavailable) {
			t.Errorf("ListUsers() error = %v, want ErrUnavailable", err)
		}
	})
}

// --- ListUsersPage ---

func TestUserService_ListUsersPage(t *testing.T) {
	t.Parallel()

	t.Run("normalizes the request before hitting the store", func(t *testing.T) {
		t.Parallel()
		mockRepo := mocks.NewMockUserRepository(t)
		svc := NewUserService(mockRepo, discardLogger())

		normalized := domain.PageRequest{Page: 0, Size: domain.DefaultPageSize}
		want := domain.NewPage([]user.User{validUser()}, normalized, 1)
		mockRepo.EXPECT().FindPage(mock.Anything, normalized).Return(want, nil)

		got, err := svc.ListUsersPage(context.Background(), domain.PageRequest{Page: -3, Size: 0})
		if err != nil {
			t.Fatalf("ListUsersPage() error = %v, want nil", err)
		}
		if got.TotalElements != 1 {
			t.Errorf("ListUsersPage().TotalElements = %d, want 1", got.TotalElements)
		}
	})

	t.Run("returns error when store fails", func(t *testing.T) {
		t.Parallel()
		mockRepo := mocks.NewMockUserRepository(t)
		svc := NewUserService(mockRepo, discardLogger())

		mockRepo.EXPECT().FindPage(mock.Anything, mock.Anything).
			Return(domain.Page[user.User]{}, domain.ErrUnavailable)

		_, err := svc.ListUsersPage(context.Background(), domain.PageRequest{Size: 10})
		if !errors.Is(err, domain.ErrUnavailable) {
			t.Errorf("ListUsersPage() error = %v, want ErrUnavailable", err)
		}
	})
}

// --- GetUser / GetUserByUsername ---

func TestUserService_GetUser(t *testing.T) {
	t.Parallel()

	t.Run("returns user on success", func(t *testing.T) {
		t.Parallel()
		mockRepo := mocks.NewMockUserRepository(t)
		svc := NewUserService(mockRepo, discardLogger())

		u := validUser()
		mockRepo.EXPECT().FindByID(mock.Anything, u.ID).Return(&u, nil)

		got, err := svc.GetUser(context.Background(), u.ID)
		if err != nil {
			t.Fatalf("GetUser() error = %v, want nil", err)
		}
		if got.Username != "alice" {
			t.Errorf("GetUser().Username = %q, want %q", got.Username, "alice")
		}
	})

	t.Run("returns error when user not found", func(t *testing.T) {
		t.Parallel()
		mockRepo := mocks.NewMockUserRepository(t)
		svc := NewUserService(mockRepo, discardLogger())

		id := uuid.New()
		mockRepo.EXPECT().FindByID(mock.Anything, id).Return(nil, domain.ErrNotFound)

		_, err := svc.GetUser(context.Background(), id)
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("GetUser() error = %v, want ErrNotFound", err)
		}
	})
}

func TestUserService_GetUserByUsername(t *testing.T) {
	t.Parallel()

	t.Run("returns user on success", func(t *testing.T) {
		t.Parallel()
		mockRepo := mocks.NewMockUserRepository(t)
		svc := NewUserService(mockRepo, discardLogger())

		u := validUser()
		mockRepo.EXPECT().FindByUsername(mock.Anything, "alice").Return(&u, nil)

		got, err := svc.GetUserByUsername(context.Background(), "alice")
		if err != nil {
			t.Fatalf("GetUserByUsername() error = %v, want nil", err)
		}
		if got.ID != u.ID {
			t.Errorf("GetUserByUsername().ID = %v, want %v", got.ID, u.ID)
		}
	})

	t.Run("returns error when user not found", func(t *testing.T) {
		t.Parallel()
		mockRepo := mocks.NewMockUserRepository(t)
		svc := NewUserService(mockRepo, discardLogger())

		mockRepo.EXPECT().FindByUsername(mock.Anything, "ghost").Return(nil, domain.ErrNotFound)

		_, err := svc.GetUserByUsername(context.Background(), "ghost")
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("GetUserByUsername() error = %v, want ErrNotFound", err)
		}
	})
}

// --- CreateUser ---

func TestUserService_CreateUser(t *testing.T) {
	t.Parallel()

	t.Run("creates valid user and discards caller-supplied ID", func(t *testing.T) {
		t.Parallel()
		mockRepo := mocks.NewMockUserRepository(t)
		svc := NewUserService(mockRepo, discardLogger())

		input := validUser() // carries an ID that must be discarded
		created := validUser()

		mockRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(u *user.User) bool {
			return u.ID == uuid.Nil && u.Username == "alice"
		})).Return(&created, nil)

		got, err := svc.CreateUser(context.Background(), &input)
		if err != nil {
			t.Fatalf("CreateUser() error = %v, want nil", err)
		}
		if got.ID == uuid.Nil {
			t.Error("CreateUser().ID = Nil, want store-assigned ID")
		}
	})

	t.Run("returns validation error for invalid user", func(t *testing.T) {
		t.Parallel()
		mockRepo := mocks.NewMockUserRepository(t)
		svc := NewUserService(mockRepo, discardLogger())

		invalid := validUser()
		invalid.Username = ""

		_, err := svc.CreateUser(context.Background(), &invalid)
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("CreateUser() error = %v, want ErrValidation", err)
		}
	})

	t.Run("surfaces conflict from the store unique index", func(t *testing.T) {
		t.Parallel()
		mockRepo := mocks.NewMockUserRepository(t)
		svc := NewUserService(mockRepo, discardLogger())

		input := validUser()
		mockRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrConflict)

		_, err := svc.CreateUser(context.Background(), &input)
		if !errors.Is(err, domain.ErrConflict) {
			t.Errorf("CreateUser() error = %v, want ErrConflict", err)
		}
	})
}

// --- UpdateUser ---

func TestUserService_UpdateUser(t *testing.T) {
	t.Parallel()

	t.Run("updates user keeping the same username without a conflict check", func(t *testing.T) {
		t.Parallel()
		mockRepo := mocks.NewMockUserRepository(t)
		svc := NewUserService(mockRepo, discardLogger())

		original := validUser()
		input := validUser()
		input.Email = strPtr("new@example.com")
		updated := validUser()
		updated.Email = strPtr("new@example.com")

		// ExistsByUsername is never called: username unchanged.
		mockRepo.EXPECT().FindByID(mock.Anything, original.ID).Return(&original, nil)
		mockRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(&updated, nil)

		got, err := svc.UpdateUser(context.Background(), original.ID, &input)
		if err != nil {
			t.Fatalf("UpdateUser() error = %v, want nil", err)
		}
		if got.Email == nil || *got.Email != "new@example.com" {
			t.Errorf("UpdateUser().Email = %v, want new@example.com", got.Email)
		}
	})

	t.Run("checks uniqueness when the username changes", func(t *testing.T) {
		t.Parallel()
		mockRepo := mocks.NewMockUserRepository(t)
		svc := NewUserService(mockRepo, discardLogger())

		original := validUser()
		input := validUser()
		input.Username = "alice2"
		updated := validUser()
		updated.Username = "alice2"

		mockRepo.EXPECT().FindByID(mock.Anything, original.ID).Return(&original, nil)
		mockRepo.EXPECT().ExistsByUsername(mock.Anything, "alice2").Return(false, nil)
		mockRepo.EXPECT().Update(mock.Anything, mock.MatchedBy(func(u *user.User) bool {
			return u.Username == "alice2"
		})).Return(&updated, nil)

		got, err := svc.UpdateUser(context.Background(), original.ID, &input)
		if err != nil {
			t.Fatalf("UpdateUser() error = %v, want nil", err)
		}
		if got.Username != "alice2" {
			t.Errorf("UpdateUser().Username = %q, want %q", got.Username, "alice2")
		}
	})

	t.Run("returns conflict when the new username is taken", func(t *testing.T) {
		t.Parallel()
		mockRepo := mocks.NewMockUserRepository(t)
		svc := NewUserService(mockRepo, discardLogger())

		original := validUser()
		input := validUser()
		input.Username = "bob"

		mockRepo.EXPECT().FindByID(mock.Anything, original.ID).Return(&original, nil)
		mockRepo.EXPECT().ExistsByUsername(mock.Anything, "bob").Return(true, nil)

		_, err := svc.UpdateUser(context.Background(), original.ID, &input)
		if !errors.Is(err, domain.ErrConflict) {
			t.Errorf("UpdateUser() error = %v, want ErrConflict", err)
		}
	})

	t.Run("returns validation error for invalid user", func(t *testing.T) {
		t.Parallel()
		mockRepo := mocks.NewMockUserRepository(t)
		svc := NewUserService(mockRepo, discardLogger())

		invalid := validUser()
		invalid.Role = "SUPERUSER"

		_, err := svc.UpdateUser(context.Background(), uuid.New(), &invalid)
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("UpdateUser() error = %v, want ErrValidation", err)
		}
	})

	t.Run("returns error when user not found", func(t *testing.T) {
		t.Parallel()
		mockRepo := mocks.NewMockUserRepository(t)
		svc := NewUserService(mockRepo, discardLogger())

		id := uuid.New()
		input := validUser()
		mockRepo.EXPECT().FindByID(mock.Anything, id).Return(nil, domain.ErrNotFound)

		_, err := svc.UpdateUser(context.Background(), id, &input)
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("UpdateUser() error = %v, want ErrNotFound", err)
		}
	})
}

// --- DeleteUser ---

func TestUserService_DeleteUser(t *testing.T) {
	t.Parallel()

	t.Run("reports true when a record was removed", func(t *testing.T) {
		t.Parallel()
		mockRepo := mocks.NewMockUserRepository(t)
		svc := NewUserService(mockRepo, discardLogger())

		id := uuid.New()
		mockRepo.EXPECT().Delete(mock.Anything, id).Return(true, nil)

		deleted, err := svc.DeleteUser(context.Background(), id)
		if err != nil {
			t.Fatalf("DeleteUser() error = %v, want nil", err)
		}
		if !deleted {
			t.Error("DeleteUser() = false, want true")
		}
	})

	t.Run("reports false without error for a missing ID", func(t *testing.T) {
		t.Parallel()
		mockRepo := mocks.NewMockUserRepository(t)
		svc := NewUserService(mockRepo, discardLogger())

		id := uuid.New()
		mockRepo.EXPECT().Delete(mock.Anything, id).Return(false, nil)

		deleted, err := svc.DeleteUser(context.Background(), id)
		if err != nil {
			t.Fatalf("DeleteUser() error = %v, want nil", err)
		}
		if deleted {
			t.Error("DeleteUser() = true, want false")
		}
	})
}

// --- ExistsByUsername ---

func TestUserService_ExistsByUsername(t *testing.T) {
	t.Parallel()
	mockRepo := mocks.NewMockUserRepository(t)
	svc := NewUserService(mockRepo, discardLogger())

	mockRepo.EXPECT().ExistsByUsername(mock.Anything, "alice").Return(true, nil)

	exists, err := svc.ExistsByUsername(context.Background(), "alice")
	if err != nil {
		t.Fatalf("ExistsByUsername() error = %v, want nil", err)
	}
	if !exists {
		t.Error("ExistsByUsername() = false, want true")
	}
}

// --- SearchUsers ---

func TestUserService_SearchUsers(t *testing.T) {
	t.Parallel()

	t.Run("trims the term before searching", func(t *testing.T) {
		t.Parallel()
		mockRepo := mocks.NewMockUserRepository(t)
		svc := NewUserService(mockRepo, discardLogger())

		want := []user.User{validUser()}
		mockRepo.EXPECT().SearchByUsername(mock.Anything, "ali").Return(want, nil)

		got, err := svc.SearchUsers(context.Background(), "  ali  ")
		if err != nil {
			t.Fatalf("SearchUsers() error = %v, want nil", err)
		}
		if len(got) != 1 {
			t.Errorf("SearchUsers() len = %d, want 1", len(got))
		}
	})

	t.Run("blank term returns empty list without touching the store", func(t *testing.T) {
		t.Parallel()
		mockRepo := mocks.NewMockUserRepository(t) // no expectations: any call fails the test
		svc := NewUserService(mockRepo, discardLogger())

		got, err := svc.SearchUsers(context.Background(), "   ")
		if err != nil {
			t.Fatalf("SearchUsers() error = %v, want nil", err)
		}
		if got == nil {
			t.Fatal("SearchUsers() = nil, want empty slice")
		}
		if len(got) != 0 {
			t.Errorf("SearchUsers() len = %d, want 0", len(got))
		}
	})

	t.Run("returns error when store fails", func(t *testing.T) {
		t.Parallel()
		mockRepo := mocks.NewMockUserRepository(t)
		svc := NewUserService(mockRepo, discardLogger())

		mockRepo.EXPECT().SearchByUsername(mock.Anything, "ali").Return(nil, domain.ErrUnavailable)

		_, err := svc.SearchUsers(context.Background(), "ali")
		if !errors.Is(err, domain.ErrUnavailable) {
			t.Errorf("SearchUsers() error = %v, want ErrUnavailable", err)
		}
	})
}

// --- SearchUsersPage ---

func TestUserService_SearchUsersPage(t *testing.T) {
	t.Parallel()

	t.Run("searches one page with the trimmed term", func(t *testing.T) {
		t.Parallel()
		mockRepo := mocks.NewMockUserRepository(t)
		svc := NewUserService(mockRepo, discardLogger())

		req := domain.PageRequest{Page: 1, Size: 5}
		want := domain.NewPage([]user.User{validUser()}, req, 6)
		mockRepo.EXPECT().SearchPageByUsername(mock.Anything, "ali", req).Return(want, nil)

		got, err := svc.SearchUsersPage(context.Background(), " ali ", req)
		if err != nil {
			t.Fatalf("SearchUsersPage() error = %v, want nil", err)
		}
		if got.TotalPages != 2 {
			t.Errorf("SearchUsersPage().TotalPages = %d, want 2", got.TotalPages)
		}
	})

	t.Run("blank term returns empty page preserving request metadata", func(t *testing.T) {
		t.Parallel()
		mockRepo := mocks.NewMockUserRepository(t) // no expectations: any call fails the test
		svc := NewUserService(mockRepo, discardLogger())

		got, err := svc.SearchUsersPage(context.Background(), "", domain.PageRequest{Page: 3, Size: 10})
		if err != nil {
			t.Fatalf("SearchUsersPage() error = %v, want nil", err)
		}
		if got.Page != 3 || got.Size != 10 {
			t.Errorf("SearchUsersPage() page/size = %d/%d, want 3/10", got.Page, got.Size)
		}
		if len(got.Content) != 0 || got.TotalElements != 0 {
			t.Errorf("SearchUsersPage() content len = %d, total = %d, want 0/0",
				len(got.Content), got.TotalElements)
		}
	})
}
