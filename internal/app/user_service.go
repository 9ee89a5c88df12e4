// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and the storage layer through port
// interfaces.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/task-manager-service/internal/domain"
	"github.com/jsamuelsen11/task-manager-service/internal/domain/user"
	"github.com/jsamuelsen11/task-manager-service/internal/ports"
)

// Compile-time check that UserService implements ports.UserService.
var _ ports.UserService = (*UserService)(nil)

// UserService implements ports.UserService. Username uniqueness on create is
// enforced by the store's unique index rather than a pre-check; the repository
// surfaces collisions as domain.ErrConflict.
type UserService struct {
	users  ports.UserRepository
	logger *slog.Logger
}

// NewUserService creates a UserService backed by the given repository port.
func NewUserService(users ports.UserRepository, logger *slog.Logger) *UserService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &UserService{users: users, logger: logger}
}

// ListUsers returns all users.
func (s *UserService) ListUsers(ctx context.Context) ([]user.User, error) {
	s.logger.InfoContext(ctx, "listing users")

	all, err := s.users.FindAll(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list users",
			slog.String("operation", "ListUsers"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return all, nil
}

// ListUsersPage returns one page of users.
func (s *UserService) ListUsersPage(ctx context.Context, req domain.PageRequest) (domain.Page[user.User], error) {
	req = req.Normalize()
	s.logger.InfoContext(ctx, "listing users page",
		slog.Int("page", req.Page),
		slog.Int("size", req.Size),
	)

	page, err := s.users.FindPage(ctx, req)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list users page",
			slog.String("operation", "ListUsersPage"),
			slog.Int("page", req.Page),
			slog.Any("error", err),
		)
		return domain.Page[user.User]{}, err
	}
	return page, nil
}

// GetUser returns a single user by ID.
func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return s.users.FindByID(ctx, id)
}

// GetUserByUsername returns a single user by exact username.
func (s *UserService) GetUserByUsername(ctx context.Context, username string) (*user.User, error) {
	return s.users.FindByUsername(ctx, username)
}

// CreateUser validates and persists a new user. Any caller-supplied ID is
// discarded; the store assigns one.
func (s *UserService) CreateUser(ctx context.Context, u *user.User) (*user.User, error) {
	s.logger.InfoContext(ctx, "creating user", slog.String("username", u.Username))

	if err := u.Validate(); err != nil {
		return nil, err
	}

	u.ID = uuid.Nil

	created, err := s.users.Create(ctx, u)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create user",
			slog.String("operation", "CreateUser"),
			slog.String("username", u.Username),
			slog.Any("error", err),
		)
		return nil, err
	}
	return created, nil
}

// UpdateUser overwrites the mutable fields of the user identified by id.
// The path-supplied id always wins over any ID in the payload. A username
// change is re-checked for uniqueness against the store; an unchanged
// username skips the check so idempotent updates succeed.
func (s *UserService) UpdateUser(ctx context.Context, id uuid.UUID, u *user.User) (*user.User, error) {
	s.logger.InfoContext(ctx, "updating user", slog.String("id", id.String()))

	if err := u.Validate(); err != nil {
		return nil, err
	}

	original, err := s.users.FindByID(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load user for update",
			slog.String("operation", "UpdateUser"),
			slog.String("id", id.String()),
			slog.Any("error", err),
		)
		return nil, err
	}

	if u.Username != original.Username {
		taken, err := s.users.ExistsByUsername(ctx, u.Username)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, fmt.Errorf("%w: username %q is already taken", domain.ErrConflict, u.Username)
		}
	}

	original.Username = u.Username
	original.Email = u.Email
	original.Role = u.Role

	updated, err := s.users.Update(ctx, original)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update user",
			slog.String("operation", "UpdateUser"),
			slog.String("id", id.String()),
			slog.Any("error", err),
		)
		return nil, err
	}
	return updated, nil
}

// DeleteUser removes a user. Missing IDs are reported as false, never as an
// error, so repeated deletes are safe.
func (s *UserService) DeleteUser(ctx context.Context, id uuid.UUID) (bool, error) {
	s.logger.InfoContext(ctx, "deleting user", slog.String("id", id.String()))

	deleted, err := s.users.Delete(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to delete user",
			slog.String("operation", "DeleteUser"),
			slog.String("id", id.String()),
			slog.Any("error", err),
		)
		return false, err
	}
	return deleted, nil
}

// ExistsByUsername reports whether a user with the exact username exists.
func (s *UserService) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return s.users.ExistsByUsername(ctx, username)
}

// SearchUsers returns users whose username contains term case-insensitively.
// Blank terms return an empty list without consulting the store; this is
// deliberately not a fallback to "all users".
func (s *UserService) SearchUsers(ctx context.Context, term string) ([]user.User, error) {
	trimmed := strings.TrimSpace(term)
	if trimmed == "" {
		s.logger.DebugContext(ctx, "blank search term, returning empty list")
		return []user.User{}, nil
	}

	s.logger.DebugContext(ctx, "searching users", slog.String("term", sanitizeTerm(trimmed)))

	found, err := s.users.SearchByUsername(ctx, trimmed)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to search users",
			slog.String("operation", "SearchUsers"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return found, nil
}

// SearchUsersPage is SearchUsers with pagination. Blank terms return an empty
// page that still carries the requested page metadata.
func (s *UserService) SearchUsersPage(ctx context.Context, term string, req domain.PageRequest) (domain.Page[user.User], error) {
	trimmed := strings.TrimSpace(term)
	if trimmed == "" {
		s.logger.DebugContext(ctx, "blank search term, returning empty page")
		return domain.EmptyPage[user.User](req), nil
	}

	s.logger.DebugContext(ctx, "searching users page",
		slog.String("term", sanitizeTerm(trimmed)),
		slog.Int("page", req.Page),
		slog.Int("size", req.Size),
	)

	page, err := s.users.SearchPageByUsername(ctx, trimmed, req)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to search users page",
			slog.String("operation", "SearchUsersPage"),
			slog.Any("error", err),
		)
		return domain.Page[user.User]{}, err
	}
	return page, nil
}

// sanitizeTerm neutralizes control characters in a user-supplied search term
// before it reaches the log stream. Matching itself uses the raw term.
func sanitizeTerm(term string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '\r', '\n', '\t':
			return '_'
		default:
			return r
		}
	}, term)
}
