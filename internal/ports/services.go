package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/task-manager-service/internal/domain"
	"github.com/jsamuelsen11/task-manager-service/internal/domain/task"
	"github.com/jsamuelsen11/task-manager-service/internal/domain/user"
)

// UserService defines the service port for user operations.
// Implemented by the application layer; called by inbound adapters (handlers).
type UserService interface {
	// ListUsers returns all users.
	ListUsers(ctx context.Context) ([]user.User, error)

	// ListUsersPage returns one page of users.
	ListUsersPage(ctx context.Context, req domain.PageRequest) (domain.Page[user.User], error)

	// GetUser returns a single user by ID.
	// Returns domain.ErrNotFound if the user does not exist.
	GetUser(ctx context.Context, id uuid.UUID) (*user.User, error)

	// GetUserByUsername returns a single user by exact username.
	// Returns domain.ErrNotFound if the user does not exist.
	GetUserByUsername(ctx context.Context, username string) (*user.User, error)

	// CreateUser creates a new user, discarding any caller-supplied ID.
	// Returns domain.ErrValidation if the entity fails validation and
	// domain.ErrConflict if the username is already taken (enforced by the
	// store's unique index, not pre-checked).
	CreateUser(ctx context.Context, u *user.User) (*user.User, error)

	// UpdateUser overwrites the mutable fields of the user identified by id.
	// Returns domain.ErrNotFound if no record exists, domain.ErrValidation on
	// invalid input, and domain.ErrConflict on a username collision.
	UpdateUser(ctx context.Context, id uuid.UUID, u *user.User) (*user.User, error)

	// DeleteUser removes a user. Returns false when no record exists; never
	// returns an error for a missing ID.
	DeleteUser(ctx context.Context, id uuid.UUID) (bool, error)

	// ExistsByUsername reports whether a user with the exact username exists.
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// SearchUsers returns users whose username contains term
	// case-insensitively, after trimming. A blank term (empty or
	// all-whitespace) yields an empty list without touching the store.
	SearchUsers(ctx context.Context, term string) ([]user.User, error)

	// SearchUsersPage is SearchUsers with pagination. A blank term yields an
	// empty page that preserves the request's page metadata.
	SearchUsersPage(ctx context.Context, term string, req domain.PageRequest) (domain.Page[user.User], error)
}

// TaskService defines the service port for task operations including
// assignment workflows and effort estimation.
type TaskService interface {
	// ListTasks returns all tasks.
	ListTasks(ctx context.Context) ([]task.Task, error)

	// ListTasksByStatus returns tasks in the given status.
	// Returns domain.ErrValidation if the status is not a known value.
	ListTasksByStatus(ctx context.Context, status task.Status) ([]task.Task, error)

	// ListTasksByAssignee returns tasks assigned to the given user.
	// Returns domain.ErrValidation if the user does not exist.
	ListTasksByAssignee(ctx context.Context, assigneeID uuid.UUID) ([]task.Task, error)

	// GetTask returns a single task by ID.
	// Returns domain.ErrNotFound if the task does not exist.
	GetTask(ctx context.Context, id uuid.UUID) (*task.Task, error)

	// CreateTask creates a new task, discarding any caller-supplied ID.
	// When an assignee is set, the assignee must exist and must not already
	// have a task with the same title; both failures surface as
	// domain.ErrValidation.
	CreateTask(ctx context.Context, t *task.Task) (*task.Task, error)

	// UpdateTask overwrites the mutable fields of the task identified by id.
	// Existence and assignee checks surface as domain.ErrValidation. The
	// per-assignee title uniqueness check runs only when the effective title
	// or assignee differs from the stored original, so unchanged updates are
	// idempotent.
	UpdateTask(ctx context.Context, id uuid.UUID, t *task.Task) (*task.Task, error)

	// DeleteTask removes a task. Returns false when no record exists; never
	// returns an error for a missing ID.
	DeleteTask(ctx context.Context, id uuid.UUID) (bool, error)

	// AssignTask sets or clears a task's assignee. A nil assigneeID
	// unassigns without any uniqueness re-check. A non-nil assignee must
	// exist and must not already have a different task with this title.
	AssignTask(ctx context.Context, taskID uuid.UUID, assigneeID *uuid.UUID) (*task.Task, error)

	// UpdateTaskStatus sets a task's status. The status value is validated
	// before task existence is consulted, so an invalid status always fails
	// with domain.ErrValidation.
	UpdateTaskStatus(ctx context.Context, taskID uuid.UUID, status task.Status) (*task.Task, error)

	// EstimateTaskTime returns the heuristic effort estimate in hours for
	// the given task. Returns domain.ErrValidation if the task is missing.
	EstimateTaskTime(ctx context.Context, taskID uuid.UUID) (float64, error)
}
