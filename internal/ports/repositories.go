package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/task-manager-service/internal/domain"
	"github.com/jsamuelsen11/task-manager-service/internal/domain/task"
	"github.com/jsamuelsen11/task-manager-service/internal/domain/user"
)

// UserRepository defines the repository port for user persistence.
// Implemented by the storage adapter; called by the application layer.
// Implementations own no business rules: uniqueness is enforced by the
// store's unique index and surfaces as domain.ErrConflict.
type UserRepository interface {
	// FindAll returns all users ordered by username.
	FindAll(ctx context.Context) ([]user.User, error)

	// FindPage returns one page of users plus total counts.
	FindPage(ctx context.Context, req domain.PageRequest) (domain.Page[user.User], error)

	// FindByID returns a single user by ID.
	// Returns domain.ErrNotFound if no record exists.
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)

	// FindByUsername returns a single user by exact username.
	// Returns domain.ErrNotFound if no record exists.
	FindByUsername(ctx context.Context, username string) (*user.User, error)

	// ExistsByID reports whether a user record exists for the given ID.
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)

	// ExistsByUsername reports whether a user record exists with the given
	// exact username.
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// SearchByUsername returns users whose username contains the term,
	// case-insensitively. The term is matched as-is; callers trim it.
	SearchByUsername(ctx context.Context, term string) ([]user.User, error)

	// SearchPageByUsername is SearchByUsername with pagination.
	SearchPageByUsername(ctx context.Context, term string, req domain.PageRequest) (domain.Page[user.User], error)

	// Create persists a new user and returns it with server-assigned fields.
	// Returns domain.ErrConflict if the username is already taken.
	Create(ctx context.Context, u *user.User) (*user.User, error)

	// Update overwrites an existing user's mutable fields and refreshes
	// UpdatedAt. Returns domain.ErrConflict on a username collision.
	Update(ctx context.Context, u *user.User) (*user.User, error)

	// Delete removes a user by ID. Returns false with a nil error when no
	// record exists; the operation is idempotent.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// TaskRepository defines the repository port for task persistence.
// Implemented by the storage adapter; called by the application layer.
type TaskRepository interface {
	// FindAll returns all tasks ordered by creation time.
	FindAll(ctx context.Context) ([]task.Task, error)

	// FindByStatus returns all tasks in the given status.
	FindByStatus(ctx context.Context, status task.Status) ([]task.Task, error)

	// FindByAssignee returns all tasks assigned to the given user.
	FindByAssignee(ctx context.Context, assigneeID uuid.UUID) ([]task.Task, error)

	// FindByID returns a single task by ID with its assignee expanded.
	// Returns domain.ErrNotFound if no record exists.
	FindByID(ctx context.Context, id uuid.UUID) (*task.Task, error)

	// ExistsByID reports whether a task record exists for the given ID.
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)

	// ExistsByTitleAndAssignee reports whether the given assignee already has
	// a task with the given title.
	ExistsByTitleAndAssignee(ctx context.Context, title string, assigneeID uuid.UUID) (bool, error)

	// Create persists a new task and returns it with server-assigned fields.
	// Returns domain.ErrConflict on a per-assignee title collision.
	Create(ctx context.Context, t *task.Task) (*task.Task, error)

	// Update overwrites an existing task's mutable fields and refreshes
	// UpdatedAt. Returns domain.ErrConflict on a per-assignee title collision.
	Update(ctx context.Context, t *task.Task) (*task.Task, error)

	// Delete removes a task by ID. Returns false with a nil error when no
	// record exists; the operation is idempotent.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
