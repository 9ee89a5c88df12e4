package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/task-manager-service/internal/domain"
	"github.com/jsamuelsen11/task-manager-service/internal/domain/task"
	"github.com/jsamuelsen11/task-manager-service/internal/ports"
)

// Compile-time check that TaskService implements ports.TaskService.
var _ ports.TaskService = (*TaskService)(nil)

// TaskService implements ports.TaskService. It owns the cross-entity rules:
// an assigned task's assignee must exist, and one assignee cannot hold two
// tasks with the same title. The checks here are read-then-act; the store's
// composite unique index is the backstop against concurrent duplicates.
type TaskService struct {
	tasks  ports.TaskRepository
	users  ports.UserRepository
	logger *slog.Logger
}

// NewTaskService creates a TaskService backed by the given repository ports.
func NewTaskService(tasks ports.TaskRepository, users ports.UserRepository, logger *slog.Logger) *TaskService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &TaskService{tasks: tasks, users: users, logger: logger}
}

// ListTasks returns all tasks.
func (s *TaskService) ListTasks(ctx context.Context) ([]task.Task, error) {
	s.logger.InfoContext(ctx, "listing tasks")

	all, err := s.tasks.FindAll(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list tasks",
			slog.String("operation", "ListTasks"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return all, nil
}

// ListTasksByStatus returns tasks in the given status.
func (s *TaskService) ListTasksByStatus(ctx context.Context, status task.Status) ([]task.Task, error) {
	if !status.IsValid() {
		return nil, domain.NewValidationError("status", "invalid: %q", status)
	}

	s.logger.InfoContext(ctx, "listing tasks by status", slog.String("status", status.String()))

	found, err := s.tasks.FindByStatus(ctx, status)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list tasks by status",
			slog.String("operation", "ListTasksByStatus"),
			slog.String("status", status.String()),
			slog.Any("error", err),
		)
		return nil, err
	}
	return found, nil
}

// ListTasksByAssignee returns tasks assigned to the given user. The user must
// exist; a dangling assignee ID is a validation failure, not an empty result.
func (s *TaskService) ListTasksByAssignee(ctx context.Context, assigneeID uuid.UUID) ([]task.Task, error) {
	s.logger.InfoContext(ctx, "listing tasks by assignee", slog.String("assignee_id", assigneeID.String()))

	if err := s.requireAssignee(ctx, assigneeID); err != nil {
		return nil, err
	}

	found, err := s.tasks.FindByAssignee(ctx, assigneeID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list tasks by assignee",
			slog.String("operation", "ListTasksByAssignee"),
			slog.String("assignee_id", assigneeID.String()),
			slog.Any("error", err),
		)
		return nil, err
	}
	return found, nil
}

// GetTask returns a single task by ID.
func (s *TaskService) GetTask(ctx context.Context, id uuid.UUID) (*task.Task, error) {
	return s.tasks.FindByID(ctx, id)
}

// CreateTask validates and persists a new task. Any caller-supplied ID is
// discarded. When an assignee is set, the assignee must exist and must not
// already hold a task with the same title.
func (s *TaskService) CreateTask(ctx context.Context, t *task.Task) (*task.Task, error) {
	s.logger.InfoContext(ctx, "creating task", slog.String("title", t.Title))

	if err := t.Validate(); err != nil {
		return nil, err
	}

	t.ID = uuid.Nil

	if t.AssigneeID != nil {
		if err := s.requireAssignee(ctx, *t.AssigneeID); err != nil {
			return nil, err
		}
		if err := s.requireUniqueTitle(ctx, t.Title, *t.AssigneeID); err != nil {
			return nil, err
		}
	}

	created, err := s.tasks.Create(ctx, t)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create task",
			slog.String("operation", "CreateTask"),
			slog.String("title", t.Title),
			slog.Any("error", err),
		)
		return nil, err
	}
	return created, nil
}

// UpdateTask overwrites the mutable fields of the task identified by id.
// The uniqueness check is skipped when neither the effective title nor the
// assignee changed, so resubmitting an unchanged task succeeds.
func (s *TaskService) UpdateTask(ctx context.Context, id uuid.UUID, t *task.Task) (*task.Task, error) {
	s.logger.InfoContext(ctx, "updating task", slog.String("id", id.String()))

	if err := t.Validate(); err != nil {
		return nil, err
	}

	original, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewValidationError("id", "task not found with ID: %s", id)
		}
		s.logger.ErrorContext(ctx, "failed to load task for update",
			slog.String("operation", "UpdateTask"),
			slog.String("id", id.String()),
			slog.Any("error", err),
		)
		return nil, err
	}

	if t.AssigneeID != nil {
		if err := s.requireAssignee(ctx, *t.AssigneeID); err != nil {
			return nil, err
		}
		if t.Title != original.Title || !uuidPtrEqual(t.AssigneeID, original.AssigneeID) {
			if err := s.requireUniqueTitle(ctx, t.Title, *t.AssigneeID); err != nil {
				return nil, err
			}
		}
	}

	original.Title = t.Title
	original.Description = t.Description
	original.Status = t.Status
	original.Priority = t.Priority
	original.DueDate = t.DueDate
	original.AssigneeID = t.AssigneeID
	original.Assignee = nil

	updated, err := s.tasks.Update(ctx, original)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update task",
			slog.String("operation", "UpdateTask"),
			slog.String("id", id.String()),
			slog.Any("error", err),
		)
		return nil, err
	}
	return updated, nil
}

// DeleteTask removes a task. Missing IDs are reported as false, never as an
// error, so repeated deletes are safe.
func (s *TaskService) DeleteTask(ctx context.Context, id uuid.UUID) (bool, error) {
	s.logger.InfoContext(ctx, "deleting task", slog.String("id", id.String()))

	deleted, err := s.tasks.Delete(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to delete task",
			slog.String("operation", "DeleteTask"),
			slog.String("id", id.String()),
			slog.Any("error", err),
		)
		return false, err
	}
	return deleted, nil
}

// AssignTask sets or clears a task's assignee. Unassigning (nil assigneeID)
// never re-checks title uniqueness; assigning to a new user does, unless the
// task is already assigned to that same user.
func (s *TaskService) AssignTask(ctx context.Context, taskID uuid.UUID, assigneeID *uuid.UUID) (*task.Task, error) {
	s.logger.InfoContext(ctx, "assigning task",
		slog.String("task_id", taskID.String()),
		slog.Any("assignee_id", assigneeID),
	)

	t, err := s.tasks.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewValidationError("taskId", "task not found with ID: %s", taskID)
		}
		return nil, err
	}

	if assigneeID != nil {
		if err := s.requireAssignee(ctx, *assigneeID); err != nil {
			return nil, err
		}
		if !uuidPtrEqual(assigneeID, t.AssigneeID) {
			if err := s.requireUniqueTitle(ctx, t.Title, *assigneeID); err != nil {
				return nil, err
			}
		}
	}

	t.AssigneeID = assigneeID
	t.Assignee = nil

	updated, err := s.tasks.Update(ctx, t)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to assign task",
			slog.String("operation", "AssignTask"),
			slog.String("task_id", taskID.String()),
			slog.Any("error", err),
		)
		return nil, err
	}
	return updated, nil
}

// UpdateTaskStatus sets a task's status. Membership in the status set is
// checked before existence, so an invalid status fails the same way whether
// or not the task exists.
func (s *TaskService) UpdateTaskStatus(ctx context.Context, taskID uuid.UUID, status task.Status) (*task.Task, error) {
	if !status.IsValid() {
		return nil, domain.NewValidationError("status", "invalid: %q", status)
	}

	s.logger.InfoContext(ctx, "updating task status",
		slog.String("task_id", taskID.String()),
		slog.String("status", status.String()),
	)

	t, err := s.tasks.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewValidationError("taskId", "task not found with ID: %s", taskID)
		}
		return nil, err
	}

	t.Status = status

	updated, err := s.tasks.Update(ctx, t)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update task status",
			slog.String("operation", "UpdateTaskStatus"),
			slog.String("task_id", taskID.String()),
			slog.Any("error", err),
		)
		return nil, err
	}
	return updated, nil
}

// EstimateTaskTime returns the heuristic effort estimate in hours.
func (s *TaskService) EstimateTaskTime(ctx context.Context, taskID uuid.UUID) (float64, error) {
	t, err := s.tasks.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return 0, domain.NewValidationError("taskId", "task not found with ID: %s", taskID)
		}
		return 0, err
	}
	return t.EstimateHours(), nil
}

// requireAssignee fails with a validation error when the given user does not
// exist.
func (s *TaskService) requireAssignee(ctx context.Context, assigneeID uuid.UUID) error {
	exists, err := s.users.ExistsByID(ctx, assigneeID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.NewValidationError("assigneeId", "assignee not found with ID: %s", assigneeID)
	}
	return nil
}

// requireUniqueTitle fails with a validation error when the assignee already
// holds a task with the given title.
func (s *TaskService) requireUniqueTitle(ctx context.Context, title string, assigneeID uuid.UUID) error {
	exists, err := s.tasks.ExistsByTitleAndAssignee(ctx, title, assigneeID)
	if err != nil {
		return err
	}
	if exists {
		return domain.NewValidationError("title", "a task with this title already exists for this user")
	}
	return nil
}

// uuidPtrEqual reports whether two optional UUIDs refer to the same value.
func uuidPtrEqual(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
