package storage

import (
	"context"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/task-manager-service/internal/domain/task"
	"github.com/jsamuelsen11/task-manager-service/internal/ports"
)

// Compile-time check that InstrumentedTaskRepository implements
// ports.TaskRepository.
var _ ports.TaskRepository = (*InstrumentedTaskRepository)(nil)

// InstrumentedTaskRepository decorates a TaskRepository with the shared
// store-access circuit breaker and per-operation metrics.
type InstrumentedTaskRepository struct {
	next    ports.TaskRepository
	breaker *Breaker
}

// NewInstrumentedTaskRepository wraps next with the given breaker.
func NewInstrumentedTaskRepository(next ports.TaskRepository, breaker *Breaker) *InstrumentedTaskRepository {
	return &InstrumentedTaskRepository{next: next, breaker: breaker}
}

func (r *InstrumentedTaskRepository) FindAll(ctx context.Context) ([]task.Task, error) {
	var out []task.Task
	err := r.breaker.execute(ctx, "tasks", "find_all", func() error {
		var err error
		out, err = r.next.FindAll(ctx)
		return err
	})
	return out, err
}

func (r *InstrumentedTaskRepository) FindByStatus(ctx context.Context, status task.Status) ([]task.Task, error) {
	var out []task.Task
	err := r.breaker.execute(ctx, "tasks", "find_by_status", func() error {
		var err error
		out, err = r.next.FindByStatus(ctx, status)
		return err
	})
	return out, err
}

func (r *InstrumentedTaskRepository) FindByAssignee(ctx context.Context, assigneeID uuid.UUID) ([]task.Task, error) {
	var out []task.Task
	err := r.breaker.execute(ctx, "tasks", "find_by_assignee", func() error {
		var err error
		out, err = r.next.FindByAssignee(ctx, assigneeID)
		return err
	})
	return out, err
}

func (r *InstrumentedTaskRepository) FindByID(ctx context.Context, id uuid.UUID) (*task.Task, error) {
	var out *task.Task
	err := r.breaker.execute(ctx, "tasks", "find_by_id", func() error {
		var err error
		out, err = r.next.FindByID(ctx, id)
		return err
	})
	return out, err
}

func (r *InstrumentedTaskRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var out bool
	err := r.breaker.execute(ctx, "tasks", "exists_by_id", func() error {
		var err error
		out, err = r.next.ExistsByID(ctx, id)
		return err
	})
	return out, err
}

func (r *InstrumentedTaskRepository) ExistsByTitleAndAssignee(ctx context.Context, title string, assigneeID uuid.UUID) (bool, error) {
	var out bool
	err := r.breaker.execute(ctx, "tasks", "exists_by_title_and_assignee", func() error {
		var err error
		out, err = r.next.ExistsByTitleAndAssignee(ctx, title, assigneeID)
		return err
	})
	return out, err
}

func (r *InstrumentedTaskRepository) Create(ctx context.Context, t *task.Task) (*task.Task, error) {
	var out *task.Task
	err := r.breaker.execute(ctx, "tasks", "create", func() error {
		var err error
		out, err = r.next.Create(ctx, t)
		return err
	})
	return out, err
}

func (r *InstrumentedTaskRepository) Update(ctx context.Context, t *task.Task) (*task.Task, error) {
	var out *task.Task
	err := r.breaker.execute(ctx, "tasks", "update", func() error {
		var err error
		out, err = r.next.Update(ctx, t)
		return err
	})
	return out, err
}

func (r *InstrumentedTaskRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	var out bool
	err := r.breaker.execute(ctx, "tasks", "delete", func() error {
		var err error
		out, err = r.next.Delete(ctx, id)
		return err
	})
	return out, err
}
