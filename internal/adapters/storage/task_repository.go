package storage

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jsamuelsen11/task-manager-service/internal/domain/task"
	"github.com/jsamuelsen11/task-manager-service/internal/ports"
)

// Compile-time check that TaskRepository implements ports.TaskRepository.
var _ ports.TaskRepository = (*TaskRepository)(nil)

// TaskRepository is the PostgreSQL-backed implementation of
// ports.TaskRepository. Reads preload the assignee association so task
// responses can expand the assignee without a second query.
type TaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a TaskRepository on the gateway's handle.
func NewTaskRepository(g *Gateway) *TaskRepository {
	return &TaskRepository{db: g.db}
}

// FindAll returns all tasks ordered by creation time.
func (r *TaskRepository) FindAll(ctx context.Context) ([]task.Task, error) {
	var recs []taskRecord
	err := r.db.WithContext(ctx).
		Preload("Assignee").
		Order("created_at ASC").
		Find(&recs).Error
	if err != nil {
		return nil, translateError(err)
	}
	return toDomainTasks(recs), nil
}

// FindByStatus returns all tasks in the given status.
func (r *TaskRepository) FindByStatus(ctx context.Context, status task.Status) ([]task.Task, error) {
	var recs []taskRecord
	err := r.db.WithContext(ctx).
		Preload("Assignee").
		Where("status = ?", status.String()).
		Order("created_at ASC").
		Find(&recs).Error
	if err != nil {
		return nil, translateError(err)
	}
	return toDomainTasks(recs), nil
}

// FindByAssignee returns all tasks assigned to the given user.
func (r *TaskRepository) FindByAssignee(ctx context.Context, assigneeID uuid.UUID) ([]task.Task, error) {
	var recs []taskRecord
	err := r.db.WithContext(ctx).
		Preload("Assignee").
		Where("assignee_id = ?", assigneeID).
		Order("created_at ASC").
		Find(&recs).Error
	if err != nil {
		return nil, translateError(err)
	}
	return toDomainTasks(recs), nil
}

// FindByID returns a single task by ID with its assignee expanded.
func (r *TaskRepository) FindByID(ctx context.Context, id uuid.UUID) (*task.Task, error) {
	var rec taskRecord
	err := r.db.WithContext(ctx).
		Preload("Assignee").
		First(&rec, "id = ?", id).Error
	if err != nil {
		return nil, translateError(err)
	}
	t := toDomainTask(&rec)
	return &t, nil
}

// ExistsByID reports whether a task record exists for the given ID.
func (r *TaskRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&taskRecord{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, translateError(err)
	}
	return count > 0, nil
}

// ExistsByTitleAndAssignee reports whether the given assignee already has
// a task with the given title.
func (r *TaskRepository) ExistsByTitleAndAssignee(ctx context.Context, title string, assigneeID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&taskRecord{}).
		Where("title = ? AND assignee_id = ?", title, assigneeID).
		Count(&count).Error
	if err != nil {
		return false, translateError(err)
	}
	return count > 0, nil
}

// Create persists a new task. A per-assignee title collision surfaces as
// domain.ErrConflict via the composite unique index. The stored task is
// re-read so the returned entity carries its expanded assignee.
func (r *TaskRepository) Create(ctx context.Context, t *task.Task) (*task.Task, error) {
	rec := toTaskRecord(t)
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return nil, translateError(err)
	}
	return r.FindByID(ctx, rec.ID)
}

// Update overwrites an existing task's fields. The stored task is re-read
// so the returned entity carries its expanded assignee.
func (r *TaskRepository) Update(ctx context.Context, t *task.Task) (*task.Task, error) {
	rec := toTaskRecord(t)
	if err := r.db.WithContext(ctx).Save(&rec).Error; err != nil {
		return nil, translateError(err)
	}
	return r.FindByID(ctx, rec.ID)
}

// Delete removes a task by ID. Missing records report false, not an error.
func (r *TaskRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&taskRecord{}, "id = ?", id)
	if res.Error != nil {
		return false, translateError(res.Error)
	}
	return res.RowsAffected > 0, nil
}
