package storage

import (
	"github.com/jsamuelsen11/task-manager-service/internal/domain/task"
	"github.com/jsamuelsen11/task-manager-service/internal/domain/user"
)

// toUserRecord converts a domain user to its storage representation.
func toUserRecord(u *user.User) userRecord {
	return userRecord{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role.String(),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// toDomainUser converts a storage record to a domain user.
func toDomainUser(r *userRecord) user.User {
	return user.User{
		ID:        r.ID,
		Username:  r.Username,
		Email:     r.Email,
		Role:      user.Role(r.Role),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// toDomainUsers converts a slice of storage records to domain users.
// Always returns a non-nil slice so empty results serialize as [].
func toDomainUsers(recs []userRecord) []user.User {
	users := make([]user.User, len(recs))
	for i := range recs {
		users[i] = toDomainUser(&recs[i])
	}
	return users
}

// toTaskRecord converts a domain task to its storage representation.
// The Assignee association is never written through; assignment is the
// AssigneeID column alone.
func toTaskRecord(t *task.Task) taskRecord {
	return taskRecord{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status.String(),
		Priority:    t.Priority.String(),
		DueDate:     t.DueDate,
		AssigneeID:  t.AssigneeID,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// toDomainTask converts a storage record to a domain task, expanding the
// assignee reference when the association was preloaded.
func toDomainTask(r *taskRecord) task.Task {
	t := task.Task{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Status:      task.Status(r.Status),
		Priority:    task.Priority(r.Priority),
		DueDate:     r.DueDate,
		AssigneeID:  r.AssigneeID,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
	if r.Assignee != nil {
		t.Assignee = &task.AssigneeRef{
			ID:       r.Assignee.ID,
			Username: r.Assignee.Username,
		}
	}
	return t
}

// toDomainTasks converts a slice of storage records to domain tasks.
// Always returns a non-nil slice so empty results serialize as [].
func toDomainTasks(recs []taskRecord) []task.Task {
	tasks := make([]task.Task, len(recs))
	for i := range recs {
		tasks[i] = toDomainTask(&recs[i])
	}
	return tasks
}
