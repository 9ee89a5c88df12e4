// Package task contains the Task entity, its enums, validation rules, and
// the time-estimate heuristic.
package task

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/task-manager-service/internal/domain"
)

// MaxTitleLen is the longest accepted task title.
const MaxTitleLen = 200

// Task represents a unit of work that may be assigned to a User.
// AssigneeID nil means unassigned. Within one assignee's tasks, titles are
// unique; different assignees may reuse the same title.
type Task struct {
	ID          uuid.UUID
	Title       string
	Description *string
	Status      Status
	Priority    Priority
	DueDate     *time.Time
	AssigneeID  *uuid.UUID
	Assignee    *AssigneeRef
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// AssigneeRef is the read-only expansion of a task's assignee, populated by
// the storage layer on reads. It carries identity fields only; the User
// entity itself owns no back-reference to tasks.
type AssigneeRef struct {
	ID       uuid.UUID
	Username string
}

// Validate checks business rules for the Task entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with
// per-field details, or nil if all rules pass.
func (t *Task) Validate() error {
	fields := make(map[string]string)

	title := strings.TrimSpace(t.Title)
	switch {
	case title == "":
		fields["title"] = domain.MsgRequired
	case len(title) > MaxTitleLen:
		fields["title"] = fmt.Sprintf("must be at most %d characters, got %d", MaxTitleLen, len(title))
	}

	if !t.Status.IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", t.Status)
	}
	if t.Priority != "" && !t.Priority.IsValid() {
		fields["priority"] = fmt.Sprintf("invalid: %q", t.Priority)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
