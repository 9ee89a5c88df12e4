package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/task-manager-service/internal/domain"
	"github.com/jsamuelsen11/task-manager-service/internal/domain/task"
	"github.com/jsamuelsen11/task-manager-service/internal/domain/user"
)

// CreateUserRequest represents the JSON body for creating a new user.
type CreateUserRequest struct {
	Username string  `json:"username"`
	Email    *string `json:"email,omitempty"`
	Role     string  `json:"role"`
}

// Validate checks that required fields are present and enums are members
// of their sets. Entity-level rules run again in the domain layer.
func (r *CreateUserRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Username) == "" {
		fields["username"] = domain.MsgRequired
	}
	if strings.TrimSpace(r.Role) == "" {
		fields["role"] = domain.MsgRequired
	} else if !user.Role(r.Role).IsValid() {
		fields["role"] = fmt.Sprintf("invalid: %q", r.Role)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToUser converts the request to a domain User entity.
func (r *CreateUserRequest) ToUser() *user.User {
	return &user.User{
		Username: strings.TrimSpace(r.Username),
		Email:    r.Email,
		Role:     user.Role(r.Role),
	}
}

// UpdateUserRequest represents the JSON body for replacing a user. Updates
// are full replacements; every mutable field must be supplied.
type UpdateUserRequest struct {
	Username string  `json:"username"`
	Email    *string `json:"email,omitempty"`
	Role     string  `json:"role"`
}

// Validate checks that required fields are present and enums are members
// of their sets.
func (r *UpdateUserRequest) Validate() error {
	c := CreateUserRequest{Username: r.Username, Email: r.Email, Role: r.Role}
	return c.Validate()
}

// ToUser converts the request to a domain User entity. The handler forces
// the ID from the path; any ID in the payload is ignored.
func (r *UpdateUserRequest) ToUser() *user.User {
	return &user.User{
		Username: strings.TrimSpace(r.Username),
		Email:    r.Email,
		Role:     user.Role(r.Role),
	}
}

// CreateTaskRequest represents the JSON body for creating a new task.
// DueDate uses the calendar date layout; AssigneeID may be omitted for an
// unassigned task.
type CreateTaskRequest struct {
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority,omitempty"`
	DueDate     string     `json:"dueDate,omitempty"`
	AssigneeID  *uuid.UUID `json:"assigneeId,omitempty"`
}

// Validate checks required fields, enum membership, and the due date
// format.
func (r *CreateTaskRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Title) == "" {
		fields["title"] = domain.MsgRequired
	}
	if strings.TrimSpace(r.Status) == "" {
		fields["status"] = domain.MsgRequired
	} else if !task.Status(r.Status).IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", r.Status)
	}
	if r.Priority != "" && !task.Priority(r.Priority).IsValid() {
		fields["priority"] = fmt.Sprintf("invalid: %q", r.Priority)
	}
	if r.DueDate != "" {
		if _, err := time.Parse(DueDateLayout, r.DueDate); err != nil {
			fields["dueDate"] = fmt.Sprintf("must use layout %s, got %q", DueDateLayout, r.DueDate)
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToTask converts the request to a domain Task entity. Call Validate
// first; an unparseable due date is dropped here.
func (r *CreateTaskRequest) ToTask() *task.Task {
	t := &task.Task{
		Title:       strings.TrimSpace(r.Title),
		Description: r.Description,
		Status:      task.Status(r.Status),
		Priority:    task.Priority(r.Priority),
		AssigneeID:  r.AssigneeID,
	}
	if r.DueDate != "" {
		if due, err := time.Parse(DueDateLayout, r.DueDate); err == nil {
			t.DueDate = &due
		}
	}
	return t
}

// UpdateTaskRequest represents the JSON body for replacing a task. Updates
// are full replacements; every mutable field must be supplied.
type UpdateTaskRequest struct {
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority,omitempty"`
	DueDate     string     `json:"dueDate,omitempty"`
	AssigneeID  *uuid.UUID `json:"assigneeId,omitempty"`
}

// Validate checks required fields, enum membership, and the due date
// format.
func (r *UpdateTaskRequest) Validate() error {
	c := CreateTaskRequest{
		Title:       r.Title,
		Description: r.Description,
		Status:      r.Status,
		Priority:    r.Priority,
		DueDate:     r.DueDate,
		AssigneeID:  r.AssigneeID,
	}
	return c.Validate()
}

// ToTask converts the request to a domain Task entity. The handler forces
// the ID from the path; any ID in the payload is ignored.
func (r *UpdateTaskRequest) ToTask() *task.Task {
	c := CreateTaskRequest{
		Title:       r.Title,
		Description: r.Description,
		Status:      r.Status,
		Priority:    r.Priority,
		DueDate:     r.DueDate,
		AssigneeID:  r.AssigneeID,
	}
	return c.ToTask()
}
