// Package dto provides HTTP request/response data transfer objects and the
// error payload for the inbound HTTP adapter layer. Response field names
// are camelCase; timestamps are RFC 3339 and due dates are calendar dates.
package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/task-manager-service/internal/domain"
	"github.com/jsamuelsen11/task-manager-service/internal/domain/task"
	"github.com/jsamuelsen11/task-manager-service/internal/domain/user"
)

// DueDateLayout is the wire format for task due dates.
const DueDateLayout = "2006-01-02"

// UserResponse represents a single user in HTTP responses.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     *string   `json:"email,omitempty"`
	Role      string    `json:"role"`
	CreatedAt string    `json:"createdAt"`
	UpdatedAt string    `json:"updatedAt"`
}

// ToUserResponse converts a domain User entity to an HTTP response DTO.
func ToUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role.String(),
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
		UpdatedAt: u.UpdatedAt.Format(time.RFC3339),
	}
}

// ToUserResponses converts a slice of domain User entities. Always returns
// a non-nil slice so empty lists serialize as [].
func ToUserResponses(users []user.User) []UserResponse {
	items := make([]UserResponse, len(users))
	for i := range users {
		items[i] = ToUserResponse(&users[i])
	}
	return items
}

// AssigneeResponse is the embedded assignee reference in task responses.
type AssigneeResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

// TaskResponse represents a single task in HTTP responses.
type TaskResponse struct {
	ID          uuid.UUID         `json:"id"`
	Title       string            `json:"title"`
	Description *string           `json:"description,omitempty"`
	Status      string            `json:"status"`
	Priority    string            `json:"priority,omitempty"`
	DueDate     string            `json:"dueDate,omitempty"`
	AssigneeID  *uuid.UUID        `json:"assigneeId,omitempty"`
	Assignee    *AssigneeResponse `json:"assignee,omitempty"`
	CreatedAt   string            `json:"createdAt"`
	UpdatedAt   string            `json:"updatedAt"`
}

// ToTaskResponse converts a domain Task entity to an HTTP response DTO.
func ToTaskResponse(t *task.Task) TaskResponse {
	resp := TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status.String(),
		Priority:    t.Priority.String(),
		AssigneeID:  t.AssigneeID,
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   t.UpdatedAt.Format(time.RFC3339),
	}
	if t.DueDate != nil {
		resp.DueDate = t.DueDate.Format(DueDateLayout)
	}
	if t.Assignee != nil {
		resp.Assignee = &AssigneeResponse{
			ID:       t.Assignee.ID,
			Username: t.Assignee.Username,
		}
	}
	return resp
}

// ToTaskResponses converts a slice of domain Task entities. Always returns
// a non-nil slice so empty lists serialize as [].
func ToTaskResponses(tasks []task.Task) []TaskResponse {
	items := make([]TaskResponse, len(tasks))
	for i := range tasks {
		items[i] = ToTaskResponse(&tasks[i])
	}
	return items
}

// PageResponse is the pagination envelope for paged list responses.
type PageResponse[T any] struct {
	Content       []T   `json:"content"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
}

// ToUserPageResponse converts a domain page of users to its envelope.
func ToUserPageResponse(p domain.Page[user.User]) PageResponse[UserResponse] {
	return PageResponse[UserResponse]{
		Content:       ToUserResponses(p.Content),
		Page:          p.Page,
		Size:          p.Size,
		TotalElements: p.TotalElements,
		TotalPages:    p.TotalPages,
	}
}

// ExistsResponse reports whether a record exists.
type ExistsResponse struct {
	Exists bool `json:"exists"`
}

// EstimateResponse carries the heuristic effort estimate for a task.
type EstimateResponse struct {
	TaskID         uuid.UUID `json:"taskId"`
	EstimatedHours float64   `json:"estimatedHours"`
}
