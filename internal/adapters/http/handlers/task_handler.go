package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/task-manager-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/task-manager-service/internal/domain"
	"github.com/jsamuelsen11/task-manager-service/internal/domain/task"
	"github.com/jsamuelsen11/task-manager-service/internal/ports"
)

// TaskHandler handles HTTP requests for task CRUD, assignment, status
// changes, and effort estimation.
type TaskHandler struct {
	svc ports.TaskService
}

// NewTaskHandler creates a new TaskHandler with the given service port.
func NewTaskHandler(svc ports.TaskService) *TaskHandler {
	return &TaskHandler{svc: svc}
}

// ListTasks handles GET /api/v1/tasks with optional `status` and
// `assigneeId` query filters. When both are present, status wins.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	if status := q.Get("status"); status != "" {
		tasks, err := h.svc.ListTasksByStatus(r.Context(), task.Status(status))
		if err != nil {
			dto.WriteErrorResponse(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, dto.ToTaskResponses(tasks))
		return
	}

	if raw := q.Get("assigneeId"); raw != "" {
		assigneeID, err := uuid.Parse(raw)
		if err != nil {
			dto.WriteErrorResponse(w, r, domain.NewValidationError("assigneeId", "must be a valid UUID"))
			return
		}
		tasks, err := h.svc.ListTasksByAssignee(r.Context(), assigneeID)
		if err != nil {
			dto.WriteErrorResponse(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, dto.ToTaskResponses(tasks))
		return
	}

	tasks, err := h.svc.ListTasks(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToTaskResponses(tasks))
}

// GetTask handles GET /api/v1/tasks/{id}.
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	t, err := h.svc.GetTask(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToTaskResponse(t))
}

// CreateTask handles POST /api/v1/tasks.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTaskRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.CreateTask(r.Context(), req.ToTask())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto.ToTaskResponse(created))
}

// UpdateTask handles PUT /api/v1/tasks/{id}. The path ID wins over any ID
// in the payload.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdateTaskRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.svc.UpdateTask(r.Context(), id, req.ToTask())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToTaskResponse(updated))
}

// DeleteTask handles DELETE /api/v1/tasks/{id}. Returns 204 when the task
// was removed and 404 when no record existed.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	deleted, err := h.svc.DeleteTask(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	if !deleted {
		dto.WriteErrorResponse(w, r, domain.ErrNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AssignTask handles PUT /api/v1/tasks/{id}/assign?assigneeId=. An absent
// assigneeId parameter unassigns the task.
func (h *TaskHandler) AssignTask(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var assigneeID *uuid.UUID
	if raw := r.URL.Query().Get("assigneeId"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			dto.WriteErrorResponse(w, r, domain.NewValidationError("assigneeId", "must be a valid UUID"))
			return
		}
		assigneeID = &parsed
	}

	updated, err := h.svc.AssignTask(r.Context(), id, assigneeID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToTaskResponse(updated))
}

// UpdateTaskStatus handles PUT /api/v1/tasks/{id}/status?status=.
func (h *TaskHandler) UpdateTaskStatus(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	status := r.URL.Query().Get("status")
	if status == "" {
		dto.WriteErrorResponse(w, r, domain.NewValidationError("status", domain.MsgRequired))
		return
	}

	updated, err := h.svc.UpdateTaskStatus(r.Context(), id, task.Status(status))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToTaskResponse(updated))
}

// EstimateTaskTime handles GET /api/v1/tasks/{id}/estimate.
func (h *TaskHandler) EstimateTaskTime(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	hours, err := h.svc.EstimateTaskTime(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.EstimateResponse{TaskID: id, EstimatedHours: hours})
}
