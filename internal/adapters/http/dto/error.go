package dto

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/task-manager-service/internal/domain"
)

// Error categories reported in the error payload.
const (
	CategoryValidation  = "Validation Error"
	CategoryNotFound    = "Not Found"
	CategoryConflict    = "Conflict"
	CategoryUnavailable = "Service Unavailable"
	CategoryInternal    = "Internal Server Error"
)

// genericInternalMessage replaces internal error details on 5xx responses
// so storage and infrastructure specifics never reach clients.
const genericInternalMessage = "An unexpected error occurred. Please try again later."

// ErrorResponse is the error payload for all failed requests. ErrorID is a
// fresh UUID per response so a client report can be matched to server logs.
type ErrorResponse struct {
	ErrorID     uuid.UUID         `json:"errorId"`
	Timestamp   string            `json:"timestamp"`
	Status      int               `json:"status"`
	Error       string            `json:"error"`
	Message     string            `json:"message"`
	Path        string            `json:"path"`
	FieldErrors map[string]string `json:"fieldErrors,omitempty"`
}

// NewErrorResponse builds an ErrorResponse from a domain error. Validation
// errors carry their per-field details; internal errors get a generic
// message.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	status, category := classify(err)

	resp := ErrorResponse{
		ErrorID:   uuid.New(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Status:    status,
		Error:     category,
		Message:   err.Error(),
		Path:      r.URL.Path,
	}

	if status >= http.StatusInternalServerError {
		resp.Message = genericInternalMessage
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp.FieldErrors = verr.Fields
	}

	return resp
}

// WriteErrorResponse writes the error payload for the given domain error
// with the mapped HTTP status code.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	resp := NewErrorResponse(r, err)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.Status)

	if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
		slog.ErrorContext(r.Context(), "failed to encode error response",
			slog.Any("error", encErr),
		)
	}
}

// classify maps domain sentinel errors to an HTTP status code and error
// category.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, CategoryValidation
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, CategoryNotFound
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict, CategoryConflict
	case errors.Is(err, domain.ErrUnavailable):
		return http.StatusServiceUnavailable, CategoryUnavailable
	default:
		return http.StatusInternalServerError, CategoryInternal
	}
}
