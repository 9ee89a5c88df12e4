// Package handlers provides HTTP request handlers for the service's API endpoints.
package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/task-manager-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/task-manager-service/internal/domain"
	"github.com/jsamuelsen11/task-manager-service/internal/ports"
)

// Search term length bounds enforced at the API boundary.
const (
	minSearchTermLen = 2
	maxSearchTermLen = 50
)

// UserHandler handles HTTP requests for user CRUD, search, and lookup
// operations.
type UserHandler struct {
	svc ports.UserService
}

// NewUserHandler creates a new UserHandler with the given service port.
func NewUserHandler(svc ports.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// ListUsers handles GET /api/v1/users. A `username` query parameter turns
// the request into a case-insensitive substring search; `page`, `size`, or
// `sort` switch the response from a plain array to the paged envelope.
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	req, paginated, err := parsePageRequest(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if term, ok := r.URL.Query()["username"]; ok && len(term) > 0 {
		h.searchUsers(w, r, term[0], req, paginated)
		return
	}

	if paginated {
		page, err := h.svc.ListUsersPage(r.Context(), req)
		if err != nil {
			dto.WriteErrorResponse(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, dto.ToUserPageResponse(page))
		return
	}

	users, err := h.svc.ListUsers(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToUserResponses(users))
}

// searchUsers serves the username-search arm of ListUsers. A non-blank
// term must be 2-50 characters; blank terms fall through to the service,
// which answers with an empty result.
func (h *UserHandler) searchUsers(w http.ResponseWriter, r *http.Request, term string, req domain.PageRequest, paginated bool) {
	if trimmed := strings.TrimSpace(term); trimmed != "" {
		if len(trimmed) < minSearchTermLen || len(trimmed) > maxSearchTermLen {
			dto.WriteErrorResponse(w, r, domain.NewValidationError("username",
				"search term must be %d-%d characters", minSearchTermLen, maxSearchTermLen))
			return
		}
	}

	if paginated {
		page, err := h.svc.SearchUsersPage(r.Context(), term, req)
		if err != nil {
			dto.WriteErrorResponse(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, dto.ToUserPageResponse(page))
		return
	}

	users, err := h.svc.SearchUsers(r.Context(), term)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToUserResponses(users))
}

// GetUser handles GET /api/v1/users/{id}.
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	u, err := h.svc.GetUser(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToUserResponse(u))
}

// GetUserByUsername handles GET /api/v1/users/username/{username}.
func (h *UserHandler) GetUserByUsername(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	u, err := h.svc.GetUserByUsername(r.Context(), username)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToUserResponse(u))
}

// ExistsByUsername handles GET /api/v1/users/exists/{username}.
func (h *UserHandler) ExistsByUsername(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	exists, err := h.svc.ExistsByUsername(r.Context(), username)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ExistsResponse{Exists: exists})
}

// CreateUser handles POST /api/v1/users.
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateUserRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.CreateUser(r.Context(), req.ToUser())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto.ToUserResponse(created))
}

// UpdateUser handles PUT /api/v1/users/{id}. The path ID wins over any ID
// in the payload.
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdateUserRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.svc.UpdateUser(r.Context(), id, req.ToUser())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToUserResponse(updated))
}

// DeleteUser handles DELETE /api/v1/users/{id}. Returns 204 when the user
// was removed and 404 when no record existed.
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	deleted, err := h.svc.DeleteUser(r.Context(), id)
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
