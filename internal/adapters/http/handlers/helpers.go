package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jsamuelsen11/task-manager-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/task-manager-service/internal/domain"
)

// parseUUID extracts a UUID path parameter from the chi URL params.
func parseUUID(r *http.Request, param string) (uuid.UUID, error) {
	raw := chi.URLParam(r, param)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, &domain.ValidationError{
			Fields: map[string]string{param: "must be a valid UUID"},
		}
	}
	return id, nil
}

// parsePageRequest reads page, size, and sort query parameters. The bool
// result reports whether any of them were present: list endpoints return a
// plain array when no pagination was requested and the paged envelope when
// it was. Sort uses `field` or `field,desc`, repeatable.
func parsePageRequest(r *http.Request) (domain.PageRequest, bool, error) {
	q := r.URL.Query()

	_, hasPage := q["page"]
	_, hasSize := q["size"]
	_, hasSort := q["sort"]
	requested := hasPage || hasSize || hasSort

	req := domain.PageRequest{}
	fields := make(map[string]string)

	if raw := q.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 0 {
			fields["page"] = "must be a non-negative integer"
		} else {
			req.Page = page
		}
	}
	if raw := q.Get("size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil || size < 1 {
			fields["size"] = "must be a positive integer"
		} else {
			req.Size = size
		}
	}
	for _, raw := range q["sort"] {
		if raw == "" {
			continue
		}
		field, dir, _ := strings.Cut(raw, ",")
		order := domain.SortOrder{Field: strings.TrimSpace(field)}
		switch strings.ToLower(strings.TrimSpace(dir)) {
		case "", "asc":
		case "desc":
			order.Desc = true
		default:
			fields["sort"] = "direction must be asc or desc"
		}
		req.Sort = append(req.Sort, order)
	}

	if len(fields) > 0 {
		return domain.PageRequest{}, requested, &domain.ValidationError{Fields: fields}
	}
	return req, requested, nil
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}

// maxJSONBodyBytes is the maximum allowed size for a JSON request body (1 MB).
const maxJSONBodyBytes = 1 << 20

// decodeJSONBody decodes the request body as JSON into dst. The body is
// limited to maxJSONBodyBytes to prevent resource exhaustion. On failure,
// it writes a 400 error response and returns false.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		dto.WriteErrorResponse(w, r, &domain.ValidationError{
			Fields: map[string]string{"body": "invalid JSON"},
		})
		return false
	}
	return true
}

// validatable is implemented by request DTOs that support validation.
type validatable interface {
	Validate() error
}

// decodeAndValidate decodes the JSON request body into dst and validates it.
// On decode or validation failure it writes an error response and returns false.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	if !decodeJSONBody(w, r, dst) {
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}
