package storage

import (
	"strings"

	"github.com/jsamuelsen11/task-manager-service/internal/domain"
)

// userSortColumns whitelists the sortable user fields and maps the API
// field names to column names. Unknown fields are silently dropped.
var userSortColumns = map[string]string{
	"username":  "username",
	"role":      "role",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

// orderClause builds an ORDER BY expression from the requested sort
// orders, falling back to the given default when nothing usable remains.
func orderClause(sort []domain.SortOrder, columns map[string]string, fallback string) string {
	parts := make([]string, 0, len(sort))
	for _, s := range sort {
		col, ok := columns[s.Field]
		if !ok {
			continue
		}
		dir := "ASC"
		if s.Desc {
			dir = "DESC"
		}
		parts = append(parts, col+" "+dir)
	}
	if len(parts) == 0 {
		return fallback
	}
	return strings.Join(parts, ", ")
}
