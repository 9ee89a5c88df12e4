package storage

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/jsamuelsen11/task-manager-service/internal/domain"
)

// translateError maps gorm sentinel errors to domain errors so that
// callers above the storage layer never see driver types. Unrecognized
// errors pass through unchanged.
func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("record not found: %w", domain.ErrNotFound)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("duplicate key: %w", domain.ErrConflict)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("foreign key violated: %w", domain.ErrConflict)
	default:
		return err
	}
}
