package storage

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jsamuelsen11/task-manager-service/internal/domain"
	"github.com/jsamuelsen11/task-manager-service/internal/domain/user"
	"github.com/jsamuelsen11/task-manager-service/internal/ports"
)

// Compile-time check that UserRepository implements ports.UserRepository.
var _ ports.UserRepository = (*UserRepository)(nil)

// UserRepository is the PostgreSQL-backed implementation of
// ports.UserRepository.
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a UserRepository on the gateway's handle.
func NewUserRepository(g *Gateway) *UserRepository {
	return &UserRepository{db: g.db}
}

// FindAll returns all users ordered by username.
func (r *UserRepository) FindAll(ctx context.Context) ([]user.User, error) {
	var recs []userRecord
	if err := r.db.WithContext(ctx).Order("username ASC").Find(&recs).Error; err != nil {
		return nil, translateError(err)
	}
	return toDomainUsers(recs), nil
}

// FindPage returns one page of users plus total counts.
func (r *UserRepository) FindPage(ctx context.Context, req domain.PageRequest) (domain.Page[user.User], error) {
	req = req.Normalize()

	var total int64
	if err := r.db.WithContext(ctx).Model(&userRecord{}).Count(&total).Error; err != nil {
		return domain.Page[user.User]{}, translateError(err)
	}

	var recs []userRecord
	err := r.db.WithContext(ctx).
		Order(orderClause(req.Sort, userSortColumns, "username ASC")).
		Offset(req.Offset()).
		Limit(req.Size).
		Find(&recs).Error
	if err != nil {
		return domain.Page[user.User]{}, translateError(err)
	}

	return domain.NewPage(toDomainUsers(recs), req, total), nil
}

// FindByID returns a single user by ID.
func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	var rec userRecord
	if err := r.db.WithContext(ctx).First(&rec, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	u := toDomainUser(&rec)
	return &u, nil
}

// FindByUsername returns a single user by exact username.
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	var rec userRecord
	if err := r.db.WithContext(ctx).First(&rec, "username = ?", username).Error; err != nil {
		return nil, translateError(err)
	}
	u := toDomainUser(&rec)
	return &u, nil
}

// ExistsByID reports whether a user record exists for the given ID.
func (r *UserRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&userRecord{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, translateError(err)
	}
	return count > 0, nil
}

// ExistsByUsername reports whether a user record exists with the given
// exact username.
func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&userRecord{}).Where("username = ?", username).Count(&count).Error
	if err != nil {
		return false, translateError(err)
	}
	return count > 0, nil
}

// SearchByUsername returns users whose username contains the term,
// case-insensitively, ordered by username.
func (r *UserRepository) SearchByUsername(ctx context.Context, term string) ([]user.User, error) {
	var recs []userRecord
	err := r.db.WithContext(ctx).
		Where("LOWER(username) LIKE ?", containsPattern(term)).
		Order("username ASC").
		Find(&recs).Error
	if err != nil {
		return nil, translateError(err)
	}
	return toDomainUsers(recs), nil
}

// SearchPageByUsername is SearchByUsername with pagination.
func (r *UserRepository) SearchPageByUsername(ctx context.Context, term string, req domain.PageRequest) (domain.Page[user.User], error) {
	req = req.Normalize()
	pattern := containsPattern(term)

	var total int64
	err := r.db.WithContext(ctx).
		Model(&userRecord{}).
		Where("LOWER(username) LIKE ?", pattern).
		Count(&total).Error
	if err != nil {
		return domain.Page[user.User]{}, translateError(err)
	}

	var recs []userRecord
	err = r.db.WithContext(ctx).
		Where("LOWER(username) LIKE ?", pattern).
		Order(orderClause(req.Sort, userSortColumns, "username ASC")).
		Offset(req.Offset()).
		Limit(req.Size).
		Find(&recs).Error
	if err != nil {
		return domain.Page[user.User]{}, translateError(err)
	}

	return domain.NewPage(toDomainUsers(recs), req, total), nil
}

// Create persists a new user. A username collision surfaces as
// domain.ErrConflict via the unique index.
func (r *UserRepository) Create(ctx context.Context, u *user.User) (*user.User, error) {
	rec := toUserRecord(u)
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return nil, translateError(err)
	}
	created := toDomainUser(&rec)
	return &created, nil
}

// Update overwrites an existing user's fields.
func (r *UserRepository) Update(ctx context.Context, u *user.User) (*user.User, error) {
	rec := toUserRecord(u)
	if err := r.db.WithContext(ctx).Save(&rec).Error; err != nil {
		return nil, translateError(err)
	}
	updated := toDomainUser(&rec)
	return &updated, nil
}

// Delete removes a user by ID. Missing records report false, not an error.
func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&userRecord{}, "id = ?", id)
	if res.Error != nil {
		return false, translateError(res.Error)
	}
	return res.RowsAffected > 0, nil
}

// containsPattern builds a case-insensitive LIKE pattern matching the term
// anywhere in the column. LIKE wildcards in the term are escaped so they
// match literally.
func containsPattern(term string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(strings.ToLower(term))
	return "%" + escaped + "%"
}
