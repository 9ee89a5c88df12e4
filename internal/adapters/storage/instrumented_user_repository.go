package storage

import (
	"context"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/task-manager-service/internal/domain"
	"github.com/jsamuelsen11/task-manager-service/internal/domain/user"
	"github.com/jsamuelsen11/task-manager-service/internal/ports"
)

// Compile-time check that InstrumentedUserRepository implements
// ports.UserRepository.
var _ ports.UserRepository = (*InstrumentedUserRepository)(nil)

// InstrumentedUserRepository decorates a UserRepository with the shared
// store-access circuit breaker and per-operation metrics.
type InstrumentedUserRepository struct {
	next    ports.UserRepository
	breaker *Breaker
}

// NewInstrumentedUserRepository wraps next with the given breaker.
func NewInstrumentedUserRepository(next ports.UserRepository, breaker *Breaker) *InstrumentedUserRepository {
	return &InstrumentedUserRepository{next: next, breaker: breaker}
}

func (r *InstrumentedUserRepository) FindAll(ctx context.Context) ([]user.User, error) {
	var out []user.User
	err := r.breaker.execute(ctx, "users", "find_all", func() error {
		var err error
		out, err = r.next.FindAll(ctx)
		return err
	})
	return out, err
}

func (r *InstrumentedUserRepository) FindPage(ctx context.Context, req domain.PageRequest) (domain.Page[user.User], error) {
	var out domain.Page[user.User]
	err := r.breaker.execute(ctx, "users", "find_page", func() error {
		var err error
		out, err = r.next.FindPage(ctx, req)
		return err
	})
	return out, err
}

func (r *InstrumentedUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	var out *user.User
	err := r.breaker.execute(ctx, "users", "find_by_id", func() error {
		var err error
		out, err = r.next.FindByID(ctx, id)
		return err
	})
	return out, err
}

func (r *InstrumentedUserRepository) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	var out *user.User
	err := r.breaker.execute(ctx, "users", "find_by_username", func() error {
		var err error
		out, err = r.next.FindByUsername(ctx, username)
		return err
	})
	return out, err
}

func (r *InstrumentedUserRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var out bool
	err := r.breaker.execute(ctx, "users", "exists_by_id", func() error {
		var err error
		out, err = r.next.ExistsByID(ctx, id)
		return err
	})
	return out, err
}

func (r *InstrumentedUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var out bool
	err := r.breaker.execute(ctx, "users", "exists_by_username", func() error {
		var err error
		out, err = r.next.ExistsByUsername(ctx, username)
		return err
	})
	return out, err
}

func (r *InstrumentedUserRepository) SearchByUsername(ctx context.Context, term string) ([]user.User, error) {
	var out []user.User
	err := r.breaker.execute(ctx, "users", "search_by_username", func() error {
		var err error
		out, err = r.next.SearchByUsername(ctx, term)
		return err
	})
	return out, err
}

func (r *InstrumentedUserRepository) SearchPageByUsername(ctx context.Context, term string, req domain.PageRequest) (domain.Page[user.User], error) {
	var out domain.Page[user.User]
	err := r.breaker.execute(ctx, "users", "search_page_by_username", func() error {
		var err error
		out, err = r.next.SearchPageByUsername(ctx, term, req)
		return err
	})
	return out, err
}

func (r *InstrumentedUserRepository) Create(ctx context.Context, u *user.User) (*user.User, error) {
	var out *user.User
	err := r.breaker.execute(ctx, "users", "create", func() error {
		var err error
		out, err = r.next.Create(ctx, u)
		return err
	})
	return out, err
}

func (r *InstrumentedUserRepository) Update(ctx context.Context, u *user.User) (*user.User, error) {
	var out *user.User
	err := r.breaker.execute(ctx, "users", "update", func() error {
		var err error
		out, err = r.next.Update(ctx, u)
		return err
	})
	return out, err
}

func (r *InstrumentedUserRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	var out bool
	err := r.breaker.execute(ctx, "users", "delete", func() error {
		var err error
		out, err = r.next.Delete(ctx, id)
		return err
	})
	return out, err
}
