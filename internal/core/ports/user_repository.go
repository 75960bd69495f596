package ports

import (
	"context"

	"github.com/soloapps/user-service/internal/core/domain"
)

// ListUsersFilter carries pagination parameters for listing users.
// Page is 0-based; results are always ordered by username ascending so a
// fixed dataset paginates without overlap or gaps.
type ListUsersFilter struct {
	Page int
	Size int
}

// UserRepository defines persistence operations for user records.
// Lookups return domain.ErrUserNotFound when no record matches.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	ExistsByID(ctx context.Context, id string) (bool, error)
	// Save inserts the record when its ID is unseen, otherwise replaces the
	// stored record. UpdatedAt is persisted as given.
	Save(ctx context.Context, user *domain.User) (*domain.User, error)
	DeleteByID(ctx context.Context, id string) error
	// List returns a page of users ordered by username ascending plus the
	// total number of records.
	List(ctx context.Context, filter ListUsersFilter) ([]*domain.User, int64, error)
}
