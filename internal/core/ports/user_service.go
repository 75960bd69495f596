package ports

import (
	"context"

	"github.com/soloapps/user-service/internal/core/domain"
)

// RegisterInput carries all data needed to create a new account.
// Role is optional; when empty the service applies domain.DefaultRole.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Role     string
}

// UpdateUserInput is a partial patch: only non-nil fields are applied.
// Email and ID are immutable through the update path.
type UpdateUserInput struct {
	Username *string
	Password *string
	Role     *string
}

// ListUsersInput carries caller-supplied pagination. Negative or zero-ish
// values fall back to the service defaults (page 0, size 5).
type ListUsersInput struct {
	Page int
	Size int
}

// ListUsersResult is the page envelope returned by List.
type ListUsersResult struct {
	Items      []domain.Projection
	Total      int64
	Page       int
	Size       int
	TotalPages int
}

// LoginResult pairs the authenticated identity with its bearer token.
type LoginResult struct {
	Token string
	User  domain.Projection
}

// UserService defines the identity lifecycle use cases.
type UserService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.Projection, error)
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	GetByUsername(ctx context.Context, username string) (*domain.Projection, error)
	List(ctx context.Context, input ListUsersInput) (*ListUsersResult, error)
	Update(ctx context.Context, id string, patch UpdateUserInput) (*domain.Projection, error)
	Delete(ctx context.Context, id string) error
}

// IdentityLoader resolves a token subject back to a live identity. It is
// consumed by the auth middleware and deliberately narrower than UserService.
type IdentityLoader interface {
	LoadIdentity(ctx context.Context, username string) (*domain.User, error)
}
