package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/soloapps/user-service/internal/core/domain"
	"github.com/soloapps/user-service/internal/core/ports"
	"github.com/soloapps/user-service/internal/core/security"
)

const (
	minPasswordLength = 8
	defaultPage       = 0
	defaultPageSize   = 5
)

// UserService implements the identity lifecycle: registration, login,
// lookup, listing, update and deletion. Dependencies are injected
// explicitly; there is no shared mutable state across requests.
type UserService struct {
	repo   ports.UserRepository
	hasher security.PasswordHasher
	tokens *security.TokenIssuer
	log    zerolog.Logger
}

func NewUserService(
	repo ports.UserRepository,
	hasher security.PasswordHasher,
	tokens *security.TokenIssuer,
	log zerolog.Logger,
) *UserService {
	return &UserService{repo: repo, hasher: hasher, tokens: tokens, log: log}
}

// Register creates a new account. Uniqueness checks run in a fixed order:
// username, then email, then password length — when several conditions are
// violated the first one decides which error surfaces.
func (s *UserService) Register(ctx context.Context, input ports.RegisterInput) (*domain.Projection, error) {
	if input.Username == "" || input.Email == "" {
		return nil, domain.ErrInvalidInput
	}

	if _, err := s.repo.FindByUsername(ctx, input.Username); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("register: %w", err)
	}

	if _, err := s.repo.FindByEmail(ctx, input.Email); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("register: %w", err)
	}

	if len(input.Password) < minPasswordLength {
		return nil, domain.ErrInvalidInput
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	role := input.Role
	if role == "" {
		role = domain.DefaultRole
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.NewString(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	saved, err := s.repo.Save(ctx, user)
	if err != nil {
		s.log.Error().Err(err).Str("username", input.Username).Msg("failed to persist user")
		return nil, err
	}

	s.log.Info().Str("user_id", saved.ID).Str("username", saved.Username).Msg("user registered")

	p := saved.Project()
	return &p, nil
}

// Login authenticates the credentials and issues a bearer token whose
// subject is the username. Unknown username and wrong password surface the
// same error so the caller cannot tell which field was wrong.
func (s *UserService) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Username)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.log.Info().Str("username", user.Username).Msg("user logged in")

	return &ports.LoginResult{Token: token, User: user.Project()}, nil
}

// GetByUsername returns the projection for a single account.
func (s *UserService) GetByUsername(ctx context.Context, username string) (*domain.Projection, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	p := user.Project()
	return &p, nil
}

// List returns a page of projections ordered by username ascending.
// Out-of-range paging values fall back to page 0, size 5.
func (s *UserService) List(ctx context.Context, input ports.ListUsersInput) (*ports.ListUsersResult, error) {
	page := input.Page
	if page < 0 {
		page = defaultPage
	}
	size := input.Size
	if size <= 0 {
		size = defaultPageSize
	}

	users, total, err := s.repo.List(ctx, ports.ListUsersFilter{Page: page, Size: size})
	if err != nil {
		s.log.Error().Err(err).Msg("failed to list users")
		return nil, err
	}

	items := make([]domain.Projection, 0, len(users))
	for _, u := range users {
		items = append(items, u.Project())
	}

	totalPages := int(total) / size
	if int(total)%size != 0 {
		totalPages++
	}

	return &ports.ListUsersResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Size:       size,
		TotalPages: totalPages,
	}, nil
}

// Update applies a partial patch to an existing account. Only non-nil
// fields change; email and id are immutable through this path. A new
// password is re-hashed before persisting.
func (s *UserService) Update(ctx context.Context, id string, patch ports.UpdateUserInput) (*domain.Projection, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Username != nil {
		user.Username = *patch.Username
	}
	if patch.Password != nil {
		hash, err := s.hasher.Hash(*patch.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = hash
	}
	if patch.Role != nil {
		user.Role = *patch.Role
	}
	user.UpdatedAt = time.Now().UTC()

	saved, err := s.repo.Save(ctx, user)
	if err != nil {
		s.log.Error().Err(err).Str("user_id", id).Msg("failed to update user")
		return nil, err
	}

	s.log.Info().Str("user_id", saved.ID).Msg("user updated")

	p := saved.Project()
	return &p, nil
}

// Delete permanently removes an account. Existence is checked explicitly
// so an unknown id surfaces ErrUserNotFound regardless of how the store
// reports missing deletes.
func (s *UserService) Delete(ctx context.Context, id string) error {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return fmt.Errorf("delete: %w", err)
	}
	if !exists {
		return domain.ErrUserNotFound
	}

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		s.log.Error().Err(err).Str("user_id", id).Msg("failed to delete user")
		return err
	}

	s.log.Info().Str("user_id", id).Msg("user deleted")
	return nil
}

// LoadIdentity resolves a token subject to its live account record. It is
// the narrow lookup consumed by the auth middleware.
func (s *UserService) LoadIdentity(ctx context.Context, username string) (*domain.User, error) {
	return s.repo.FindByUsername(ctx, username)
}
