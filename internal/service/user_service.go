package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"trainingdiary/internal/cache"
	apperrors "trainingdiary/internal/errors"
	"trainingdiary/internal/model"
	"trainingdiary/internal/repository"
)

const userCacheTTL = 5 * time.Minute

// UserService resolves users for authenticated requests.
type UserService interface {
	GetUser(ctx context.Context, id string) (*model.User, error)
	Resolve(ctx context.Context, userID, token string) (*model.User, error)
}

type userService struct {
	repo  repository.UserRepository
	cache *cache.Client
}

// cachedUser is the cache representation of a user. Unlike the API
// representation it keeps the active tokens; the password hash is never cached.
// An entry is only valid while Generation matches the user's generation counter.
type cachedUser struct {
	ID         string        `json:"id"`
	Email      string        `json:"email"`
	Tokens     []model.Token `json:"tokens"`
	Generation int64         `json:"generation"`
}

// NewUserService builds a UserService with repository and cache.
func NewUserService(repo repository.UserRepository, cache *cache.Client) UserService {
	return &userService{repo: repo, cache: cache}
}

func userCacheKey(id string) string {
	return fmt.Sprintf("user:%s", id)
}

func userGenerationKey(id string) string {
	return fmt.Sprintf("user:%s:gen", id)
}

// invalidateUser bumps the user's generation. Every cached entry written
// before the bump is ignored from then on, including one whose store read
// raced with the change being published.
func invalidateUser(ctx context.Context, c *cache.Client, id string) error {
	if _, err := c.Incr(ctx, userGenerationKey(id)); err != nil {
		return fmt.Errorf("invalidate cached user: %w", err)
	}
	return nil
}

// GetUser loads a user, preferring the cache. Missing users are ErrNotFound.
func (s *userService) GetUser(ctx context.Context, id string) (*model.User, error) {
	user, _, err := s.load(ctx, id, true)
	return user, err
}

// Resolve returns the user owning token. The token must still be listed on the user.
func (s *userService) Resolve(ctx context.Context, userID, token string) (*model.User, error) {
	user, cached, err := s.load(ctx, userID, true)
	if err == nil && cached && !user.HasToken(model.AccessAuth, token) {
		// the entry may predate the token
		user, _, err = s.load(ctx, userID, false)
	}
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}

	if !user.HasToken(model.AccessAuth, token) {
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}

// load returns the user and whether it was served from the cache.
// The generation is read before the store so that an invalidation landing
// in between leaves the refilled entry already stale.
func (s *userService) load(ctx context.Context, id string, useCached bool) (*model.User, bool, error) {
	gen, genErr := s.cache.GetInt(ctx, userGenerationKey(id))

	if useCached && genErr == nil {
		var entry cachedUser
		if s.cache.GetJSON(ctx, userCacheKey(id), &entry) && entry.Generation == gen {
			return &model.User{ID: entry.ID, Email: entry.Email, Tokens: entry.Tokens}, true, nil
		}
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, false, apperrors.ErrNotFound
		}
		return nil, false, fmt.Errorf("find user: %w", err)
	}

	if genErr == nil {
		s.cache.SetJSON(ctx, userCacheKey(id), cachedUser{
			ID:         user.ID,
			Email:      user.Email,
			Tokens:     user.Tokens,
			Generation: gen,
		}, userCacheTTL)
	}
	return user, false, nil
}
