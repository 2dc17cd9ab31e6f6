package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"trainingdiary/internal/auth"
	"trainingdiary/internal/cache"
	apperrors "trainingdiary/internal/errors"
	"trainingdiary/internal/model"
	"trainingdiary/internal/repository"
	"trainingdiary/internal/validation"
)

// DefaultBcryptCost is used when no cost is configured.
const DefaultBcryptCost = 10

// AuthService handles the user lifecycle: registration, credential checks and token bookkeeping.
type AuthService interface {
	Register(ctx context.Context, email, password string) (*model.User, error)
	Authenticate(ctx context.Context, email, password string) (*model.User, error)
	GenerateAuthToken(ctx context.Context, user *model.User) (string, error)
	Logout(ctx context.Context, userID, token string) error
}

// credentials carries the registration password policy.
type credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

func (credentials) ValidationEntity() string { return "User" }

type authService struct {
	userRepo   repository.UserRepository
	tokens     *auth.TokenService
	cache      *cache.Client
	validator  *validation.Validator
	bcryptCost int
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, tokens *auth.TokenService, cache *cache.Client, bcryptCost int) AuthService {
	if bcryptCost == 0 {
		bcryptCost = DefaultBcryptCost
	}
	return &authService{
		userRepo:   userRepo,
		tokens:     tokens,
		cache:      cache,
		validator:  validation.New(),
		bcryptCost: bcryptCost,
	}
}

// Register creates a new user with a hashed password. It does not issue a token.
func (s *authService) Register(ctx context.Context, email, password string) (*model.User, error) {
	email = model.NormalizeEmail(email)
	if err := s.validator.Struct(credentials{Email: email, Password: password}); err != nil {
		return nil, err
	}

	_, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil {
		return nil, apperrors.ErrDuplicateEmail
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		ID:           model.NewID(),
		Email:        email,
		PasswordHash: string(hashedPassword),
		Tokens:       []model.Token{},
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperrors.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Authenticate checks email and password. Unknown emails and wrong passwords
// produce the same ErrInvalidCredentials.
func (s *authService) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, model.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return user, nil
}

// GenerateAuthToken issues an auth token and appends it to the user's tokens.
func (s *authService) GenerateAuthToken(ctx context.Context, user *model.User) (string, error) {
	token, err := s.tokens.Issue(user.ID, model.AccessAuth)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	// A cached entry without the new token is re-read by UserService.Resolve.
	user.AddToken(model.AccessAuth, token)
	if err := s.userRepo.Update(ctx, user); err != nil {
		return "", fmt.Errorf("store token: %w", err)
	}

	return token, nil
}

// Logout revokes one token of the user. Revoking an absent token is a no-op.
// It fails when the cached copy of the user cannot be invalidated.
func (s *authService) Logout(ctx context.Context, userID, token string) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.ErrUnauthorized
		}
		return fmt.Errorf("find user: %w", err)
	}

	if !user.RemoveToken(token) {
		return nil
	}

	// Bumping before the write keeps an unreachable cache from leaving the
	// token revoked in the store but still accepted from a cached entry.
	if err := invalidateUser(ctx, s.cache, user.ID); err != nil {
		return err
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("remove token: %w", err)
	}
	return invalidateUser(ctx, s.cache, user.ID)
}
