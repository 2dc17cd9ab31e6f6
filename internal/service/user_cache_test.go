package service

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"trainingdiary/internal/auth"
	"trainingdiary/internal/cache"
	apperrors "trainingdiary/internal/errors"
	"trainingdiary/internal/model"
	"trainingdiary/internal/repository"
)

func newTestCache(t *testing.T) (*cache.Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c := cache.New(mr.Addr(), "", 0)
	t.Cleanup(func() { _ = c.Close() })
	return c, mr
}

type cachedFixture struct {
	users *repository.MemoryUserRepository
	auth  AuthService
	user  *model.User
	token string
}

func newCachedFixture(t *testing.T, c *cache.Client) cachedFixture {
	t.Helper()
	ctx := context.Background()
	users := repository.NewMemoryUserRepository()
	authSvc := NewAuthService(users, auth.NewTokenService("test-secret"), c, bcrypt.MinCost)

	user, err := authSvc.Register(ctx, "cached@example.com", "password123")
	require.NoError(t, err)
	token, err := authSvc.GenerateAuthToken(ctx, user)
	require.NoError(t, err)
	return cachedFixture{users: users, auth: authSvc, user: user, token: token}
}

// logoutOnRead runs a pending action right after the first read it serves,
// so the action lands between a cache fill's store read and its cache write.
type logoutOnRead struct {
	*repository.MemoryUserRepository
	pending func()
}

func (r *logoutOnRead) FindByID(ctx context.Context, id string) (*model.User, error) {
	user, err := r.MemoryUserRepository.FindByID(ctx, id)
	if f := r.pending; f != nil {
		r.pending = nil
		f()
	}
	return user, err
}

func TestUserService_CacheHit(t *testing.T) {
	c, _ := newTestCache(t)
	user := &model.User{ID: model.NewID(), Email: "test@example.com"}
	user.AddToken(model.AccessAuth, "good-token")

	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil).Once()

	service := NewUserService(mockRepo, c)
	for range 3 {
		got, err := service.Resolve(context.Background(), user.ID, "good-token")
		require.NoError(t, err)
		assert.Equal(t, user.Email, got.Email)
	}
	mockRepo.AssertNumberOfCalls(t, "FindByID", 1)
}

func TestUserService_CachedTokenLifecycle(t *testing.T) {
	tests := []struct {
		name    string
		act     func(t *testing.T, f cachedFixture) string
		wantErr error
	}{
		{
			name: "token issued after the entry was cached is accepted",
			act: func(t *testing.T, f cachedFixture) string {
				token, err := f.auth.GenerateAuthToken(context.Background(), f.user)
				require.NoError(t, err)
				return token
			},
		},
		{
			name: "revoked token is rejected",
			act: func(t *testing.T, f cachedFixture) string {
				require.NoError(t, f.auth.Logout(context.Background(), f.user.ID, f.token))
				return f.token
			},
			wantErr: apperrors.ErrUnauthorized,
		},
		{
			name: "revoking another token keeps this one",
			act: func(t *testing.T, f cachedFixture) string {
				other, err := f.auth.GenerateAuthToken(context.Background(), f.user)
				require.NoError(t, err)
				require.NoError(t, f.auth.Logout(context.Background(), f.user.ID, other))
				return f.token
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestCache(t)
			f := newCachedFixture(t, c)
			service := NewUserService(f.users, c)
			ctx := context.Background()

			_, err := service.Resolve(ctx, f.user.ID, f.token)
			require.NoError(t, err)

			token := tt.act(t, f)
			got, err := service.Resolve(ctx, f.user.ID, token)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, f.user.ID, got.ID)
		})
	}
}

func TestUserService_LogoutDuringCacheFill(t *testing.T) {
	c, _ := newTestCache(t)
	f := newCachedFixture(t, c)
	ctx := context.Background()

	repo := &logoutOnRead{MemoryUserRepository: f.users}
	repo.pending = func() {
		require.NoError(t, f.auth.Logout(ctx, f.user.ID, f.token))
	}
	service := NewUserService(repo, c)

	// The in-flight request read the user before the logout committed.
	_, err := service.Resolve(ctx, f.user.ID, f.token)
	require.NoError(t, err)

	_, err = service.Resolve(ctx, f.user.ID, f.token)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestAuthService_Logout_CacheUnavailable(t *testing.T) {
	c, mr := newTestCache(t)
	f := newCachedFixture(t, c)
	ctx := context.Background()

	service := NewUserService(f.users, c)
	_, err := service.Resolve(ctx, f.user.ID, f.token)
	require.NoError(t, err)

	mr.SetError("ERR server unavailable")
	assert.Error(t, f.auth.Logout(ctx, f.user.ID, f.token))

	mr.SetError("")
	stored, err := f.users.FindByID(ctx, f.user.ID)
	require.NoError(t, err)
	assert.True(t, stored.HasToken(model.AccessAuth, f.token))
}

func TestUserService_CacheUnavailableReadsStore(t *testing.T) {
	c, mr := newTestCache(t)
	f := newCachedFixture(t, c)
	ctx := context.Background()
	service := NewUserService(f.users, c)
	require.NoError(t, c.Ping(ctx))

	mr.SetError("ERR server unavailable")
	got, err := service.Resolve(ctx, f.user.ID, f.token)
	require.NoError(t, err)
	assert.Equal(t, f.user.ID, got.ID)
	mr.SetError("")
	assert.False(t, mr.Exists(userCacheKey(f.user.ID)))
}
