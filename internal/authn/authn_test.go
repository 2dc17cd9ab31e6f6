package authn

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trainingdiary/internal/auth"
	"trainingdiary/internal/logging"
	"trainingdiary/internal/model"
	"trainingdiary/internal/repository"
	"trainingdiary/internal/service"
)

type gateFixture struct {
	e      *echo.Echo
	tokens *auth.TokenService
	users  *repository.MemoryUserRepository
	user   *model.User
	token  string
	hits   int
}

func newGateFixture(t *testing.T) *gateFixture {
	t.Helper()

	f := &gateFixture{
		e:      echo.New(),
		tokens: auth.NewTokenService("test-secret"),
		users:  repository.NewMemoryUserRepository(),
	}

	f.user = &model.User{ID: model.NewID(), Email: "user1@example.com", PasswordHash: "x"}
	token, err := f.tokens.Issue(f.user.ID, model.AccessAuth)
	require.NoError(t, err)
	f.user.AddToken(model.AccessAuth, token)
	f.token = token
	require.NoError(t, f.users.Create(context.Background(), f.user))

	gate := Required(f.tokens, service.NewUserService(f.users, nil), logging.Discard())
	f.e.GET("/me", func(c echo.Context) error {
		f.hits++
		user := CurrentUser(c)
		return c.JSON(http.StatusOK, map[string]string{"_id": user.ID, "token": CurrentToken(c)})
	}, gate)
	return f
}

func (f *gateFixture) do(token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if token != "" {
		req.Header.Set(HeaderAuth, token)
	}
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)
	return rec
}

func TestRequired_Accepts(t *testing.T) {
	f := newGateFixture(t)

	rec := f.do(f.token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), f.user.ID)
	assert.Equal(t, 1, f.hits)
}

func TestRequired_Rejects(t *testing.T) {
	f := newGateFixture(t)

	foreign, err := auth.NewTokenService("other-secret").Issue(f.user.ID, model.AccessAuth)
	require.NoError(t, err)
	unlisted, err := f.tokens.Issue(f.user.ID, model.AccessAuth)
	require.NoError(t, err)
	unknownUser, err := f.tokens.Issue(model.NewID(), model.AccessAuth)
	require.NoError(t, err)
	wrongPurpose, err := f.tokens.Issue(f.user.ID, "reset")
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"missing header", ""},
		{"garbage", "not-a-token"},
		{"wrong secret", foreign},
		{"not listed on user", unlisted},
		{"unknown user", unknownUser},
		{"wrong purpose", wrongPurpose},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := f.do(tt.token)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Empty(t, rec.Body.String())
		})
	}
	assert.Zero(t, f.hits)
}

func TestRequired_RevokedToken(t *testing.T) {
	f := newGateFixture(t)
	require.Equal(t, http.StatusOK, f.do(f.token).Code)

	f.user.RemoveToken(f.token)
	require.NoError(t, f.users.Update(context.Background(), f.user))

	assert.Equal(t, http.StatusUnauthorized, f.do(f.token).Code)
}
