package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"adsdash/internal/auth"
	"adsdash/internal/domain"
	"adsdash/pkg/logger"
	"adsdash/pkg/metrics"
)

type fakeUserRepository struct {
	users map[string]*domain.User
	err   error
}

func (f *fakeUserRepository) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	user, ok := f.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func newAuthFixture(t *testing.T, repo domain.UserRepository) (*AuthService, *auth.TokenManager) {
	t.Helper()
	tokens, err := auth.NewTokenManager("unit-test-secret", time.Hour)
	require.NoError(t, err)
	svc := NewAuthService(repo, tokens, logger.New("error"), metrics.New(prometheus.NewRegistry()))
	return svc, tokens
}

func TestLoginIssuesTokenForValidCredentials(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &fakeUserRepository{users: map[string]*domain.User{
		"admin": {ID: 7, Username: "admin", PasswordHash: string(hash)},
	}}
	svc, tokens := newAuthFixture(t, repo)

	token, err := svc.Login(context.Background(), "admin", "hunter2")

	require.NoError(t, err)
	claims, err := tokens.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "admin", claims.Username)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &fakeUserRepository{users: map[string]*domain.User{
		"admin": {ID: 7, Username: "admin", PasswordHash: string(hash)},
	}}
	svc, _ := newAuthFixture(t, repo)

	token, err := svc.Login(context.Background(), "admin", "wrong")

	assert.Empty(t, token)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginRejectsUnknownUser(t *testing.T) {
	svc, _ := newAuthFixture(t, &fakeUserRepository{users: map[string]*domain.User{}})

	token, err := svc.Login(context.Background(), "nobody", "whatever")

	assert.Empty(t, token)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginPropagatesStoreErrors(t *testing.T) {
	svc, _ := newAuthFixture(t, &fakeUserRepository{err: errors.New("connection refused")})

	token, err := svc.Login(context.Background(), "admin", "hunter2")

	assert.Empty(t, token)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}
