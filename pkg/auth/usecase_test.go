package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memUsers struct {
	byEmail map[string]User
}

func (m *memUsers) Create(_ context.Context, u User) error {
	if _, ok := m.byEmail[u.Email]; ok {
		return ErrUserAlreadyExists
	}
	m.byEmail[u.Email] = u
	return nil
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (User, error) {
	u, ok := m.byEmail[email]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

type staticTokens struct{}

func (staticTokens) Generate(_ context.Context, _ User) (string, error) { return "tok", nil }

func TestRegisterAndLogin(t *testing.T) {
	svc := NewAuthService(&memUsers{byEmail: map[string]User{}}, staticTokens{})
	ctx := context.Background()

	reg, err := svc.Register(ctx, "op@example.com", "s3cret")
	require.NoError(t, err)
	assert.NotEmpty(t, reg.Token)
	assert.NotEqual(t, "s3cret", reg.User.PasswordHash)

	_, err = svc.Register(ctx, "op@example.com", "other")
	assert.ErrorIs(t, err, ErrUserAlreadyExists)

	logged, err := svc.Login(ctx, "op@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, logged.User.ID)

	_, err = svc.Login(ctx, "op@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "ghost@example.com", "s3cret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterRejectsEmptyCredentials(t *testing.T) {
	svc := NewAuthService(&memUsers{byEmail: map[string]User{}}, staticTokens{})
	_, err := svc.Register(context.Background(), "", "pw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Register(context.Background(), "a@b.c", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
