package services

import (
	"context"
	"testing"

	"libeasy/internal/adapters/persistence/repositories"
	"libeasy/internal/core/domain"
	"libeasy/internal/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) *AuthService {
	db := newTestDB(t)
	return NewAuthService(repositories.NewUserRepository(db), testConfig())
}

func TestRegisterIssuesValidToken(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	resp, err := svc.Register(ctx, &RegisterInput{
		Email:    "alice@example.com",
		Name:     "Alice",
		Role:     "librarian",
		Password: "password123",
	})
	require.NoError(t, err)
	require.NotNil(t, resp.User)
	assert.Equal(t, "alice@example.com", resp.User.Email)
	assert.Equal(t, "librarian", resp.User.Role)

	claims, err := jwt.Validate(resp.Token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", claims.Subject)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	input := &RegisterInput{
		Email:    "alice@example.com",
		Name:     "Alice",
		Role:     "admin",
		Password: "password123",
	}

	_, err := svc.Register(ctx, input)
	require.NoError(t, err)

	_, err = svc.Register(ctx, input)
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Register(context.Background(), &RegisterInput{
		Email:    "bob@example.com",
		Name:     "Bob",
		Role:     "superuser",
		Password: "password123",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, &RegisterInput{
		Email:    "alice@example.com",
		Name:     "Alice",
		Role:     "librarian",
		Password: "password123",
	})
	require.NoError(t, err)

	resp, err := svc.Login(ctx, &LoginInput{Email: "alice@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)

	_, err = svc.Login(ctx, &LoginInput{Email: "alice@example.com", Password: "wrong-password"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.Login(ctx, &LoginInput{Email: "nobody@example.com", Password: "password123"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}
