package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"taskboard/backend/internal/repositories"
)

func newAuthServiceForTest(t *testing.T) *AuthServiceImpl {
	t.Helper()
	db := setupServiceDB(t)
	users := repositories.NewUserRepository(db)
	hasher := NewPasswordHasher(bcrypt.MinCost)
	tokens, err := NewTokenManager(testTokenConfig())
	require.NoError(t, err)
	return NewAuthService(users, hasher, tokens)
}

func TestAuthService_RegisterThenLogin(t *testing.T) {
	auth := newAuthServiceForTest(t)

	registered, err := auth.Register("alice", "alice@example.com", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, "alice", registered.Username)
	assert.Equal(t, "alice@example.com", registered.Email)
	assert.NotEmpty(t, registered.Token)
	assert.False(t, registered.ExpiresAt.IsZero())

	session, err := auth.Login("alice@example.com", "s3cret-pass")
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)

	tokens, err := NewTokenManager(testTokenConfig())
	require.NoError(t, err)
	assert.True(t, tokens.Validate(session.Token))
}

func TestAuthService_LoginFailuresAreIndistinguishable(t *testing.T) {
	auth := newAuthServiceForTest(t)

	_, err := auth.Register("alice", "alice@example.com", "s3cret-pass")
	require.NoError(t, err)

	_, wrongPassword := auth.Login("alice@example.com", "not-the-password")
	_, unknownEmail := auth.Login("nobody@example.com", "s3cret-pass")

	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	auth := newAuthServiceForTest(t)

	_, err := auth.Register("alice", "alice@example.com", "s3cret-pass")
	require.NoError(t, err)

	_, err = auth.Register("impostor", "alice@example.com", "other-pass")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthService_UserExists(t *testing.T) {
	auth := newAuthServiceForTest(t)

	exists, err := auth.UserExists("alice@example.com")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = auth.Register("alice", "alice@example.com", "s3cret-pass")
	require.NoError(t, err)

	exists, err = auth.UserExists("alice@example.com")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestAuthService_PasswordIsStoredHashed(t *testing.T) {
	db := setupServiceDB(t)
	users := repositories.NewUserRepository(db)
	hasher := NewPasswordHasher(bcrypt.MinCost)
	tokens, err := NewTokenManager(testTokenConfig())
	require.NoError(t, err)
	auth := NewAuthService(users, hasher, tokens)

	_, err = auth.Register("alice", "alice@example.com", "s3cret-pass")
	require.NoError(t, err)

	user, err := users.FindByEmail("alice@example.com")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.NotEqual(t, "s3cret-pass", user.PasswordHash)
	assert.True(t, hasher.Verify("s3cret-pass", user.PasswordHash))
}
