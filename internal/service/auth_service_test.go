package service

import (
	"eduflow_backend/internal/model"
	"eduflow_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRegister(t *testing.T) {
	env := newTestEnv(t)

	user := &model.User{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "plaintext-secret",
		Role:     model.Student,
	}
	require.NoError(t, env.auth.Register(user))

	stored, err := env.users.FindByEmail("alice@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "plaintext-secret", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("plaintext-secret")))

	t.Run("duplicate email", func(t *testing.T) {
		err := env.auth.Register(&model.User{
			Name:     "Alice Again",
			Email:    "alice@example.com",
			Password: "other",
			Role:     model.Student,
		})
		assert.ErrorIs(t, err, util.ErrEmailRegistered)
	})
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)

	user := &model.User{
		Name:     "Bob",
		Email:    "bob@example.com",
		Password: "correct-horse",
		Role:     model.Instructor,
	}
	require.NoError(t, env.auth.Register(user))

	token, err := env.auth.Login("bob@example.com", "correct-horse")
	require.NoError(t, err)

	claims, err := util.ParseJWT(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, model.Instructor, claims.Role)
	assert.Equal(t, "bob@example.com", claims.Email)

	t.Run("wrong password", func(t *testing.T) {
		_, err := env.auth.Login("bob@example.com", "wrong")
		assert.Error(t, err)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := env.auth.Login("nobody@example.com", "correct-horse")
		assert.Error(t, err)
	})

	t.Run("disabled account", func(t *testing.T) {
		stored, err := env.users.FindByEmail("bob@example.com")
		require.NoError(t, err)
		stored.Disabled = true
		require.NoError(t, env.users.Update(stored))

		_, err = env.auth.Login("bob@example.com", "correct-horse")
		assert.Error(t, err)
	})
}
