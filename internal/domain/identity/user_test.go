package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("creates user with hashed password and lowercase email", func(t *testing.T) {
		user, err := NewUser("Admin@Byserkan.DE", "super-secret", RoleAdmin)
		require.NoError(t, err)

		assert.Equal(t, "admin@byserkan.de", user.Email)
		assert.NotEqual(t, "super-secret", user.PasswordHash)
		assert.True(t, user.VerifyPassword("super-secret"))
		assert.False(t, user.VerifyPassword("wrong"))
		assert.True(t, user.CanAccessAdmin())
	})

	t.Run("rejects invalid email", func(t *testing.T) {
		_, err := NewUser("not-an-email", "super-secret", RoleAdmin)
		assert.Error(t, err)
	})

	t.Run("rejects short password", func(t *testing.T) {
		_, err := NewUser("admin@byserkan.de", "short", RoleAdmin)
		assert.Error(t, err)
	})

	t.Run("monitor role cannot access admin", func(t *testing.T) {
		user, err := NewUser("monitor@byserkan.de", "super-secret", RoleMonitor)
		require.NoError(t, err)
		assert.False(t, user.CanAccessAdmin())
	})
}

func TestUser_SetPassword(t *testing.T) {
	user, err := NewUser("admin@byserkan.de", "super-secret", RoleAdmin)
	require.NoError(t, err)

	require.NoError(t, user.SetPassword("new-password"))
	assert.True(t, user.VerifyPassword("new-password"))
	assert.False(t, user.VerifyPassword("super-secret"))

	assert.Error(t, user.SetPassword("tiny"))
}
