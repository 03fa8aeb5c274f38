package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleFromString(t *testing.T) {
	for _, valid := range []string{"user", "admin", "worker"} {
		role, ok := RoleFromString(valid)
		assert.True(t, ok, valid)
		assert.Equal(t, valid, role.String())
	}

	for _, invalid := range []string{"", "superadmin", "Worker", "ADMIN"} {
		_, ok := RoleFromString(invalid)
		assert.False(t, ok, invalid)
	}
}

func TestNewUser(t *testing.T) {
	u := New("Riley", "Riley@Example.COM", "hash")

	assert.Equal(t, RoleUser, u.Role)
	assert.Equal(t, "riley@example.com", u.Email)
	assert.Equal(t, "Riley", u.Name)
}

func TestUserValidate(t *testing.T) {
	u := New("Riley", "riley@example.com", "hash")
	require.NoError(t, u.Validate())

	noName := New("", "riley@example.com", "hash")
	assert.Error(t, noName.Validate())

	badEmail := New("Riley", "not-an-email", "hash")
	assert.Error(t, badEmail.Validate())
}

func TestToPublicOmitsPasswordHash(t *testing.T) {
	u := New("Riley", "riley@example.com", "secret-hash")
	p := u.ToPublic()

	assert.Equal(t, u.ID, p.ID)
	assert.Equal(t, u.Email, p.Email)
	assert.Equal(t, u.Role, p.Role)
}
