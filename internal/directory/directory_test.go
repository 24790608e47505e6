package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akudrin/cinewallet/internal/domain"
)

func newUser(t *testing.T, username, password string) *domain.User {
	t.Helper()
	user, err := domain.NewUser(username, password, "", nil)
	assert.NoError(t, err)
	return user
}

func TestAdd(t *testing.T) {
	d := New()

	err := d.Add(newUser(t, "alice", "secret1"))
	assert.NoError(t, err)
	assert.Equal(t, 1, d.Len())

	err = d.Add(newUser(t, "alice", "other123"))
	assert.ErrorIs(t, err, ErrDuplicateUsername)
	assert.Equal(t, 1, d.Len())
}

func TestFindByCredentials(t *testing.T) {
	d := New()
	err := d.Add(newUser(t, "alice", "secret1"))
	assert.NoError(t, err)

	tests := []struct {
		name     string
		username string
		password string
		found    bool
	}{
		{
			name:     "Matching credentials",
			username: "alice",
			password: "secret1",
			found:    true,
		},
		{
			name:     "Wrong password for existing user",
			username: "alice",
			password: "wrong",
			found:    false,
		},
		{
			name:     "Unknown user",
			username: "bob",
			password: "secret1",
			found:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, ok := d.FindByCredentials(tt.username, tt.password)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.username, user.Username)
			} else {
				assert.Nil(t, user)
			}
		})
	}
}

func TestRemove(t *testing.T) {
	d := New()
	err := d.Add(newUser(t, "alice", "secret1"))
	assert.NoError(t, err)

	err = d.Remove("alice", "wrong")
	assert.ErrorIs(t, err, domain.ErrAuthenticationFailed)
	assert.Equal(t, 1, d.Len())

	err = d.Remove("alice", "secret1")
	assert.NoError(t, err)
	assert.Equal(t, 0, d.Len())

	// username is free again after removal
	err = d.Add(newUser(t, "alice", "secret2"))
	assert.NoError(t, err)
}
