package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/akudrin/cinewallet/pkg/vault"
)

func TestNewUser(t *testing.T) {
	birthDate := time.Date(2000, 5, 10, 0, 0, 0, 0, time.UTC)

	user, err := NewUser("alice", "secret1", "+371200000", &birthDate)
	assert.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, DefaultSubscriptionLevel, user.SubscriptionLevel)
	assert.False(t, user.RegistrationDate.IsZero())
	assert.NotNil(t, user.Ledger)
	assert.Equal(t, 0.0, user.Ledger.WalletBalance)
	assert.True(t, user.Login("secret1"))
}

func TestNewUserRejectsShortPassword(t *testing.T) {
	user, err := NewUser("alice", "abc", "", nil)
	assert.ErrorIs(t, err, vault.ErrInvalidCredential)
	assert.Nil(t, user)
}

func TestNewUserIDsAreUnique(t *testing.T) {
	a, err := NewUser("alice", "secret1", "", nil)
	assert.NoError(t, err)
	b, err := NewUser("bob", "secret1", "", nil)
	assert.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestChangePassword(t *testing.T) {
	tests := []struct {
		name        string
		oldPassword string
		newPassword string
		expectedErr error
	}{
		{
			name:        "Successful change",
			oldPassword: "secret1",
			newPassword: "secret2",
			expectedErr: nil,
		},
		{
			name:        "Wrong current password",
			oldPassword: "wrong",
			newPassword: "secret2",
			expectedErr: ErrAuthenticationFailed,
		},
		{
			name:        "New password too short",
			oldPassword: "secret1",
			newPassword: "ab",
			expectedErr: vault.ErrInvalidCredential,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := NewUser("alice", "secret1", "", nil)
			assert.NoError(t, err)

			err = user.ChangePassword(tt.oldPassword, tt.newPassword)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.True(t, user.Login("secret1"))
			} else {
				assert.NoError(t, err)
				assert.True(t, user.Login("secret2"))
				assert.False(t, user.Login("secret1"))
			}
		})
	}
}

func TestAge(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		birthDate *time.Time
		expected  int
	}{
		{
			name:      "No birth date",
			birthDate: nil,
			expected:  0,
		},
		{
			name:      "Birthday already passed this year",
			birthDate: ptr(time.Date(2000, 1, 10, 0, 0, 0, 0, time.UTC)),
			expected:  26,
		},
		{
			name:      "Birthday later this year",
			birthDate: ptr(time.Date(2000, 12, 10, 0, 0, 0, 0, time.UTC)),
			expected:  25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := NewUser("alice", "secret1", "", tt.birthDate)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, user.Age(now))
		})
	}
}

func ptr(t time.Time) *time.Time {
	return &t
}
