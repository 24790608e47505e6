package vault

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name        string
		password    string
		expectError bool
	}{
		{
			name:        "Valid password",
			password:    "secret1",
			expectError: false,
		},
		{
			name:        "Minimum length password",
			password:    "abcd",
			expectError: false,
		},
		{
			name:        "Too short password",
			password:    "abc",
			expectError: true,
		},
		{
			name:        "Empty password",
			password:    "",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := New(tt.password)

			if tt.expectError {
				assert.ErrorIs(t, err, ErrInvalidCredential)
				assert.Empty(t, v.CredentialHash)
			} else {
				assert.NoError(t, err)
				assert.Len(t, v.CredentialHash, 64)
				assert.True(t, v.Verify(tt.password))
			}
		})
	}
}

func TestVerify(t *testing.T) {
	v, err := New("secret1")
	assert.NoError(t, err)

	assert.True(t, v.Verify("secret1"))
	assert.False(t, v.Verify("secret2"))
	assert.False(t, v.Verify(""))
}

func TestReplace(t *testing.T) {
	v, err := New("secret1")
	assert.NoError(t, err)

	err = v.Replace("newsecret")
	assert.NoError(t, err)
	assert.True(t, v.Verify("newsecret"))
	assert.False(t, v.Verify("secret1"))
}

func TestReplaceKeepsOldDigestOnFailure(t *testing.T) {
	v, err := New("secret1")
	assert.NoError(t, err)
	before := v.CredentialHash

	err = v.Replace("no")
	assert.ErrorIs(t, err, ErrInvalidCredential)
	assert.Equal(t, before, v.CredentialHash)
	assert.True(t, v.Verify("secret1"))
}

func TestDigestIsDeterministic(t *testing.T) {
	a, err := New("secret1")
	assert.NoError(t, err)
	b, err := New("secret1")
	assert.NoError(t, err)

	assert.Equal(t, a.CredentialHash, b.CredentialHash)
}
