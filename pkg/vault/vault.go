package vault

import (
	"crypto/subtle"
	"encoding/hex"
	"errors"

	"golang.org/x/crypto/sha3"
)

// MinPasswordLen is the shortest password the vault accepts.
const MinPasswordLen = 4

var ErrInvalidCredential = errors.New("password must be at least 4 characters long")

// Vault holds a one-way digest of a user's password. The plaintext is
// discarded immediately after hashing; only the hex digest is kept and
// serialized verbatim by the record store.
type Vault struct {
	CredentialHash string `json:"credential_hash"`
}

func New(password string) (Vault, error) {
	if len(password) < MinPasswordLen {
		return Vault{}, ErrInvalidCredential
	}
	return Vault{CredentialHash: digest(password)}, nil
}

// Verify recomputes the digest of the supplied password and compares it to
// the stored one. Comparison is constant-time; observable behavior is plain
// equality.
func (v *Vault) Verify(password string) bool {
	return subtle.ConstantTimeCompare([]byte(v.CredentialHash), []byte(digest(password))) == 1
}

// Replace validates the new password and overwrites the stored digest. The
// previous digest is kept untouched when validation fails.
func (v *Vault) Replace(newPassword string) error {
	if len(newPassword) < MinPasswordLen {
		return ErrInvalidCredential
	}
	v.CredentialHash = digest(newPassword)
	return nil
}

func digest(password string) string {
	sum := sha3.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}
