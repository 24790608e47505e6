package directory

import (
	"errors"

	"github.com/akudrin/cinewallet/internal/domain"
)

var ErrDuplicateUsername = errors.New("username already taken")

// Directory is the in-memory collection of user records, keyed by username.
// It holds at most one record per username. Access is single-caller by
// design; a lock would be needed before admitting concurrent callers.
type Directory struct {
	users map[string]*domain.User
}

func New() *Directory {
	return &Directory{users: make(map[string]*domain.User)}
}

func (d *Directory) Add(user *domain.User) error {
	if _, ok := d.users[user.Username]; ok {
		return ErrDuplicateUsername
	}
	d.users[user.Username] = user
	return nil
}

func (d *Directory) FindByUsername(username string) (*domain.User, bool) {
	user, ok := d.users[username]
	return user, ok
}

// FindByCredentials returns a record only when both the username and the
// password match. Callers must not distinguish an unknown user from a wrong
// password in anything user-visible.
func (d *Directory) FindByCredentials(username, password string) (*domain.User, bool) {
	user, ok := d.users[username]
	if !ok || !user.Login(password) {
		return nil, false
	}
	return user, true
}

// Remove deletes the record only when the credentials match; otherwise the
// directory is left unchanged.
func (d *Directory) Remove(username, password string) error {
	if _, ok := d.FindByCredentials(username, password); !ok {
		return domain.ErrAuthenticationFailed
	}
	delete(d.users, username)
	return nil
}

func (d *Directory) Len() int {
	return len(d.users)
}
