package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/akudrin/cinewallet/internal/ledger"
	"github.com/akudrin/cinewallet/pkg/vault"
)

var (
	ErrAuthenticationFailed = errors.New("invalid username or password")
	ErrUserNotFound         = errors.New("user not found")
)

// DefaultSubscriptionLevel is the tier every new user starts on.
const DefaultSubscriptionLevel = "Bronze"

// User is the unit of persistence: identity, credential vault and ledger are
// exclusively owned and serialized as one record. The digest inside Vault is
// stored as-is and never re-derived on load.
type User struct {
	ID                string         `json:"id"`
	Username          string         `json:"username"`
	Vault             vault.Vault    `json:"vault"`
	PhoneNumber       string         `json:"phone_number,omitempty"`
	BirthDate         *time.Time     `json:"birth_date,omitempty"`
	RegistrationDate  time.Time      `json:"registration_date"`
	SubscriptionLevel string         `json:"subscription_level"`
	Ledger            *ledger.Ledger `json:"ledger"`
}

func NewUser(username, password, phoneNumber string, birthDate *time.Time) (*User, error) {
	v, err := vault.New(password)
	if err != nil {
		return nil, err
	}
	return &User{
		ID:                uuid.NewString(),
		Username:          username,
		Vault:             v,
		PhoneNumber:       phoneNumber,
		BirthDate:         birthDate,
		RegistrationDate:  time.Now(),
		SubscriptionLevel: DefaultSubscriptionLevel,
		Ledger:            ledger.New(),
	}, nil
}

func (u *User) Login(password string) bool {
	return u.Vault.Verify(password)
}

func (u *User) ChangePassword(oldPassword, newPassword string) error {
	if !u.Vault.Verify(oldPassword) {
		return ErrAuthenticationFailed
	}
	return u.Vault.Replace(newPassword)
}

// Age reports the user's age in whole years at the given moment, 0 when no
// birth date is recorded.
func (u *User) Age(now time.Time) int {
	if u.BirthDate == nil {
		return 0
	}
	age := now.Year() - u.BirthDate.Year()
	if now.YearDay() < u.BirthDate.YearDay() {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}

func (u *User) Deposit(accountNumber string, amount float64) error {
	return u.Ledger.Deposit(accountNumber, amount)
}

func (u *User) Reserve(sessionID string, price float64, ageLimit, userAge int) error {
	return u.Ledger.Reserve(sessionID, price, ageLimit, userAge)
}
