package ledger

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidAccount      = errors.New("invalid account")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrAgeIneligible       = errors.New("age requirement not met for this session")
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrDuplicateAccount    = errors.New("account number already linked")
	ErrAlreadyReserved     = errors.New("session already reserved")
)

type BankAccount struct {
	AccountNumber string  `json:"account_number"`
	Balance       float64 `json:"balance"`
}

// Ledger owns a user's cash wallet, linked bank accounts, reserved sessions
// and the append-only transaction log. Every successful balance-changing
// operation appends exactly one log entry; entries are never reordered or
// rewritten.
type Ledger struct {
	WalletBalance    float64       `json:"wallet_balance"`
	BankAccounts     []BankAccount `json:"bank_accounts"`
	ReservedSessions []string      `json:"reserved_sessions"`
	TransactionLog   []string      `json:"transaction_log"`
}

func New() *Ledger {
	return &Ledger{
		BankAccounts:     []BankAccount{},
		ReservedSessions: []string{},
		TransactionLog:   []string{},
	}
}

// LinkAccount attaches a bank account with an opening balance. Account
// numbers are unique within a ledger.
func (l *Ledger) LinkAccount(accountNumber string, openingBalance float64) error {
	if openingBalance < 0 {
		return ErrInvalidAmount
	}
	for _, acc := range l.BankAccounts {
		if acc.AccountNumber == accountNumber {
			return ErrDuplicateAccount
		}
	}
	l.BankAccounts = append(l.BankAccounts, BankAccount{
		AccountNumber: accountNumber,
		Balance:       openingBalance,
	})
	l.TransactionLog = append(l.TransactionLog,
		fmt.Sprintf("Linked account %s with balance %v", accountNumber, openingBalance))
	return nil
}

// Deposit moves amount from the named bank account into the wallet. The total
// of wallet plus bank balances is conserved across the call. Nothing is
// mutated and no log entry is written on failure.
func (l *Ledger) Deposit(accountNumber string, amount float64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	for i := range l.BankAccounts {
		acc := &l.BankAccounts[i]
		if acc.AccountNumber != accountNumber {
			continue
		}
		if acc.Balance < amount {
			return ErrInsufficientBalance
		}
		acc.Balance -= amount
		l.WalletBalance += amount
		l.TransactionLog = append(l.TransactionLog,
			fmt.Sprintf("Deposited %v from account %s", amount, accountNumber))
		return nil
	}
	return ErrInvalidAccount
}

// Reserve pays for a session from the wallet. The age check runs before any
// balance check; a failed reservation leaves the wallet, the session list and
// the log untouched.
func (l *Ledger) Reserve(sessionID string, price float64, ageLimit, userAge int) error {
	if price <= 0 {
		return ErrInvalidAmount
	}
	if userAge < ageLimit {
		return ErrAgeIneligible
	}
	for _, id := range l.ReservedSessions {
		if id == sessionID {
			return ErrAlreadyReserved
		}
	}
	if l.WalletBalance < price {
		return ErrInsufficientBalance
	}
	l.WalletBalance -= price
	l.ReservedSessions = append(l.ReservedSessions, sessionID)
	l.TransactionLog = append(l.TransactionLog,
		fmt.Sprintf("Reserved session %s for %v", sessionID, price))
	return nil
}

func (l *Ledger) FindAccount(accountNumber string) (*BankAccount, bool) {
	for i := range l.BankAccounts {
		if l.BankAccounts[i].AccountNumber == accountNumber {
			return &l.BankAccounts[i], true
		}
	}
	return nil, false
}
