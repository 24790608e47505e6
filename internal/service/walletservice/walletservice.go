package walletservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/akudrin/cinewallet/internal/domain"
	"github.com/akudrin/cinewallet/internal/dto"
	"github.com/akudrin/cinewallet/pkg/validate"
)

var ErrInvalidAccountNumber = errors.New("invalid account number format")

type Directory interface {
	FindByUsername(username string) (*domain.User, bool)
}

type Service struct {
	directory Directory
}

func New(directory Directory) *Service {
	return &Service{directory: directory}
}

// LinkAccount attaches a bank account to the user's ledger. Account numbers
// must pass the Luhn check before the ledger is touched.
func (s *Service) LinkAccount(ctx context.Context, username, accountNumber string, openingBalance float64) error {
	user, ok := s.directory.FindByUsername(username)
	if !ok {
		return domain.ErrUserNotFound
	}
	if !validate.IsLuhn(accountNumber) {
		zap.L().Info("rejected account number", zap.String("account", accountNumber))
		return ErrInvalidAccountNumber
	}
	if err := user.Ledger.LinkAccount(accountNumber, openingBalance); err != nil {
		return err
	}
	zap.L().Info("account linked",
		zap.String("username", username), zap.String("account", accountNumber))
	return nil
}

func (s *Service) Deposit(ctx context.Context, username, accountNumber string, amount float64) error {
	user, ok := s.directory.FindByUsername(username)
	if !ok {
		return domain.ErrUserNotFound
	}
	if err := user.Deposit(accountNumber, amount); err != nil {
		zap.L().Info("deposit rejected",
			zap.String("username", username), zap.String("account", accountNumber), zap.Error(err))
		return err
	}
	zap.L().Info("deposit completed",
		zap.String("username", username), zap.Float64("amount", amount))
	return nil
}

// Reserve pays for a session from the wallet. The user's age is derived from
// the recorded birth date; users without one count as age 0.
func (s *Service) Reserve(ctx context.Context, username, sessionID string, price float64, ageLimit int) error {
	user, ok := s.directory.FindByUsername(username)
	if !ok {
		return domain.ErrUserNotFound
	}
	userAge := user.Age(time.Now())
	if err := user.Reserve(sessionID, price, ageLimit, userAge); err != nil {
		zap.L().Info("reservation rejected",
			zap.String("username", username), zap.String("session", sessionID), zap.Error(err))
		return err
	}
	zap.L().Info("session reserved",
		zap.String("username", username), zap.String("session", sessionID))
	return nil
}

func (s *Service) Summary(ctx context.Context, username string) (*dto.BalanceSummaryDTO, error) {
	user, ok := s.directory.FindByUsername(username)
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	summary := &dto.BalanceSummaryDTO{
		WalletBalance:    user.Ledger.WalletBalance,
		BankAccounts:     make([]dto.AccountBalanceDTO, 0, len(user.Ledger.BankAccounts)),
		ReservedSessions: append([]string(nil), user.Ledger.ReservedSessions...),
		History:          append([]string(nil), user.Ledger.TransactionLog...),
	}
	for _, acc := range user.Ledger.BankAccounts {
		summary.BankAccounts = append(summary.BankAccounts, dto.AccountBalanceDTO{
			AccountNumber: acc.AccountNumber,
			Balance:       acc.Balance,
		})
	}
	return summary, nil
}
