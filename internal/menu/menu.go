package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/akudrin/cinewallet/internal/domain"
	"github.com/akudrin/cinewallet/internal/dto"
)

const birthDateLayout = "2006-01-02"

const mainMenu = `
Main Menu:
1 - Register a new user
2 - Login
3 - Change password
4 - Delete user account
5 - Link a bank account
6 - Deposit to wallet
7 - Reserve a cinema session
8 - Show balance and history
9 - Save user to file
10 - Load user from file
0 - Exit`

type AccountService interface {
	Register(ctx context.Context, input dto.RegisterInput) (*domain.User, error)
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
	ChangePassword(ctx context.Context, username, oldPassword, newPassword string) error
	Delete(ctx context.Context, username, password string) error
	Save(ctx context.Context, username string) error
	Load(ctx context.Context, username string) (*domain.User, error)
}

type WalletService interface {
	LinkAccount(ctx context.Context, username, accountNumber string, openingBalance float64) error
	Deposit(ctx context.Context, username, accountNumber string, amount float64) error
	Reserve(ctx context.Context, username, sessionID string, price float64, ageLimit int) error
	Summary(ctx context.Context, username string) (*dto.BalanceSummaryDTO, error)
}

// Menu is the line-oriented shell: it collects raw input, delegates to the
// services and renders the returned outcome. It never mutates records itself.
type Menu struct {
	account AccountService
	wallet  WalletService
	in      *bufio.Scanner
	out     io.Writer
}

func New(account AccountService, wallet WalletService, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		account: account,
		wallet:  wallet,
		in:      bufio.NewScanner(in),
		out:     out,
	}
}

// Run processes one command at a time until the user exits, input is
// exhausted or ctx is cancelled.
func (m *Menu) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		m.printf("%s\n", mainMenu)
		choice, ok := m.prompt("Enter your choice: ")
		if !ok {
			return nil
		}

		switch choice {
		case "0":
			m.printf("Exiting the program. Goodbye!\n")
			return nil
		case "1":
			m.register(ctx)
		case "2":
			m.login(ctx)
		case "3":
			m.changePassword(ctx)
		case "4":
			m.deleteAccount(ctx)
		case "5":
			m.linkAccount(ctx)
		case "6":
			m.deposit(ctx)
		case "7":
			m.reserveSession(ctx)
		case "8":
			m.showSummary(ctx)
		case "9":
			m.saveUser(ctx)
		case "10":
			m.loadUser(ctx)
		default:
			m.printf("Invalid choice. Please try again.\n")
		}
	}
}

func (m *Menu) register(ctx context.Context) {
	username, ok := m.prompt("Enter username: ")
	if !ok {
		return
	}
	password, ok := m.prompt("Enter password: ")
	if !ok {
		return
	}
	phone, ok := m.prompt("Enter phone number (optional): ")
	if !ok {
		return
	}
	rawDate, ok := m.prompt("Enter birth date (optional, yyyy-mm-dd): ")
	if !ok {
		return
	}

	var birthDate *time.Time
	if rawDate != "" {
		parsed, err := time.Parse(birthDateLayout, rawDate)
		if err != nil {
			m.printf("Error: invalid birth date, expected yyyy-mm-dd\n")
			return
		}
		birthDate = &parsed
	}

	_, err := m.account.Register(ctx, dto.RegisterInput{
		Username:    username,
		Password:    password,
		PhoneNumber: phone,
		BirthDate:   birthDate,
	})
	if err != nil {
		m.printf("Error: %s\n", err)
		return
	}
	m.printf("User registered successfully!\n")
}

func (m *Menu) login(ctx context.Context) {
	username, password, ok := m.promptCredentials()
	if !ok {
		return
	}
	if _, err := m.account.Authenticate(ctx, username, password); err != nil {
		m.printf("Invalid username or password!\n")
		return
	}
	m.printf("Welcome back, %s!\n", username)
}

func (m *Menu) changePassword(ctx context.Context) {
	username, ok := m.prompt("Enter username: ")
	if !ok {
		return
	}
	oldPassword, ok := m.prompt("Enter current password: ")
	if !ok {
		return
	}
	newPassword, ok := m.prompt("Enter new password: ")
	if !ok {
		return
	}
	if err := m.account.ChangePassword(ctx, username, oldPassword, newPassword); err != nil {
		if errors.Is(err, domain.ErrAuthenticationFailed) {
			m.printf("Invalid username or password!\n")
			return
		}
		m.printf("Error: %s\n", err)
		return
	}
	m.printf("Password changed successfully!\n")
}

func (m *Menu) deleteAccount(ctx context.Context) {
	username, password, ok := m.promptCredentials()
	if !ok {
		return
	}
	if err := m.account.Delete(ctx, username, password); err != nil {
		m.printf("Invalid username or password!\n")
		return
	}
	m.printf("User account deleted successfully!\n")
}

func (m *Menu) linkAccount(ctx context.Context) {
	username, ok := m.prompt("Enter username: ")
	if !ok {
		return
	}
	accountNumber, ok := m.prompt("Enter account number: ")
	if !ok {
		return
	}
	balance, ok := m.promptAmount("Enter opening balance: ")
	if !ok {
		return
	}
	if err := m.wallet.LinkAccount(ctx, username, accountNumber, balance); err != nil {
		m.printf("Error: %s\n", err)
		return
	}
	m.printf("Bank account linked successfully!\n")
}

func (m *Menu) deposit(ctx context.Context) {
	username, ok := m.prompt("Enter username: ")
	if !ok {
		return
	}
	accountNumber, ok := m.prompt("Enter account number: ")
	if !ok {
		return
	}
	amount, ok := m.promptAmount("Enter amount: ")
	if !ok {
		return
	}
	if err := m.wallet.Deposit(ctx, username, accountNumber, amount); err != nil {
		m.printf("Error: %s\n", err)
		return
	}
	m.printf("Deposit successful.\n")
}

func (m *Menu) reserveSession(ctx context.Context) {
	username, ok := m.prompt("Enter username: ")
	if !ok {
		return
	}
	sessionID, ok := m.prompt("Enter session id: ")
	if !ok {
		return
	}
	price, ok := m.promptAmount("Enter session price: ")
	if !ok {
		return
	}
	rawLimit, ok := m.prompt("Enter age limit: ")
	if !ok {
		return
	}
	ageLimit, err := strconv.Atoi(rawLimit)
	if err != nil {
		m.printf("Error: invalid age limit\n")
		return
	}
	if err := m.wallet.Reserve(ctx, username, sessionID, price, ageLimit); err != nil {
		m.printf("Error: %s\n", err)
		return
	}
	m.printf("Session reserved successfully.\n")
}

func (m *Menu) showSummary(ctx context.Context) {
	username, ok := m.prompt("Enter username: ")
	if !ok {
		return
	}
	summary, err := m.wallet.Summary(ctx, username)
	if err != nil {
		m.printf("Error: %s\n", err)
		return
	}
	m.printf("Wallet balance: %v\n", summary.WalletBalance)
	for _, acc := range summary.BankAccounts {
		m.printf("Account %s: %v\n", acc.AccountNumber, acc.Balance)
	}
	if len(summary.ReservedSessions) > 0 {
		m.printf("Reserved sessions: %v\n", summary.ReservedSessions)
	}
	for _, entry := range summary.History {
		m.printf("  %s\n", entry)
	}
}

func (m *Menu) saveUser(ctx context.Context) {
	username, ok := m.prompt("Enter username: ")
	if !ok {
		return
	}
	if err := m.account.Save(ctx, username); err != nil {
		m.printf("Error: %s\n", err)
		return
	}
	m.printf("User saved to file successfully!\n")
}

func (m *Menu) loadUser(ctx context.Context) {
	username, ok := m.prompt("Enter username: ")
	if !ok {
		return
	}
	if _, err := m.account.Load(ctx, username); err != nil {
		m.printf("Error: %s\n", err)
		return
	}
	m.printf("User loaded from file successfully!\n")
}

func (m *Menu) promptCredentials() (username, password string, ok bool) {
	username, ok = m.prompt("Enter username: ")
	if !ok {
		return "", "", false
	}
	password, ok = m.prompt("Enter password: ")
	if !ok {
		return "", "", false
	}
	return username, password, true
}

func (m *Menu) promptAmount(label string) (float64, bool) {
	raw, ok := m.prompt(label)
	if !ok {
		return 0, false
	}
	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		m.printf("Error: invalid amount\n")
		return 0, false
	}
	return amount, true
}

func (m *Menu) prompt(label string) (string, bool) {
	m.printf("%s", label)
	if !m.in.Scan() {
		return "", false
	}
	return m.in.Text(), true
}

func (m *Menu) printf(format string, args ...any) {
	fmt.Fprintf(m.out, format, args...)
}
