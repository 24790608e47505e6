package dto

import "time"

type RegisterInput struct {
	Username    string
	Password    string
	PhoneNumber string
	BirthDate   *time.Time
}

type AccountBalanceDTO struct {
	AccountNumber string  `json:"account_number"`
	Balance       float64 `json:"balance"`
}

type BalanceSummaryDTO struct {
	WalletBalance    float64             `json:"wallet_balance"`
	BankAccounts     []AccountBalanceDTO `json:"bank_accounts"`
	ReservedSessions []string            `json:"reserved_sessions"`
	History          []string            `json:"history"`
}
