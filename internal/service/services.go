package service

import (
	"github.com/akudrin/cinewallet/internal/directory"
	"github.com/akudrin/cinewallet/internal/service/accountservice"
	"github.com/akudrin/cinewallet/internal/service/walletservice"
	"github.com/akudrin/cinewallet/internal/storage"
)

type Services struct {
	AccountService *accountservice.Service
	WalletService  *walletservice.Service
}

func New(dir *directory.Directory, store *storage.RecordStore) *Services {
	return &Services{
		AccountService: accountservice.New(dir, store),
		WalletService:  walletservice.New(dir),
	}
}
