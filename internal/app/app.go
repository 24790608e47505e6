package app

import (
	"context"
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"

	"github.com/akudrin/cinewallet/internal/config"
	"github.com/akudrin/cinewallet/internal/directory"
	"github.com/akudrin/cinewallet/internal/menu"
	"github.com/akudrin/cinewallet/internal/service"
	"github.com/akudrin/cinewallet/internal/storage"
	"github.com/akudrin/cinewallet/pkg/logger"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg  *config.Config
	srv  *service.Services
	menu *menu.Menu

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	dir := directory.New()
	store := storage.New(cfg.DataDir)

	a.cfg = cfg
	a.srv = service.New(dir, store)
	a.menu = menu.New(a.srv.AccountService, a.srv.WalletService, os.Stdin, os.Stdout)

	a.startMenu(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func (a *Application) startMenu(ctx context.Context) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting interactive menu", zap.String("data_dir", a.cfg.DataDir))
		a.errCh <- a.menu.Run(ctx)
	}()
}

// Wait blocks until the menu finishes or ctx is cancelled, then drains the
// remaining workers.
func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			if err != nil {
				zap.L().Error(err.Error())
				appErr = err
			}
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
