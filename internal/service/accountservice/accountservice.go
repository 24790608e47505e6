package accountservice

import (
	"context"

	"go.uber.org/zap"

	"github.com/akudrin/cinewallet/internal/domain"
	"github.com/akudrin/cinewallet/internal/dto"
)

type Directory interface {
	Add(user *domain.User) error
	FindByUsername(username string) (*domain.User, bool)
	FindByCredentials(username, password string) (*domain.User, bool)
	Remove(username, password string) error
}

type RecordStore interface {
	Save(user *domain.User) error
	Load(username string) (*domain.User, error)
}

type Service struct {
	directory Directory
	store     RecordStore
}

func New(directory Directory, store RecordStore) *Service {
	return &Service{
		directory: directory,
		store:     store,
	}
}

func (s *Service) Register(ctx context.Context, input dto.RegisterInput) (*domain.User, error) {
	user, err := domain.NewUser(input.Username, input.Password, input.PhoneNumber, input.BirthDate)
	if err != nil {
		zap.L().Info("registration rejected", zap.String("username", input.Username), zap.Error(err))
		return nil, err
	}
	if err := s.directory.Add(user); err != nil {
		zap.L().Info("registration rejected", zap.String("username", input.Username), zap.Error(err))
		return nil, err
	}
	zap.L().Info("user registered", zap.String("username", input.Username))
	return user, nil
}

// Authenticate resolves a record by username and password. Unknown user and
// wrong password are indistinguishable to the caller.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, ok := s.directory.FindByCredentials(username, password)
	if !ok {
		zap.L().Info("authentication failed", zap.String("username", username))
		return nil, domain.ErrAuthenticationFailed
	}
	zap.L().Info("user authenticated", zap.String("username", username))
	return user, nil
}

func (s *Service) ChangePassword(ctx context.Context, username, oldPassword, newPassword string) error {
	user, ok := s.directory.FindByUsername(username)
	if !ok {
		zap.L().Info("password change failed", zap.String("username", username))
		return domain.ErrAuthenticationFailed
	}
	if err := user.ChangePassword(oldPassword, newPassword); err != nil {
		zap.L().Info("password change failed", zap.String("username", username), zap.Error(err))
		return err
	}
	zap.L().Info("password changed", zap.String("username", username))
	return nil
}

func (s *Service) Delete(ctx context.Context, username, password string) error {
	if err := s.directory.Remove(username, password); err != nil {
		zap.L().Info("account deletion failed", zap.String("username", username))
		return err
	}
	zap.L().Info("account deleted", zap.String("username", username))
	return nil
}

// Save writes the named record to the store as one opaque blob.
func (s *Service) Save(ctx context.Context, username string) error {
	user, ok := s.directory.FindByUsername(username)
	if !ok {
		return domain.ErrUserNotFound
	}
	if err := s.store.Save(user); err != nil {
		zap.L().Error("can't save user record", zap.String("username", username), zap.Error(err))
		return err
	}
	zap.L().Info("user record saved", zap.String("username", username))
	return nil
}

// Load restores a record from the store and adds it to the directory. The
// directory keeps at most one record per username, so loading over an
// existing user fails.
func (s *Service) Load(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.store.Load(username)
	if err != nil {
		zap.L().Info("can't load user record", zap.String("username", username), zap.Error(err))
		return nil, err
	}
	if err := s.directory.Add(user); err != nil {
		return nil, err
	}
	zap.L().Info("user record loaded", zap.String("username", username))
	return user, nil
}
