// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	deliverycontext "pizarra/internal/delivery/context"
	"pizarra/internal/domain/entity"
	domainerrors "pizarra/internal/domain/errors"
	"pizarra/internal/domain/repository"
	"pizarra/internal/domain/service"
	"pizarra/internal/errors"
	"pizarra/internal/infra/metrics"
	"pizarra/internal/usecase"

	"go.uber.org/fx"
)

// Compared against when the username is unknown, so a miss costs one bcrypt comparison too.
const dummyPassword = "pizarra-dummy-password"

// accountService implements the AccountUsecase interface.
type accountService struct {
	accountRepo repository.AccountRepository
	hasher      service.PasswordHasher
	metrics     *metrics.Recorder
	logger      *slog.Logger

	dummyHashOnce sync.Once
	dummyHash     string
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	AccountRepo repository.AccountRepository
	Hasher      service.PasswordHasher
	Metrics     *metrics.Recorder `optional:"true"`
	Logger      *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		accountRepo: params.AccountRepo,
		hasher:      params.Hasher,
		metrics:     params.Metrics,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterAccount looks the username up, hashes the password and inserts the account.
// The store's uniqueness constraint still decides a race between two registrations.
func (srv *accountService) RegisterAccount(ctx context.Context, input usecase.CredentialsInput) error {
	existing, err := srv.accountRepo.FindByUsername(ctx, input.Username)
	switch {
	case err == nil && existing != nil:
		return errors.Wrap(domainerrors.ErrAccountAlreadyExists, "username already registered")
	case err != nil && !errors.Is(err, repository.ErrAccountNotFound):
		return errors.Wrap(err, "failed to look up account")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return errors.Wrapf(domainerrors.ErrPasswordHashFailed, "failed to hash password: %v", err)
	}

	account := &entity.Account{
		Username:     input.Username,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := srv.accountRepo.Create(ctx, account); err != nil {
		return errors.Wrap(err, "failed to create account")
	}

	return nil
}

// Register folds RegisterAccount into a success flag.
func (srv *accountService) Register(ctx context.Context, username, password string) bool {
	start := time.Now()

	err := srv.RegisterAccount(ctx, usecase.CredentialsInput{Username: username, Password: password})
	result := registerResult(err)
	srv.metrics.Observe(metrics.OperationRegister, result, time.Since(start))

	switch result {
	case metrics.ResultSuccess:
		srv.log(ctx).Info("Account registered", slog.String("username", username))

		return true
	case metrics.ResultDuplicate:
		srv.log(ctx).Info("Registration rejected, username taken", slog.String("username", username))
	default:
		srv.log(ctx).Error("Registration failed",
			slog.String("username", username),
			slog.String("result", result),
			slog.Any("error", err),
		)
	}

	return false
}

func (srv *accountService) Verify(ctx context.Context, username, password string) bool {
	start := time.Now()

	ok, result, err := srv.verify(ctx, username, password)
	srv.metrics.Observe(metrics.OperationVerify, result, time.Since(start))

	if err != nil {
		srv.log(ctx).Error("Credential verification failed",
			slog.String("username", username),
			slog.Any("error", err),
		)
	}

	return ok
}

func (srv *accountService) verify(ctx context.Context, username, password string) (bool, string, error) {
	account, err := srv.accountRepo.FindByUsername(ctx, username)
	if err != nil {
		srv.hasher.Check(password, srv.fallbackHash())

		if errors.Is(err, repository.ErrAccountNotFound) {
			return false, metrics.ResultInvalid, nil
		}

		return false, metrics.ResultStorageError, errors.Wrap(err, "failed to look up account")
	}

	if !srv.hasher.Check(password, account.PasswordHash) {
		return false, metrics.ResultInvalid, nil
	}

	return true, metrics.ResultSuccess, nil
}

// fallbackHash lazily hashes dummyPassword with the configured hasher so the
// dummy comparison runs at the same cost as a real one.
func (srv *accountService) fallbackHash() string {
	srv.dummyHashOnce.Do(func() {
		hash, err := srv.hasher.Hash(dummyPassword)
		if err != nil {
			srv.logger.Warn("Failed to prepare dummy password hash", slog.Any("error", err))

			return
		}
		srv.dummyHash = hash
	})

	return srv.dummyHash
}

func registerResult(err error) string {
	switch {
	case err == nil:
		return metrics.ResultSuccess
	case domainerrors.IsStorageFault(err):
		return metrics.ResultStorageError
	case errors.Is(err, domainerrors.ErrAccountAlreadyExists):
		return metrics.ResultDuplicate
	case errors.Is(err, domainerrors.ErrPasswordHashFailed):
		return metrics.ResultHashError
	default:
		return metrics.ResultStorageError
	}
}
