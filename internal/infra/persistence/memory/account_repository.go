// Package memory contains a process-local account store for development and tests.
// Accounts are lost when the process exits.
package memory

import (
	"context"
	"sync"
	"time"

	"pizarra/internal/domain/entity"
	domainerrors "pizarra/internal/domain/errors"
	"pizarra/internal/domain/repository"
)

type accountRepository struct {
	mu       sync.RWMutex
	accounts map[string]entity.Account
}

// NewAccountRepository returns an empty in-memory repository.AccountRepository.
func NewAccountRepository() repository.AccountRepository {
	return &accountRepository{accounts: make(map[string]entity.Account)}
}

func (repo *accountRepository) FindByUsername(ctx context.Context, username string) (*entity.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find account by username")
	}

	repo.mu.RLock()
	account, ok := repo.accounts[username]
	repo.mu.RUnlock()

	if !ok {
		return nil, repository.ErrAccountNotFound
	}

	return &account, nil
}

// Create checks and inserts under one lock, so at most one caller wins a username.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	if err := ctx.Err(); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	if account.CreatedAt.IsZero() {
		account.CreatedAt = time.Now().UTC()
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, exists := repo.accounts[account.Username]; exists {
		return domainerrors.ErrAccountAlreadyExists.WrapMessage("username already exists")
	}
	repo.accounts[account.Username] = *account

	return nil
}
