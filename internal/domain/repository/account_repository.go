// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"pizarra/internal/domain/entity"
)

// ErrAccountNotFound is returned when no account matches the requested username.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository defines the persistence operations for accounts.
// Accounts are write-once, so there is no update or delete.
type AccountRepository interface {
	// FindByUsername retrieves an account by exact, case-sensitive username match.
	// It returns ErrAccountNotFound when the username is unknown.
	FindByUsername(ctx context.Context, username string) (*entity.Account, error)

	// Create inserts a new account. Implementations must enforce username uniqueness
	// atomically and return domainerrors.ErrAccountAlreadyExists on conflict.
	Create(ctx context.Context, account *entity.Account) error
}
