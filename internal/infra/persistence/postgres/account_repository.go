// Package postgres contains the account store backed by GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"pizarra/internal/domain/entity"
	domainerrors "pizarra/internal/domain/errors"
	"pizarra/internal/domain/repository"
	"pizarra/internal/errors"
	"pizarra/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository returns the PostgreSQL implementation of repository.AccountRepository.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// FindByUsername looks the account up by exact username. With replicas configured
// the read is served by a replica and may briefly lag a registration on the primary.
func (repo *accountRepository) FindByUsername(ctx context.Context, username string) (*entity.Account, error) {
	var accountM model.AccountModel

	err := repo.db.WithContext(ctx).
		Where("username = ?", username).
		Take(&accountM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find account by username")
	}

	return toAccountDomain(&accountM), nil
}

// Create inserts the account on the primary. The unique index on username turns a
// concurrent duplicate into a constraint violation instead of a second row.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	accountM, err := fromAccountDomain(account)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAccountAlreadyExists.WrapMessage("username already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required account information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	account.CreatedAt = accountM.CreatedAt

	return nil
}

func toAccountDomain(data *model.AccountModel) *entity.Account {
	if data == nil {
		return nil
	}

	return &entity.Account{
		Username:     data.Username,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
	}
}

func fromAccountDomain(data *entity.Account) (*model.AccountModel, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate account id")
	}

	createdAt := data.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	return &model.AccountModel{
		ID:           id,
		Username:     data.Username,
		PasswordHash: data.PasswordHash,
		CreatedAt:    createdAt,
	}, nil
}
