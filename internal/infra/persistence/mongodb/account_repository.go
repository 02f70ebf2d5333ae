package mongodb

import (
	"context"
	"time"

	"pizarra/internal/domain/entity"
	domainerrors "pizarra/internal/domain/errors"
	"pizarra/internal/domain/repository"
	"pizarra/internal/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// accountDocument is the stored shape of an account.
type accountDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Username  string             `bson:"username"`
	Password  string             `bson:"password"` // bcrypt hash
	CreatedAt time.Time          `bson:"createdAt"`
}

type accountRepository struct {
	collection *mongo.Collection
}

// NewAccountRepository returns the MongoDB implementation of repository.AccountRepository.
func NewAccountRepository(collection *mongo.Collection) repository.AccountRepository {
	return &accountRepository{collection: collection}
}

func (repo *accountRepository) FindByUsername(ctx context.Context, username string) (*entity.Account, error) {
	var doc accountDocument

	err := repo.collection.FindOne(ctx, bson.D{{Key: "username", Value: username}}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find account by username")
	}

	return toAccountDomain(&doc), nil
}

func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	doc := fromAccountDomain(account)

	if _, err := repo.collection.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domainerrors.ErrAccountAlreadyExists.WrapMessage("username already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	account.CreatedAt = doc.CreatedAt

	return nil
}

func toAccountDomain(doc *accountDocument) *entity.Account {
	return &entity.Account{
		Username:     doc.Username,
		PasswordHash: doc.Password,
		CreatedAt:    doc.CreatedAt,
	}
}

func fromAccountDomain(account *entity.Account) *accountDocument {
	createdAt := account.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	return &accountDocument{
		Username: account.Username,
		Password: account.PasswordHash,
		// BSON dates carry millisecond precision.
		CreatedAt: createdAt.Truncate(time.Millisecond),
	}
}
