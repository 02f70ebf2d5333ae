//go:build integration

package mongodb

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"pizarra/config"
	"pizarra/internal/domain/entity"
	domainerrors "pizarra/internal/domain/errors"
	"pizarra/internal/domain/repository"
	"pizarra/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tcmongodb "github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.uber.org/fx/fxtest"
)

func TestAccountRepository_Integration(t *testing.T) {
	ctx := context.Background()

	container, err := tcmongodb.Run(ctx, "mongo:7")
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	lc := fxtest.NewLifecycle(t)
	collection, err := New(Params{
		Lifecycle: lc,
		Config: &config.Config{Mongo: &config.MongoConfig{
			URI:        uri,
			Database:   "pizarrashop",
			Collection: "users",
		}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)
	lc.RequireStart()
	t.Cleanup(lc.RequireStop)

	repo := NewAccountRepository(collection)

	require.NoError(t, repo.Create(ctx, &entity.Account{Username: "alice", PasswordHash: "$2a$04$hash"}))

	found, err := repo.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "$2a$04$hash", found.PasswordHash)

	_, err = repo.FindByUsername(ctx, "bob")
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)

	err = repo.Create(ctx, &entity.Account{Username: "alice", PasswordHash: "$2a$04$other"})
	assert.True(t, errors.Is(err, domainerrors.ErrAccountAlreadyExists))
}
