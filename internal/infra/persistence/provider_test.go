package persistence

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"pizarra/config"
	"pizarra/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newParams(t *testing.T, driver string) Params {
	cfg := &config.Config{
		Storage:  config.StorageConfig{Driver: driver},
		Postgres: &config.PostgresConfig{},
		Mongo:    &config.MongoConfig{},
	}

	return Params{
		Lc:     fxtest.NewLifecycle(t),
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestNewAccountRepository_Memory(t *testing.T) {
	repo, err := NewAccountRepository(newParams(t, config.StorageDriverMemory))
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, &entity.Account{Username: "alice", PasswordHash: "hash"}))

	found, err := repo.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "hash", found.PasswordHash)
}

func TestNewAccountRepository_Errors(t *testing.T) {
	tests := []struct {
		name   string
		driver string
	}{
		{name: "postgres without dsn", driver: config.StorageDriverPostgres},
		{name: "mongo without uri", driver: config.StorageDriverMongo},
		{name: "unknown driver", driver: "sqlite"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewAccountRepository(newParams(t, tt.driver))
			assert.Error(t, err)
		})
	}
}
