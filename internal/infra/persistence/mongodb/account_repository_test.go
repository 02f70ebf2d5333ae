package mongodb

import (
	"testing"
	"time"

	"pizarra/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestFromAccountDomain(t *testing.T) {
	createdAt := time.Date(2024, 5, 1, 12, 0, 0, 123456789, time.UTC)

	doc := fromAccountDomain(&entity.Account{Username: "alice", PasswordHash: "hash", CreatedAt: createdAt})

	assert.Equal(t, "alice", doc.Username)
	assert.Equal(t, "hash", doc.Password)
	assert.Equal(t, createdAt.Truncate(time.Millisecond), doc.CreatedAt)
	assert.True(t, doc.ID.IsZero())
}

func TestFromAccountDomain_SetsCreatedAt(t *testing.T) {
	doc := fromAccountDomain(&entity.Account{Username: "alice", PasswordHash: "hash"})

	assert.False(t, doc.CreatedAt.IsZero())
}

func TestAccountDocument_FieldNames(t *testing.T) {
	raw, err := bson.Marshal(fromAccountDomain(&entity.Account{Username: "alice", PasswordHash: "hash"}))
	assert.NoError(t, err)

	var fields bson.M
	assert.NoError(t, bson.Unmarshal(raw, &fields))
	assert.Equal(t, "alice", fields["username"])
	assert.Equal(t, "hash", fields["password"])
	assert.Contains(t, fields, "createdAt")
	assert.NotContains(t, fields, "_id")
}
