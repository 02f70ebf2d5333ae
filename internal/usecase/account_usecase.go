// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
)

// --- Input DTOs ---

// CredentialsInput carries a username and plaintext password as received from a client.
type CredentialsInput struct {
	Username string
	Password string
}

// AccountUsecase defines the credential operations the request surface depends on.
type AccountUsecase interface {
	// RegisterAccount creates an account and reports why it could not: ErrAccountAlreadyExists,
	// a storage fault or a hashing fault. Lengths are validated by the caller.
	RegisterAccount(ctx context.Context, input CredentialsInput) error

	// Register creates an account for username and reports whether it was created.
	// A taken username and any internal fault both yield false.
	Register(ctx context.Context, username, password string) bool

	// Verify reports whether password matches the stored hash for username.
	// Unknown usernames, wrong passwords and storage faults all yield false.
	Verify(ctx context.Context, username, password string) bool
}
