// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Account is the only entity of the service: a username bound to a salted password hash.
// Accounts are written once and never updated or deleted.
type Account struct {
	Username     string    // Unique, case-sensitive login identifier.
	PasswordHash string    // bcrypt hash of the password; never the plaintext.
	CreatedAt    time.Time // Set when the account is inserted and immutable afterwards.
}
