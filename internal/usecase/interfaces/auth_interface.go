package interfaces

import (
	"time"

	"atelie/internal/domain/entities"
)

// ITokenIssuer signs and verifies session tokens.
type ITokenIssuer interface {
	Issue(u entities.User) (token string, expiresAt time.Time, err error)
	Parse(token string) (entities.Actor, error)
}

// IPasswordHasher hashes and checks user passwords.
type IPasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}
