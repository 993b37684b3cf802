// Package auth authenticates the single lender account. There is no user
// registry: the lender proves possession of a configured passphrase and
// receives a short-lived session token for recording payments.
package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid passphrase")
)

// PassphraseAuthenticator verifies the lender passphrase against a bcrypt
// hash supplied in configuration.
type PassphraseAuthenticator struct {
	hash []byte
}

// NewPassphraseAuthenticator creates an authenticator for the given bcrypt hash.
func NewPassphraseAuthenticator(bcryptHash string) *PassphraseAuthenticator {
	return &PassphraseAuthenticator{hash: []byte(bcryptHash)}
}

// Authenticate checks the passphrase against the configured hash.
func (a *PassphraseAuthenticator) Authenticate(passphrase string) error {
	if err := bcrypt.CompareHashAndPassword(a.hash, []byte(passphrase)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}
