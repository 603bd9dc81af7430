package service

import (
	"errors"
	"fmt"

	"learning-app-backend/internal/repository"
	"learning-app-backend/pkg/utils"
)

// Authenticator checks an email/password pair. The session lifecycle
// delegates the credential check here rather than reading password
// hashes itself.
type Authenticator interface {
	Authenticate(email, password string) error
}

// PasswordAuthenticator verifies credentials against stored bcrypt hashes.
type PasswordAuthenticator struct {
	users UserStore
}

func NewPasswordAuthenticator(users UserStore) *PasswordAuthenticator {
	return &PasswordAuthenticator{users: users}
}

// Authenticate returns ErrInvalidCredentials when the email is
// unknown, the account is disabled, or the password does not match;
// the three cases are indistinguishable to the caller. The enabled
// check runs before the password compare, so a logged-out or
// still-pending account cannot open a session until it is
// (re-)confirmed.
func (a *PasswordAuthenticator) Authenticate(email, password string) error {
	user, err := a.users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrInvalidCredentials
		}
		return fmt.Errorf("failed to look up user: %w", err)
	}

	if !user.Enabled {
		return ErrInvalidCredentials
	}

	if !utils.ComparePassword(user.PasswordHash, password) {
		return ErrInvalidCredentials
	}

	return nil
}
