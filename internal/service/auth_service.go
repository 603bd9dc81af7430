package service

import (
	"errors"
	"fmt"

	"learning-app-backend/internal/models"
	"learning-app-backend/internal/repository"
	"learning-app-backend/pkg/utils"
)

// AuthService implements the account and session lifecycles: a user
// goes unregistered -> pending (disabled, holding a live confirmation
// token) -> active (enabled), and each login rotates the bearer token
// by revoking every previously valid one.
type AuthService struct {
	users         UserStore
	tokens        TokenStore
	audit         AuditStore
	notifier      Notifier
	authenticator Authenticator
}

func NewAuthService(users UserStore, tokens TokenStore, audit AuditStore, notifier Notifier, authenticator Authenticator) *AuthService {
	return &AuthService{
		users:         users,
		tokens:        tokens,
		audit:         audit,
		notifier:      notifier,
		authenticator: authenticator,
	}
}

// EnabledStatus reports the outcome of an enabled-account probe,
// distinguishing not-found from found-but-disabled.
type EnabledStatus struct {
	Found   bool
	Enabled bool
}

// IsUserEnabled is a read-only probe of an account's confirmation state.
func (s *AuthService) IsUserEnabled(email string) (EnabledStatus, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return EnabledStatus{}, nil
		}
		return EnabledStatus{}, fmt.Errorf("failed to look up user: %w", err)
	}

	return EnabledStatus{Found: true, Enabled: user.Enabled}, nil
}

// Register creates a pending account and emails a confirmation token.
// Re-registering an unconfirmed email overwrites the name and password
// and sends a fresh token; prior tokens are deliberately left alone on
// this path (only resend, confirm and login revoke). Registering an
// already confirmed email is rejected.
func (s *AuthService) Register(firstName, lastName, email, password string) error {
	existing, err := s.users.FindByEmail(email)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("failed to look up user: %w", err)
	}

	if existing != nil {
		if existing.Enabled {
			return ErrAlreadyConfirmed
		}
		return s.reregister(existing, firstName, lastName, password)
	}

	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PasswordHash: passwordHash,
		Enabled:      false,
		Role:         models.RoleUser,
	}

	if err := s.users.Create(user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	if err := s.issueConfirmationToken(user); err != nil {
		return err
	}

	_ = s.audit.CreateAuditLog(&user.ID, "user_registration", fmt.Sprintf("User %s registered", email))

	return nil
}

// reregister overwrites a pending account's details and re-mints its token
func (s *AuthService) reregister(user *models.User, firstName, lastName, password string) error {
	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user.FirstName = firstName
	user.LastName = lastName
	user.PasswordHash = passwordHash

	if err := s.users.Save(user); err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	if err := s.issueConfirmationToken(user); err != nil {
		return err
	}

	_ = s.audit.CreateAuditLog(&user.ID, "user_reregistration", fmt.Sprintf("User %s re-registered", user.Email))

	return nil
}

// ConfirmAccount enables the account owning the token and revokes all
// of the user's still-valid tokens. The token-flag check runs before
// the enabled check, so replaying a consumed token reports an invalid
// token rather than an already confirmed account.
func (s *AuthService) ConfirmAccount(tokenString string) error {
	token, err := s.tokens.FindByTokenString(tokenString)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrInvalidOrExpiredToken
		}
		return fmt.Errorf("failed to look up token: %w", err)
	}

	// Either flag alone is enough to reject.
	if token.Expired || token.Disabled {
		return ErrInvalidOrExpiredToken
	}

	user := token.User
	if user.Enabled {
		return ErrAlreadyConfirmed
	}

	user.Enabled = true
	if err := s.users.Save(&user); err != nil {
		return fmt.Errorf("failed to enable user: %w", err)
	}

	if err := s.revokeAllUserTokens(user.ID); err != nil {
		return err
	}

	_ = s.audit.CreateAuditLog(&user.ID, "account_confirmed", fmt.Sprintf("Account confirmed for %s", user.Email))

	return nil
}

// ResendConfirmationEmail revokes the user's valid tokens and sends a
// fresh confirmation token.
func (s *AuthService) ResendConfirmationEmail(email string) error {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to look up user: %w", err)
	}

	if user.Enabled {
		return ErrAlreadyConfirmed
	}

	if err := s.revokeAllUserTokens(user.ID); err != nil {
		return err
	}

	if err := s.issueConfirmationToken(user); err != nil {
		return err
	}

	_ = s.audit.CreateAuditLog(&user.ID, "confirmation_resent", fmt.Sprintf("Confirmation email resent to %s", email))

	return nil
}

// Login verifies credentials, rotates the user's bearer token and
// returns the fresh one. Old tokens are revoked before the new one is
// saved so the sweep can never catch it.
func (s *AuthService) Login(email, password string) (string, error) {
	if err := s.authenticator.Authenticate(email, password); err != nil {
		return "", err
	}

	user, err := s.users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// The authenticator accepted credentials for a user that no
			// longer exists; surfaced as an unexpected fault.
			return "", fmt.Errorf("user disappeared after authentication: %w", err)
		}
		return "", fmt.Errorf("failed to look up user: %w", err)
	}

	tokenString, err := utils.GenerateToken(user.Email)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	if err := s.revokeAllUserTokens(user.ID); err != nil {
		return "", err
	}

	if err := s.saveUserToken(user, tokenString); err != nil {
		return "", err
	}

	_ = s.audit.CreateAuditLog(&user.ID, "user_login", fmt.Sprintf("User %s logged in", email))

	return tokenString, nil
}

// Logout revokes the presented token and disables the owning account.
// Disabling on logout is a deliberate policy carried over from the
// product: logging back in requires the account to be re-confirmed.
func (s *AuthService) Logout(tokenString string) error {
	token, err := s.tokens.FindByTokenString(tokenString)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrInvalidToken
		}
		return fmt.Errorf("failed to look up token: %w", err)
	}

	if err := s.tokens.Revoke([]models.Token{*token}); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}

	user := token.User
	user.Enabled = false
	if err := s.users.Save(&user); err != nil {
		return fmt.Errorf("failed to disable user: %w", err)
	}

	_ = s.audit.CreateAuditLog(&user.ID, "user_logout", fmt.Sprintf("User %s logged out", user.Email))

	return nil
}

// VerifyToken reports whether a token's claims check out: subject
// matches an existing user and the embedded expiry has not elapsed.
// Store-level revocation flags are intentionally not consulted here, so
// a store-revoked token keeps verifying until its short expiry passes;
// only confirm, resend and login read the flags. Negative outcomes are
// results, not errors.
func (s *AuthService) VerifyToken(tokenString string) (bool, error) {
	expired, err := utils.IsTokenExpired(tokenString)
	if err != nil {
		// Malformed or forged tokens simply fail verification.
		return false, nil
	}
	if expired {
		return false, nil
	}

	subject, err := utils.SubjectFromToken(tokenString)
	if err != nil {
		return false, nil
	}

	user, err := s.users.FindByEmail(subject)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to look up user: %w", err)
	}

	valid, err := utils.IsTokenValid(tokenString, user.Email)
	if err != nil {
		return false, nil
	}

	return valid, nil
}

// issueConfirmationToken mints a token, persists it and emails it
func (s *AuthService) issueConfirmationToken(user *models.User) error {
	tokenString, err := utils.GenerateToken(user.Email)
	if err != nil {
		return fmt.Errorf("failed to generate token: %w", err)
	}

	if err := s.saveUserToken(user, tokenString); err != nil {
		return err
	}

	if err := s.notifier.SendConfirmationMail(user.Email, tokenString); err != nil {
		return fmt.Errorf("failed to send confirmation mail: %w", err)
	}

	return nil
}

// saveUserToken persists a freshly minted token with both flags clear
func (s *AuthService) saveUserToken(user *models.User, tokenString string) error {
	token := &models.Token{
		TokenString: tokenString,
		Type:        models.TokenTypeBearer,
		UserID:      user.ID,
		Expired:     false,
		Disabled:    false,
	}

	if err := s.tokens.Create(token); err != nil {
		return fmt.Errorf("failed to store token: %w", err)
	}

	return nil
}

// revokeAllUserTokens flips both flags on every still-valid token for
// the user in one batch write. An empty set is a no-op.
func (s *AuthService) revokeAllUserTokens(userID uint) error {
	valid, err := s.tokens.FindValidByUserID(userID)
	if err != nil {
		return fmt.Errorf("failed to list valid tokens: %w", err)
	}

	if len(valid) == 0 {
		return nil
	}

	if err := s.tokens.Revoke(valid); err != nil {
		return fmt.Errorf("failed to revoke tokens: %w", err)
	}

	return nil
}
