package service

import "learning-app-backend/internal/models"

// UserStore is the slice of the credential store the lifecycle
// services need for user rows.
type UserStore interface {
	FindByEmail(email string) (*models.User, error)
	Create(user *models.User) error
	Save(user *models.User) error
}

// TokenStore is the slice of the credential store the lifecycle
// services need for token rows.
type TokenStore interface {
	FindByTokenString(tokenString string) (*models.Token, error)
	FindValidByUserID(userID uint) ([]models.Token, error)
	Create(token *models.Token) error
	Revoke(tokens []models.Token) error
}

// AuditStore records auth events; failures are never surfaced.
type AuditStore interface {
	CreateAuditLog(userID *uint, action, details string) error
}

// Notifier dispatches a confirmation token to a user's email.
type Notifier interface {
	SendConfirmationMail(to, token string) error
}
