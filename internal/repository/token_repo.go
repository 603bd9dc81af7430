package repository

import (
	"errors"

	"learning-app-backend/internal/models"

	"gorm.io/gorm"
)

type TokenRepository struct {
	db *gorm.DB
}

func NewTokenRepo(db *gorm.DB) *TokenRepository {
	return &TokenRepository{db: db}
}

// FindByTokenString finds a token record by its token string,
// preloading the owning user.
func (r *TokenRepository) FindByTokenString(tokenString string) (*models.Token, error) {
	var token models.Token
	err := r.db.Where("token_string = ?", tokenString).
		Preload("User").
		First(&token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &token, nil
}

// FindValidByUserID returns the tokens for a user that are not yet
// fully revoked. A token counts as valid here while either flag is
// still false.
func (r *TokenRepository) FindValidByUserID(userID uint) ([]models.Token, error) {
	var tokens []models.Token
	err := r.db.Where("user_id = ? AND (expired = ? OR disabled = ?)", userID, false, false).
		Find(&tokens).Error
	if err != nil {
		return nil, err
	}
	return tokens, nil
}

// Create inserts a new token record
func (r *TokenRepository) Create(token *models.Token) error {
	return r.db.Create(token).Error
}

// Save persists changes to an existing token record
func (r *TokenRepository) Save(token *models.Token) error {
	return r.db.Save(token).Error
}

// Revoke sets both revocation flags on the given tokens as a single
// batch update, keeping the race window of concurrent logins small.
func (r *TokenRepository) Revoke(tokens []models.Token) error {
	if len(tokens) == 0 {
		return nil
	}

	ids := make([]uint, 0, len(tokens))
	for _, t := range tokens {
		ids = append(ids, t.ID)
	}

	return r.db.Model(&models.Token{}).
		Where("id IN ?", ids).
		Updates(map[string]interface{}{"expired": true, "disabled": true}).Error
}
