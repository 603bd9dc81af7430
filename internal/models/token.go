package models

// TokenTypeBearer is the only token type issued; confirmation and
// session tokens share one mechanism.
const TokenTypeBearer = "bearer"

// Token represents the tokens table. Tokens are never deleted; a
// revoked token has both Expired and Disabled set true.
type Token struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	TokenString string `gorm:"uniqueIndex;not null;size:512;column:token_string" json:"-"`
	Type        string `gorm:"not null;size:20;default:'bearer'" json:"type"`
	UserID      uint   `gorm:"not null;index" json:"user_id"`
	Expired     bool   `gorm:"default:false" json:"expired"`
	Disabled    bool   `gorm:"default:false" json:"disabled"`
	User        User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName specifies the table name for Token model
func (Token) TableName() string {
	return "tokens"
}
