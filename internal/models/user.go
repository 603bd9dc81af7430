package models

import "time"

// Roles assignable to a user account.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents the users table. Accounts start disabled and are
// enabled by email confirmation.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	FirstName    string    `gorm:"not null;size:100" json:"first_name"`
	LastName     string    `gorm:"not null;size:100" json:"last_name"`
	Email        string    `gorm:"uniqueIndex;not null;size:255" json:"email"`
	PasswordHash string    `gorm:"not null;size:255" json:"-"`
	Enabled      bool      `gorm:"default:false" json:"enabled"`
	Role         string    `gorm:"type:enum('admin','user');default:'user'" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName specifies the table name for User model
func (User) TableName() string {
	return "users"
}
