package entity

import (
	"time"
)

// User is the aggregate root for user domain
// Passwords are stored as bcrypt hashes in Password field
type User struct {
	ID        string
	Name      string
	Email     string
	AvatarURL string
	Password  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
