package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"password,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Sanitized returns a copy safe to return to clients.
func (u User) Sanitized() User {
	u.PasswordHash = ""
	return u
}
