package models

import (
	"time"

	"github.com/google/uuid"
)

// Admin defines the placement office account stored in the 'admins' table
type Admin struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Password  string    `json:"-" db:"password"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
