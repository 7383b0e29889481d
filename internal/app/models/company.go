package models

import (
	"time"

	"github.com/google/uuid"
)

// Company represents a recruiter
type Company struct {
	ID            uuid.UUID `json:"id" db:"id"`
	Name          string    `json:"name" db:"name"`
	Description   string    `json:"description" db:"description"`
	Industry      string    `json:"industry" db:"industry"`
	Website       string    `json:"website" db:"website"`
	ContactPerson string    `json:"contactPerson" db:"contact_person"`
	ContactEmail  string    `json:"contactEmail" db:"contact_email"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
}
