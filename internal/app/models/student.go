package models

import (
	"time"

	"github.com/google/uuid"
)

// Student defines the student model based on the 'students' table
type Student struct {
	ID             uuid.UUID `json:"id" db:"id"`
	Name           string    `json:"name" db:"name"`
	RegNo          string    `json:"regNo" db:"reg_no"`
	Email          string    `json:"email" db:"email"`
	Password       string    `json:"-" db:"password"`
	Branch         Branch    `json:"branch" db:"branch"`
	GraduationYear int       `json:"graduationYear" db:"graduation_year"`
	CGPA           *float64  `json:"cgpa,omitempty" db:"cgpa"`
	ActiveBacklog  *int      `json:"activeBacklog,omitempty" db:"active_backlog"`
	Phone          *string   `json:"phone,omitempty" db:"phone"`
	ProfileImg     *string   `json:"profileImg,omitempty" db:"profile_img"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`
}

// ProfileCompleted is derived, never stored: every optional profile field must be set.
func (s *Student) ProfileCompleted() bool {
	return s.CGPA != nil && s.ActiveBacklog != nil && s.Phone != nil && s.ProfileImg != nil
}
