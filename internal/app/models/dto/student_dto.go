package dto

import (
	"time"

	"github.com/yigit/tnp/internal/app/models"
)

// StudentResponse is the public view of a student profile
type StudentResponse struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	RegNo            string    `json:"regNo"`
	Email            string    `json:"email"`
	Role             string    `json:"role"`
	Branch           string    `json:"branch"`
	GraduationYear   int       `json:"graduationYear"`
	CGPA             *float64  `json:"cgpa"`
	ActiveBacklog    *int      `json:"activeBacklog"`
	Phone            *string   `json:"phone"`
	ProfileImg       *string   `json:"profileImg"`
	ProfileCompleted bool      `json:"profileCompleted"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// UpdateStudentProfileRequest carries the fields a student may fill in later.
// Nil fields are left untouched.
type UpdateStudentProfileRequest struct {
	CGPA          *float64 `json:"cgpa" binding:"omitempty,min=0,max=10"`
	ActiveBacklog *int     `json:"activeBacklog" binding:"omitempty,min=0"`
	Phone         *string  `json:"phone" binding:"omitempty,min=10,max=15"`
}

// FromStudent converts a models.Student to a StudentResponse
func FromStudent(s *models.Student) StudentResponse {
	return StudentResponse{
		ID:               s.ID.String(),
		Name:             s.Name,
		RegNo:            s.RegNo,
		Email:            s.Email,
		Role:             string(models.RoleStudent),
		Branch:           string(s.Branch),
		GraduationYear:   s.GraduationYear,
		CGPA:             s.CGPA,
		ActiveBacklog:    s.ActiveBacklog,
		Phone:            s.Phone,
		ProfileImg:       s.ProfileImg,
		ProfileCompleted: s.ProfileCompleted(),
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}
