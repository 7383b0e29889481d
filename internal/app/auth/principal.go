package auth

import (
	"github.com/google/uuid"
	"github.com/yigit/tnp/internal/app/models"
	"github.com/yigit/tnp/internal/domain"
)

// Principal is the authenticated caller of a request.
type Principal struct {
	ID    uuid.UUID
	Role  models.RoleType
	Email string
	// Branch and GraduationYear are only set for students.
	Branch         models.Branch
	GraduationYear int
}

// IsAdmin reports whether the principal acts for the placement office
func (p *Principal) IsAdmin() bool {
	return p != nil && p.Role == models.RoleAdmin
}

// IsStudent reports whether the principal is a student
func (p *Principal) IsStudent() bool {
	return p != nil && p.Role == models.RoleStudent
}

// Profile returns the audience-matching profile carried by the token. CGPA is
// not part of the token; callers that need it load the stored student.
func (p *Principal) Profile() domain.Profile {
	return domain.Profile{
		Branch:         p.Branch,
		GraduationYear: p.GraduationYear,
	}
}
