package dto

import (
	"time"

	"github.com/yigit/tnp/internal/app/models"
)

// AdminResponse is the public view of an admin
type AdminResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// FromAdmin converts a models.Admin to an AdminResponse
func FromAdmin(a *models.Admin) AdminResponse {
	return AdminResponse{
		ID:        a.ID.String(),
		Name:      a.Name,
		Email:     a.Email,
		Role:      string(models.RoleAdmin),
		CreatedAt: a.CreatedAt,
	}
}
