package dto

// CreateCompanyRequest represents company creation data
type CreateCompanyRequest struct {
	Name          string `json:"name" binding:"required"`
	Description   string `json:"description" binding:"required"`
	Industry      string `json:"industry" binding:"required"`
	Website       string `json:"website" binding:"required,url"`
	ContactPerson string `json:"contactPerson" binding:"required"`
	ContactEmail  string `json:"contactEmail" binding:"required,email"`
}

// UpdateCompanyRequest represents company update data; empty fields are kept.
type UpdateCompanyRequest struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	Industry      string `json:"industry"`
	Website       string `json:"website" binding:"omitempty,url"`
	ContactPerson string `json:"contactPerson"`
	ContactEmail  string `json:"contactEmail" binding:"omitempty,email"`
}
