package dto

// CreateAnalyticRequest represents analytic creation data
type CreateAnalyticRequest struct {
	JobID           string `json:"jobId" binding:"required,uuid"`
	CompanyID       string `json:"companyId" binding:"required,uuid"`
	TotalApplicants int    `json:"totalApplicants" binding:"min=0"`
	Shortlisted     int    `json:"shortlisted" binding:"min=0"`
	Selected        int    `json:"selected" binding:"min=0"`
	Rejected        int    `json:"rejected" binding:"min=0"`
}

// UpdateAnalyticRequest replaces the counters of an analytic. Nil fields are kept.
type UpdateAnalyticRequest struct {
	TotalApplicants *int `json:"totalApplicants" binding:"omitempty,min=0"`
	Shortlisted     *int `json:"shortlisted" binding:"omitempty,min=0"`
	Selected        *int `json:"selected" binding:"omitempty,min=0"`
	Rejected        *int `json:"rejected" binding:"omitempty,min=0"`
}
