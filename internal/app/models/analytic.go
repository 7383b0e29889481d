package models

import (
	"time"

	"github.com/google/uuid"
)

// Analytic holds hiring counters for one job listing
type Analytic struct {
	ID              uuid.UUID `json:"id" db:"id"`
	JobID           uuid.UUID `json:"jobId" db:"job_id"`
	CompanyID       uuid.UUID `json:"companyId" db:"company_id"`
	TotalApplicants int       `json:"totalApplicants" db:"total_applicants"`
	Shortlisted     int       `json:"shortlisted" db:"shortlisted"`
	Selected        int       `json:"selected" db:"selected"`
	Rejected        int       `json:"rejected" db:"rejected"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time `json:"updatedAt" db:"updated_at"`
}
