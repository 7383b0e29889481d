package models

import (
	"time"

	"github.com/google/uuid"
)

// JobEligibility holds the criteria a student must meet for a job.
// Empty Branches or GraduationYears mean "no restriction", a nil MinCGPA too.
type JobEligibility struct {
	ID              uuid.UUID `json:"id" db:"id"`
	Branches        []Branch  `json:"branches" db:"branches"`
	GraduationYears []int     `json:"graduationYears" db:"graduation_years"`
	MinCGPA         *float64  `json:"minCgpa,omitempty" db:"min_cgpa"`
}

// JobListing is a posted job. CompanyName is denormalised from Company at creation.
type JobListing struct {
	ID            uuid.UUID       `json:"id" db:"id"`
	CompanyID     uuid.UUID       `json:"companyId" db:"company_id"`
	CompanyName   string          `json:"companyName" db:"company_name"`
	JobTitle      string          `json:"jobTitle" db:"job_title"`
	JobType       JobType         `json:"jobType" db:"job_type"`
	Description   string          `json:"description" db:"description"`
	TestLink      *string         `json:"testLink,omitempty" db:"test_link"`
	Status        JobStatus       `json:"status" db:"status"`
	EligibilityID uuid.UUID       `json:"eligibilityId" db:"eligibility_id"`
	Eligibility   *JobEligibility `json:"eligibility,omitempty"`
	CreatedAt     time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time       `json:"updatedAt" db:"updated_at"`
}
