package dto

// EligibilityRequest is the eligibility block of a job request
type EligibilityRequest struct {
	Branches        []string `json:"branches" binding:"omitempty,dive,branch"`
	GraduationYears []int    `json:"graduationYears" binding:"omitempty,dive,min=2000,max=2100"`
	MinCGPA         *float64 `json:"minCgpa" binding:"omitempty,min=0,max=10"`
}

// CreateJobRequest represents job listing creation data
type CreateJobRequest struct {
	CompanyID   string             `json:"companyId" binding:"required,uuid"`
	JobTitle    string             `json:"jobTitle" binding:"required"`
	JobType     string             `json:"jobType" binding:"required,jobtype"`
	Description string             `json:"description" binding:"required"`
	TestLink    *string            `json:"testLink" binding:"omitempty,url"`
	Status      string             `json:"status" binding:"omitempty,jobstatus"`
	Eligibility EligibilityRequest `json:"eligibility"`
}

// UpdateJobRequest represents a partial job update. A non-nil Eligibility
// replaces the stored criteria as a whole.
type UpdateJobRequest struct {
	JobTitle    string              `json:"jobTitle"`
	JobType     string              `json:"jobType" binding:"omitempty,jobtype"`
	Description string              `json:"description"`
	TestLink    *string             `json:"testLink" binding:"omitempty,url"`
	Status      string              `json:"status" binding:"omitempty,jobstatus"`
	Eligibility *EligibilityRequest `json:"eligibility"`
}

// JobFilterQuery is the query string of GET /jobs/filter. Absent values fall
// back to the caller's stored profile.
type JobFilterQuery struct {
	Branch         string   `form:"branch" binding:"omitempty,branch"`
	CGPA           *float64 `form:"cgpa" binding:"omitempty,min=0,max=10"`
	GraduationYear *int     `form:"graduationYear" binding:"omitempty,min=2000,max=2100"`
}
