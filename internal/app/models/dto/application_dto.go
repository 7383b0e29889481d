package dto

// ApplyRequest represents a job application. StudentID defaults to the caller.
type ApplyRequest struct {
	StudentID string `json:"studentId" binding:"omitempty,uuid"`
	JobID     string `json:"jobId" binding:"required,uuid"`
}

// CreateApplicationRequest is the admin variant where both ids are mandatory
type CreateApplicationRequest struct {
	StudentID string `json:"studentId" binding:"required,uuid"`
	JobID     string `json:"jobId" binding:"required,uuid"`
}

// UpdateApplicationStatusRequest carries the target status. The enum is
// checked by the state machine so an unknown value is reported as invalid status.
type UpdateApplicationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
