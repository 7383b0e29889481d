package models

import (
	"time"

	"github.com/google/uuid"
)

// Application links a student to a job listing; (StudentID, JobID) is unique.
type Application struct {
	ID        uuid.UUID         `json:"id" db:"id"`
	StudentID uuid.UUID         `json:"studentId" db:"student_id"`
	JobID     uuid.UUID         `json:"jobId" db:"job_id"`
	Status    ApplicationStatus `json:"status" db:"status"`
	CreatedAt time.Time         `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time         `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	Job     *JobListing `json:"job,omitempty"`
	Student *Student    `json:"student,omitempty"`
}
