package models

import (
	"slices"
	"strings"
)

// RoleType defines the principal role type
type RoleType string

const (
	RoleAdmin   RoleType = "ADMIN"
	RoleStudent RoleType = "STUDENT"
)

// Branch is an academic branch a student belongs to
type Branch string

const (
	BranchCSE Branch = "CSE"
	BranchIT  Branch = "IT"
	BranchECE Branch = "ECE"
	BranchEEE Branch = "EEE"
	BranchME  Branch = "ME"
	BranchCE  Branch = "CE"
)

// ParseBranch maps user input onto a Branch, ignoring case and surrounding space
func ParseBranch(s string) Branch {
	return Branch(strings.ToUpper(strings.TrimSpace(s)))
}

// Branches lists every accepted branch in display order.
var Branches = []Branch{BranchCSE, BranchIT, BranchECE, BranchEEE, BranchME, BranchCE}

// Valid reports whether b is a known branch
func (b Branch) Valid() bool {
	return slices.Contains(Branches, b)
}

// JobType is the engagement type of a job listing
type JobType string

const (
	JobTypeInternship JobType = "INTERNSHIP"
	JobTypeFullTime   JobType = "FULL_TIME"
	JobTypePartTime   JobType = "PART_TIME"
)

// Valid reports whether t is a known job type
func (t JobType) Valid() bool {
	switch t {
	case JobTypeInternship, JobTypeFullTime, JobTypePartTime:
		return true
	}
	return false
}

// JobStatus tells whether a listing accepts applications
type JobStatus string

const (
	JobStatusOpen   JobStatus = "OPEN"
	JobStatusClosed JobStatus = "CLOSED"
)

// Valid reports whether s is a known job status
func (s JobStatus) Valid() bool {
	return s == JobStatusOpen || s == JobStatusClosed
}

// ApplicationStatus is the hiring stage of an application
type ApplicationStatus string

const (
	StatusApplied     ApplicationStatus = "APPLIED"
	StatusShortlisted ApplicationStatus = "SHORTLISTED"
	StatusTest        ApplicationStatus = "TEST"
	StatusInterview   ApplicationStatus = "INTERVIEW"
	StatusAccepted    ApplicationStatus = "ACCEPTED"
	StatusRejected    ApplicationStatus = "REJECTED"
)

// ApplicationStatuses lists every status in pipeline order.
var ApplicationStatuses = []ApplicationStatus{
	StatusApplied, StatusShortlisted, StatusTest, StatusInterview, StatusAccepted, StatusRejected,
}

// Valid reports whether s is a known application status
func (s ApplicationStatus) Valid() bool {
	return slices.Contains(ApplicationStatuses, s)
}

// Audience selects who an announcement is shown to
type Audience string

const (
	AudienceAll    Audience = "ALL"
	AudienceBranch Audience = "BRANCH"
	AudienceBatch  Audience = "BATCH"
)

// Valid reports whether a is a known audience
func (a Audience) Valid() bool {
	switch a {
	case AudienceAll, AudienceBranch, AudienceBatch:
		return true
	}
	return false
}
