package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/yigit/tnp/internal/app/models"
	"github.com/yigit/tnp/internal/app/models/dto"
	"github.com/yigit/tnp/internal/app/repositories"
	"github.com/yigit/tnp/internal/domain"
	"github.com/yigit/tnp/internal/pkg/apperrors"
)

// JobService defines job listing management and eligibility filtering
type JobService interface {
	CreateJob(ctx context.Context, req *dto.CreateJobRequest) (*models.JobListing, error)
	GetJob(ctx context.Context, id uuid.UUID) (*models.JobListing, error)
	ListJobs(ctx context.Context, filter repositories.JobFilter) ([]*models.JobListing, error)
	UpdateJob(ctx context.Context, id uuid.UUID, req *dto.UpdateJobRequest) (*models.JobListing, error)
	DeleteJob(ctx context.Context, id uuid.UUID) error
	FilterJobs(ctx context.Context, studentID uuid.UUID, query dto.JobFilterQuery) ([]*models.JobListing, error)
}

type jobServiceImpl struct {
	jobRepo     repositories.IJobRepository
	companyRepo repositories.ICompanyRepository
	studentRepo repositories.IStudentRepository
}

// NewJobService creates a new JobService
func NewJobService(
	jobRepo repositories.IJobRepository,
	companyRepo repositories.ICompanyRepository,
	studentRepo repositories.IStudentRepository,
) JobService {
	return &jobServiceImpl{
		jobRepo:     jobRepo,
		companyRepo: companyRepo,
		studentRepo: studentRepo,
	}
}

func eligibilityFromRequest(req dto.EligibilityRequest) (*models.JobEligibility, error) {
	e := &models.JobEligibility{
		Branches:        make([]models.Branch, 0, len(req.Branches)),
		GraduationYears: append([]int{}, req.GraduationYears...),
		MinCGPA:         req.MinCGPA,
	}
	for _, b := range req.Branches {
		branch := models.ParseBranch(b)
		if !branch.Valid() {
			return nil, apperrors.NewValidationError("eligibility.branches", fmt.Sprintf("unknown branch %q", b))
		}
		e.Branches = append(e.Branches, branch)
	}
	if e.MinCGPA != nil && (*e.MinCGPA < 0 || *e.MinCGPA > 10) {
		return nil, apperrors.NewValidationError("eligibility.minCgpa", "minCgpa must be between 0 and 10")
	}
	return e, nil
}

// CreateJob stores a listing and its eligibility. The company name is copied
// onto the listing at creation time.
func (s *jobServiceImpl) CreateJob(ctx context.Context, req *dto.CreateJobRequest) (*models.JobListing, error) {
	companyID, err := uuid.Parse(req.CompanyID)
	if err != nil {
		return nil, apperrors.NewValidationError("companyId", "companyId must be a valid UUID")
	}

	jobType := models.JobType(req.JobType)
	if !jobType.Valid() {
		return nil, apperrors.NewValidationError("jobType", "invalid job type")
	}
	status := models.JobStatusOpen
	if req.Status != "" {
		status = models.JobStatus(req.Status)
		if !status.Valid() {
			return nil, apperrors.NewValidationError("status", "invalid job status")
		}
	}

	eligibility, err := eligibilityFromRequest(req.Eligibility)
	if err != nil {
		return nil, err
	}

	company, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	job := &models.JobListing{
		CompanyID:   company.ID,
		CompanyName: company.Name,
		JobTitle:    strings.TrimSpace(req.JobTitle),
		JobType:     jobType,
		Description: req.Description,
		TestLink:    req.TestLink,
		Status:      status,
		Eligibility: eligibility,
	}
	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, fmt.Errorf("create job: %w", err)
	}
	return job, nil
}

func (s *jobServiceImpl) GetJob(ctx context.Context, id uuid.UUID) (*models.JobListing, error) {
	return s.jobRepo.GetByID(ctx, id)
}

func (s *jobServiceImpl) ListJobs(ctx context.Context, filter repositories.JobFilter) ([]*models.JobListing, error) {
	jobs, err := s.jobRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	if jobs == nil {
		jobs = []*models.JobListing{}
	}
	return jobs, nil
}

// UpdateJob applies a partial update. A supplied eligibility block replaces
// the stored criteria.
func (s *jobServiceImpl) UpdateJob(ctx context.Context, id uuid.UUID, req *dto.UpdateJobRequest) (*models.JobListing, error) {
	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	setIfPresent(&job.JobTitle, strings.TrimSpace(req.JobTitle))
	setIfPresent(&job.Description, req.Description)
	if req.JobType != "" {
		t := models.JobType(req.JobType)
		if !t.Valid() {
			return nil, apperrors.NewValidationError("jobType", "invalid job type")
		}
		job.JobType = t
	}
	if req.Status != "" {
		st := models.JobStatus(req.Status)
		if !st.Valid() {
			return nil, apperrors.NewValidationError("status", "invalid job status")
		}
		job.Status = st
	}
	if req.TestLink != nil {
		job.TestLink = req.TestLink
	}
	if req.Eligibility != nil {
		eligibility, err := eligibilityFromRequest(*req.Eligibility)
		if err != nil {
			return nil, err
		}
		eligibility.ID = job.EligibilityID
		job.Eligibility = eligibility
	}

	if err := s.jobRepo.Update(ctx, job); err != nil {
		return nil, fmt.Errorf("update job: %w", err)
	}
	return job, nil
}

func (s *jobServiceImpl) DeleteJob(ctx context.Context, id uuid.UUID) error {
	return s.jobRepo.Delete(ctx, id)
}

// FilterJobs returns the open jobs the student is eligible for. Query values
// override the matching fields of the stored profile.
func (s *jobServiceImpl) FilterJobs(ctx context.Context, studentID uuid.UUID, query dto.JobFilterQuery) ([]*models.JobListing, error) {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	profile := domain.ProfileOf(student)
	if query.Branch != "" {
		profile.Branch = models.ParseBranch(query.Branch)
	}
	if query.GraduationYear != nil {
		profile.GraduationYear = *query.GraduationYear
	}
	if query.CGPA != nil {
		profile.CGPA = query.CGPA
	}

	jobs, err := s.jobRepo.List(ctx, repositories.JobFilter{Status: models.JobStatusOpen})
	if err != nil {
		return nil, fmt.Errorf("filter jobs: %w", err)
	}
	return domain.FilterEligibleJobs(jobs, profile), nil
}
