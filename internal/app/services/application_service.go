package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/yigit/tnp/internal/app/auth"
	"github.com/yigit/tnp/internal/app/models"
	"github.com/yigit/tnp/internal/app/models/dto"
	"github.com/yigit/tnp/internal/app/repositories"
	"github.com/yigit/tnp/internal/domain"
	"github.com/yigit/tnp/internal/pkg/apperrors"
	"github.com/yigit/tnp/internal/pkg/helpers"
)

// ApplicationService defines job applications and their hiring pipeline
type ApplicationService interface {
	Apply(ctx context.Context, principal *auth.Principal, req *dto.ApplyRequest) (*models.Application, error)
	CreateApplication(ctx context.Context, req *dto.CreateApplicationRequest) (*models.Application, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*models.Application, error)
	GetApplication(ctx context.Context, id uuid.UUID) (*models.Application, error)
	ListMine(ctx context.Context, studentID uuid.UUID) ([]*models.Application, error)
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]*models.Application, error)
	List(ctx context.Context, filter repositories.ApplicationFilter, page helpers.Page) ([]*models.Application, int, error)
}

type applicationServiceImpl struct {
	appRepo     repositories.IApplicationRepository
	jobRepo     repositories.IJobRepository
	studentRepo repositories.IStudentRepository
	policy      *auth.AccessPolicy
	transitions domain.TransitionPolicy
	logger      zerolog.Logger
}

// NewApplicationService creates a new ApplicationService
func NewApplicationService(
	appRepo repositories.IApplicationRepository,
	jobRepo repositories.IJobRepository,
	studentRepo repositories.IStudentRepository,
	policy *auth.AccessPolicy,
	transitions domain.TransitionPolicy,
	logger zerolog.Logger,
) ApplicationService {
	return &applicationServiceImpl{
		appRepo:     appRepo,
		jobRepo:     jobRepo,
		studentRepo: studentRepo,
		policy:      policy,
		transitions: transitions,
		logger:      logger.With().Str("service", "application").Logger(),
	}
}

func parseID(field, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperrors.NewValidationError(field, field+" must be a valid UUID")
	}
	return id, nil
}

// Apply submits an application for the calling student. The job has to be
// open and the stored profile has to meet its eligibility.
func (s *applicationServiceImpl) Apply(ctx context.Context, principal *auth.Principal, req *dto.ApplyRequest) (*models.Application, error) {
	if principal == nil {
		return nil, apperrors.NewUnauthorizedError("authentication required")
	}

	studentID := principal.ID
	if req.StudentID != "" {
		id, err := parseID("studentId", req.StudentID)
		if err != nil {
			return nil, err
		}
		studentID = id
	}
	if err := s.policy.AuthorizeApplicant(principal, studentID); err != nil {
		return nil, err
	}

	jobID, err := parseID("jobId", req.JobID)
	if err != nil {
		return nil, err
	}

	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.Status != models.JobStatusOpen {
		return nil, apperrors.ErrJobClosed
	}

	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if !domain.MatchesJob(job.Eligibility, domain.ProfileOf(student)) {
		return nil, apperrors.ErrNotEligible
	}

	return s.create(ctx, studentID, jobID)
}

// CreateApplication lets an admin file an application on a student's behalf.
// Eligibility is not enforced here.
func (s *applicationServiceImpl) CreateApplication(ctx context.Context, req *dto.CreateApplicationRequest) (*models.Application, error) {
	studentID, err := parseID("studentId", req.StudentID)
	if err != nil {
		return nil, err
	}
	jobID, err := parseID("jobId", req.JobID)
	if err != nil {
		return nil, err
	}
	return s.create(ctx, studentID, jobID)
}

func (s *applicationServiceImpl) create(ctx context.Context, studentID, jobID uuid.UUID) (*models.Application, error) {
	app := &models.Application{
		StudentID: studentID,
		JobID:     jobID,
		Status:    domain.InitialStatus,
	}
	if err := s.appRepo.Create(ctx, app); err != nil {
		return nil, fmt.Errorf("create application: %w", err)
	}

	s.logger.Info().
		Str("applicationID", app.ID.String()).
		Str("studentID", studentID.String()).
		Str("jobID", jobID.String()).
		Msg("Application submitted")
	return app, nil
}

// UpdateStatus moves an application to status. Writing the current status
// again returns the stored application unchanged.
func (s *applicationServiceImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*models.Application, error) {
	to, err := domain.ParseApplicationStatus(status)
	if err != nil {
		return nil, err
	}

	current, err := s.appRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.transitions.Check(current.Status, to); err != nil {
		return nil, apperrors.NewCustomError(err, fmt.Sprintf("cannot move application from %s to %s", current.Status, to))
	}
	if current.Status == to {
		return current, nil
	}

	updated, err := s.appRepo.UpdateStatus(ctx, id, current.Status, to)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("applicationID", id.String()).
		Str("from", string(current.Status)).
		Str("to", string(to)).
		Msg("Application status changed")
	return updated, nil
}

func (s *applicationServiceImpl) GetApplication(ctx context.Context, id uuid.UUID) (*models.Application, error) {
	return s.appRepo.GetByID(ctx, id)
}

func (s *applicationServiceImpl) ListMine(ctx context.Context, studentID uuid.UUID) ([]*models.Application, error) {
	apps, err := s.appRepo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("list student applications: %w", err)
	}
	return nonNil(apps), nil
}

// ListByJob returns the applicants of a job; an unknown job is NotFound
// rather than an empty list.
func (s *applicationServiceImpl) ListByJob(ctx context.Context, jobID uuid.UUID) ([]*models.Application, error) {
	if _, err := s.jobRepo.GetByID(ctx, jobID); err != nil {
		return nil, err
	}
	apps, err := s.appRepo.ListByJob(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("list job applications: %w", err)
	}
	return nonNil(apps), nil
}

func (s *applicationServiceImpl) List(ctx context.Context, filter repositories.ApplicationFilter, page helpers.Page) ([]*models.Application, int, error) {
	apps, total, err := s.appRepo.List(ctx, filter, page.Limit(), page.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("list applications: %w", err)
	}
	return nonNil(apps), total, nil
}

func nonNil[T any](list []*T) []*T {
	if list == nil {
		return []*T{}
	}
	return list
}
