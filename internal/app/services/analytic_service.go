package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/yigit/tnp/internal/app/models"
	"github.com/yigit/tnp/internal/app/models/dto"
	"github.com/yigit/tnp/internal/app/repositories"
	"github.com/yigit/tnp/internal/pkg/apperrors"
)

// AnalyticService defines per-job hiring counters
type AnalyticService interface {
	CreateAnalytic(ctx context.Context, req *dto.CreateAnalyticRequest) (*models.Analytic, error)
	GetAnalytic(ctx context.Context, jobID uuid.UUID) (*models.Analytic, error)
	ListAnalytics(ctx context.Context) ([]*models.Analytic, error)
	UpdateAnalytic(ctx context.Context, jobID uuid.UUID, req *dto.UpdateAnalyticRequest) (*models.Analytic, error)
	DeleteAnalytic(ctx context.Context, jobID uuid.UUID) error
}

type analyticServiceImpl struct {
	analyticRepo repositories.IAnalyticRepository
}

// NewAnalyticService creates a new AnalyticService
func NewAnalyticService(analyticRepo repositories.IAnalyticRepository) AnalyticService {
	return &analyticServiceImpl{analyticRepo: analyticRepo}
}

func validateCounters(total, shortlisted, selected, rejected int) error {
	if total < 0 || shortlisted < 0 || selected < 0 || rejected < 0 {
		return apperrors.NewValidationError("counters", "counters must not be negative")
	}
	return nil
}

func (s *analyticServiceImpl) CreateAnalytic(ctx context.Context, req *dto.CreateAnalyticRequest) (*models.Analytic, error) {
	jobID, err := parseID("jobId", req.JobID)
	if err != nil {
		return nil, err
	}
	companyID, err := parseID("companyId", req.CompanyID)
	if err != nil {
		return nil, err
	}
	if err := validateCounters(req.TotalApplicants, req.Shortlisted, req.Selected, req.Rejected); err != nil {
		return nil, err
	}

	a := &models.Analytic{
		JobID:           jobID,
		CompanyID:       companyID,
		TotalApplicants: req.TotalApplicants,
		Shortlisted:     req.Shortlisted,
		Selected:        req.Selected,
		Rejected:        req.Rejected,
	}
	if err := s.analyticRepo.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("create analytic: %w", err)
	}
	return a, nil
}

func (s *analyticServiceImpl) GetAnalytic(ctx context.Context, jobID uuid.UUID) (*models.Analytic, error) {
	return s.analyticRepo.GetByJobID(ctx, jobID)
}

func (s *analyticServiceImpl) ListAnalytics(ctx context.Context) ([]*models.Analytic, error) {
	list, err := s.analyticRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list analytics: %w", err)
	}
	return nonNil(list), nil
}

func (s *analyticServiceImpl) UpdateAnalytic(ctx context.Context, jobID uuid.UUID, req *dto.UpdateAnalyticRequest) (*models.Analytic, error) {
	a, err := s.analyticRepo.GetByJobID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	for dst, v := range map[*int]*int{
		&a.TotalApplicants: req.TotalApplicants,
		&a.Shortlisted:     req.Shortlisted,
		&a.Selected:        req.Selected,
		&a.Rejected:        req.Rejected,
	} {
		if v != nil {
			*dst = *v
		}
	}
	if err := validateCounters(a.TotalApplicants, a.Shortlisted, a.Selected, a.Rejected); err != nil {
		return nil, err
	}

	if err := s.analyticRepo.Update(ctx, a); err != nil {
		return nil, fmt.Errorf("update analytic: %w", err)
	}
	return a, nil
}

func (s *analyticServiceImpl) DeleteAnalytic(ctx context.Context, jobID uuid.UUID) error {
	return s.analyticRepo.DeleteByJobID(ctx, jobID)
}
