package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/yigit/tnp/internal/app/auth"
	"github.com/yigit/tnp/internal/app/models"
	"github.com/yigit/tnp/internal/app/models/dto"
	"github.com/yigit/tnp/internal/app/repositories"
	"github.com/yigit/tnp/internal/pkg/apperrors"
)

// AnnouncementService defines announcement publishing and audience filtering
type AnnouncementService interface {
	CreateAnnouncement(ctx context.Context, adminID uuid.UUID, req *dto.CreateAnnouncementRequest) (*models.Announcement, error)
	ListAnnouncements(ctx context.Context, principal *auth.Principal) ([]*models.Announcement, error)
	GetAnnouncement(ctx context.Context, principal *auth.Principal, id uuid.UUID) (*models.Announcement, error)
	UpdateAnnouncement(ctx context.Context, id uuid.UUID, req *dto.UpdateAnnouncementRequest) (*models.Announcement, error)
	DeleteAnnouncement(ctx context.Context, id uuid.UUID) error
}

type announcementServiceImpl struct {
	announcementRepo repositories.IAnnouncementRepository
	policy           *auth.AccessPolicy
}

// NewAnnouncementService creates a new AnnouncementService
func NewAnnouncementService(announcementRepo repositories.IAnnouncementRepository, policy *auth.AccessPolicy) AnnouncementService {
	return &announcementServiceImpl{
		announcementRepo: announcementRepo,
		policy:           policy,
	}
}

func filterDataFromRequest(req *dto.FilterDataRequest) (*models.FilterData, error) {
	if req == nil {
		return nil, nil
	}
	fd := &models.FilterData{GraduationYears: append([]int{}, req.GraduationYears...)}
	for _, b := range req.Branches {
		branch := models.ParseBranch(b)
		if !branch.Valid() {
			return nil, apperrors.NewValidationError("filterData.branches", fmt.Sprintf("unknown branch %q", b))
		}
		fd.Branches = append(fd.Branches, branch)
	}
	return fd, nil
}

func (s *announcementServiceImpl) CreateAnnouncement(ctx context.Context, adminID uuid.UUID, req *dto.CreateAnnouncementRequest) (*models.Announcement, error) {
	audience := models.Audience(req.Audience)
	if !audience.Valid() {
		return nil, apperrors.NewValidationError("audience", "invalid audience")
	}
	filter, err := filterDataFromRequest(req.FilterData)
	if err != nil {
		return nil, err
	}

	a := &models.Announcement{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Audience:    audience,
		FilterData:  filter,
		CreatedBy:   adminID,
	}
	if err := s.announcementRepo.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("create announcement: %w", err)
	}
	return a, nil
}

// ListAnnouncements returns what the principal is allowed to see, newest first
func (s *announcementServiceImpl) ListAnnouncements(ctx context.Context, principal *auth.Principal) ([]*models.Announcement, error) {
	if err := s.policy.Authorize(principal, auth.ActionReadAnnouncement); err != nil {
		return nil, err
	}
	list, err := s.announcementRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list announcements: %w", err)
	}
	return s.policy.VisibleAnnouncements(principal, list), nil
}

// GetAnnouncement hides announcements outside a student's audience as NotFound
func (s *announcementServiceImpl) GetAnnouncement(ctx context.Context, principal *auth.Principal, id uuid.UUID) (*models.Announcement, error) {
	if err := s.policy.Authorize(principal, auth.ActionReadAnnouncement); err != nil {
		return nil, err
	}
	a, err := s.announcementRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(s.policy.VisibleAnnouncements(principal, []*models.Announcement{a})) == 0 {
		return nil, apperrors.ErrAnnouncementNotFound
	}
	return a, nil
}

func (s *announcementServiceImpl) UpdateAnnouncement(ctx context.Context, id uuid.UUID, req *dto.UpdateAnnouncementRequest) (*models.Announcement, error) {
	a, err := s.announcementRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	setIfPresent(&a.Title, strings.TrimSpace(req.Title))
	setIfPresent(&a.Description, req.Description)
	if req.Audience != "" {
		audience := models.Audience(req.Audience)
		if !audience.Valid() {
			return nil, apperrors.NewValidationError("audience", "invalid audience")
		}
		a.Audience = audience
	}
	if req.FilterData != nil {
		filter, err := filterDataFromRequest(req.FilterData)
		if err != nil {
			return nil, err
		}
		a.FilterData = filter
	}

	if err := s.announcementRepo.Update(ctx, a); err != nil {
		return nil, fmt.Errorf("update announcement: %w", err)
	}
	return a, nil
}

func (s *announcementServiceImpl) DeleteAnnouncement(ctx context.Context, id uuid.UUID) error {
	return s.announcementRepo.Delete(ctx, id)
}
