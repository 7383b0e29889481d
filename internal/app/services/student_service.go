package services

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/google/uuid"
	"github.com/yigit/tnp/internal/app/models"
	"github.com/yigit/tnp/internal/app/models/dto"
	"github.com/yigit/tnp/internal/app/repositories"
	"github.com/yigit/tnp/internal/pkg/apperrors"
	"github.com/yigit/tnp/internal/pkg/filestorage"
	"github.com/yigit/tnp/internal/pkg/logger"
	"github.com/yigit/tnp/internal/pkg/validation"
)

// profileImageDir is the storage subdirectory for student pictures
const profileImageDir = "profiles"

// StudentService manages a student's own profile
type StudentService interface {
	GetProfile(ctx context.Context, id uuid.UUID) (*models.Student, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, req *dto.UpdateStudentProfileRequest) (*models.Student, error)
	UpdateProfileImage(ctx context.Context, id uuid.UUID, file *multipart.FileHeader) (*models.Student, error)
}

type studentServiceImpl struct {
	studentRepo repositories.IStudentRepository
	storage     filestorage.FileStorage
}

// NewStudentService creates a new StudentService
func NewStudentService(studentRepo repositories.IStudentRepository, storage filestorage.FileStorage) StudentService {
	return &studentServiceImpl{
		studentRepo: studentRepo,
		storage:     storage,
	}
}

// GetProfile returns the stored student
func (s *studentServiceImpl) GetProfile(ctx context.Context, id uuid.UUID) (*models.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return student, nil
}

// UpdateProfile fills in the optional profile fields
func (s *studentServiceImpl) UpdateProfile(ctx context.Context, id uuid.UUID, req *dto.UpdateStudentProfileRequest) (*models.Student, error) {
	if req.CGPA != nil && (*req.CGPA < 0 || *req.CGPA > 10) {
		return nil, apperrors.NewValidationError("cgpa", "cgpa must be between 0 and 10")
	}
	if req.ActiveBacklog != nil && *req.ActiveBacklog < 0 {
		return nil, apperrors.NewValidationError("activeBacklog", "activeBacklog must not be negative")
	}
	if req.Phone != nil && !validation.IsValidPhone(*req.Phone) {
		return nil, apperrors.NewValidationError("phone", "phone must be 10-15 digits")
	}

	student, err := s.studentRepo.UpdateProfile(ctx, id, repositories.StudentProfileUpdate{
		CGPA:          req.CGPA,
		ActiveBacklog: req.ActiveBacklog,
		Phone:         req.Phone,
	})
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return student, nil
}

// UpdateProfileImage stores a new picture and drops the previous one
func (s *studentServiceImpl) UpdateProfileImage(ctx context.Context, id uuid.UUID, file *multipart.FileHeader) (*models.Student, error) {
	current, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("update profile image: %w", err)
	}

	path, err := s.storage.SaveFileWithPath(file, profileImageDir)
	if err != nil {
		return nil, apperrors.NewValidationError("image", err.Error())
	}

	student, err := s.studentRepo.UpdateProfile(ctx, id, repositories.StudentProfileUpdate{ProfileImg: &path})
	if err != nil {
		_ = s.storage.DeleteFile(path)
		return nil, fmt.Errorf("update profile image: %w", err)
	}

	if current.ProfileImg != nil && *current.ProfileImg != path {
		if err := s.storage.DeleteFile(*current.ProfileImg); err != nil {
			logger.FromContext(ctx).Warn().Err(err).Str("path", *current.ProfileImg).Msg("Failed to remove old profile image")
		}
	}
	return student, nil
}
