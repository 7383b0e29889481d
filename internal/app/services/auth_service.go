package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/tnp/internal/app/models"
	"github.com/yigit/tnp/internal/app/models/dto"
	"github.com/yigit/tnp/internal/app/repositories"
	"github.com/yigit/tnp/internal/pkg/apperrors"
	"github.com/yigit/tnp/internal/pkg/auth"
	"github.com/yigit/tnp/internal/pkg/validation"
)

// AuthService handles login and student registration
type AuthService interface {
	AdminLogin(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	StudentLogin(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	RegisterStudent(ctx context.Context, req *dto.StudentRegisterRequest) (*dto.AuthResponse, error)
}

type authServiceImpl struct {
	adminRepo   repositories.IAdminRepository
	studentRepo repositories.IStudentRepository
	jwtService  *auth.JWTService
	hashCost    int
	logger      zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	adminRepo repositories.IAdminRepository,
	studentRepo repositories.IStudentRepository,
	jwtService *auth.JWTService,
	logger zerolog.Logger,
) AuthService {
	return &authServiceImpl{
		adminRepo:   adminRepo,
		studentRepo: studentRepo,
		jwtService:  jwtService,
		hashCost:    auth.BcryptCost,
		logger:      logger.With().Str("service", "auth").Logger(),
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// AdminLogin authenticates an admin
func (s *authServiceImpl) AdminLogin(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	admin, err := s.adminRepo.GetByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("admin login: %w", err)
	}

	if !auth.CheckPassword(admin.Password, req.Password) {
		s.logger.Warn().Str("email", admin.Email).Msg("Failed admin login attempt")
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issue(auth.Identity{ID: admin.ID, Role: string(models.RoleAdmin), Email: admin.Email}, dto.FromAdmin(admin))
}

// StudentLogin authenticates a student
func (s *authServiceImpl) StudentLogin(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	student, err := s.studentRepo.GetByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("student login: %w", err)
	}

	if !auth.CheckPassword(student.Password, req.Password) {
		s.logger.Warn().Str("email", student.Email).Msg("Failed student login attempt")
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issue(studentIdentity(student), dto.FromStudent(student))
}

// RegisterStudent creates a student account and signs the student in
func (s *authServiceImpl) RegisterStudent(ctx context.Context, req *dto.StudentRegisterRequest) (*dto.AuthResponse, error) {
	name := strings.TrimSpace(req.Name)
	regNo := strings.ToUpper(strings.TrimSpace(req.RegNo))
	branch := models.ParseBranch(req.Branch)

	switch {
	case !validation.IsValidName(name):
		return nil, apperrors.NewValidationError("name", fmt.Sprintf("name must be %d-%d characters long", validation.NameMinLength, validation.NameMaxLength))
	case !validation.IsValidRegNo(regNo):
		return nil, apperrors.NewValidationError("regNo", "registration number may only contain letters, digits and dashes")
	case !validation.IsStrongPassword(req.Password):
		return nil, apperrors.NewValidationError("password",
			"password must be 8-16 characters and include uppercase, lowercase, number, and special character")
	case !branch.Valid():
		return nil, apperrors.NewValidationError("branch", "invalid branch")
	}

	hash, err := auth.HashPasswordWithCost(req.Password, s.hashCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	student := &models.Student{
		Name:           name,
		RegNo:          regNo,
		Email:          normalizeEmail(req.Email),
		Password:       hash,
		Branch:         branch,
		GraduationYear: req.GraduationYear,
	}
	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, fmt.Errorf("register student: %w", err)
	}

	s.logger.Info().Str("studentID", student.ID.String()).Msg("Student registered")
	return s.issue(studentIdentity(student), dto.FromStudent(student))
}

func studentIdentity(st *models.Student) auth.Identity {
	return auth.Identity{
		ID:             st.ID,
		Role:           string(models.RoleStudent),
		Email:          st.Email,
		Branch:         string(st.Branch),
		GraduationYear: st.GraduationYear,
	}
}

func (s *authServiceImpl) issue(identity auth.Identity, user interface{}) (*dto.AuthResponse, error) {
	token, expiresIn, err := s.jwtService.GenerateAccessToken(identity)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &dto.AuthResponse{
		Token: dto.TokenResponse{
			AccessToken: token,
			TokenType:   "Bearer",
			ExpiresIn:   int64(expiresIn),
		},
		User: user,
	}, nil
}
