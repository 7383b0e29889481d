package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/yigit/tnp/internal/app/models"
	"github.com/yigit/tnp/internal/app/models/dto"
	"github.com/yigit/tnp/internal/app/repositories"
)

// CompanyService defines company management
type CompanyService interface {
	CreateCompany(ctx context.Context, req *dto.CreateCompanyRequest) (*models.Company, error)
	GetCompany(ctx context.Context, id uuid.UUID) (*models.Company, error)
	ListCompanies(ctx context.Context) ([]*models.Company, error)
	UpdateCompany(ctx context.Context, id uuid.UUID, req *dto.UpdateCompanyRequest) (*models.Company, error)
	DeleteCompany(ctx context.Context, id uuid.UUID) error
}

type companyServiceImpl struct {
	companyRepo repositories.ICompanyRepository
}

// NewCompanyService creates a new CompanyService
func NewCompanyService(companyRepo repositories.ICompanyRepository) CompanyService {
	return &companyServiceImpl{companyRepo: companyRepo}
}

func (s *companyServiceImpl) CreateCompany(ctx context.Context, req *dto.CreateCompanyRequest) (*models.Company, error) {
	company := &models.Company{
		Name:          strings.TrimSpace(req.Name),
		Description:   req.Description,
		Industry:      req.Industry,
		Website:       req.Website,
		ContactPerson: req.ContactPerson,
		ContactEmail:  strings.ToLower(strings.TrimSpace(req.ContactEmail)),
	}
	if err := s.companyRepo.Create(ctx, company); err != nil {
		return nil, fmt.Errorf("create company: %w", err)
	}
	return company, nil
}

func (s *companyServiceImpl) GetCompany(ctx context.Context, id uuid.UUID) (*models.Company, error) {
	return s.companyRepo.GetByID(ctx, id)
}

func (s *companyServiceImpl) ListCompanies(ctx context.Context) ([]*models.Company, error) {
	companies, err := s.companyRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	if companies == nil {
		companies = []*models.Company{}
	}
	return companies, nil
}

// UpdateCompany applies the non-empty fields of req
func (s *companyServiceImpl) UpdateCompany(ctx context.Context, id uuid.UUID, req *dto.UpdateCompanyRequest) (*models.Company, error) {
	company, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	setIfPresent(&company.Name, strings.TrimSpace(req.Name))
	setIfPresent(&company.Description, req.Description)
	setIfPresent(&company.Industry, req.Industry)
	setIfPresent(&company.Website, req.Website)
	setIfPresent(&company.ContactPerson, req.ContactPerson)
	setIfPresent(&company.ContactEmail, strings.ToLower(strings.TrimSpace(req.ContactEmail)))

	if err := s.companyRepo.Update(ctx, company); err != nil {
		return nil, fmt.Errorf("update company: %w", err)
	}
	return company, nil
}

func (s *companyServiceImpl) DeleteCompany(ctx context.Context, id uuid.UUID) error {
	return s.companyRepo.Delete(ctx, id)
}

func setIfPresent(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
