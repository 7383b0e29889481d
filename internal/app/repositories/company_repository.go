package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/tnp/internal/app/models"
	"github.com/yigit/tnp/internal/pkg/apperrors"
	"github.com/yigit/tnp/internal/pkg/dberrors"
	"github.com/yigit/tnp/internal/pkg/logger"
)

// ICompanyRepository defines company persistence
type ICompanyRepository interface {
	Create(ctx context.Context, company *models.Company) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Company, error)
	List(ctx context.Context) ([]*models.Company, error)
	Update(ctx context.Context, company *models.Company) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// CompanyRepository handles company database operations
type CompanyRepository struct {
	db *pgxpool.Pool
}

// NewCompanyRepository creates a new CompanyRepository
func NewCompanyRepository(db *pgxpool.Pool) *CompanyRepository {
	return &CompanyRepository{db: db}
}

var companyColumns = []string{"id", "name", "description", "industry", "website", "contact_person", "contact_email", "created_at"}

func scanCompany(row pgx.Row) (*models.Company, error) {
	c := &models.Company{}
	err := row.Scan(&c.ID, &c.Name, &c.Description, &c.Industry, &c.Website, &c.ContactPerson, &c.ContactEmail, &c.CreatedAt)
	return c, err
}

// Create inserts a company
func (r *CompanyRepository) Create(ctx context.Context, c *models.Company) error {
	sql, args, err := psql.Insert("companies").
		Columns("name", "description", "industry", "website", "contact_person", "contact_email").
		Values(c.Name, c.Description, c.Industry, c.Website, c.ContactPerson, c.ContactEmail).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create company query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&c.ID, &c.CreatedAt); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "companies_name_key") {
			return apperrors.ErrCompanyAlreadyExists
		}
		logger.Error().Err(err).Str("name", c.Name).Msg("Error creating company")
		return fmt.Errorf("error creating company: %w", err)
	}
	return nil
}

// GetByID retrieves a company by ID
func (r *CompanyRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Company, error) {
	sql, args, err := psql.Select(companyColumns...).From("companies").Where(squirrel.Eq{"id": id}).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get company query: %w", err)
	}

	c, err := scanCompany(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("error getting company: %w", err)
	}
	return c, nil
}

// List returns every company ordered by name
func (r *CompanyRepository) List(ctx context.Context) ([]*models.Company, error) {
	sql, args, err := psql.Select(companyColumns...).From("companies").OrderBy("name ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list companies query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying companies: %w", err)
	}
	defer rows.Close()

	companies := []*models.Company{}
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning company row: %w", err)
		}
		companies = append(companies, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating company rows: %w", err)
	}
	return companies, nil
}

// Update overwrites the mutable company fields
func (r *CompanyRepository) Update(ctx context.Context, c *models.Company) error {
	sql, args, err := psql.Update("companies").
		SetMap(map[string]interface{}{
			"name":           c.Name,
			"description":    c.Description,
			"industry":       c.Industry,
			"website":        c.Website,
			"contact_person": c.ContactPerson,
			"contact_email":  c.ContactEmail,
		}).
		Where(squirrel.Eq{"id": c.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update company query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "companies_name_key") {
			return apperrors.ErrCompanyAlreadyExists
		}
		logger.Error().Err(err).Str("companyID", c.ID.String()).Msg("Error updating company")
		return fmt.Errorf("error updating company: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCompanyNotFound
	}
	return nil
}

// Delete removes a company. Companies still referenced by jobs or analytics are kept.
func (r *CompanyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := psql.Delete("companies").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete company query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err, "") {
			return apperrors.ErrStillReferenced
		}
		return fmt.Errorf("error deleting company: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCompanyNotFound
	}
	return nil
}
