package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/tnp/internal/app/models"
	"github.com/yigit/tnp/internal/db"
	"github.com/yigit/tnp/internal/pkg/apperrors"
	"github.com/yigit/tnp/internal/pkg/dberrors"
	"github.com/yigit/tnp/internal/pkg/logger"
)

// JobFilter narrows a job listing query. Zero values are ignored.
type JobFilter struct {
	Status    models.JobStatus
	CompanyID uuid.UUID
}

// IJobRepository defines job listing persistence
type IJobRepository interface {
	Create(ctx context.Context, job *models.JobListing) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.JobListing, error)
	List(ctx context.Context, filter JobFilter) ([]*models.JobListing, error)
	Update(ctx context.Context, job *models.JobListing) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// JobRepository stores job listings together with their eligibility rows
type JobRepository struct {
	db *db.PostgresDB
}

// NewJobRepository creates a new JobRepository
func NewJobRepository(database *db.PostgresDB) *JobRepository {
	return &JobRepository{db: database}
}

var jobColumns = []string{
	"j.id", "j.company_id", "j.company_name", "j.job_title", "j.job_type", "j.description",
	"j.test_link", "j.status", "j.eligibility_id", "j.created_at", "j.updated_at",
	"e.id", "e.branches", "e.graduation_years", "e.min_cgpa",
}

func jobSelect() squirrel.SelectBuilder {
	return psql.Select(jobColumns...).
		From("job_listings j").
		Join("job_eligibilities e ON e.id = j.eligibility_id")
}

func scanJob(row pgx.Row) (*models.JobListing, error) {
	j := &models.JobListing{Eligibility: &models.JobEligibility{}}
	var branches []string
	var years []int32
	err := row.Scan(&j.ID, &j.CompanyID, &j.CompanyName, &j.JobTitle, &j.JobType, &j.Description,
		&j.TestLink, &j.Status, &j.EligibilityID, &j.CreatedAt, &j.UpdatedAt,
		&j.Eligibility.ID, &branches, &years, &j.Eligibility.MinCGPA)
	if err != nil {
		return nil, err
	}
	j.Eligibility.Branches = textToBranches(branches)
	j.Eligibility.GraduationYears = int4ToYears(years)
	return j, nil
}

func eligibilityOf(job *models.JobListing) *models.JobEligibility {
	if job.Eligibility == nil {
		job.Eligibility = &models.JobEligibility{}
	}
	return job.Eligibility
}

// Create inserts the eligibility row and the listing in one transaction.
func (r *JobRepository) Create(ctx context.Context, job *models.JobListing) error {
	e := eligibilityOf(job)

	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		sql, args, err := psql.Insert("job_eligibilities").
			Columns("branches", "graduation_years", "min_cgpa").
			Values(branchesToText(e.Branches), yearsToInt4(e.GraduationYears), e.MinCGPA).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build create eligibility query: %w", err)
		}
		if err := tx.QueryRow(ctx, sql, args...).Scan(&e.ID); err != nil {
			return fmt.Errorf("error creating job eligibility: %w", err)
		}
		job.EligibilityID = e.ID

		sql, args, err = psql.Insert("job_listings").
			Columns("company_id", "company_name", "job_title", "job_type", "description", "test_link", "status", "eligibility_id").
			Values(job.CompanyID, job.CompanyName, job.JobTitle, string(job.JobType), job.Description, job.TestLink, string(job.Status), job.EligibilityID).
			Suffix("RETURNING id, created_at, updated_at").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build create job query: %w", err)
		}
		if err := tx.QueryRow(ctx, sql, args...).Scan(&job.ID, &job.CreatedAt, &job.UpdatedAt); err != nil {
			if dberrors.IsForeignKeyViolation(err, "job_listings_company_id_fkey") {
				return apperrors.ErrCompanyNotFound
			}
			logger.Error().Err(err).Str("title", job.JobTitle).Msg("Error creating job listing")
			return fmt.Errorf("error creating job listing: %w", err)
		}
		return nil
	})
}

// GetByID retrieves a job listing with its eligibility
func (r *JobRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.JobListing, error) {
	sql, args, err := jobSelect().Where(squirrel.Eq{"j.id": id}).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get job query: %w", err)
	}

	job, err := scanJob(r.db.Pool.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, fmt.Errorf("error getting job listing: %w", err)
	}
	return job, nil
}

// List returns job listings newest first
func (r *JobRepository) List(ctx context.Context, filter JobFilter) ([]*models.JobListing, error) {
	q := jobSelect().OrderBy("j.created_at DESC")
	if filter.Status != "" {
		q = q.Where(squirrel.Eq{"j.status": string(filter.Status)})
	}
	if filter.CompanyID != uuid.Nil {
		q = q.Where(squirrel.Eq{"j.company_id": filter.CompanyID})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list jobs query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying job listings: %w", err)
	}
	defer rows.Close()

	jobs := []*models.JobListing{}
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning job row: %w", err)
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating job rows: %w", err)
	}
	return jobs, nil
}

// Update overwrites the listing and its eligibility in one transaction.
func (r *JobRepository) Update(ctx context.Context, job *models.JobListing) error {
	e := eligibilityOf(job)

	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		sql, args, err := psql.Update("job_listings").
			SetMap(map[string]interface{}{
				"job_title":   job.JobTitle,
				"job_type":    string(job.JobType),
				"description": job.Description,
				"test_link":   job.TestLink,
				"status":      string(job.Status),
				"updated_at":  squirrel.Expr("NOW()"),
			}).
			Where(squirrel.Eq{"id": job.ID}).
			Suffix("RETURNING eligibility_id, updated_at").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build update job query: %w", err)
		}
		if err := tx.QueryRow(ctx, sql, args...).Scan(&job.EligibilityID, &job.UpdatedAt); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrJobNotFound
			}
			return fmt.Errorf("error updating job listing: %w", err)
		}

		sql, args, err = psql.Update("job_eligibilities").
			SetMap(map[string]interface{}{
				"branches":         branchesToText(e.Branches),
				"graduation_years": yearsToInt4(e.GraduationYears),
				"min_cgpa":         e.MinCGPA,
			}).
			Where(squirrel.Eq{"id": job.EligibilityID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build update eligibility query: %w", err)
		}
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			return fmt.Errorf("error updating job eligibility: %w", err)
		}
		e.ID = job.EligibilityID
		return nil
	})
}

// Delete removes a listing and its eligibility. Listings that still have
// applications or analytics are refused with ErrStillReferenced.
func (r *JobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		sql, args, err := psql.Delete("job_listings").Where(squirrel.Eq{"id": id}).Suffix("RETURNING eligibility_id").ToSql()
		if err != nil {
			return fmt.Errorf("failed to build delete job query: %w", err)
		}

		var eligibilityID uuid.UUID
		if err := tx.QueryRow(ctx, sql, args...).Scan(&eligibilityID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrJobNotFound
			}
			if dberrors.IsForeignKeyViolation(err, "") {
				return apperrors.ErrStillReferenced
			}
			return fmt.Errorf("error deleting job listing: %w", err)
		}

		sql, args, err = psql.Delete("job_eligibilities").Where(squirrel.Eq{"id": eligibilityID}).ToSql()
		if err != nil {
			return fmt.Errorf("failed to build delete eligibility query: %w", err)
		}
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			return fmt.Errorf("error deleting job eligibility: %w", err)
		}
		return nil
	})
}
