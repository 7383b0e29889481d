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

// IAnalyticRepository defines analytic persistence. Analytics are addressed by job.
type IAnalyticRepository interface {
	Create(ctx context.Context, a *models.Analytic) error
	GetByJobID(ctx context.Context, jobID uuid.UUID) (*models.Analytic, error)
	List(ctx context.Context) ([]*models.Analytic, error)
	Update(ctx context.Context, a *models.Analytic) error
	DeleteByJobID(ctx context.Context, jobID uuid.UUID) error
}

// AnalyticRepository handles analytic database operations
type AnalyticRepository struct {
	db *pgxpool.Pool
}

// NewAnalyticRepository creates a new AnalyticRepository
func NewAnalyticRepository(db *pgxpool.Pool) *AnalyticRepository {
	return &AnalyticRepository{db: db}
}

var analyticColumns = []string{
	"id", "job_id", "company_id", "total_applicants", "shortlisted", "selected", "rejected", "created_at", "updated_at",
}

func scanAnalytic(row pgx.Row) (*models.Analytic, error) {
	a := &models.Analytic{}
	err := row.Scan(&a.ID, &a.JobID, &a.CompanyID, &a.TotalApplicants, &a.Shortlisted, &a.Selected, &a.Rejected, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

// Create inserts an analytic. One analytic may exist per job.
func (r *AnalyticRepository) Create(ctx context.Context, a *models.Analytic) error {
	sql, args, err := psql.Insert("analytics").
		Columns("job_id", "company_id", "total_applicants", "shortlisted", "selected", "rejected").
		Values(a.JobID, a.CompanyID, a.TotalApplicants, a.Shortlisted, a.Selected, a.Rejected).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create analytic query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt); err != nil {
		switch {
		case dberrors.IsDuplicateConstraintError(err, "analytics_job_id_key"):
			return apperrors.ErrDuplicateAnalytic
		case dberrors.IsForeignKeyViolation(err, "analytics_job_id_fkey"):
			return apperrors.ErrJobNotFound
		case dberrors.IsForeignKeyViolation(err, "analytics_company_id_fkey"):
			return apperrors.ErrCompanyNotFound
		case dberrors.IsCheckViolation(err):
			return fmt.Errorf("%w: counters must not be negative", apperrors.ErrValidationFailed)
		}
		logger.Error().Err(err).Str("jobID", a.JobID.String()).Msg("Error creating analytic")
		return fmt.Errorf("error creating analytic: %w", err)
	}
	return nil
}

// GetByJobID retrieves the analytic of a job
func (r *AnalyticRepository) GetByJobID(ctx context.Context, jobID uuid.UUID) (*models.Analytic, error) {
	sql, args, err := psql.Select(analyticColumns...).From("analytics").Where(squirrel.Eq{"job_id": jobID}).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get analytic query: %w", err)
	}

	a, err := scanAnalytic(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAnalyticNotFound
		}
		return nil, fmt.Errorf("error getting analytic: %w", err)
	}
	return a, nil
}

// List returns every analytic, newest first
func (r *AnalyticRepository) List(ctx context.Context) ([]*models.Analytic, error) {
	sql, args, err := psql.Select(analyticColumns...).From("analytics").OrderBy("created_at DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list analytics query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying analytics: %w", err)
	}
	defer rows.Close()

	list := []*models.Analytic{}
	for rows.Next() {
		a, err := scanAnalytic(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning analytic row: %w", err)
		}
		list = append(list, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating analytic rows: %w", err)
	}
	return list, nil
}

// Update overwrites the counters of the analytic for a.JobID
func (r *AnalyticRepository) Update(ctx context.Context, a *models.Analytic) error {
	sql, args, err := psql.Update("analytics").
		SetMap(map[string]interface{}{
			"total_applicants": a.TotalApplicants,
			"shortlisted":      a.Shortlisted,
			"selected":         a.Selected,
			"rejected":         a.Rejected,
			"updated_at":       squirrel.Expr("NOW()"),
		}).
		Where(squirrel.Eq{"job_id": a.JobID}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update analytic query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&a.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrAnalyticNotFound
		}
		if dberrors.IsCheckViolation(err) {
			return fmt.Errorf("%w: counters must not be negative", apperrors.ErrValidationFailed)
		}
		return fmt.Errorf("error updating analytic: %w", err)
	}
	return nil
}

// DeleteByJobID removes the analytic of a job
func (r *AnalyticRepository) DeleteByJobID(ctx context.Context, jobID uuid.UUID) error {
	sql, args, err := psql.Delete("analytics").Where(squirrel.Eq{"job_id": jobID}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete analytic query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting analytic: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrAnalyticNotFound
	}
	return nil
}
