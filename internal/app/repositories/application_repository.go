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

// ApplicationFilter narrows the admin application listing. Zero values are ignored.
type ApplicationFilter struct {
	Status models.ApplicationStatus
	JobID  uuid.UUID
}

// IApplicationRepository defines application persistence
type IApplicationRepository interface {
	Create(ctx context.Context, app *models.Application) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Application, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to models.ApplicationStatus) (*models.Application, error)
	ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*models.Application, error)
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]*models.Application, error)
	List(ctx context.Context, filter ApplicationFilter, limit, offset uint64) ([]*models.Application, int, error)
}

// ApplicationRepository handles application database operations
type ApplicationRepository struct {
	db querier
}

// NewApplicationRepository creates a new ApplicationRepository
func NewApplicationRepository(db *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

var applicationColumns = []string{"a.id", "a.student_id", "a.job_id", "a.status", "a.created_at", "a.updated_at"}

func scanApplication(row pgx.Row, extra ...any) (*models.Application, error) {
	a := &models.Application{}
	dest := append([]any{&a.ID, &a.StudentID, &a.JobID, &a.Status, &a.CreatedAt, &a.UpdatedAt}, extra...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return a, nil
}

// Create inserts an application. (student, job) pairs are unique at the
// store level, so concurrent duplicates resolve to ErrDuplicateApplication.
func (r *ApplicationRepository) Create(ctx context.Context, app *models.Application) error {
	sql, args, err := psql.Insert("applications").
		Columns("student_id", "job_id", "status").
		Values(app.StudentID, app.JobID, string(app.Status)).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create application query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&app.ID, &app.CreatedAt, &app.UpdatedAt); err != nil {
		switch {
		case dberrors.IsDuplicateConstraintError(err, "applications_student_job_key"):
			return apperrors.ErrDuplicateApplication
		case dberrors.IsForeignKeyViolation(err, "applications_student_id_fkey"):
			return apperrors.ErrStudentNotFound
		case dberrors.IsForeignKeyViolation(err, "applications_job_id_fkey"):
			return apperrors.ErrJobNotFound
		}
		logger.Error().Err(err).Str("studentID", app.StudentID.String()).Str("jobID", app.JobID.String()).Msg("Error creating application")
		return fmt.Errorf("error creating application: %w", err)
	}
	return nil
}

// GetByID retrieves an application by ID
func (r *ApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Application, error) {
	sql, args, err := psql.Select(applicationColumns...).From("applications a").Where(squirrel.Eq{"a.id": id}).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get application query: %w", err)
	}

	app, err := scanApplication(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("error getting application: %w", err)
	}
	return app, nil
}

// UpdateStatus moves the application from one status to another. The write
// only happens while the stored status still equals from; a concurrent change
// in between yields ErrConflict naming the attempted move.
func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to models.ApplicationStatus) (*models.Application, error) {
	sql, args, err := psql.Update("applications a").
		Set("status", string(to)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"a.id": id, "a.status": string(from)}).
		Suffix("RETURNING " + joinColumns(applicationColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update application status query: %w", err)
	}

	app, err := scanApplication(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			if _, getErr := r.GetByID(ctx, id); getErr != nil {
				return nil, getErr
			}
			return nil, apperrors.NewConflictError(fmt.Sprintf("cannot move application from %s to %s", from, to))
		}
		logger.Error().Err(err).Str("applicationID", id.String()).Msg("Error updating application status")
		return nil, fmt.Errorf("error updating application status: %w", err)
	}
	return app, nil
}

// ListByStudent returns a student's applications with a job summary, newest first
func (r *ApplicationRepository) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*models.Application, error) {
	cols := append(append([]string{}, applicationColumns...),
		"j.company_id", "j.company_name", "j.job_title", "j.job_type", "j.status")
	sql, args, err := psql.Select(cols...).
		From("applications a").
		Join("job_listings j ON j.id = a.job_id").
		Where(squirrel.Eq{"a.student_id": studentID}).
		OrderBy("a.created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list student applications query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying applications: %w", err)
	}
	defer rows.Close()

	apps := []*models.Application{}
	for rows.Next() {
		job := &models.JobListing{}
		app, err := scanApplication(rows, &job.CompanyID, &job.CompanyName, &job.JobTitle, &job.JobType, &job.Status)
		if err != nil {
			return nil, fmt.Errorf("error scanning application row: %w", err)
		}
		job.ID = app.JobID
		app.Job = job
		apps = append(apps, app)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating application rows: %w", err)
	}
	return apps, nil
}

// ListByJob returns the applicants of one job with a student summary, oldest first
func (r *ApplicationRepository) ListByJob(ctx context.Context, jobID uuid.UUID) ([]*models.Application, error) {
	cols := append(append([]string{}, applicationColumns...),
		"s.name", "s.reg_no", "s.email", "s.branch", "s.graduation_year", "s.cgpa")
	sql, args, err := psql.Select(cols...).
		From("applications a").
		Join("students s ON s.id = a.student_id").
		Where(squirrel.Eq{"a.job_id": jobID}).
		OrderBy("a.created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list job applications query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying applications: %w", err)
	}
	defer rows.Close()

	apps := []*models.Application{}
	for rows.Next() {
		s := &models.Student{}
		app, err := scanApplication(rows, &s.Name, &s.RegNo, &s.Email, &s.Branch, &s.GraduationYear, &s.CGPA)
		if err != nil {
			return nil, fmt.Errorf("error scanning application row: %w", err)
		}
		s.ID = app.StudentID
		app.Student = s
		apps = append(apps, app)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating application rows: %w", err)
	}
	return apps, nil
}

// List returns one page of applications and the total count matching filter
func (r *ApplicationRepository) List(ctx context.Context, filter ApplicationFilter, limit, offset uint64) ([]*models.Application, int, error) {
	where := squirrel.And{}
	if filter.Status != "" {
		where = append(where, squirrel.Eq{"a.status": string(filter.Status)})
	}
	if filter.JobID != uuid.Nil {
		where = append(where, squirrel.Eq{"a.job_id": filter.JobID})
	}

	countSQL, countArgs, err := psql.Select("COUNT(*)").From("applications a").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count applications query: %w", err)
	}
	var total int
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting applications: %w", err)
	}

	sql, args, err := psql.Select(applicationColumns...).
		From("applications a").
		Where(where).
		OrderBy("a.created_at DESC").
		Limit(limit).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list applications query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error querying applications: %w", err)
	}
	defer rows.Close()

	apps := []*models.Application{}
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning application row: %w", err)
		}
		apps = append(apps, app)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating application rows: %w", err)
	}
	return apps, total, nil
}
