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

// StudentProfileUpdate lists the student-editable fields. Nil means unchanged.
type StudentProfileUpdate struct {
	CGPA          *float64
	ActiveBacklog *int
	Phone         *string
	ProfileImg    *string
}

// IStudentRepository defines student persistence
type IStudentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Student, error)
	GetByEmail(ctx context.Context, email string) (*models.Student, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, upd StudentProfileUpdate) (*models.Student, error)
}

// StudentRepository handles student database operations
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{db: db}
}

var studentColumns = []string{
	"id", "name", "reg_no", "email", "password", "branch", "graduation_year",
	"cgpa", "active_backlog", "phone", "profile_img", "created_at", "updated_at",
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	s := &models.Student{}
	err := row.Scan(&s.ID, &s.Name, &s.RegNo, &s.Email, &s.Password, &s.Branch, &s.GraduationYear,
		&s.CGPA, &s.ActiveBacklog, &s.Phone, &s.ProfileImg, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}

func mapStudentWriteError(err error) error {
	switch {
	case dberrors.IsDuplicateConstraintError(err, "students_email_key"):
		return apperrors.ErrEmailAlreadyExists
	case dberrors.IsDuplicateConstraintError(err, "students_reg_no_key"):
		return apperrors.ErrRegNoAlreadyExists
	case dberrors.IsCheckViolation(err):
		return fmt.Errorf("%w: %v", apperrors.ErrValidationFailed, err)
	}
	return nil
}

// Create inserts a student and fills ID and timestamps
func (r *StudentRepository) Create(ctx context.Context, s *models.Student) error {
	sql, args, err := psql.Insert("students").
		Columns("name", "reg_no", "email", "password", "branch", "graduation_year", "cgpa", "active_backlog", "phone").
		Values(s.Name, s.RegNo, s.Email, s.Password, string(s.Branch), s.GraduationYear, s.CGPA, s.ActiveBacklog, s.Phone).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create student query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt); err != nil {
		if mapped := mapStudentWriteError(err); mapped != nil {
			return mapped
		}
		logger.Error().Err(err).Str("email", s.Email).Msg("Error creating student")
		return fmt.Errorf("error creating student: %w", err)
	}
	return nil
}

func (r *StudentRepository) getOne(ctx context.Context, where squirrel.Eq) (*models.Student, error) {
	sql, args, err := psql.Select(studentColumns...).From("students").Where(where).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	s, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Msg("Error scanning student row")
		return nil, fmt.Errorf("error getting student: %w", err)
	}
	return s, nil
}

// GetByID retrieves a student by ID
func (r *StudentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Student, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetByEmail retrieves a student by email
func (r *StudentRepository) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	return r.getOne(ctx, squirrel.Eq{"email": email})
}

// UpdateProfile writes the non-nil fields of upd and returns the stored student
func (r *StudentRepository) UpdateProfile(ctx context.Context, id uuid.UUID, upd StudentProfileUpdate) (*models.Student, error) {
	set := map[string]interface{}{"updated_at": squirrel.Expr("NOW()")}
	if upd.CGPA != nil {
		set["cgpa"] = *upd.CGPA
	}
	if upd.ActiveBacklog != nil {
		set["active_backlog"] = *upd.ActiveBacklog
	}
	if upd.Phone != nil {
		set["phone"] = *upd.Phone
	}
	if upd.ProfileImg != nil {
		set["profile_img"] = *upd.ProfileImg
	}

	sql, args, err := psql.Update("students").
		SetMap(set).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns(studentColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update student query: %w", err)
	}

	s, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		if mapped := mapStudentWriteError(err); mapped != nil {
			return nil, mapped
		}
		logger.Error().Err(err).Str("studentID", id.String()).Msg("Error updating student profile")
		return nil, fmt.Errorf("error updating student: %w", err)
	}
	return s, nil
}
