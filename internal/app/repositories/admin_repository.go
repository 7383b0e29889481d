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
	"github.com/yigit/tnp/internal/pkg/logger"
)

// IAdminRepository defines admin persistence
type IAdminRepository interface {
	GetByEmail(ctx context.Context, email string) (*models.Admin, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Admin, error)
	CreateIfNotExists(ctx context.Context, admin *models.Admin) (bool, error)
}

// AdminRepository handles admin database operations
type AdminRepository struct {
	db *pgxpool.Pool
}

// NewAdminRepository creates a new AdminRepository
func NewAdminRepository(db *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{db: db}
}

var adminColumns = []string{"id", "name", "email", "password", "created_at"}

func (r *AdminRepository) getOne(ctx context.Context, where squirrel.Eq) (*models.Admin, error) {
	sql, args, err := psql.Select(adminColumns...).From("admins").Where(where).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get admin query: %w", err)
	}

	a := &models.Admin{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&a.ID, &a.Name, &a.Email, &a.Password, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAdminNotFound
		}
		logger.Error().Err(err).Msg("Error scanning admin row")
		return nil, fmt.Errorf("error getting admin: %w", err)
	}
	return a, nil
}

// GetByEmail retrieves an admin by email
func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	return r.getOne(ctx, squirrel.Eq{"email": email})
}

// GetByID retrieves an admin by ID
func (r *AdminRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Admin, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// CreateIfNotExists inserts the admin unless the email is taken and reports
// whether a row was written. The admin's ID and CreatedAt are filled on insert.
func (r *AdminRepository) CreateIfNotExists(ctx context.Context, admin *models.Admin) (bool, error) {
	sql, args, err := psql.Insert("admins").
		Columns("name", "email", "password").
		Values(admin.Name, admin.Email, admin.Password).
		Suffix("ON CONFLICT (email) DO NOTHING RETURNING id, created_at").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build create admin query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&admin.ID, &admin.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("error creating admin: %w", err)
	}
	return true, nil
}
