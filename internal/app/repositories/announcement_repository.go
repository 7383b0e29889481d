package repositories

import (
	"context"
	"encoding/json"
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

// IAnnouncementRepository defines announcement persistence
type IAnnouncementRepository interface {
	Create(ctx context.Context, a *models.Announcement) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Announcement, error)
	List(ctx context.Context) ([]*models.Announcement, error)
	Update(ctx context.Context, a *models.Announcement) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// AnnouncementRepository handles announcement database operations
type AnnouncementRepository struct {
	db querier
}

// NewAnnouncementRepository creates a new AnnouncementRepository
func NewAnnouncementRepository(db *pgxpool.Pool) *AnnouncementRepository {
	return &AnnouncementRepository{db: db}
}

var announcementColumns = []string{"id", "title", "description", "audience", "filter_data", "created_by", "created_at", "updated_at"}

// filterDataArg encodes filter data for a jsonb column; nil stays SQL NULL.
func filterDataArg(fd *models.FilterData) (any, error) {
	if fd == nil {
		return nil, nil
	}
	raw, err := json.Marshal(fd)
	if err != nil {
		return nil, fmt.Errorf("failed to encode filter data: %w", err)
	}
	return string(raw), nil
}

func scanAnnouncement(row pgx.Row) (*models.Announcement, error) {
	a := &models.Announcement{}
	var raw []byte
	if err := row.Scan(&a.ID, &a.Title, &a.Description, &a.Audience, &raw, &a.CreatedBy, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	if len(raw) > 0 && string(raw) != "null" {
		a.FilterData = &models.FilterData{}
		if err := json.Unmarshal(raw, a.FilterData); err != nil {
			return nil, fmt.Errorf("failed to decode filter data: %w", err)
		}
	}
	return a, nil
}

// Create inserts an announcement
func (r *AnnouncementRepository) Create(ctx context.Context, a *models.Announcement) error {
	fd, err := filterDataArg(a.FilterData)
	if err != nil {
		return err
	}

	sql, args, err := psql.Insert("announcements").
		Columns("title", "description", "audience", "filter_data", "created_by").
		Values(a.Title, a.Description, string(a.Audience), fd, a.CreatedBy).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create announcement query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt); err != nil {
		if dberrors.IsForeignKeyViolation(err, "announcements_created_by_fkey") {
			return apperrors.ErrAdminNotFound
		}
		logger.Error().Err(err).Msg("Error creating announcement")
		return fmt.Errorf("error creating announcement: %w", err)
	}
	return nil
}

// GetByID retrieves an announcement by ID
func (r *AnnouncementRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Announcement, error) {
	sql, args, err := psql.Select(announcementColumns...).From("announcements").Where(squirrel.Eq{"id": id}).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get announcement query: %w", err)
	}

	a, err := scanAnnouncement(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAnnouncementNotFound
		}
		return nil, fmt.Errorf("error getting announcement: %w", err)
	}
	return a, nil
}

// List returns every announcement, newest first
func (r *AnnouncementRepository) List(ctx context.Context) ([]*models.Announcement, error) {
	sql, args, err := psql.Select(announcementColumns...).From("announcements").OrderBy("created_at DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list announcements query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying announcements: %w", err)
	}
	defer rows.Close()

	list := []*models.Announcement{}
	for rows.Next() {
		a, err := scanAnnouncement(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning announcement row: %w", err)
		}
		list = append(list, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating announcement rows: %w", err)
	}
	return list, nil
}

// Update overwrites the announcement content and audience
func (r *AnnouncementRepository) Update(ctx context.Context, a *models.Announcement) error {
	fd, err := filterDataArg(a.FilterData)
	if err != nil {
		return err
	}

	sql, args, err := psql.Update("announcements").
		SetMap(map[string]interface{}{
			"title":       a.Title,
			"description": a.Description,
			"audience":    string(a.Audience),
			"filter_data": fd,
			"updated_at":  squirrel.Expr("NOW()"),
		}).
		Where(squirrel.Eq{"id": a.ID}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update announcement query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&a.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrAnnouncementNotFound
		}
		return fmt.Errorf("error updating announcement: %w", err)
	}
	return nil
}

// Delete removes an announcement
func (r *AnnouncementRepository) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := psql.Delete("announcements").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete announcement query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting announcement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrAnnouncementNotFound
	}
	return nil
}
