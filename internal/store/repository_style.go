package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/MKhiriev/go-plot-style/internal/logger"
	"github.com/MKhiriev/go-plot-style/models"
)

const stylesTable = "styles"

var styleColumns = []string{"id", "name", "body", "checksum", "created_at", "updated_at"}

// styleRepository is the SQL implementation of [StyleRepository] over the
// "styles" table. Queries are built with squirrel so the same code serves
// sqlite3 (?) and pgx ($n) placeholders.
type styleRepository struct {
	logger *logger.Logger
	db     *DB
	now    func() time.Time
}

// NewStyleRepository constructs a [StyleRepository] backed by db.
func NewStyleRepository(db *DB, logger *logger.Logger) StyleRepository {
	logger.Debug().Msg("creating style repository")
	return &styleRepository{
		db:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// SaveStyle inserts style under a fresh ID. Checksum and timestamps are
// filled in from Body and the current time.
//
// Error handling:
//   - unique violation on name (either driver) → [ErrStyleAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingQuery].
func (r *styleRepository) SaveStyle(ctx context.Context, style models.Style) (models.Style, error) {
	log := logger.FromContext(ctx)

	now := r.now()
	style.ID = uuid.New()
	style.Checksum = models.Checksum(style.Body)
	style.CreatedAt = now
	style.UpdatedAt = now

	query, args, err := r.db.builder.
		Insert(stylesTable).
		Columns(styleColumns...).
		Values(style.ID.String(), style.Name, style.Body, style.Checksum, style.CreatedAt, style.UpdatedAt).
		ToSql()
	if err != nil {
		return models.Style{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.retry(ctx, func() error {
		_, execErr := r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		if isUniqueViolation(err) {
			return models.Style{}, ErrStyleAlreadyExists
		}
		log.Err(err).Str("func", "*styleRepository.SaveStyle").Msg("error inserting style")
		return models.Style{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return style, nil
}

// UpdateStyle replaces the body of the style named style.Name and returns
// the stored row.
//
// Error handling:
//   - no row with that name → [ErrStyleNotFound].
func (r *styleRepository) UpdateStyle(ctx context.Context, style models.Style) (models.Style, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Update(stylesTable).
		Set("body", style.Body).
		Set("checksum", models.Checksum(style.Body)).
		Set("updated_at", r.now()).
		Where(sq.Eq{"name": style.Name}).
		ToSql()
	if err != nil {
		return models.Style{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var affected int64
	err = r.db.retry(ctx, func() error {
		res, execErr := r.db.ExecContext(ctx, query, args...)
		if execErr != nil {
			return execErr
		}
		affected, execErr = res.RowsAffected()
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "*styleRepository.UpdateStyle").Msg("error updating style")
		return models.Style{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return models.Style{}, ErrStyleNotFound
	}

	return r.GetStyle(ctx, style.Name)
}

// GetStyle returns the style named name, or [ErrStyleNotFound].
func (r *styleRepository) GetStyle(ctx context.Context, name string) (models.Style, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(styleColumns...).
		From(stylesTable).
		Where(sq.Eq{"name": name}).
		ToSql()
	if err != nil {
		return models.Style{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		style models.Style
		id    string
	)
	err = r.db.retry(ctx, func() error {
		return r.db.QueryRowContext(ctx, query, args...).
			Scan(&id, &style.Name, &style.Body, &style.Checksum, &style.CreatedAt, &style.UpdatedAt)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.Style{}, ErrStyleNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*styleRepository.GetStyle").Msg("error selecting style")
		return models.Style{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if style.ID, err = uuid.Parse(id); err != nil {
		return models.Style{}, fmt.Errorf("%w: bad id %q: %w", ErrScanningRow, id, err)
	}
	return style, nil
}

// ListStyles returns a summary of every style ordered by name.
func (r *styleRepository) ListStyles(ctx context.Context) ([]models.StyleSummary, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select("name", "checksum", "updated_at").
		From(stylesTable).
		OrderBy("name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var summaries []models.StyleSummary
	err = r.db.retry(ctx, func() error {
		summaries = make([]models.StyleSummary, 0)

		rows, queryErr := r.db.QueryContext(ctx, query, args...)
		if queryErr != nil {
			return queryErr
		}
		defer rows.Close()

		for rows.Next() {
			var s models.StyleSummary
			if scanErr := rows.Scan(&s.Name, &s.Checksum, &s.UpdatedAt); scanErr != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
			}
			summaries = append(summaries, s)
		}
		return rows.Err()
	})
	if err != nil {
		log.Err(err).Str("func", "*styleRepository.ListStyles").Msg("error listing styles")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return summaries, nil
}

// DeleteStyle removes the style named name, or returns [ErrStyleNotFound].
func (r *styleRepository) DeleteStyle(ctx context.Context, name string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Delete(stylesTable).
		Where(sq.Eq{"name": name}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var affected int64
	err = r.db.retry(ctx, func() error {
		res, execErr := r.db.ExecContext(ctx, query, args...)
		if execErr != nil {
			return execErr
		}
		affected, execErr = res.RowsAffected()
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "*styleRepository.DeleteStyle").Msg("error deleting style")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrStyleNotFound
	}
	return nil
}
