package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-area-keeper/internal/logger"
	"github.com/MKhiriev/go-area-keeper/models"
)

// areaRepository is the PostgreSQL-backed implementation of [AreaRepository].
// Transient driver failures (lost connection, deadlock rollback) are retried
// once, guided by the database's error classificator.
type areaRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewAreaRepository(db *DB, logger *logger.Logger) AreaRepository {
	logger.Debug().Msg("creating area repository")
	return &areaRepository{
		db:     db,
		logger: logger,
	}
}

func (r *areaRepository) CreateArea(ctx context.Context, area models.Area) (models.Area, error) {
	log := logger.FromContext(ctx)

	var created models.Area
	err := r.withRetry(ctx, func() error {
		row := r.db.QueryRowContext(ctx, createArea, area.ID, area.OwnerID, area.Name, area.Notes, area.CategoryCode)
		var scanErr error
		created, scanErr = scanServerArea(row)
		return scanErr
	})
	if err != nil {
		log.Err(err).Str("func", "*areaRepository.CreateArea").Msg("error saving area")
		return models.Area{}, fmt.Errorf("%w: %w", ErrAreaNotSaved, err)
	}

	return created, nil
}

func (r *areaRepository) GetArea(ctx context.Context, ownerID int64, id string) (models.Area, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, getAreaByOwner, id, ownerID)
	area, err := scanServerArea(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Area{}, ErrAreaNotFound
		}
		log.Err(err).Str("func", "*areaRepository.GetArea").Msg("error reading area")
		return models.Area{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return area, nil
}

func (r *areaRepository) ListAreas(ctx context.Context, ownerID int64, page, limit int, search string) ([]models.Area, int, error) {
	log := logger.FromContext(ctx)

	filter := sq.And{sq.Eq{"owner_id": ownerID}}
	if search != "" {
		filter = append(filter, sq.ILike{"name": "%" + search + "%"})
	}

	countQuery, countArgs, err := sq.Select("count(*)").
		From(models.Area{}.TableName()).
		Where(filter).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int
	if err = r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		log.Err(err).Str("func", "*areaRepository.ListAreas").Msg("error counting areas")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	listQuery, listArgs, err := sq.Select(serverAreaColumns...).
		From(models.Area{}.TableName()).
		Where(filter).
		OrderBy("name ASC", "id ASC").
		Limit(uint64(limit)).
		Offset(uint64(page * limit)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, listQuery, listArgs...)
	if err != nil {
		log.Err(err).Str("func", "*areaRepository.ListAreas").Msg("error listing areas")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var areas []models.Area
	for rows.Next() {
		area, scanErr := scanServerArea(rows)
		if scanErr != nil {
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		areas = append(areas, area)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return areas, total, nil
}

func (r *areaRepository) UpdateArea(ctx context.Context, ownerID int64, id string, patch models.AreaPatch) (models.Area, error) {
	log := logger.FromContext(ctx)

	current, err := r.GetArea(ctx, ownerID, id)
	if err != nil {
		return models.Area{}, err
	}

	if patch.Name != nil {
		current.Name = *patch.Name
	}
	if patch.Notes != nil {
		current.Notes = *patch.Notes
	}
	if patch.CategoryCode != nil {
		current.CategoryCode = *patch.CategoryCode
	}

	row := r.db.QueryRowContext(ctx, updateAreaByOwner, current.Name, current.Notes, current.CategoryCode, id, ownerID)
	updated, err := scanServerArea(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Area{}, ErrAreaNotFound
		}
		log.Err(err).Str("func", "*areaRepository.UpdateArea").Msg("error updating area")
		return models.Area{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return updated, nil
}

func (r *areaRepository) DeleteArea(ctx context.Context, ownerID int64, id string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteAreaByOwner, id, ownerID)
	if err != nil {
		log.Err(err).Str("func", "*areaRepository.DeleteArea").Msg("error deleting area")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrAreaNotFound
	}

	return nil
}

func (r *areaRepository) Categories(ctx context.Context) (models.CategoryMap, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getCategories)
	if err != nil {
		log.Err(err).Str("func", "*areaRepository.Categories").Msg("error querying categories")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	categories := make(models.CategoryMap)
	for rows.Next() {
		var code, label string
		if err = rows.Scan(&code, &label); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		categories[code] = label
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return categories, nil
}

// withRetry runs op and repeats it once when the failure is classified as
// transient.
func (r *areaRepository) withRetry(ctx context.Context, op func() error) error {
	err := op()
	if err == nil || r.db.errorClassificator.Classify(err) == NonRetryable {
		return err
	}
	if ctx.Err() != nil {
		return err
	}

	r.logger.Debug().Err(err).Msg("retrying transient database error")
	return op()
}
