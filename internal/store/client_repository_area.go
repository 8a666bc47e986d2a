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

type areaCacheRepository struct {
	*ClientDB
	logger *logger.Logger
}

// NewAreaCache constructs the SQLite-backed [AreaCache].
func NewAreaCache(db *ClientDB, logger *logger.Logger) AreaCache {
	return &areaCacheRepository{
		ClientDB: db,
		logger:   logger,
	}
}

func (c *areaCacheRepository) SetCategories(ctx context.Context, categories models.CategoryMap) error {
	log := logger.FromContext(ctx)

	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "areaCacheRepository.SetCategories").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deleteAllCategories); err != nil {
		return fmt.Errorf("failed to clear categories: %w", err)
	}
	for code, label := range categories {
		if _, err = tx.ExecContext(ctx, insertCategory, code, label); err != nil {
			return fmt.Errorf("failed to save category %s: %w", code, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}
	return nil
}

func (c *areaCacheRepository) Categories(ctx context.Context) (models.CategoryMap, error) {
	log := logger.FromContext(ctx)

	rows, err := c.DB.QueryContext(ctx, getAllCategories)
	if err != nil {
		log.Err(err).Str("func", "areaCacheRepository.Categories").Msg("failed to query categories")
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
		return nil, fmt.Errorf("error iterating category rows: %w", err)
	}

	return categories, nil
}

func (c *areaCacheRepository) CategoryText(ctx context.Context, code string) (string, bool, error) {
	var label string
	err := c.DB.QueryRowContext(ctx, getCategoryLabel, code).Scan(&label)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return label, true, nil
}

func (c *areaCacheRepository) ClearListing(ctx context.Context) error {
	if _, err := c.DB.ExecContext(ctx, clearCleanAreas); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "areaCacheRepository.ClearListing").
			Msg("failed to clear cached listing")
		return fmt.Errorf("failed to clear cached listing: %w", err)
	}
	return nil
}

func (c *areaCacheRepository) SaveArea(ctx context.Context, area models.Area) error {
	log := logger.FromContext(ctx)

	_, err := c.DB.ExecContext(ctx, upsertArea,
		area.ID,
		area.OwnerID,
		area.Name,
		area.Notes,
		area.CategoryCode,
		area.CreatedAt,
		area.UpdatedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "areaCacheRepository.SaveArea").
			Str("area_id", area.ID).
			Msg("failed to execute upsert for area")
		return fmt.Errorf("failed to save area (id=%s): %w", area.ID, err)
	}

	return nil
}

func (c *areaCacheRepository) GetArea(ctx context.Context, id string) (models.Area, error) {
	log := logger.FromContext(ctx)

	area, err := scanArea(c.DB.QueryRowContext(ctx, getAreaByID, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Area{}, ErrAreaNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "areaCacheRepository.GetArea").
			Str("area_id", id).
			Msg("failed to scan area row")
		return models.Area{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return area, nil
}

func (c *areaCacheRepository) GetPaginated(ctx context.Context, page, limit int, cachedOnly bool, search string) ([]models.Area, error) {
	log := logger.FromContext(ctx)

	if page < 0 || limit <= 0 {
		return nil, nil
	}

	builder := sq.Select(areaColumns...).
		From(models.Area{}.TableName()).
		Where("pending & ? = 0", uint8(models.PendingDeleted)).
		OrderBy("name COLLATE NOCASE ASC", "id ASC").
		Limit(uint64(limit)).
		Offset(uint64(page * limit))
	if search != "" {
		builder = builder.Where(sq.Like{"name": "%" + search + "%"})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := c.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "areaCacheRepository.GetPaginated").
			Int("page", page).
			Msg("failed to query cached listing")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var areas []models.Area
	for rows.Next() {
		area, scanErr := scanArea(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		areas = append(areas, area)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating area rows: %w", err)
	}

	return areas, nil
}

func (c *areaCacheRepository) AddOffline(ctx context.Context, area models.Area) error {
	log := logger.FromContext(ctx)

	_, err := c.DB.ExecContext(ctx, insertAreaOffline,
		area.ID,
		area.OwnerID,
		area.Name,
		area.Notes,
		area.CategoryCode,
		area.CreatedAt,
		area.UpdatedAt,
		uint8(models.PendingAdded),
	)
	if err != nil {
		log.Err(err).
			Str("func", "areaCacheRepository.AddOffline").
			Str("area_id", area.ID).
			Msg("failed to insert offline-created area")
		return fmt.Errorf("failed to add area offline (id=%s): %w", area.ID, err)
	}

	return nil
}

func (c *areaCacheRepository) PatchOffline(ctx context.Context, id string, patch models.AreaPatch) error {
	log := logger.FromContext(ctx)

	area, err := c.GetArea(ctx, id)
	if err != nil {
		return err
	}

	if patch.Name != nil {
		area.Name = *patch.Name
	}
	if patch.Notes != nil {
		area.Notes = *patch.Notes
	}
	if patch.CategoryCode != nil {
		area.CategoryCode = *patch.CategoryCode
	}
	pending := area.Pending.With(models.PendingUpdated)

	res, err := c.DB.ExecContext(ctx, updateAreaFields,
		area.Name,
		area.Notes,
		area.CategoryCode,
		uint8(pending),
		id,
	)
	if err != nil {
		log.Err(err).
			Str("func", "areaCacheRepository.PatchOffline").
			Str("area_id", id).
			Msg("failed to record offline patch")
		return fmt.Errorf("failed to patch area offline (id=%s): %w", id, err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrAreaNotFound
	}

	return nil
}

func (c *areaCacheRepository) DeleteArea(ctx context.Context, id string) error {
	if _, err := c.DB.ExecContext(ctx, deleteAreaByID, id); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "areaCacheRepository.DeleteArea").
			Str("area_id", id).
			Msg("failed to delete area")
		return fmt.Errorf("failed to delete area (id=%s): %w", id, err)
	}
	return nil
}

func (c *areaCacheRepository) DeleteOffline(ctx context.Context, id string) error {
	area, err := c.GetArea(ctx, id)
	if err != nil {
		return err
	}

	return c.setPending(ctx, id, area.Pending.With(models.PendingDeleted))
}

func (c *areaCacheRepository) ClearPendingFlags(ctx context.Context, id string) error {
	return c.setPending(ctx, id, 0)
}

func (c *areaCacheRepository) ListPending(ctx context.Context) ([]models.Area, error) {
	log := logger.FromContext(ctx)

	rows, err := c.DB.QueryContext(ctx, listPendingAreas)
	if err != nil {
		log.Err(err).Str("func", "areaCacheRepository.ListPending").Msg("failed to query pending areas")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var areas []models.Area
	for rows.Next() {
		area, scanErr := scanArea(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		areas = append(areas, area)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating pending area rows: %w", err)
	}

	return areas, nil
}

func (c *areaCacheRepository) setPending(ctx context.Context, id string, pending models.PendingFlags) error {
	res, err := c.DB.ExecContext(ctx, setPendingFlags, uint8(pending), id)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "areaCacheRepository.setPending").
			Str("area_id", id).
			Stringer("pending", pending).
			Msg("failed to update pending flags")
		return fmt.Errorf("failed to update pending flags (id=%s): %w", id, err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrAreaNotFound
	}
	return nil
}
