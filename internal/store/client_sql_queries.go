package store

import "github.com/MKhiriev/go-area-keeper/models"

const (
	upsertArea = `INSERT INTO areas (id, owner_id, name, notes, category_code, created_at, updated_at, pending)
	VALUES (?, ?, ?, ?, ?, ?, ?, 0)
	ON CONFLICT(id) DO UPDATE SET
		owner_id = excluded.owner_id,
		name = excluded.name,
		notes = excluded.notes,
		category_code = excluded.category_code,
		created_at = excluded.created_at,
		updated_at = excluded.updated_at,
		pending = 0;`

	insertAreaOffline = `INSERT INTO areas (id, owner_id, name, notes, category_code, created_at, updated_at, pending)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?);`

	getAreaByID = `SELECT id, owner_id, name, notes, category_code, created_at, updated_at, pending
	FROM areas
	WHERE id = ?;`

	updateAreaFields = `UPDATE areas
	SET name = ?, notes = ?, category_code = ?, pending = ?
	WHERE id = ?;`

	deleteAreaByID = `DELETE FROM areas WHERE id = ?;`

	clearCleanAreas = `DELETE FROM areas WHERE pending = 0;`

	setPendingFlags = `UPDATE areas SET pending = ? WHERE id = ?;`

	listPendingAreas = `SELECT id, owner_id, name, notes, category_code, created_at, updated_at, pending
	FROM areas
	WHERE pending != 0;`

	deleteAllCategories = `DELETE FROM categories;`

	insertCategory = `INSERT INTO categories (code, label) VALUES (?, ?)
	ON CONFLICT(code) DO UPDATE SET label = excluded.label;`

	getAllCategories = `SELECT code, label FROM categories;`

	getCategoryLabel = `SELECT label FROM categories WHERE code = ?;`
)

// areaColumns is the column list used by the squirrel-built listing query.
// Must stay in sync with scanArea.
var areaColumns = []string{"id", "owner_id", "name", "notes", "category_code", "created_at", "updated_at", "pending"}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanArea(row rowScanner) (models.Area, error) {
	var area models.Area
	var pending uint8

	err := row.Scan(
		&area.ID,
		&area.OwnerID,
		&area.Name,
		&area.Notes,
		&area.CategoryCode,
		&area.CreatedAt,
		&area.UpdatedAt,
		&pending,
	)
	if err != nil {
		return models.Area{}, err
	}

	area.Pending = models.PendingFlags(pending)
	return area, nil
}
