// SPDX-License-Identifier: Apache-2.0

package store

import "github.com/MKhiriev/go-area-keeper/models"

const (
	createUser = `INSERT INTO users (login, name, password_hash)
	VALUES ($1, $2, $3)
	RETURNING user_id, login, name, password_hash, created_at;`

	findUserByLogin = `SELECT user_id, login, name, password_hash, created_at
	FROM users
	WHERE login = $1;`

	createArea = `INSERT INTO areas (id, owner_id, name, notes, category_code, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, now(), now())
	RETURNING id, owner_id, name, notes, category_code, created_at, updated_at;`

	getAreaByOwner = `SELECT id, owner_id, name, notes, category_code, created_at, updated_at
	FROM areas
	WHERE id = $1 AND owner_id = $2;`

	updateAreaByOwner = `UPDATE areas
	SET name = $1, notes = $2, category_code = $3, updated_at = now()
	WHERE id = $4 AND owner_id = $5
	RETURNING id, owner_id, name, notes, category_code, created_at, updated_at;`

	deleteAreaByOwner = `DELETE FROM areas WHERE id = $1 AND owner_id = $2;`

	getCategories = `SELECT code, label FROM categories;`
)

// serverAreaColumns is the column list used by the squirrel-built listing
// query. Must stay in sync with scanServerArea.
var serverAreaColumns = []string{"id", "owner_id", "name", "notes", "category_code", "created_at", "updated_at"}

func scanServerArea(row rowScanner) (models.Area, error) {
	var area models.Area

	err := row.Scan(
		&area.ID,
		&area.OwnerID,
		&area.Name,
		&area.Notes,
		&area.CategoryCode,
		&area.CreatedAt,
		&area.UpdatedAt,
	)
	if err != nil {
		return models.Area{}, err
	}

	return area, nil
}
