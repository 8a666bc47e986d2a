// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-area-keeper/internal/logger"
	"github.com/MKhiriev/go-area-keeper/models"
)

func newTestAreaCache(t *testing.T) (*areaCacheRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	l := logger.Nop()
	cache := &areaCacheRepository{
		ClientDB: &ClientDB{DB: db, logger: l},
		logger:   l,
	}
	return cache, mock, db
}

func cachedAreaRows(areas ...models.Area) *sqlmock.Rows {
	rows := sqlmock.NewRows(areaColumns)
	now := time.Now()
	for _, a := range areas {
		rows.AddRow(a.ID, a.OwnerID, a.Name, a.Notes, a.CategoryCode, now, now, uint8(a.Pending))
	}
	return rows
}

func TestSaveArea_UpsertClearsPending(t *testing.T) {
	cache, mock, db := newTestAreaCache(t)
	defer db.Close()

	area := models.Area{ID: "a1", OwnerID: 7, Name: "North field"}

	mock.ExpectExec("INSERT INTO areas").
		WithArgs(area.ID, area.OwnerID, area.Name, area.Notes, area.CategoryCode, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, cache.SaveArea(context.Background(), area))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCacheGetArea_NotFound(t *testing.T) {
	cache, mock, db := newTestAreaCache(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id, owner_id, name, notes, category_code").
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := cache.GetArea(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrAreaNotFound)
}

func TestCacheGetArea_RestoresPendingFlags(t *testing.T) {
	cache, mock, db := newTestAreaCache(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id, owner_id, name, notes, category_code").
		WithArgs("a1").
		WillReturnRows(cachedAreaRows(models.Area{ID: "a1", OwnerID: 7, Name: "North field", Pending: models.PendingAdded}))

	area, err := cache.GetArea(context.Background(), "a1")
	require.NoError(t, err)
	assert.True(t, area.Pending.Has(models.PendingAdded))
}

func TestAddOffline_StampsAddedFlag(t *testing.T) {
	cache, mock, db := newTestAreaCache(t)
	defer db.Close()

	area := models.Area{ID: "local-1", OwnerID: 7, Name: "Offline field"}

	mock.ExpectExec("INSERT INTO areas").
		WithArgs(area.ID, area.OwnerID, area.Name, area.Notes, area.CategoryCode,
			sqlmock.AnyArg(), sqlmock.AnyArg(), uint8(models.PendingAdded)).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, cache.AddOffline(context.Background(), area))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPatchOffline_MergesAndAddsUpdatedFlag(t *testing.T) {
	cache, mock, db := newTestAreaCache(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id, owner_id, name, notes, category_code").
		WithArgs("a1").
		WillReturnRows(cachedAreaRows(models.Area{ID: "a1", OwnerID: 7, Name: "Old", Notes: "keep"}))

	// имя берётся из патча, заметки — из кэшированной строки
	mock.ExpectExec("UPDATE areas").
		WithArgs("New", "keep", "", uint8(models.PendingUpdated), "a1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	newName := "New"
	require.NoError(t, cache.PatchOffline(context.Background(), "a1", models.AreaPatch{Name: &newName}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPatchOffline_KeepsExistingAddedFlag(t *testing.T) {
	cache, mock, db := newTestAreaCache(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id, owner_id, name, notes, category_code").
		WithArgs("local-1").
		WillReturnRows(cachedAreaRows(models.Area{ID: "local-1", Name: "Offline", Pending: models.PendingAdded}))

	wantPending := models.PendingAdded.With(models.PendingUpdated)
	mock.ExpectExec("UPDATE areas").
		WithArgs("Renamed", "", "", uint8(wantPending), "local-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	newName := "Renamed"
	require.NoError(t, cache.PatchOffline(context.Background(), "local-1", models.AreaPatch{Name: &newName}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteOffline_SetsDeletedFlag(t *testing.T) {
	cache, mock, db := newTestAreaCache(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id, owner_id, name, notes, category_code").
		WithArgs("a1").
		WillReturnRows(cachedAreaRows(models.Area{ID: "a1", Name: "North field"}))

	mock.ExpectExec("UPDATE areas SET pending").
		WithArgs(uint8(models.PendingDeleted), "a1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, cache.DeleteOffline(context.Background(), "a1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClearPendingFlags_MarksClean(t *testing.T) {
	cache, mock, db := newTestAreaCache(t)
	defer db.Close()

	mock.ExpectExec("UPDATE areas SET pending").
		WithArgs(uint8(0), "a1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, cache.ClearPendingFlags(context.Background(), "a1"))
}

func TestClearPendingFlags_UnknownRecord(t *testing.T) {
	cache, mock, db := newTestAreaCache(t)
	defer db.Close()

	mock.ExpectExec("UPDATE areas SET pending").
		WithArgs(uint8(0), "ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := cache.ClearPendingFlags(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrAreaNotFound)
}

func TestClearListing_DropsOnlyCleanRows(t *testing.T) {
	cache, mock, db := newTestAreaCache(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM areas WHERE pending = 0").
		WillReturnResult(sqlmock.NewResult(0, 3))

	require.NoError(t, cache.ClearListing(context.Background()))
}

func TestGetPaginated_ExcludesPendingDeleted(t *testing.T) {
	cache, mock, db := newTestAreaCache(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id, owner_id, name, notes, category_code").
		WithArgs(uint8(models.PendingDeleted)).
		WillReturnRows(cachedAreaRows(
			models.Area{ID: "a1", Name: "East field"},
			models.Area{ID: "a2", Name: "North field", Pending: models.PendingUpdated},
		))

	areas, err := cache.GetPaginated(context.Background(), 0, 10, false, "")
	require.NoError(t, err)
	require.Len(t, areas, 2)
	assert.Equal(t, "East field", areas[0].Name)
}

func TestGetPaginated_SearchFilter(t *testing.T) {
	cache, mock, db := newTestAreaCache(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id, owner_id, name, notes, category_code").
		WithArgs(uint8(models.PendingDeleted), "%north%").
		WillReturnRows(cachedAreaRows(models.Area{ID: "a2", Name: "North field"}))

	areas, err := cache.GetPaginated(context.Background(), 0, 10, true, "north")
	require.NoError(t, err)
	require.Len(t, areas, 1)
	assert.Equal(t, "North field", areas[0].Name)
}

func TestGetPaginated_InvalidPagingReturnsNothing(t *testing.T) {
	cache, _, db := newTestAreaCache(t)
	defer db.Close()

	areas, err := cache.GetPaginated(context.Background(), -1, 10, false, "")
	require.NoError(t, err)
	assert.Nil(t, areas)
}

func TestListPending_ReturnsFlaggedRecords(t *testing.T) {
	cache, mock, db := newTestAreaCache(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id, owner_id, name, notes, category_code").
		WillReturnRows(cachedAreaRows(
			models.Area{ID: "a1", Name: "Deleted one", Pending: models.PendingDeleted},
			models.Area{ID: "local-1", Name: "Added one", Pending: models.PendingAdded},
		))

	areas, err := cache.ListPending(context.Background())
	require.NoError(t, err)
	require.Len(t, areas, 2)
	assert.True(t, areas[0].Pending.Has(models.PendingDeleted))
	assert.True(t, areas[1].Pending.Has(models.PendingAdded))
}

func TestSetCategories_ReplacesInTransaction(t *testing.T) {
	cache, mock, db := newTestAreaCache(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM categories").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("INSERT INTO categories").
		WithArgs("rural", "Сельская местность").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := cache.SetCategories(context.Background(), models.CategoryMap{"rural": "Сельская местность"})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetCategories_RollsBackOnInsertError(t *testing.T) {
	cache, mock, db := newTestAreaCache(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM categories").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO categories").
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := cache.SetCategories(context.Background(), models.CategoryMap{"rural": "Сельская местность"})
	assert.Error(t, err)
}

func TestCategoryText_UnknownCode(t *testing.T) {
	cache, mock, db := newTestAreaCache(t)
	defer db.Close()

	mock.ExpectQuery("SELECT label FROM categories").
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, ok, err := cache.CategoryText(context.Background(), "ghost")
	require.NoError(t, err)
	assert.False(t, ok)
}
