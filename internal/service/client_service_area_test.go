// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-area-keeper/internal/adapter"
	"github.com/MKhiriev/go-area-keeper/internal/events"
	"github.com/MKhiriev/go-area-keeper/internal/logger"
	"github.com/MKhiriev/go-area-keeper/internal/mock"
	"github.com/MKhiriev/go-area-keeper/internal/store"
	"github.com/MKhiriev/go-area-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// eventRecorder собирает все события шины в порядке публикации.
type eventRecorder struct {
	published []events.Event
}

func (r *eventRecorder) record(e events.Event) {
	r.published = append(r.published, e)
}

func (r *eventRecorder) syncDones() []events.Event {
	var matched []events.Event
	for _, e := range r.published {
		if _, ok := e.(events.SyncDone); ok {
			matched = append(matched, e)
		}
	}
	return matched
}

func newTestAreaSvc(
	t *testing.T,
	ctrl *gomock.Controller,
) (
	*areaSyncService,
	*mock.MockAreaCache,
	*mock.MockAreaServerAdapter,
	*mock.MockCurrentUserProvider,
	*eventRecorder,
) {
	t.Helper()
	mockCache := mock.NewMockAreaCache(ctrl)
	mockAdapter := mock.NewMockAreaServerAdapter(ctrl)
	mockUsers := mock.NewMockCurrentUserProvider(ctrl)

	bus := events.NewBus()
	recorder := &eventRecorder{}
	bus.Subscribe(recorder.record)

	log := logger.Nop()
	svc := NewAreaSyncService(mockCache, mockAdapter, mockUsers, bus, log).(*areaSyncService)

	return svc, mockCache, mockAdapter, mockUsers, recorder
}

func testArea(id string, pending models.PendingFlags) models.Area {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	name := "North field"
	return models.Area{
		ID:           id,
		OwnerID:      42,
		Name:         name,
		Notes:        "irrigated",
		CategoryCode: "rural",
		CreatedAt:    &now,
		UpdatedAt:    &now,
		Pending:      pending,
	}
}

// ── FetchCategories ──────────────────────────────────────────────────────────

func TestAreaSyncService_FetchCategories_RefreshesCacheWhenOnline(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mockCache, mockAdapter, _, recorder := newTestAreaSvc(t, ctrl)

	remote := models.CategoryMap{"rural": "Rural land", "mixed": "Mixed use"}
	mockAdapter.EXPECT().GetCategories(gomock.Any()).Return(remote, nil)
	mockCache.EXPECT().SetCategories(gomock.Any(), remote).Return(nil)
	mockCache.EXPECT().Categories(gomock.Any()).Return(remote, nil)

	got, err := svc.FetchCategories(context.Background())

	require.NoError(t, err)
	assert.Equal(t, remote, got)
	assert.Empty(t, recorder.published)
}

func TestAreaSyncService_FetchCategories_ServesCacheWhenUnreachable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mockCache, mockAdapter, _, recorder := newTestAreaSvc(t, ctrl)

	cached := models.CategoryMap{"rural": "Rural land"}
	mockAdapter.EXPECT().GetCategories(gomock.Any()).Return(nil, adapter.ErrServerUnavailable)
	mockCache.EXPECT().Categories(gomock.Any()).Return(cached, nil)

	got, err := svc.FetchCategories(context.Background())

	require.NoError(t, err)
	assert.Equal(t, cached, got)
	assert.Empty(t, recorder.published, "connectivity fallback is silent")
}

func TestAreaSyncService_FetchCategories_OperationErrorEmitsEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mockCache, mockAdapter, _, recorder := newTestAreaSvc(t, ctrl)

	mockAdapter.EXPECT().GetCategories(gomock.Any()).Return(nil, adapter.ErrInternalServerError)
	mockCache.EXPECT().Categories(gomock.Any()).Return(models.CategoryMap{"rural": "Rural land"}, nil)

	got, err := svc.FetchCategories(context.Background())

	require.ErrorIs(t, err, adapter.ErrInternalServerError)
	assert.Equal(t, models.CategoryMap{"rural": "Rural land"}, got, "cached map still returned alongside the error")
	require.Len(t, recorder.published, 1)
	failure, ok := recorder.published[0].(events.CategoriesError)
	require.True(t, ok)
	assert.ErrorIs(t, failure.Err, adapter.ErrInternalServerError)
}

// ── FetchPage ────────────────────────────────────────────────────────────────

func TestAreaSyncService_FetchPage_OnlineRefreshesListing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mockCache, mockAdapter, _, recorder := newTestAreaSvc(t, ctrl)

	first := testArea("srv-1", 0)
	second := testArea("srv-2", 0)
	mockAdapter.EXPECT().GetAreas(gomock.Any(), 0, 10, "").
		Return(models.AreaPage{Items: []models.Area{first, second}}, nil)
	mockCache.EXPECT().ClearListing(gomock.Any()).Return(nil)
	mockCache.EXPECT().SaveArea(gomock.Any(), first).Return(nil)
	mockCache.EXPECT().SaveArea(gomock.Any(), second).Return(nil)
	mockCache.EXPECT().GetPaginated(gomock.Any(), 0, 10, false, "").
		Return([]models.Area{first, second}, nil)

	areas, ok, err := svc.FetchPage(context.Background(), 0, 10, "")

	require.NoError(t, err)
	assert.True(t, ok)
	assert.Len(t, areas, 2)
	assert.Empty(t, recorder.published)
}

func TestAreaSyncService_FetchPage_LaterPagesKeepListing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mockCache, mockAdapter, _, _ := newTestAreaSvc(t, ctrl)

	area := testArea("srv-3", 0)
	mockAdapter.EXPECT().GetAreas(gomock.Any(), 2, 10, "").
		Return(models.AreaPage{Items: []models.Area{area}}, nil)
	// ClearListing не вызывается: инвалидация только на первой странице без поиска
	mockCache.EXPECT().SaveArea(gomock.Any(), area).Return(nil)
	mockCache.EXPECT().GetPaginated(gomock.Any(), 2, 10, false, "").
		Return([]models.Area{area}, nil)

	_, ok, err := svc.FetchPage(context.Background(), 2, 10, "")

	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAreaSyncService_FetchPage_ServerEmptyFirstPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, _, mockAdapter, _, recorder := newTestAreaSvc(t, ctrl)

	mockAdapter.EXPECT().GetAreas(gomock.Any(), 0, 10, "").
		Return(models.AreaPage{NoAreas: true}, nil)

	areas, ok, err := svc.FetchPage(context.Background(), 0, 10, "")

	require.NoError(t, err)
	assert.False(t, ok, "empty account is reported, not treated as an empty cache page")
	assert.Nil(t, areas)
	assert.Empty(t, recorder.published)
}

func TestAreaSyncService_FetchPage_UnreachableServesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mockCache, mockAdapter, _, recorder := newTestAreaSvc(t, ctrl)

	cached := testArea("local-1", models.PendingAdded)
	mockAdapter.EXPECT().GetAreas(gomock.Any(), 1, 10, "field").
		Return(models.AreaPage{}, adapter.ErrServerUnavailable)
	mockCache.EXPECT().GetPaginated(gomock.Any(), 1, 10, true, "field").
		Return([]models.Area{cached}, nil)

	areas, ok, err := svc.FetchPage(context.Background(), 1, 10, "field")

	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []models.Area{cached}, areas)
	require.Len(t, recorder.published, 1)
	netErr, isNetErr := recorder.published[0].(events.PageNetworkError)
	require.True(t, isNetErr)
	assert.Equal(t, 1, netErr.Page)
}

func TestAreaSyncService_FetchPage_OperationErrorEmitsEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, _, mockAdapter, _, recorder := newTestAreaSvc(t, ctrl)

	mockAdapter.EXPECT().GetAreas(gomock.Any(), 0, 10, "").
		Return(models.AreaPage{}, adapter.ErrForbidden)

	_, _, err := svc.FetchPage(context.Background(), 0, 10, "")

	require.ErrorIs(t, err, adapter.ErrForbidden)
	require.Len(t, recorder.published, 1)
	pageErr, isPageErr := recorder.published[0].(events.PageError)
	require.True(t, isPageErr)
	assert.Equal(t, 0, pageErr.Page)
}

// ── FetchDetails ─────────────────────────────────────────────────────────────

func TestAreaSyncService_FetchDetails_OnlineCachesRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mockCache, mockAdapter, _, _ := newTestAreaSvc(t, ctrl)

	area := testArea("srv-1", 0)
	mockAdapter.EXPECT().GetArea(gomock.Any(), "srv-1").Return(area, nil)
	mockCache.EXPECT().SaveArea(gomock.Any(), area).Return(nil)
	mockCache.EXPECT().GetArea(gomock.Any(), "srv-1").Return(area, nil)

	got, err := svc.FetchDetails(context.Background(), "srv-1")

	require.NoError(t, err)
	assert.Equal(t, area, got)
}

func TestAreaSyncService_FetchDetails_UnreachableFallsBackToCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mockCache, mockAdapter, _, recorder := newTestAreaSvc(t, ctrl)

	cached := testArea("srv-1", models.PendingUpdated)
	mockAdapter.EXPECT().GetArea(gomock.Any(), "srv-1").Return(models.Area{}, adapter.ErrServerUnavailable)
	mockCache.EXPECT().GetArea(gomock.Any(), "srv-1").Return(cached, nil)

	got, err := svc.FetchDetails(context.Background(), "srv-1")

	require.NoError(t, err)
	assert.Equal(t, cached, got)
	assert.Empty(t, recorder.published)
}

func TestAreaSyncService_FetchDetails_OperationErrorEmitsEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, _, mockAdapter, _, recorder := newTestAreaSvc(t, ctrl)

	mockAdapter.EXPECT().GetArea(gomock.Any(), "srv-9").Return(models.Area{}, adapter.ErrNotFound)

	_, err := svc.FetchDetails(context.Background(), "srv-9")

	require.ErrorIs(t, err, store.ErrAreaNotFound)
	require.Len(t, recorder.published, 1)
	detailsErr, isDetailsErr := recorder.published[0].(events.DetailsError)
	require.True(t, isDetailsErr)
	assert.Equal(t, "srv-9", detailsErr.ID)
}

// ── AddArea ──────────────────────────────────────────────────────────────────

func TestAreaSyncService_AddArea_Online(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mockCache, mockAdapter, _, recorder := newTestAreaSvc(t, ctrl)

	draft := models.Area{Name: "North field", CategoryCode: "rural"}
	created := testArea("srv-1", 0)
	mockAdapter.EXPECT().CreateArea(gomock.Any(), draft).Return(created, nil)
	mockCache.EXPECT().SaveArea(gomock.Any(), created).Return(nil)
	mockCache.EXPECT().GetArea(gomock.Any(), "srv-1").Return(created, nil)

	got, err := svc.AddArea(context.Background(), draft)

	require.NoError(t, err)
	assert.Equal(t, "srv-1", got.ID)
	assert.False(t, got.Pending.Any())
	require.Len(t, recorder.published, 1, "no offline-modifications event for a clean add")
	added, isAdded := recorder.published[0].(events.AreaAdded)
	require.True(t, isAdded)
	assert.Equal(t, created, added.Area)
}

func TestAreaSyncService_AddArea_OfflineAssignsLocalIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mockCache, mockAdapter, mockUsers, recorder := newTestAreaSvc(t, ctrl)

	draft := models.Area{Name: "North field", CategoryCode: "rural"}
	mockAdapter.EXPECT().CreateArea(gomock.Any(), draft).Return(models.Area{}, adapter.ErrServerUnavailable)
	mockUsers.EXPECT().CurrentUser(gomock.Any()).Return(models.User{UserID: 42}, nil)

	var stored models.Area
	mockCache.EXPECT().AddOffline(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, area models.Area) error {
			stored = area
			stored.Pending = models.PendingAdded
			return nil
		})
	mockCache.EXPECT().GetArea(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id string) (models.Area, error) {
			require.Equal(t, stored.ID, id)
			return stored, nil
		})

	got, err := svc.AddArea(context.Background(), draft)

	require.NoError(t, err)
	assert.Len(t, stored.ID, 24, "synthetic local identifier")
	assert.EqualValues(t, 42, stored.OwnerID)
	require.NotNil(t, stored.CreatedAt)
	assert.True(t, got.Pending.Has(models.PendingAdded))

	require.Len(t, recorder.published, 2)
	_, isAdded := recorder.published[0].(events.AreaAdded)
	assert.True(t, isAdded)
	_, isOffline := recorder.published[1].(events.OfflineModifications)
	assert.True(t, isOffline)
}

func TestAreaSyncService_AddArea_OperationErrorEmitsEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, _, mockAdapter, _, recorder := newTestAreaSvc(t, ctrl)

	draft := models.Area{Name: ""}
	mockAdapter.EXPECT().CreateArea(gomock.Any(), draft).Return(models.Area{}, adapter.ErrBadRequest)

	_, err := svc.AddArea(context.Background(), draft)

	require.ErrorIs(t, err, adapter.ErrBadRequest)
	require.Len(t, recorder.published, 1)
	_, isAddErr := recorder.published[0].(events.AddError)
	assert.True(t, isAddErr)
}

// ── UpdateArea ───────────────────────────────────────────────────────────────

func TestAreaSyncService_UpdateArea_Online(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mockCache, mockAdapter, _, recorder := newTestAreaSvc(t, ctrl)

	newName := "South field"
	patch := models.AreaPatch{Name: &newName}
	updated := testArea("srv-1", 0)
	updated.Name = newName
	mockAdapter.EXPECT().UpdateArea(gomock.Any(), "srv-1", patch).Return(updated, nil)
	mockCache.EXPECT().SaveArea(gomock.Any(), updated).Return(nil)
	mockCache.EXPECT().GetArea(gomock.Any(), "srv-1").Return(updated, nil)

	got, err := svc.UpdateArea(context.Background(), "srv-1", patch)

	require.NoError(t, err)
	assert.Equal(t, newName, got.Name)
	require.Len(t, recorder.published, 1)
	_, isUpdated := recorder.published[0].(events.AreaUpdated)
	assert.True(t, isUpdated)
}

func TestAreaSyncService_UpdateArea_OfflinePatchesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mockCache, mockAdapter, _, recorder := newTestAreaSvc(t, ctrl)

	newName := "South field"
	patch := models.AreaPatch{Name: &newName}
	patched := testArea("srv-1", models.PendingUpdated)
	patched.Name = newName
	mockAdapter.EXPECT().UpdateArea(gomock.Any(), "srv-1", patch).
		Return(models.Area{}, adapter.ErrServerUnavailable)
	mockCache.EXPECT().PatchOffline(gomock.Any(), "srv-1", patch).Return(nil)
	mockCache.EXPECT().GetArea(gomock.Any(), "srv-1").Return(patched, nil)

	got, err := svc.UpdateArea(context.Background(), "srv-1", patch)

	require.NoError(t, err)
	assert.True(t, got.Pending.Has(models.PendingUpdated))
	require.Len(t, recorder.published, 2)
	_, isUpdated := recorder.published[0].(events.AreaUpdated)
	assert.True(t, isUpdated)
	_, isOffline := recorder.published[1].(events.OfflineModifications)
	assert.True(t, isOffline)
}

func TestAreaSyncService_UpdateArea_OperationErrorEmitsEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, _, mockAdapter, _, recorder := newTestAreaSvc(t, ctrl)

	newName := "South field"
	patch := models.AreaPatch{Name: &newName}
	mockAdapter.EXPECT().UpdateArea(gomock.Any(), "srv-1", patch).
		Return(models.Area{}, adapter.ErrNotFound)

	_, err := svc.UpdateArea(context.Background(), "srv-1", patch)

	require.ErrorIs(t, err, adapter.ErrNotFound)
	require.Len(t, recorder.published, 1)
	updateErr, isUpdateErr := recorder.published[0].(events.UpdateError)
	require.True(t, isUpdateErr)
	assert.Equal(t, "srv-1", updateErr.ID)
}

// ── DeleteArea ───────────────────────────────────────────────────────────────

func TestAreaSyncService_DeleteArea_Online(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mockCache, mockAdapter, _, recorder := newTestAreaSvc(t, ctrl)

	mockCache.EXPECT().GetArea(gomock.Any(), "srv-1").Return(testArea("srv-1", 0), nil)
	mockAdapter.EXPECT().DeleteArea(gomock.Any(), "srv-1").Return(nil)
	mockCache.EXPECT().DeleteArea(gomock.Any(), "srv-1").Return(nil)

	err := svc.DeleteArea(context.Background(), "srv-1")

	require.NoError(t, err)
	require.Len(t, recorder.published, 1)
	deleted, isDeleted := recorder.published[0].(events.AreaDeleted)
	require.True(t, isDeleted)
	assert.Equal(t, "srv-1", deleted.ID)
}

func TestAreaSyncService_DeleteArea_OfflineMarksPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mockCache, mockAdapter, _, recorder := newTestAreaSvc(t, ctrl)

	mockCache.EXPECT().GetArea(gomock.Any(), "srv-1").Return(testArea("srv-1", 0), nil)
	mockAdapter.EXPECT().DeleteArea(gomock.Any(), "srv-1").Return(adapter.ErrServerUnavailable)
	mockCache.EXPECT().DeleteOffline(gomock.Any(), "srv-1").Return(nil)

	err := svc.DeleteArea(context.Background(), "srv-1")

	require.NoError(t, err)
	require.Len(t, recorder.published, 2)
	_, isDeleted := recorder.published[0].(events.AreaDeleted)
	assert.True(t, isDeleted)
	_, isOffline := recorder.published[1].(events.OfflineModifications)
	assert.True(t, isOffline)
}

func TestAreaSyncService_DeleteArea_LocalOnlyRecordSkipsServer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mockCache, mockAdapter, _, recorder := newTestAreaSvc(t, ctrl)

	local := testArea("abcdefabcdefabcdefabcdef", models.PendingAdded)
	mockCache.EXPECT().GetArea(gomock.Any(), local.ID).Return(local, nil)
	// сервер об этой записи не знает: DeleteArea адаптера не ожидается
	mockCache.EXPECT().DeleteArea(gomock.Any(), local.ID).Return(nil)
	mockAdapter.EXPECT().DeleteArea(gomock.Any(), gomock.Any()).Times(0)

	err := svc.DeleteArea(context.Background(), local.ID)

	require.NoError(t, err)
	require.Len(t, recorder.published, 1)
	_, isDeleted := recorder.published[0].(events.AreaDeleted)
	assert.True(t, isDeleted)
}

func TestAreaSyncService_DeleteArea_OperationErrorEmitsEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mockCache, mockAdapter, _, recorder := newTestAreaSvc(t, ctrl)

	mockCache.EXPECT().GetArea(gomock.Any(), "srv-1").Return(testArea("srv-1", 0), nil)
	mockAdapter.EXPECT().DeleteArea(gomock.Any(), "srv-1").Return(adapter.ErrForbidden)

	err := svc.DeleteArea(context.Background(), "srv-1")

	require.ErrorIs(t, err, adapter.ErrForbidden)
	require.Len(t, recorder.published, 1)
	deleteErr, isDeleteErr := recorder.published[0].(events.DeleteError)
	require.True(t, isDeleteErr)
	assert.Equal(t, "srv-1", deleteErr.ID)
}

// ── ReconcileOne ─────────────────────────────────────────────────────────────

func TestAreaSyncService_ReconcileOne_DeletedReplaysDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mockCache, mockAdapter, _, recorder := newTestAreaSvc(t, ctrl)

	area := testArea("srv-1", models.PendingDeleted)
	mockCache.EXPECT().GetArea(gomock.Any(), "srv-1").Return(area, nil)
	mockAdapter.EXPECT().DeleteArea(gomock.Any(), "srv-1").Return(nil)
	mockCache.EXPECT().DeleteArea(gomock.Any(), "srv-1").Return(nil)

	err := svc.ReconcileOne(context.Background(), area)

	require.NoError(t, err)
	assert.Empty(t, recorder.published, "replays never notify per record")
}

func TestAreaSyncService_ReconcileOne_DeletedWinsOverUpdated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mockCache, mockAdapter, _, _ := newTestAreaSvc(t, ctrl)

	area := testArea("srv-1", models.PendingUpdated|models.PendingDeleted)
	mockCache.EXPECT().GetArea(gomock.Any(), "srv-1").Return(area, nil)
	mockAdapter.EXPECT().DeleteArea(gomock.Any(), "srv-1").Return(nil)
	mockCache.EXPECT().DeleteArea(gomock.Any(), "srv-1").Return(nil)
	mockAdapter.EXPECT().UpdateArea(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	err := svc.ReconcileOne(context.Background(), area)

	require.NoError(t, err)
}

func TestAreaSyncService_ReconcileOne_AddedReplacesSyntheticIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mockCache, mockAdapter, _, recorder := newTestAreaSvc(t, ctrl)

	local := testArea("abcdefabcdefabcdefabcdef", models.PendingAdded)
	created := testArea("srv-1", 0)
	created.Name = local.Name

	replayed := local
	replayed.Pending = 0
	mockAdapter.EXPECT().CreateArea(gomock.Any(), replayed).Return(created, nil)
	mockCache.EXPECT().SaveArea(gomock.Any(), created).Return(nil)
	mockCache.EXPECT().GetArea(gomock.Any(), "srv-1").Return(created, nil)

	// старая запись всё ещё несёт ADDED, поэтому её удаление остаётся локальным
	mockCache.EXPECT().GetArea(gomock.Any(), local.ID).Return(local, nil)
	mockCache.EXPECT().DeleteArea(gomock.Any(), local.ID).Return(nil)
	mockAdapter.EXPECT().DeleteArea(gomock.Any(), gomock.Any()).Times(0)

	err := svc.ReconcileOne(context.Background(), local)

	require.NoError(t, err)
	assert.Empty(t, recorder.published)
}

func TestAreaSyncService_ReconcileOne_UpdatedReplaysFullPatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mockCache, mockAdapter, _, recorder := newTestAreaSvc(t, ctrl)

	area := testArea("srv-1", models.PendingUpdated)
	updated := testArea("srv-1", 0)
	mockAdapter.EXPECT().UpdateArea(gomock.Any(), "srv-1", area.Patch()).Return(updated, nil)
	mockCache.EXPECT().SaveArea(gomock.Any(), updated).Return(nil)
	mockCache.EXPECT().GetArea(gomock.Any(), "srv-1").Return(updated, nil)
	mockCache.EXPECT().ClearPendingFlags(gomock.Any(), "srv-1").Return(nil)

	err := svc.ReconcileOne(context.Background(), area)

	require.NoError(t, err)
	assert.Empty(t, recorder.published)
}

func TestAreaSyncService_ReconcileOne_UnreachableKeepsFlags(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mockCache, mockAdapter, _, _ := newTestAreaSvc(t, ctrl)

	area := testArea("srv-1", models.PendingUpdated)
	mockAdapter.EXPECT().UpdateArea(gomock.Any(), "srv-1", area.Patch()).
		Return(models.Area{}, adapter.ErrServerUnavailable)
	// ни PatchOffline, ни ClearPendingFlags: запись остаётся как была
	mockCache.EXPECT().PatchOffline(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	mockCache.EXPECT().ClearPendingFlags(gomock.Any(), gomock.Any()).Times(0)

	err := svc.ReconcileOne(context.Background(), area)

	require.ErrorIs(t, err, adapter.ErrServerUnavailable)
}

func TestAreaSyncService_ReconcileOne_NoFlagsIsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, _, _, _, recorder := newTestAreaSvc(t, ctrl)

	err := svc.ReconcileOne(context.Background(), testArea("srv-1", 0))

	require.NoError(t, err)
	assert.Empty(t, recorder.published)
}

// ── ReconcileAll ─────────────────────────────────────────────────────────────

func TestAreaSyncService_ReconcileAll_EmitsSingleSyncDone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mockCache, mockAdapter, _, recorder := newTestAreaSvc(t, ctrl)

	updated := testArea("srv-1", models.PendingUpdated)
	deleted := testArea("srv-2", models.PendingDeleted)
	mockCache.EXPECT().ListPending(gomock.Any()).Return([]models.Area{updated, deleted}, nil)

	mockAdapter.EXPECT().UpdateArea(gomock.Any(), "srv-1", updated.Patch()).
		Return(testArea("srv-1", 0), nil)
	mockCache.EXPECT().SaveArea(gomock.Any(), gomock.Any()).Return(nil)
	mockCache.EXPECT().GetArea(gomock.Any(), "srv-1").Return(testArea("srv-1", 0), nil)
	mockCache.EXPECT().ClearPendingFlags(gomock.Any(), "srv-1").Return(nil)

	mockCache.EXPECT().GetArea(gomock.Any(), "srv-2").Return(deleted, nil)
	mockAdapter.EXPECT().DeleteArea(gomock.Any(), "srv-2").Return(nil)
	mockCache.EXPECT().DeleteArea(gomock.Any(), "srv-2").Return(nil)

	err := svc.ReconcileAll(context.Background())

	require.NoError(t, err)
	assert.Len(t, recorder.syncDones(), 1)
}

func TestAreaSyncService_ReconcileAll_FailuresStaySilent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mockCache, mockAdapter, _, recorder := newTestAreaSvc(t, ctrl)

	first := testArea("srv-1", models.PendingUpdated)
	second := testArea("srv-2", models.PendingUpdated)
	mockCache.EXPECT().ListPending(gomock.Any()).Return([]models.Area{first, second}, nil)

	mockAdapter.EXPECT().UpdateArea(gomock.Any(), "srv-1", first.Patch()).
		Return(models.Area{}, adapter.ErrServerUnavailable)
	// второй элемент обрабатывается несмотря на сбой первого
	mockAdapter.EXPECT().UpdateArea(gomock.Any(), "srv-2", second.Patch()).
		Return(testArea("srv-2", 0), nil)
	mockCache.EXPECT().SaveArea(gomock.Any(), gomock.Any()).Return(nil)
	mockCache.EXPECT().GetArea(gomock.Any(), "srv-2").Return(testArea("srv-2", 0), nil)
	mockCache.EXPECT().ClearPendingFlags(gomock.Any(), "srv-2").Return(nil)

	err := svc.ReconcileAll(context.Background())

	require.NoError(t, err)
	assert.Len(t, recorder.syncDones(), 1, "exactly one sync-done per pass")
}

func TestAreaSyncService_ReconcileAll_ListErrorStillEmitsSyncDone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mockCache, _, _, recorder := newTestAreaSvc(t, ctrl)

	listErr := errors.New("database is locked")
	mockCache.EXPECT().ListPending(gomock.Any()).Return(nil, listErr)

	err := svc.ReconcileAll(context.Background())

	require.ErrorIs(t, err, listErr)
	assert.Len(t, recorder.syncDones(), 1)
}

func TestAreaSyncService_ReconcileAll_NothingPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mockCache, _, _, recorder := newTestAreaSvc(t, ctrl)

	mockCache.EXPECT().ListPending(gomock.Any()).Return(nil, nil)

	err := svc.ReconcileAll(context.Background())

	require.NoError(t, err)
	assert.Len(t, recorder.syncDones(), 1)
}
