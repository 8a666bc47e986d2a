package store

import (
	"context"

	"github.com/MKhiriev/go-area-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/area_cache_mock.go -package=mock

// AreaCache is the local resource cache consumed by the sync engine. It owns
// all persisted client-side state; the engine holds no resource state of its
// own.
//
// The cache tracks a pending-flag set per record (see [models.PendingFlags]).
// Records without flags are clean: known consistent with the server as of the
// last fetch.
type AreaCache interface {
	// SetCategories replaces the cached category reference map.
	SetCategories(ctx context.Context, categories models.CategoryMap) error

	// Categories returns the cached category map. An empty (possibly nil)
	// map is returned when nothing has been cached yet.
	Categories(ctx context.Context) (models.CategoryMap, error)

	// CategoryText resolves a category code to its display text. The bool is
	// false when the code is unknown.
	CategoryText(ctx context.Context, code string) (string, bool, error)

	// ClearListing invalidates the materialized listing: every clean record
	// is dropped so stale entries beyond a fresh server page are not shown.
	// Records carrying pending flags survive.
	ClearListing(ctx context.Context) error

	// SaveArea upserts a canonical server record. Any pending flags on an
	// existing row are cleared: the record is consistent again.
	SaveArea(ctx context.Context, area models.Area) error

	// GetArea returns the cached record by id, or [ErrAreaNotFound].
	GetArea(ctx context.Context, id string) (models.Area, error)

	// GetPaginated returns one page of the cached listing ordered by name.
	// search filters by a case-insensitive substring of the name. Records
	// flagged as pending-deleted are never listed. cachedOnly marks reads
	// that serve an offline fallback; the cache serves both the same way.
	GetPaginated(ctx context.Context, page, limit int, cachedOnly bool, search string) ([]models.Area, error)

	// AddOffline inserts a locally created record flagged
	// [models.PendingAdded].
	AddOffline(ctx context.Context, area models.Area) error

	// PatchOffline applies a field patch to the cached record and adds the
	// [models.PendingUpdated] flag. The record must exist.
	PatchOffline(ctx context.Context, id string, patch models.AreaPatch) error

	// DeleteArea removes the record outright.
	DeleteArea(ctx context.Context, id string) error

	// DeleteOffline soft-deletes the record: the row is kept but flagged
	// [models.PendingDeleted].
	DeleteOffline(ctx context.Context, id string) error

	// ClearPendingFlags marks the record clean.
	ClearPendingFlags(ctx context.Context, id string) error

	// ListPending enumerates every record carrying at least one pending flag.
	ListPending(ctx context.Context) ([]models.Area, error)
}
