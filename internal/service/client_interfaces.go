package service

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_services_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/go-area-keeper/models"
)

// AreaSyncService is the client-side engine for working with areas. Every
// read prefers fresh server data and falls back to the local cache when the
// server cannot be reached; every mutation applies remotely when possible
// and records an offline pending mutation otherwise.
type AreaSyncService interface {
	// FetchCategories refreshes the category reference data from the server
	// when reachable and returns the best-known map from the cache.
	FetchCategories(ctx context.Context) (models.CategoryMap, error)
	// FetchPage returns one listing page. The bool is false only when the
	// server answered that the account holds no areas at all and the first
	// page was requested.
	FetchPage(ctx context.Context, page int, limit int, search string) ([]models.Area, bool, error)
	// FetchDetails returns a single area by ID, server-first with cache
	// fallback. Returns store.ErrAreaNotFound when neither side has it.
	FetchDetails(ctx context.Context, id string) (models.Area, error)
	// AddArea creates an area remotely, or locally under a synthetic ID
	// with the ADDED pending flag when the server is unreachable.
	AddArea(ctx context.Context, area models.Area) (models.Area, error)
	// UpdateArea applies a partial update remotely, or patches the cached
	// record with the UPDATED pending flag when the server is unreachable.
	UpdateArea(ctx context.Context, id string, patch models.AreaPatch) (models.Area, error)
	// DeleteArea removes an area remotely, or marks the cached record with
	// the DELETED pending flag when the server is unreachable. A record
	// that only ever existed locally is removed without a server call.
	DeleteArea(ctx context.Context, id string) error
	// ReconcileOne replays a single pending record against the server.
	// The record's pending flags survive on failure.
	ReconcileOne(ctx context.Context, area models.Area) error
	// ReconcileAll replays every pending record and emits exactly one
	// sync-done event when the pass completes, regardless of outcomes.
	ReconcileAll(ctx context.Context) error
}

// ClientAuthService authenticates the client against the server and keeps
// the identity of the current user for the rest of the session.
type ClientAuthService interface {
	Register(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CurrentUserProvider
}

// CurrentUserProvider supplies the logged-in user for operations that need
// an owner identity, such as recording offline additions.
type CurrentUserProvider interface {
	CurrentUser(ctx context.Context) (models.User, error)
}

// ReconcileJob periodically replays pending offline mutations.
type ReconcileJob interface {
	Start(ctx context.Context, interval time.Duration)
	Stop()
}
