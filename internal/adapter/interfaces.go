// SPDX-License-Identifier: Apache-2.0

// Package adapter provides the transport layer used by the client to talk to
// the area-keeper server.
//
// The primary abstraction is [AreaServerAdapter], which decouples the sync
// engine from the wire protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError, and transport-level failures (no HTTP response at all) are
// classified as [ErrServerUnavailable] so that the engine can distinguish the
// connectivity-failure class from server-side rejections with [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-area-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/area_server_adapter_mock.go -package=mock

// AreaServerAdapter defines transport-agnostic communication with the
// area-keeper server. Implementations are responsible for serialisation,
// authentication header management, and mapping transport errors to the
// sentinel values defined in this package.
type AreaServerAdapter interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests. Called after a successful Register or Login.
	SetToken(token string)

	// Token returns the bearer token currently held by the adapter, or an
	// empty string if none has been set.
	Token() string

	// Register creates a new account on the server. On success the returned
	// bearer token is stored via SetToken.
	Register(ctx context.Context, user models.User) (models.User, error)

	// Login authenticates the user. On success the returned bearer token is
	// stored via SetToken and the server-side user record is returned.
	Login(ctx context.Context, user models.User) (models.User, error)

	// GetCategories fetches the static category reference map.
	GetCategories(ctx context.Context) (models.CategoryMap, error)

	// GetAreas fetches one page of the caller's areas. search filters by
	// name; an empty search returns the unfiltered listing. The returned
	// envelope's NoAreas field is true when the user owns no areas at all.
	GetAreas(ctx context.Context, page, limit int, search string) (models.AreaPage, error)

	// GetArea fetches a single area by its server-side identifier.
	GetArea(ctx context.Context, id string) (models.Area, error)

	// CreateArea persists a new area and returns the canonical record with
	// the server-assigned identifier and timestamps. The ID of the argument
	// is ignored by the server.
	CreateArea(ctx context.Context, area models.Area) (models.Area, error)

	// UpdateArea applies a partial update and returns the canonical record.
	UpdateArea(ctx context.Context, id string, patch models.AreaPatch) (models.Area, error)

	// DeleteArea removes the area identified by id.
	DeleteArea(ctx context.Context, id string) error
}
