package store

import (
	"context"

	"github.com/MKhiriev/go-area-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_storages_mock.go -package=mock

type UserRepository interface {
	// CreateUser persists a new account and returns the canonical record
	// with server-assigned fields. Returns [ErrLoginAlreadyExists] when the
	// login is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByLogin returns the account for login, or [ErrNoUserWasFound].
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
}

type AreaRepository interface {
	// CreateArea persists a new area for its owner and returns the stored
	// record.
	CreateArea(ctx context.Context, area models.Area) (models.Area, error)

	// GetArea returns the owner's area by id, or [ErrAreaNotFound].
	GetArea(ctx context.Context, ownerID int64, id string) (models.Area, error)

	// ListAreas returns one page of the owner's areas ordered by name plus
	// the total number of matching records. search filters by name
	// substring, case-insensitively.
	ListAreas(ctx context.Context, ownerID int64, page, limit int, search string) ([]models.Area, int, error)

	// UpdateArea applies the non-nil patch fields to the owner's area and
	// returns the updated record, or [ErrAreaNotFound].
	UpdateArea(ctx context.Context, ownerID int64, id string, patch models.AreaPatch) (models.Area, error)

	// DeleteArea removes the owner's area, or returns [ErrAreaNotFound].
	DeleteArea(ctx context.Context, ownerID int64, id string) error

	// Categories returns the category reference map.
	Categories(ctx context.Context) (models.CategoryMap, error)
}
