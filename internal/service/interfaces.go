package service

import (
	"context"

	"github.com/MKhiriev/go-area-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_services_mock.go -package=mock

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AreaService interface {
	// CreateArea validates and persists a new area owned by ownerID. The
	// identifier is assigned server-side.
	CreateArea(ctx context.Context, ownerID int64, area models.Area) (models.Area, error)

	// GetArea returns the owner's area, or store.ErrAreaNotFound.
	GetArea(ctx context.Context, ownerID int64, id string) (models.Area, error)

	// ListAreas returns one page of the owner's areas with the total count.
	ListAreas(ctx context.Context, ownerID int64, page, limit int, search string) (models.AreaPage, error)

	// UpdateArea validates and applies a partial update.
	UpdateArea(ctx context.Context, ownerID int64, id string, patch models.AreaPatch) (models.Area, error)

	// DeleteArea removes the owner's area.
	DeleteArea(ctx context.Context, ownerID int64, id string) error

	// Categories returns the category reference map.
	Categories(ctx context.Context) (models.CategoryMap, error)
}
