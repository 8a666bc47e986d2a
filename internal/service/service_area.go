package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-area-keeper/internal/logger"
	"github.com/MKhiriev/go-area-keeper/internal/store"
	"github.com/MKhiriev/go-area-keeper/internal/utils"
	"github.com/MKhiriev/go-area-keeper/models"
)

// maxAreaNameLength bounds the user-supplied name; notes are unbounded.
const maxAreaNameLength = 200

// IDGenerator assigns identifiers to newly created areas.
type IDGenerator interface {
	Generate() string
}

// areaService is the server-side implementation of AreaService. Ownership
// checks live in the repository queries: every operation is scoped to the
// requesting user's rows.
type areaService struct {
	areaRepository store.AreaRepository
	idGenerator    IDGenerator
	logger         *logger.Logger
}

func NewAreaService(areaRepository store.AreaRepository, logger *logger.Logger) AreaService {
	return &areaService{
		areaRepository: areaRepository,
		idGenerator:    utils.NewUUIDGenerator(),
		logger:         logger,
	}
}

func (s *areaService) CreateArea(ctx context.Context, ownerID int64, area models.Area) (models.Area, error) {
	log := logger.FromContext(ctx)

	if err := validateAreaName(area.Name); err != nil {
		return models.Area{}, err
	}

	area.ID = s.idGenerator.Generate()
	area.OwnerID = ownerID
	area.Pending = 0

	created, err := s.areaRepository.CreateArea(ctx, area)
	if err != nil {
		log.Err(err).Str("name", area.Name).Msg("area creation ended with error")
		return models.Area{}, fmt.Errorf("area creation ended with error: %w", err)
	}

	return created, nil
}

func (s *areaService) GetArea(ctx context.Context, ownerID int64, id string) (models.Area, error) {
	if id == "" {
		return models.Area{}, ErrInvalidDataProvided
	}

	return s.areaRepository.GetArea(ctx, ownerID, id)
}

func (s *areaService) ListAreas(ctx context.Context, ownerID int64, page, limit int, search string) (models.AreaPage, error) {
	log := logger.FromContext(ctx)

	if page < 0 {
		page = 0
	}
	if limit <= 0 || limit > 100 {
		limit = 10
	}

	areas, total, err := s.areaRepository.ListAreas(ctx, ownerID, page, limit, search)
	if err != nil {
		log.Err(err).Int("page", page).Msg("area listing ended with error")
		return models.AreaPage{}, fmt.Errorf("area listing ended with error: %w", err)
	}

	return models.AreaPage{
		Items:   areas,
		NoAreas: total == 0 && search == "",
		Page:    page,
		Limit:   limit,
		Total:   total,
	}, nil
}

func (s *areaService) UpdateArea(ctx context.Context, ownerID int64, id string, patch models.AreaPatch) (models.Area, error) {
	log := logger.FromContext(ctx)

	if id == "" {
		return models.Area{}, ErrInvalidDataProvided
	}
	if patch.Name != nil {
		if err := validateAreaName(*patch.Name); err != nil {
			return models.Area{}, err
		}
	}

	updated, err := s.areaRepository.UpdateArea(ctx, ownerID, id, patch)
	if err != nil {
		log.Err(err).Str("id", id).Msg("area update ended with error")
		return models.Area{}, err
	}

	return updated, nil
}

func (s *areaService) DeleteArea(ctx context.Context, ownerID int64, id string) error {
	if id == "" {
		return ErrInvalidDataProvided
	}

	return s.areaRepository.DeleteArea(ctx, ownerID, id)
}

func (s *areaService) Categories(ctx context.Context) (models.CategoryMap, error) {
	return s.areaRepository.Categories(ctx)
}

func validateAreaName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" || len(trimmed) > maxAreaNameLength {
		return ErrInvalidDataProvided
	}

	return nil
}
