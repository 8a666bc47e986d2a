package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-area-keeper/internal/adapter"
	"github.com/MKhiriev/go-area-keeper/internal/events"
	"github.com/MKhiriev/go-area-keeper/internal/logger"
	"github.com/MKhiriev/go-area-keeper/internal/store"
	"github.com/MKhiriev/go-area-keeper/internal/utils"
	"github.com/MKhiriev/go-area-keeper/models"
)

type areaSyncService struct {
	cache  store.AreaCache
	server adapter.AreaServerAdapter
	users  CurrentUserProvider
	bus    *events.Bus
	logger *logger.Logger
}

// NewAreaSyncService wires the engine to the local cache, the server
// adapter, the provider of the current user and the event bus.
func NewAreaSyncService(cache store.AreaCache, server adapter.AreaServerAdapter, users CurrentUserProvider, bus *events.Bus, log *logger.Logger) AreaSyncService {
	return &areaSyncService{cache: cache, server: server, users: users, bus: bus, logger: log}
}

// mutateControls steer the shared mutation paths. Interactive calls record
// offline fallbacks and notify subscribers; reconciliation replays do
// neither, so a failed replay surfaces as a plain error and the pending
// flags stay untouched.
type mutateControls struct {
	recordOffline bool
	emitEvents    bool
}

var interactive = mutateControls{recordOffline: true, emitEvents: true}
var replay = mutateControls{}

func (s *areaSyncService) FetchCategories(ctx context.Context) (models.CategoryMap, error) {
	remote, err := s.server.GetCategories(ctx)
	switch {
	case err == nil:
		if saveErr := s.cache.SetCategories(ctx, remote); saveErr != nil {
			s.logger.Debug().Str("func", "FetchCategories").Err(saveErr).Msg("caching categories failed")
		}
	case adapter.IsConnectivity(err):
		s.logger.Debug().Str("func", "FetchCategories").Msg("server unreachable, serving cached categories")
	default:
		s.bus.Publish(events.CategoriesError{Err: err})
		cached, _ := s.cache.Categories(ctx)
		return cached, err
	}

	return s.cache.Categories(ctx)
}

func (s *areaSyncService) FetchPage(ctx context.Context, page int, limit int, search string) ([]models.Area, bool, error) {
	cachedOnly := false

	remote, err := s.server.GetAreas(ctx, page, limit, search)
	switch {
	case err == nil:
		if remote.NoAreas && page == 0 {
			return nil, false, nil
		}
		if refreshErr := s.refreshListing(ctx, page, search, remote.Items); refreshErr != nil {
			return nil, false, refreshErr
		}
	case adapter.IsConnectivity(err):
		s.bus.Publish(events.PageNetworkError{Page: page})
		cachedOnly = true
	default:
		s.bus.Publish(events.PageError{Page: page, Err: err})
		return nil, false, err
	}

	areas, err := s.cache.GetPaginated(ctx, page, limit, cachedOnly, search)
	if err != nil {
		return nil, false, err
	}

	return areas, true, nil
}

// refreshListing replaces the clean part of the cache with the freshly
// fetched page. Rows with pending flags are never dropped: they carry
// offline work the server has not seen yet.
func (s *areaSyncService) refreshListing(ctx context.Context, page int, search string, items []models.Area) error {
	if page == 0 && search == "" {
		if err := s.cache.ClearListing(ctx); err != nil {
			return err
		}
	}
	for _, area := range items {
		if err := s.cache.SaveArea(ctx, area); err != nil {
			return err
		}
	}

	return nil
}

func (s *areaSyncService) FetchDetails(ctx context.Context, id string) (models.Area, error) {
	remote, err := s.server.GetArea(ctx, id)
	switch {
	case err == nil:
		if saveErr := s.cache.SaveArea(ctx, remote); saveErr != nil {
			return models.Area{}, saveErr
		}
	case adapter.IsConnectivity(err):
		s.logger.Debug().Str("func", "FetchDetails").Str("id", id).Msg("server unreachable, serving cached area")
	default:
		s.bus.Publish(events.DetailsError{ID: id, Err: err})
		return models.Area{}, store.ErrAreaNotFound
	}

	return s.cache.GetArea(ctx, id)
}

func (s *areaSyncService) AddArea(ctx context.Context, area models.Area) (models.Area, error) {
	return s.addArea(ctx, area, interactive)
}

func (s *areaSyncService) addArea(ctx context.Context, area models.Area, controls mutateControls) (models.Area, error) {
	created, err := s.server.CreateArea(ctx, area)
	switch {
	case err == nil:
		if saveErr := s.cache.SaveArea(ctx, created); saveErr != nil {
			return models.Area{}, saveErr
		}
		area.ID = created.ID
	case adapter.IsConnectivity(err):
		if !controls.recordOffline {
			return models.Area{}, err
		}
		offline, offlineErr := s.offlineArea(ctx, area)
		if offlineErr != nil {
			return models.Area{}, offlineErr
		}
		if saveErr := s.cache.AddOffline(ctx, offline); saveErr != nil {
			return models.Area{}, saveErr
		}
		area.ID = offline.ID
	default:
		s.bus.Publish(events.AddError{Err: err})
		return models.Area{}, err
	}

	saved, err := s.cache.GetArea(ctx, area.ID)
	if err != nil {
		return models.Area{}, err
	}
	if controls.emitEvents {
		s.bus.Publish(events.AreaAdded{Area: saved})
		if saved.Pending.Any() {
			s.bus.Publish(events.OfflineModifications{})
		}
	}

	return saved, nil
}

// offlineArea builds the local stand-in for an area the server has not
// accepted yet: synthetic ID, current user as owner, timestamps set here.
func (s *areaSyncService) offlineArea(ctx context.Context, area models.Area) (models.Area, error) {
	user, err := s.users.CurrentUser(ctx)
	if err != nil {
		return models.Area{}, err
	}

	now := time.Now().UTC()
	area.ID = utils.NewLocalID()
	area.OwnerID = user.UserID
	area.CreatedAt = &now
	area.UpdatedAt = &now

	return area, nil
}

func (s *areaSyncService) UpdateArea(ctx context.Context, id string, patch models.AreaPatch) (models.Area, error) {
	return s.updateArea(ctx, id, patch, interactive)
}

func (s *areaSyncService) updateArea(ctx context.Context, id string, patch models.AreaPatch, controls mutateControls) (models.Area, error) {
	updated, err := s.server.UpdateArea(ctx, id, patch)
	switch {
	case err == nil:
		if saveErr := s.cache.SaveArea(ctx, updated); saveErr != nil {
			return models.Area{}, saveErr
		}
	case adapter.IsConnectivity(err):
		if !controls.recordOffline {
			return models.Area{}, err
		}
		if patchErr := s.cache.PatchOffline(ctx, id, patch); patchErr != nil {
			return models.Area{}, patchErr
		}
	default:
		s.bus.Publish(events.UpdateError{ID: id, Err: err})
		return models.Area{}, err
	}

	saved, err := s.cache.GetArea(ctx, id)
	if err != nil {
		return models.Area{}, err
	}
	if controls.emitEvents {
		s.bus.Publish(events.AreaUpdated{Area: saved})
		if saved.Pending.Any() {
			s.bus.Publish(events.OfflineModifications{})
		}
	}

	return saved, nil
}

func (s *areaSyncService) DeleteArea(ctx context.Context, id string) error {
	return s.deleteArea(ctx, id, interactive)
}

func (s *areaSyncService) deleteArea(ctx context.Context, id string, controls mutateControls) error {
	recordedOffline := false

	if s.localOnly(ctx, id) {
		// the server never saw this record, no call needed
		if err := s.cache.DeleteArea(ctx, id); err != nil {
			return err
		}
	} else {
		err := s.server.DeleteArea(ctx, id)
		switch {
		case err == nil:
			if cacheErr := s.cache.DeleteArea(ctx, id); cacheErr != nil {
				return cacheErr
			}
		case adapter.IsConnectivity(err):
			if !controls.recordOffline {
				return err
			}
			if cacheErr := s.cache.DeleteOffline(ctx, id); cacheErr != nil {
				return cacheErr
			}
			recordedOffline = true
		default:
			s.bus.Publish(events.DeleteError{ID: id, Err: err})
			return err
		}
	}

	if controls.emitEvents {
		s.bus.Publish(events.AreaDeleted{ID: id})
		if recordedOffline {
			s.bus.Publish(events.OfflineModifications{})
		}
	}

	return nil
}

// localOnly reports whether the record exists only in the cache under a
// synthetic ID, meaning the server holds nothing to delete.
func (s *areaSyncService) localOnly(ctx context.Context, id string) bool {
	area, err := s.cache.GetArea(ctx, id)

	return err == nil && area.Pending.Has(models.PendingAdded)
}

func (s *areaSyncService) ReconcileOne(ctx context.Context, area models.Area) error {
	switch area.Pending.ReconcileAction() {
	case models.ReconcileDelete:
		return s.deleteArea(ctx, area.ID, replay)
	case models.ReconcileAdd:
		return s.reconcileAdd(ctx, area)
	case models.ReconcileUpdate:
		if _, err := s.updateArea(ctx, area.ID, area.Patch(), replay); err != nil {
			return err
		}
		return s.cache.ClearPendingFlags(ctx, area.ID)
	default:
		return nil
	}
}

// reconcileAdd replays an offline addition: the server assigns the real
// identity, then the stale record under the synthetic ID is dropped. The
// stale record still carries the ADDED flag, so its deletion stays local.
func (s *areaSyncService) reconcileAdd(ctx context.Context, area models.Area) error {
	fresh := area
	fresh.Pending = 0
	if _, err := s.addArea(ctx, fresh, replay); err != nil {
		return err
	}

	return s.deleteArea(ctx, area.ID, replay)
}

func (s *areaSyncService) ReconcileAll(ctx context.Context) error {
	// exactly one sync-done per pass, whatever happens inside it
	defer s.bus.Publish(events.SyncDone{})

	pending, err := s.cache.ListPending(ctx)
	if err != nil {
		s.logger.Error().Str("func", "ReconcileAll").Err(err).Msg("listing pending areas failed")
		return err
	}

	for _, area := range pending {
		if reconcileErr := s.ReconcileOne(ctx, area); reconcileErr != nil {
			// flags survive, the record is retried on the next pass
			s.logger.Debug().Str("func", "ReconcileAll").Str("id", area.ID).Err(reconcileErr).Msg("reconciliation attempt failed")
		}
	}

	return nil
}
