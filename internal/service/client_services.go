package service

import (
	"github.com/MKhiriev/go-area-keeper/internal/adapter"
	"github.com/MKhiriev/go-area-keeper/internal/events"
	"github.com/MKhiriev/go-area-keeper/internal/logger"
	"github.com/MKhiriev/go-area-keeper/internal/store"
)

type ClientServices struct {
	AuthService  ClientAuthService
	AreaService  AreaSyncService
	ReconcileJob ReconcileJob
}

func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.AreaServerAdapter, bus *events.Bus, log *logger.Logger) *ClientServices {
	authSvc := NewClientAuthService(serverAdapter, log)
	areaSvc := NewAreaSyncService(storages.AreaCache, serverAdapter, authSvc, bus, log)

	return &ClientServices{
		AuthService:  authSvc,
		AreaService:  areaSvc,
		ReconcileJob: NewReconcileJob(areaSvc),
	}
}
