package store

import "github.com/MKhiriev/go-area-keeper/internal/logger"

// Storages bundles the server-side repositories.
type Storages struct {
	UserRepository UserRepository
	AreaRepository AreaRepository
}

func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, log),
		AreaRepository: NewAreaRepository(db, log),
	}
}
