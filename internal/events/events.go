// Package events implements the notification channel the sync engine uses to
// report operation outcomes to observers (TUI, logging, reconciliation
// triggers).
//
// Each outcome is a concrete type implementing the [Event] marker interface.
// Delivery is synchronous and in emission order relative to the emitting call;
// missed events are not persisted.
package events

import "github.com/MKhiriev/go-area-keeper/models"

// Event is the interface implemented by all sync engine events.
type Event interface {
	isEvent()
}

// CategoriesError is emitted when the category map cannot be fetched for a
// reason other than the server being unreachable.
type CategoriesError struct {
	Err error
}

func (CategoriesError) isEvent() {}

// PageError is emitted when a page fetch fails with a non-connectivity error.
type PageError struct {
	Page int
	Err  error
}

func (PageError) isEvent() {}

// PageNetworkError is emitted when a page fetch fails because the server is
// unreachable and the engine continues on cached data.
type PageNetworkError struct {
	Page int
}

func (PageNetworkError) isEvent() {}

// DetailsError is emitted when a single-record fetch fails with a
// non-connectivity error.
type DetailsError struct {
	ID  string
	Err error
}

func (DetailsError) isEvent() {}

// AreaAdded is emitted after an add completes, whether against the server or
// recorded offline. Area is the record as read back from the cache.
type AreaAdded struct {
	Area models.Area
}

func (AreaAdded) isEvent() {}

// AddError is emitted when an add fails with a non-connectivity error.
type AddError struct {
	Err error
}

func (AddError) isEvent() {}

// AreaUpdated is emitted after an update completes. Area is the record as
// read back from the cache.
type AreaUpdated struct {
	Area models.Area
}

func (AreaUpdated) isEvent() {}

// UpdateError is emitted when an update fails with a non-connectivity error.
type UpdateError struct {
	ID  string
	Err error
}

func (UpdateError) isEvent() {}

// AreaDeleted is emitted after a delete completes, remote or offline.
type AreaDeleted struct {
	ID string
}

func (AreaDeleted) isEvent() {}

// DeleteError is emitted when a delete fails with a non-connectivity error.
type DeleteError struct {
	ID  string
	Err error
}

func (DeleteError) isEvent() {}

// OfflineModifications signals that at least one record now carries a pending
// flag. Observers use it to surface sync affordances or schedule a
// reconciliation pass.
type OfflineModifications struct{}

func (OfflineModifications) isEvent() {}

// SyncDone is emitted exactly once after every full reconciliation pass,
// regardless of per-record outcomes. It carries no success/failure summary.
type SyncDone struct{}

func (SyncDone) isEvent() {}
