package models

import "time"

// Area represents a single service area record as it is stored in the local
// cache and exchanged with the server.
//
// The zero value of Pending means the record is clean: the local copy is known
// to match the server copy as of the last successful fetch or sync.
type Area struct {
	// ID is the stable string identifier of the area. Server-assigned for
	// synced records; a locally generated 24-hex-character value for records
	// created while offline.
	ID string `json:"id"`

	// OwnerID identifies the user who owns the record. Stamped from the
	// current-user provider when an area is created offline.
	OwnerID int64 `json:"owner_id"`

	// Name is the display name of the area.
	Name string `json:"name"`

	// Notes holds free-form text attached to the area.
	Notes string `json:"notes,omitempty"`

	// CategoryCode references an entry of [CategoryMap].
	CategoryCode string `json:"category_code,omitempty"`

	// CreatedAt and UpdatedAt are server-side timestamps. Both are set locally
	// for offline-created records and overwritten by the canonical server
	// record after reconciliation.
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`

	// Pending marks how the local copy diverges from the last-known server
	// state. Never serialized to the server.
	Pending PendingFlags `json:"-"`
}

// TableName returns the name of the database table
// associated with the Area model.
func (a Area) TableName() string {
	return "areas"
}

// AreaPatch is a partial update of an area. Nil fields are left untouched.
// It is both the wire format of the PATCH endpoint and the payload recorded
// against a cached record when the patch cannot reach the server.
type AreaPatch struct {
	Name         *string `json:"name,omitempty"`
	Notes        *string `json:"notes,omitempty"`
	CategoryCode *string `json:"category_code,omitempty"`
}

// Patch returns an [AreaPatch] carrying every mutable field of the area.
// Used during reconciliation, where the cached record itself is replayed as
// the update payload.
func (a Area) Patch() AreaPatch {
	name := a.Name
	notes := a.Notes
	category := a.CategoryCode
	return AreaPatch{Name: &name, Notes: &notes, CategoryCode: &category}
}
