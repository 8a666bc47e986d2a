package models

// PendingFlags is the set of offline-mutation markers attached to a cached
// area. The storage layer may keep the three flags independently, but at the
// reconciliation boundary at most one of them drives the replay; the priority
// order is fixed by [PendingFlags.ReconcileAction].
type PendingFlags uint8

const (
	// PendingAdded marks a record that exists only locally and was never
	// persisted on the server.
	PendingAdded PendingFlags = 1 << iota

	// PendingUpdated marks a record that exists on the server but carries
	// unsynced local field changes.
	PendingUpdated

	// PendingDeleted marks a record deleted locally whose remote deletion has
	// not yet been performed.
	PendingDeleted
)

// ReconcileAction is the narrowed view of a pending-flag set used by the
// reconciliation engine: exactly one action applies per record per pass.
type ReconcileAction int

const (
	ReconcileNone ReconcileAction = iota
	ReconcileDelete
	ReconcileAdd
	ReconcileUpdate
)

// Has reports whether every flag in f is set.
func (p PendingFlags) Has(f PendingFlags) bool {
	return p&f == f
}

// Any reports whether at least one pending flag is set.
func (p PendingFlags) Any() bool {
	return p != 0
}

// With returns a copy of the set with f added.
func (p PendingFlags) With(f PendingFlags) PendingFlags {
	return p | f
}

// Without returns a copy of the set with f removed.
func (p PendingFlags) Without(f PendingFlags) PendingFlags {
	return p &^ f
}

// ReconcileAction maps the flag set to the single action that drives replay.
// Deletion wins over addition, addition over update.
func (p PendingFlags) ReconcileAction() ReconcileAction {
	switch {
	case p.Has(PendingDeleted):
		return ReconcileDelete
	case p.Has(PendingAdded):
		return ReconcileAdd
	case p.Has(PendingUpdated):
		return ReconcileUpdate
	default:
		return ReconcileNone
	}
}

// String implements [fmt.Stringer] for log output.
func (p PendingFlags) String() string {
	switch p.ReconcileAction() {
	case ReconcileDelete:
		return "deleted"
	case ReconcileAdd:
		return "added"
	case ReconcileUpdate:
		return "updated"
	default:
		return "clean"
	}
}
