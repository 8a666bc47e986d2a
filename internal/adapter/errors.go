package adapter

import "errors"

// Sentinel errors mapped from server responses and transport failures.
// Callers branch on these with [errors.Is]; error kinds are never derived
// from concrete error types outside this package.
var (
	// ErrServerUnavailable classifies a transport-level failure: the request
	// never produced an HTTP response (connection refused, DNS failure,
	// timeout, 502). This is the connectivity-failure class the sync engine
	// degrades on; every other sentinel is an operation failure.
	ErrServerUnavailable = errors.New("server unavailable")

	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
)

// IsConnectivity reports whether err belongs to the connectivity-failure
// class, i.e. whether the sync engine may fall back to offline handling.
func IsConnectivity(err error) bool {
	return errors.Is(err, ErrServerUnavailable)
}
