package types

import "errors"

// KV is the durable key-value contract every storage backend implements.
// Values are JSON documents serialized by the repositories; the backend
// never interprets them. Set overwrites unconditionally. Get reports
// absence via the boolean rather than an error so callers can distinguish
// "never written" from a read failure.
type KV interface {
	// Get returns the value stored under key, or ok=false if the key
	// has never been written (or was removed).
	Get(key string) (value string, ok bool, err error)

	// Set stores value under key, overwriting any existing value.
	// Returns an error wrapping ErrCapacityExceeded when the backend
	// cannot accept the write for space reasons.
	Set(key, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error

	// Clear removes every key. Used by factory reset and restore flows.
	Clear() error

	// Close releases backend resources. Idempotent.
	Close() error
}

// Storage backend errors.
var (
	ErrCapacityExceeded = errors.New("storage capacity exceeded")
	ErrStoreClosed      = errors.New("store is closed")
)
