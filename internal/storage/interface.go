package storage

import "github.com/chrisjoiner1989/bible-steps/internal/constants"

// Provider is the namespaced key-value store behind every persisted record.
//
// Read and write paths fail soft: a missing key, a malformed document, or an
// unavailable backend yields Get ok=false or a logged no-op, never an error.
// Callers substitute defaults and carry on. The worst-case failure mode is an
// empty state, not a crash.
//
// Every key is stored under the constants.Namespace prefix so Keys and Clear
// can enumerate the application's data without touching anything else.
//
// Only one process is assumed to write at a time. There is no cross-process
// locking; concurrent writers are a known, unguarded race.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Get reads the value stored under key into out. It returns false when
	// the key is absent or the stored document cannot be decoded.
	Get(key string, out any) bool
	// Set serializes value and persists it under key. Failures are logged,
	// not returned; partial state is not rolled back.
	Set(key string, value any)
	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string)
	// Keys returns every stored key in the application namespace,
	// with the namespace prefix stripped.
	Keys() []string
	// Clear deletes every key in the application namespace.
	Clear()

	// Utils
	GetConfigPath() string
}

// namespaced prepends the reserved application prefix to a logical key.
func namespaced(key string) string {
	return constants.Namespace + key
}
