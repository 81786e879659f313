package domain

import "time"

// RegistryRepository manages owner persistence.
type RegistryRepository interface {
	// Load reads the persisted registry. A missing or malformed store
	// file yields an empty registry, not an error.
	Load() (*Registry, error)

	// Save writes the registry, replacing previous contents atomically.
	Save(*Registry) error
}

// StoreInitializer initializes the data store.
type StoreInitializer interface {
	// Initialize creates the store if it doesn't exist.
	Initialize() error

	// IsInitialized checks if the store file exists.
	IsInitialized() bool
}

// Clock provides the current time. Abstracted for testability.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// Today returns the current calendar date of the given clock.
func Today(c Clock) Date {
	return DateOf(c.Now())
}

// Logger records application events. An empty owner name targets the
// global log only.
type Logger interface {
	Debug(owner, category, msg string)
	Info(owner, category, msg string)
	Warn(owner, category, msg string)
	Error(owner, category, msg string)
}
