// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"time"

	"github.com/petcare/pawpal/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// MockRegistryRepository is a test double for domain.RegistryRepository
// backed by an in-memory registry.
type MockRegistryRepository struct {
	Reg     *domain.Registry
	Saved   *domain.Registry // Last registry passed to Save
	LoadErr error
	SaveErr error
	Saves   int
}

// NewMockRegistryRepository creates a repository holding an empty registry.
func NewMockRegistryRepository() *MockRegistryRepository {
	return &MockRegistryRepository{Reg: domain.NewRegistry()}
}

// Load returns the in-memory registry.
func (m *MockRegistryRepository) Load() (*domain.Registry, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.Reg, nil
}

// Save records the registry and counts the call.
func (m *MockRegistryRepository) Save(reg *domain.Registry) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Reg = reg
	m.Saved = reg
	m.Saves++
	return nil
}

// MockStoreInitializer is a test double for domain.StoreInitializer.
type MockStoreInitializer struct {
	Initialized bool
	InitErr     error
}

// Initialize marks the store as initialized.
func (m *MockStoreInitializer) Initialize() error {
	if m.InitErr != nil {
		return m.InitErr
	}
	m.Initialized = true
	return nil
}

// IsInitialized reports the configured state.
func (m *MockStoreInitializer) IsInitialized() bool {
	return m.Initialized
}

// LogEntry is one record captured by MockLogger.
type LogEntry struct {
	Level    string
	Owner    string
	Category string
	Msg      string
}

// MockLogger is a test double for domain.Logger that captures entries.
type MockLogger struct {
	Entries []LogEntry
}

// Debug records a debug entry.
func (m *MockLogger) Debug(owner, category, msg string) {
	m.Entries = append(m.Entries, LogEntry{Level: "DEBUG", Owner: owner, Category: category, Msg: msg})
}

// Info records an info entry.
func (m *MockLogger) Info(owner, category, msg string) {
	m.Entries = append(m.Entries, LogEntry{Level: "INFO", Owner: owner, Category: category, Msg: msg})
}

// Warn records a warn entry.
func (m *MockLogger) Warn(owner, category, msg string) {
	m.Entries = append(m.Entries, LogEntry{Level: "WARN", Owner: owner, Category: category, Msg: msg})
}

// Error records an error entry.
func (m *MockLogger) Error(owner, category, msg string) {
	m.Entries = append(m.Entries, LogEntry{Level: "ERROR", Owner: owner, Category: category, Msg: msg})
}

// Interface checks
var (
	_ domain.Clock              = (*MockClock)(nil)
	_ domain.RegistryRepository = (*MockRegistryRepository)(nil)
	_ domain.StoreInitializer   = (*MockStoreInitializer)(nil)
	_ domain.Logger             = (*MockLogger)(nil)
)
