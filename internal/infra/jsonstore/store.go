// Package jsonstore provides the JSON file-based implementation of
// RegistryRepository. The file layout is the flat owners document shared
// with other PawPal frontends, so the shape must not change.
package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/petcare/pawpal/internal/domain"
)

// storeData is the JSON file structure.
type storeData struct {
	Owners []ownerRecord `json:"owners"`
}

type ownerRecord struct {
	Name               string      `json:"name"`
	DailyTimeAvailable int         `json:"daily_time_available"`
	Pets               []petRecord `json:"pets"`
}

type petRecord struct {
	Name    string       `json:"name"`
	Species string       `json:"species"`
	Tasks   []taskRecord `json:"tasks"`
}

// taskRecord is the wire form of a task. Priority and frequency are kept
// loose so documents written by older frontends load with documented
// defaults instead of failing.
type taskRecord struct {
	Number          int    `json:"number"`
	Description     string `json:"description"`
	DurationMinutes int    `json:"duration_minutes"`
	Priority        *int   `json:"priority"`
	Time            int    `json:"time"`
	PetName         string `json:"pet_name"`
	Frequency       string `json:"frequency"`
	Completed       bool   `json:"completed"`
	DueDate         string `json:"due_date"`
}

// Store implements domain.RegistryRepository using a JSON file.
type Store struct {
	clock    domain.Clock
	path     string
	lockPath string
}

// New creates a new Store for the given file path. The file does not need
// to exist; it will be created on first write. The clock supplies the
// fallback due date for malformed or missing due-date strings.
func New(path string, clock domain.Clock) *Store {
	return &Store{
		path:     path,
		lockPath: path + ".lock",
		clock:    clock,
	}
}

// Load reads the registry from disk. A missing file or malformed JSON
// yields an empty registry; per-field problems degrade to documented
// defaults. Load never surfaces a data error.
func (s *Store) Load() (*domain.Registry, error) {
	lock, err := s.acquireLock(syscall.LOCK_SH)
	if err != nil {
		return nil, err
	}
	defer s.releaseLock(lock)

	content, err := os.ReadFile(s.path)
	if err != nil {
		return domain.NewRegistry(), nil
	}

	var data storeData
	if err := json.Unmarshal(content, &data); err != nil {
		return domain.NewRegistry(), nil
	}

	return s.toRegistry(&data), nil
}

// Save writes the registry, replacing previous contents atomically via
// write-temp-then-rename so readers never observe a partial write.
func (s *Store) Save(reg *domain.Registry) error {
	lock, err := s.acquireLock(syscall.LOCK_EX)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)

	return s.write(toRecords(reg))
}

// IsInitialized checks if the store file exists.
func (s *Store) IsInitialized() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Initialize creates an empty store file if it doesn't exist.
func (s *Store) Initialize() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return nil // Already exists
	}

	return s.write(&storeData{Owners: []ownerRecord{}})
}

func (s *Store) toRegistry(data *storeData) *domain.Registry {
	reg := domain.NewRegistry()
	for _, or := range data.Owners {
		owner := domain.NewOwner(or.Name, or.DailyTimeAvailable)
		for _, pr := range or.Pets {
			pet := domain.NewPet(pr.Name, pr.Species)
			for _, tr := range pr.Tasks {
				pet.AddTask(s.toTask(tr))
			}
			owner.AddPet(pet)
		}
		reg.AddOwner(owner)
	}
	return reg
}

// toTask converts a wire record, applying defaults: priority 1, time 0,
// frequency daily, due date today.
func (s *Store) toTask(tr taskRecord) *domain.Task {
	priority := 1
	if tr.Priority != nil {
		priority = *tr.Priority
	}

	frequency := domain.Frequency(tr.Frequency)
	if !frequency.Valid() {
		frequency = domain.FrequencyDaily
	}

	dueDate, err := domain.ParseDate(tr.DueDate)
	if err != nil {
		dueDate = domain.Today(s.clock)
	}

	return &domain.Task{
		Number:          tr.Number,
		Description:     tr.Description,
		DurationMinutes: tr.DurationMinutes,
		Priority:        priority,
		Time:            tr.Time,
		PetName:         tr.PetName,
		Frequency:       frequency,
		Completed:       tr.Completed,
		DueDate:         dueDate,
	}
}

func toRecords(reg *domain.Registry) *storeData {
	data := &storeData{Owners: make([]ownerRecord, 0, len(reg.Owners))}
	for _, owner := range reg.Owners {
		or := ownerRecord{
			Name:               owner.Name,
			DailyTimeAvailable: owner.DailyTimeAvailable,
			Pets:               make([]petRecord, 0, len(owner.Pets)),
		}
		for _, pet := range owner.Pets {
			pr := petRecord{
				Name:    pet.Name,
				Species: pet.Species,
				Tasks:   make([]taskRecord, 0, len(pet.Tasks)),
			}
			for _, t := range pet.Tasks {
				priority := t.Priority
				pr.Tasks = append(pr.Tasks, taskRecord{
					Number:          t.Number,
					Description:     t.Description,
					DurationMinutes: t.DurationMinutes,
					Priority:        &priority,
					Time:            t.Time,
					PetName:         t.PetName,
					Frequency:       string(t.Frequency),
					Completed:       t.Completed,
					DueDate:         t.DueDate.String(),
				})
			}
			or.Pets = append(or.Pets, pr)
		}
		data.Owners = append(data.Owners, or)
	}
	return data
}

func (s *Store) acquireLock(lockType int) (*os.File, error) {
	dir := filepath.Dir(s.lockPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}

	lock, err := os.OpenFile(s.lockPath, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open lock file: %w", err)
	}

	if err := syscall.Flock(int(lock.Fd()), lockType); err != nil {
		_ = lock.Close()
		return nil, fmt.Errorf("acquire lock: %w", err)
	}

	return lock, nil
}

func (s *Store) releaseLock(lock *os.File) {
	_ = syscall.Flock(int(lock.Fd()), syscall.LOCK_UN)
	_ = lock.Close()
}

func (s *Store) write(data *storeData) error {
	content, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal store data: %w", err)
	}

	// Write to temp file first, then rename for atomicity
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath) // Clean up
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}

// Ensure Store implements the persistence ports.
var (
	_ domain.RegistryRepository = (*Store)(nil)
	_ domain.StoreInitializer   = (*Store)(nil)
)
