// Package usecase contains application use cases. Constraint validation
// (empty names, duplicates) lives here; the entities assume pre-validated
// input.
package usecase

import (
	"fmt"

	"github.com/petcare/pawpal/internal/domain"
)

// loadRegistry reads the persisted registry and advances the task-number
// sequence past the highest restored number so new allocations never
// collide with loaded ones.
func loadRegistry(repo domain.RegistryRepository, numbers *domain.Sequence) (*domain.Registry, error) {
	reg, err := repo.Load()
	if err != nil {
		return nil, fmt.Errorf("load store: %w", err)
	}
	numbers.Advance(reg.MaxTaskNumber())
	return reg, nil
}

// findOwner resolves an owner by name.
func findOwner(reg *domain.Registry, name string) (*domain.Owner, error) {
	owner := reg.FindOwner(name)
	if owner == nil {
		return nil, fmt.Errorf("%q: %w", name, domain.ErrOwnerNotFound)
	}
	return owner, nil
}
