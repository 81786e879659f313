package usecase

import (
	"context"
	"fmt"

	"github.com/petcare/pawpal/internal/domain"
	"github.com/petcare/pawpal/internal/infra/seed"
)

// ImportSeedInput contains the parameters for importing a seed file.
type ImportSeedInput struct {
	Path string // Seed file path (.json, .yaml or .yml)
}

// ImportSeedOutput summarizes what was imported.
type ImportSeedOutput struct {
	Owners int
	Pets   int
	Tasks  int
}

// ImportSeed is the use case for populating the store from a seed file.
// Imported owners must not collide with existing ones.
type ImportSeed struct {
	repo    domain.RegistryRepository
	numbers *domain.Sequence
	clock   domain.Clock
	logger  domain.Logger
}

// NewImportSeed creates a new ImportSeed use case.
func NewImportSeed(repo domain.RegistryRepository, numbers *domain.Sequence, clock domain.Clock, logger domain.Logger) *ImportSeed {
	return &ImportSeed{repo: repo, numbers: numbers, clock: clock, logger: logger}
}

// Execute imports the seed file at the given path.
func (uc *ImportSeed) Execute(_ context.Context, in ImportSeedInput) (*ImportSeedOutput, error) {
	reg, err := loadRegistry(uc.repo, uc.numbers)
	if err != nil {
		return nil, err
	}

	owners, err := seed.Load(in.Path, uc.numbers, uc.clock)
	if err != nil {
		return nil, err
	}

	out := &ImportSeedOutput{}
	for _, owner := range owners {
		if reg.FindOwner(owner.Name) != nil {
			return nil, fmt.Errorf("%q: %w", owner.Name, domain.ErrOwnerExists)
		}
		reg.AddOwner(owner)
		out.Owners++
		out.Pets += len(owner.Pets)
		out.Tasks += len(owner.AllTasks())
	}

	if err := uc.repo.Save(reg); err != nil {
		return nil, fmt.Errorf("save store: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info("", "seed", fmt.Sprintf("imported %d owner(s), %d pet(s), %d task(s) from %s",
			out.Owners, out.Pets, out.Tasks, in.Path))
	}

	return out, nil
}
