package usecase

import (
	"context"
	"fmt"

	"github.com/petcare/pawpal/internal/domain"
)

// AddOwnerInput contains the parameters for registering an owner.
type AddOwnerInput struct {
	Name         string // Owner name (required, unique)
	DailyMinutes int    // Daily time budget in minutes (non-negative)
}

// AddOwnerOutput contains the result of registering an owner.
type AddOwnerOutput struct {
	Owner *domain.Owner
}

// AddOwner is the use case for registering a new owner.
type AddOwner struct {
	repo    domain.RegistryRepository
	numbers *domain.Sequence
	logger  domain.Logger
}

// NewAddOwner creates a new AddOwner use case.
func NewAddOwner(repo domain.RegistryRepository, numbers *domain.Sequence, logger domain.Logger) *AddOwner {
	return &AddOwner{repo: repo, numbers: numbers, logger: logger}
}

// Execute registers an owner with the given input.
func (uc *AddOwner) Execute(_ context.Context, in AddOwnerInput) (*AddOwnerOutput, error) {
	if in.Name == "" {
		return nil, domain.ErrEmptyName
	}
	if in.DailyMinutes < 0 {
		return nil, domain.ErrNegativeBudget
	}

	reg, err := loadRegistry(uc.repo, uc.numbers)
	if err != nil {
		return nil, err
	}

	if reg.FindOwner(in.Name) != nil {
		return nil, fmt.Errorf("%q: %w", in.Name, domain.ErrOwnerExists)
	}

	owner := domain.NewOwner(in.Name, in.DailyMinutes)
	reg.AddOwner(owner)

	if err := uc.repo.Save(reg); err != nil {
		return nil, fmt.Errorf("save store: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info(owner.Name, "owner", fmt.Sprintf("registered with %d daily minutes", in.DailyMinutes))
	}

	return &AddOwnerOutput{Owner: owner}, nil
}
