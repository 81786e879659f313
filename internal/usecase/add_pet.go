package usecase

import (
	"context"
	"fmt"

	"github.com/petcare/pawpal/internal/domain"
)

// AddPetInput contains the parameters for adding a pet to an owner.
type AddPetInput struct {
	Owner   string // Owner name (must exist)
	Name    string // Pet name (required, unique within the owner)
	Species string // Free-text species
}

// AddPetOutput contains the result of adding a pet.
type AddPetOutput struct {
	Pet *domain.Pet
}

// AddPet is the use case for adding a pet to an owner.
type AddPet struct {
	repo    domain.RegistryRepository
	numbers *domain.Sequence
	logger  domain.Logger
}

// NewAddPet creates a new AddPet use case.
func NewAddPet(repo domain.RegistryRepository, numbers *domain.Sequence, logger domain.Logger) *AddPet {
	return &AddPet{repo: repo, numbers: numbers, logger: logger}
}

// Execute adds a pet with the given input.
func (uc *AddPet) Execute(_ context.Context, in AddPetInput) (*AddPetOutput, error) {
	if in.Name == "" {
		return nil, domain.ErrEmptyName
	}

	reg, err := loadRegistry(uc.repo, uc.numbers)
	if err != nil {
		return nil, err
	}

	owner, err := findOwner(reg, in.Owner)
	if err != nil {
		return nil, err
	}

	if owner.FindPet(in.Name) != nil {
		return nil, fmt.Errorf("%q: %w", in.Name, domain.ErrPetExists)
	}

	pet := domain.NewPet(in.Name, in.Species)
	owner.AddPet(pet)

	if err := uc.repo.Save(reg); err != nil {
		return nil, fmt.Errorf("save store: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info(owner.Name, "pet", fmt.Sprintf("added %q (%s)", pet.Name, pet.Species))
	}

	return &AddPetOutput{Pet: pet}, nil
}
