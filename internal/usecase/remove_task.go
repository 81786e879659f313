package usecase

import (
	"context"
	"fmt"

	"github.com/petcare/pawpal/internal/domain"
)

// RemoveTaskInput contains the parameters for removing a task.
type RemoveTaskInput struct {
	Owner  string // Owner name (must exist)
	Number int    // Task number
}

// RemoveTask is the use case for removing a task by number.
type RemoveTask struct {
	repo    domain.RegistryRepository
	numbers *domain.Sequence
	logger  domain.Logger
}

// NewRemoveTask creates a new RemoveTask use case.
func NewRemoveTask(repo domain.RegistryRepository, numbers *domain.Sequence, logger domain.Logger) *RemoveTask {
	return &RemoveTask{repo: repo, numbers: numbers, logger: logger}
}

// Execute removes the task with the given number. Pets are searched in
// insertion order and only the first match is removed.
func (uc *RemoveTask) Execute(_ context.Context, in RemoveTaskInput) error {
	reg, err := loadRegistry(uc.repo, uc.numbers)
	if err != nil {
		return err
	}

	owner, err := findOwner(reg, in.Owner)
	if err != nil {
		return err
	}

	removed := false
	for _, pet := range owner.Pets {
		if pet.RemoveTask(in.Number) {
			removed = true
			break
		}
	}
	if !removed {
		return fmt.Errorf("#%d: %w", in.Number, domain.ErrTaskNotFound)
	}

	if err := uc.repo.Save(reg); err != nil {
		return fmt.Errorf("save store: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info(owner.Name, "task", fmt.Sprintf("removed #%d", in.Number))
	}

	return nil
}
