package usecase

import (
	"context"
	"fmt"

	"github.com/petcare/pawpal/internal/domain"
	"github.com/petcare/pawpal/internal/planner"
)

// ReopenTaskInput contains the parameters for reopening a task.
type ReopenTaskInput struct {
	Owner  string // Owner name (must exist)
	Number int    // Task number
}

// ReopenTask is the use case for clearing a task's completed flag.
// Unlike completion, reopening has no recurrence side effects.
type ReopenTask struct {
	repo      domain.RegistryRepository
	scheduler *planner.Scheduler
	numbers   *domain.Sequence
	logger    domain.Logger
}

// NewReopenTask creates a new ReopenTask use case.
func NewReopenTask(repo domain.RegistryRepository, scheduler *planner.Scheduler, numbers *domain.Sequence, logger domain.Logger) *ReopenTask {
	return &ReopenTask{repo: repo, scheduler: scheduler, numbers: numbers, logger: logger}
}

// Execute marks the task with the given number as incomplete.
func (uc *ReopenTask) Execute(_ context.Context, in ReopenTaskInput) error {
	reg, err := loadRegistry(uc.repo, uc.numbers)
	if err != nil {
		return err
	}

	owner, err := findOwner(reg, in.Owner)
	if err != nil {
		return err
	}

	if !uc.scheduler.MarkTaskIncomplete(owner, in.Number) {
		return fmt.Errorf("#%d: %w", in.Number, domain.ErrTaskNotFound)
	}

	if err := uc.repo.Save(reg); err != nil {
		return fmt.Errorf("save store: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info(owner.Name, "task", fmt.Sprintf("reopened #%d", in.Number))
	}

	return nil
}
