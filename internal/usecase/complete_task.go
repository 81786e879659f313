package usecase

import (
	"context"
	"fmt"

	"github.com/petcare/pawpal/internal/domain"
	"github.com/petcare/pawpal/internal/planner"
)

// CompleteTaskInput contains the parameters for completing a task.
type CompleteTaskInput struct {
	Owner  string // Owner name (must exist)
	Number int    // Task number
}

// CompleteTaskOutput contains the result of completing a task.
type CompleteTaskOutput struct {
	Task           *domain.Task // The completed task
	NextOccurrence *domain.Task // Spawned occurrence, nil for monthly tasks
}

// CompleteTask is the use case for marking a task complete. Daily and
// weekly tasks spawn their next occurrence through the planning engine.
type CompleteTask struct {
	repo      domain.RegistryRepository
	scheduler *planner.Scheduler
	numbers   *domain.Sequence
	logger    domain.Logger
}

// NewCompleteTask creates a new CompleteTask use case.
func NewCompleteTask(repo domain.RegistryRepository, scheduler *planner.Scheduler, numbers *domain.Sequence, logger domain.Logger) *CompleteTask {
	return &CompleteTask{repo: repo, scheduler: scheduler, numbers: numbers, logger: logger}
}

// Execute marks the task with the given number as complete. The engine's
// not-found result surfaces as ErrTaskNotFound at this layer.
func (uc *CompleteTask) Execute(_ context.Context, in CompleteTaskInput) (*CompleteTaskOutput, error) {
	reg, err := loadRegistry(uc.repo, uc.numbers)
	if err != nil {
		return nil, err
	}

	owner, err := findOwner(reg, in.Owner)
	if err != nil {
		return nil, err
	}

	if !uc.scheduler.MarkTaskComplete(owner, in.Number) {
		return nil, fmt.Errorf("#%d: %w", in.Number, domain.ErrTaskNotFound)
	}

	out := &CompleteTaskOutput{}
	for _, pet := range owner.Pets {
		if t := pet.FindTask(in.Number); t != nil {
			out.Task = t
			if _, recurs := t.Frequency.Successor(t.DueDate); recurs {
				// The spawned occurrence is the last task of the same pet.
				out.NextOccurrence = pet.Tasks[len(pet.Tasks)-1]
			}
			break
		}
	}

	if err := uc.repo.Save(reg); err != nil {
		return nil, fmt.Errorf("save store: %w", err)
	}

	if uc.logger != nil {
		if out.NextOccurrence != nil {
			uc.logger.Info(owner.Name, "task", fmt.Sprintf("completed #%d, next occurrence #%d due %s",
				in.Number, out.NextOccurrence.Number, out.NextOccurrence.DueDate))
		} else {
			uc.logger.Info(owner.Name, "task", fmt.Sprintf("completed #%d", in.Number))
		}
	}

	return out, nil
}
