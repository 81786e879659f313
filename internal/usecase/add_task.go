package usecase

import (
	"context"
	"fmt"

	"github.com/petcare/pawpal/internal/domain"
)

// AddTaskInput contains the parameters for creating a task.
// Fields are ordered to minimize memory padding.
type AddTaskInput struct {
	Owner           string           // Owner name (must exist)
	Pet             string           // Pet name (must exist under the owner)
	Description     string           // Task description (required)
	Frequency       domain.Frequency // daily, weekly or monthly
	DueDate         domain.Date      // Zero value means today
	DurationMinutes int              // Positive
	Priority        int              // 1-5, 5 highest
	Time            int              // Minutes since midnight, 0-1439
	Completed       bool             // Rarely set on creation, kept for parity with the form UI
}

// AddTaskOutput contains the result of creating a task.
type AddTaskOutput struct {
	Task *domain.Task
}

// AddTask is the use case for creating a task.
type AddTask struct {
	repo    domain.RegistryRepository
	numbers *domain.Sequence
	clock   domain.Clock
	logger  domain.Logger
}

// NewAddTask creates a new AddTask use case.
func NewAddTask(repo domain.RegistryRepository, numbers *domain.Sequence, clock domain.Clock, logger domain.Logger) *AddTask {
	return &AddTask{repo: repo, numbers: numbers, clock: clock, logger: logger}
}

// Execute creates a task with the given input.
func (uc *AddTask) Execute(_ context.Context, in AddTaskInput) (*AddTaskOutput, error) {
	if in.Description == "" {
		return nil, domain.ErrEmptyDescription
	}
	if in.DurationMinutes < 1 {
		return nil, domain.ErrInvalidDuration
	}
	if in.Priority < 1 || in.Priority > 5 {
		return nil, domain.ErrInvalidPriority
	}
	if in.Time < 0 || in.Time > 1439 {
		return nil, domain.ErrInvalidStartTime
	}
	if !in.Frequency.Valid() {
		return nil, fmt.Errorf("%q: %w", in.Frequency, domain.ErrInvalidFrequency)
	}

	reg, err := loadRegistry(uc.repo, uc.numbers)
	if err != nil {
		return nil, err
	}

	owner, err := findOwner(reg, in.Owner)
	if err != nil {
		return nil, err
	}

	pet := owner.FindPet(in.Pet)
	if pet == nil {
		return nil, fmt.Errorf("%q: %w", in.Pet, domain.ErrPetNotFound)
	}

	dueDate := in.DueDate
	if dueDate.IsZero() {
		dueDate = domain.Today(uc.clock)
	}

	task := &domain.Task{
		Number:          uc.numbers.Next(),
		Description:     in.Description,
		DurationMinutes: in.DurationMinutes,
		Priority:        in.Priority,
		Time:            in.Time,
		PetName:         pet.Name,
		Frequency:       in.Frequency,
		Completed:       in.Completed,
		DueDate:         dueDate,
	}
	pet.AddTask(task)

	if err := uc.repo.Save(reg); err != nil {
		return nil, fmt.Errorf("save store: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info(owner.Name, "task", fmt.Sprintf("created #%d for %s: %q", task.Number, pet.Name, task.Description))
	}

	return &AddTaskOutput{Task: task}, nil
}
