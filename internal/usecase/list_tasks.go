package usecase

import (
	"context"

	"github.com/petcare/pawpal/internal/domain"
	"github.com/petcare/pawpal/internal/planner"
)

// ListTasksInput contains the parameters for listing tasks.
// Fields are ordered to minimize memory padding.
type ListTasksInput struct {
	Completed *bool  // Filter by completion state (nil = all)
	Owner     string // Owner name (must exist)
	ByPet     bool   // Group tasks by pet instead of a flat list
	ByTime    bool   // Sort the flat list chronologically
}

// ListTasksOutput contains the result of listing tasks.
type ListTasksOutput struct {
	Tasks  []*domain.Task    // Flat list (if ByPet is false)
	Groups []domain.PetTasks // Grouped list (if ByPet is true)
}

// ListTasks is the use case for listing an owner's tasks.
type ListTasks struct {
	repo      domain.RegistryRepository
	scheduler *planner.Scheduler
	numbers   *domain.Sequence
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(repo domain.RegistryRepository, scheduler *planner.Scheduler, numbers *domain.Sequence) *ListTasks {
	return &ListTasks{repo: repo, scheduler: scheduler, numbers: numbers}
}

// Execute lists tasks matching the given input criteria.
func (uc *ListTasks) Execute(_ context.Context, in ListTasksInput) (*ListTasksOutput, error) {
	reg, err := loadRegistry(uc.repo, uc.numbers)
	if err != nil {
		return nil, err
	}

	owner, err := findOwner(reg, in.Owner)
	if err != nil {
		return nil, err
	}

	if in.ByPet {
		groups := owner.TasksByPet()
		if in.Completed != nil {
			for i := range groups {
				groups[i].Tasks = uc.scheduler.FilterByCompleted(groups[i].Tasks, *in.Completed)
			}
		}
		return &ListTasksOutput{Groups: groups}, nil
	}

	tasks := owner.AllTasks()
	if in.Completed != nil {
		tasks = uc.scheduler.FilterByCompleted(tasks, *in.Completed)
	}
	if in.ByTime {
		tasks = uc.scheduler.SortByTime(tasks)
	}
	return &ListTasksOutput{Tasks: tasks}, nil
}
