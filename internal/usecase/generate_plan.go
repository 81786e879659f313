package usecase

import (
	"context"

	"github.com/petcare/pawpal/internal/domain"
	"github.com/petcare/pawpal/internal/planner"
)

// GeneratePlanInput contains the parameters for generating a daily plan.
type GeneratePlanInput struct {
	Owner string // Owner name (must exist)
}

// GeneratePlanOutput contains the plan and its companions: the rationale
// trail, conflict warnings over the full task list, and completion
// counters. Mirrors what the scheduling panel of the form UI shows.
type GeneratePlanOutput struct {
	Plan        []*domain.Task // Selected tasks in evaluation order
	Explanation []string       // One rationale line per evaluated task
	Conflicts   []string       // Adjacent-pair overlap warnings
	Budget      int            // The owner's daily time budget in minutes
	Scheduled   int            // Total minutes consumed by the plan
	Incomplete  int            // Count of incomplete tasks across all pets
	Completed   int            // Count of completed tasks across all pets
}

// GeneratePlan is the use case for producing today's plan. It is a pure
// read: no task state changes and nothing is saved.
type GeneratePlan struct {
	repo      domain.RegistryRepository
	scheduler *planner.Scheduler
	numbers   *domain.Sequence
}

// NewGeneratePlan creates a new GeneratePlan use case.
func NewGeneratePlan(repo domain.RegistryRepository, scheduler *planner.Scheduler, numbers *domain.Sequence) *GeneratePlan {
	return &GeneratePlan{repo: repo, scheduler: scheduler, numbers: numbers}
}

// Execute generates the plan for the given owner.
func (uc *GeneratePlan) Execute(_ context.Context, in GeneratePlanInput) (*GeneratePlanOutput, error) {
	reg, err := loadRegistry(uc.repo, uc.numbers)
	if err != nil {
		return nil, err
	}

	owner, err := findOwner(reg, in.Owner)
	if err != nil {
		return nil, err
	}

	plan, explanation := uc.scheduler.GeneratePlan(owner)

	scheduled := 0
	for _, t := range plan {
		scheduled += t.DurationMinutes
	}

	all := owner.AllTasks()
	return &GeneratePlanOutput{
		Plan:        plan,
		Explanation: explanation,
		Conflicts:   uc.scheduler.DetectConflicts(all),
		Budget:      owner.DailyTimeAvailable,
		Scheduled:   scheduled,
		Incomplete:  len(uc.scheduler.FilterByCompleted(all, false)),
		Completed:   len(uc.scheduler.FilterByCompleted(all, true)),
	}, nil
}
