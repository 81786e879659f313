// Package planner implements the daily planning engine: greedy selection
// of tasks within an owner's time budget, time-conflict detection, and
// the completion/recurrence state machine.
package planner

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/petcare/pawpal/internal/domain"
)

// Scheduler holds the task-number sequence used when completing a
// recurring task spawns its next occurrence. All other operations are
// pure computations over the in-memory model.
type Scheduler struct {
	numbers *domain.Sequence
}

// New creates a Scheduler that allocates successor numbers from numbers.
func New(numbers *domain.Sequence) *Scheduler {
	return &Scheduler{numbers: numbers}
}

// GeneratePlan selects the tasks that fit within the owner's daily time
// budget and returns them with a human-readable rationale trail.
//
// Tasks are evaluated in stable (-priority, duration) order: higher
// priority first, shorter duration breaking ties, original pet-then-
// insertion order breaking exact ties. A task that does not fit the
// remaining budget is skipped but iteration continues, so a later,
// shorter task may still be selected. The plan preserves the evaluation
// order, not chronological order. Task state is never mutated.
func (s *Scheduler) GeneratePlan(owner *domain.Owner) ([]*domain.Task, []string) {
	tasks := owner.AllTasks()
	slices.SortStableFunc(tasks, func(a, b *domain.Task) int {
		if c := cmp.Compare(b.Priority, a.Priority); c != 0 {
			return c
		}
		return cmp.Compare(a.DurationMinutes, b.DurationMinutes)
	})

	remaining := owner.DailyTimeAvailable
	plan := make([]*domain.Task, 0, len(tasks))
	explanation := make([]string, 0, len(tasks))
	for _, t := range tasks {
		switch {
		case t.Completed:
			explanation = append(explanation, fmt.Sprintf("Skipped '%s' (already completed).", t.Description))
		case t.DurationMinutes > remaining:
			explanation = append(explanation, fmt.Sprintf("Skipped '%s' (not enough time).", t.Description))
		default:
			plan = append(plan, t)
			remaining -= t.DurationMinutes
			explanation = append(explanation, fmt.Sprintf("Scheduled '%s' (priority %d).", t.Description, t.Priority))
		}
	}
	return plan, explanation
}

// MarkTaskComplete finds the first task with the given number, searching
// pets in insertion order, and marks it complete in place. Daily and
// weekly tasks spawn their next occurrence: an identical task with a new
// number, cleared completed flag, and an advanced due date, appended to
// the same pet. Monthly tasks do not regenerate. Returns false without
// side effects if no task matched.
func (s *Scheduler) MarkTaskComplete(owner *domain.Owner, number int) bool {
	for _, pet := range owner.Pets {
		for _, t := range pet.Tasks {
			if t.Number != number {
				continue
			}
			t.MarkComplete()
			if nextDue, ok := t.Frequency.Successor(t.DueDate); ok {
				next := *t
				next.Number = s.numbers.Next()
				next.Completed = false
				next.DueDate = nextDue
				pet.AddTask(&next)
			}
			return true
		}
	}
	return false
}

// MarkTaskIncomplete clears the completed flag of the task with the given
// number. It has no recurrence side effects. Returns false if no task
// matched.
func (s *Scheduler) MarkTaskIncomplete(owner *domain.Owner, number int) bool {
	for _, pet := range owner.Pets {
		if t := pet.FindTask(number); t != nil {
			t.MarkIncomplete()
			return true
		}
	}
	return false
}
