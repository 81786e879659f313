package planner

import (
	"cmp"
	"slices"

	"github.com/petcare/pawpal/internal/domain"
)

// SortByTime returns a new slice sorted ascending by start time. The sort
// is stable, so applying it twice yields the same order as once. The
// input is never mutated.
func (s *Scheduler) SortByTime(tasks []*domain.Task) []*domain.Task {
	ordered := slices.Clone(tasks)
	slices.SortStableFunc(ordered, func(a, b *domain.Task) int {
		return cmp.Compare(a.Time, b.Time)
	})
	return ordered
}

// FilterByCompleted returns the tasks whose completed flag equals
// completed, preserving relative order.
func (s *Scheduler) FilterByCompleted(tasks []*domain.Task, completed bool) []*domain.Task {
	var filtered []*domain.Task
	for _, t := range tasks {
		if t.Completed == completed {
			filtered = append(filtered, t)
		}
	}
	return filtered
}
