package planner

import (
	"fmt"

	"github.com/petcare/pawpal/internal/domain"
)

// DetectConflicts reports scheduling overlaps between tasks that are
// adjacent in time order. For each adjacent pair in a time-sorted copy of
// the input, a warning is emitted when the next task starts before the
// current one ends. Only adjacent pairs are compared, so a long task can
// overlap a task two positions later without being flagged.
//
// The input is never mutated and the result is empty when no adjacent
// pair overlaps.
func (s *Scheduler) DetectConflicts(tasks []*domain.Task) []string {
	ordered := s.SortByTime(tasks)
	var warnings []string
	for i := 0; i+1 < len(ordered); i++ {
		cur, next := ordered[i], ordered[i+1]
		if next.Time < cur.EndTime() {
			warnings = append(warnings, fmt.Sprintf(
				"Time conflict: '%s' (%s) overlaps with '%s' (%s).",
				cur.Description, cur.PetName, next.Description, next.PetName))
		}
	}
	return warnings
}
