// Package domain contains core business entities and interfaces.
package domain

// Frequency describes how often a task recurs.
type Frequency string

// Supported frequencies.
const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

// Valid returns true if the frequency is one of the supported values.
func (f Frequency) Valid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return true
	}
	return false
}

// Successor returns the due date of the occurrence that follows a completion.
// Monthly tasks do not regenerate, so the second return value is false for
// them (and for unknown frequencies).
func (f Frequency) Successor(due Date) (Date, bool) {
	switch f {
	case FrequencyDaily:
		return due.AddDays(1), true
	case FrequencyWeekly:
		return due.AddDays(7), true
	}
	return Date{}, false
}

// Task represents a single unit of pet care work.
// Fields are ordered to minimize memory padding.
type Task struct {
	Description     string    `json:"description" yaml:"description"`
	PetName         string    `json:"pet_name" yaml:"pet_name"` // Informational only, never used for lookup
	Frequency       Frequency `json:"frequency" yaml:"frequency"`
	DueDate         Date      `json:"due_date" yaml:"due_date"`
	Number          int       `json:"number" yaml:"number"` // Process-unique, assigned from a Sequence
	DurationMinutes int       `json:"duration_minutes" yaml:"duration_minutes"`
	Priority        int       `json:"priority" yaml:"priority"` // 1-5, 5 is highest
	Time            int       `json:"time" yaml:"time"`         // Minutes since midnight
	Completed       bool      `json:"completed" yaml:"completed"`
}

// MarkComplete sets the completed flag.
func (t *Task) MarkComplete() {
	t.Completed = true
}

// MarkIncomplete clears the completed flag.
func (t *Task) MarkIncomplete() {
	t.Completed = false
}

// EndTime returns the minute-of-day at which the task ends.
func (t *Task) EndTime() int {
	return t.Time + t.DurationMinutes
}
