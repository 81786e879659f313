package domain

import "errors"

// Domain errors.
var (
	ErrOwnerNotFound    = errors.New("owner not found")
	ErrOwnerExists      = errors.New("owner already exists")
	ErrPetNotFound      = errors.New("pet not found")
	ErrPetExists        = errors.New("pet already exists for this owner")
	ErrTaskNotFound     = errors.New("task not found")
	ErrEmptyName        = errors.New("name cannot be empty")
	ErrEmptyDescription = errors.New("task description cannot be empty")
	ErrInvalidDuration  = errors.New("duration must be at least one minute")
	ErrInvalidPriority  = errors.New("priority must be between 1 and 5")
	ErrInvalidStartTime = errors.New("start time must be between 0 and 1439 minutes")
	ErrInvalidFrequency = errors.New("frequency must be daily, weekly or monthly")
	ErrNegativeBudget   = errors.New("daily time available cannot be negative")
)
