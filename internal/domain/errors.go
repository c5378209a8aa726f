package domain

import "errors"

var (
	// ErrEmptyCatalog is returned when no questions exist for a requested difficulty.
	ErrEmptyCatalog = errors.New("no questions for requested difficulty")
	// ErrAlreadyCompletedToday is returned when the daily challenge is re-entered on the same day.
	ErrAlreadyCompletedToday = errors.New("daily challenge already completed today")
	// ErrInvalidTransition is returned when an operation is invoked in a phase that forbids it.
	ErrInvalidTransition = errors.New("invalid session transition")
	// ErrNoHintsLeft is returned when every hint of the active question has been revealed.
	ErrNoHintsLeft = errors.New("no hints left for this question")
	// ErrPersistenceUnavailable wraps store failures surfaced to the caller.
	ErrPersistenceUnavailable = errors.New("persistence unavailable")
)
