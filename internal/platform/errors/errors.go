package apperrors

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")

	// Non-fatal user notices. The presentation layer renders these as
	// toasts rather than failures.
	ErrDuplicateStrategy = errors.New("strategy already contains this step")
	ErrEmptyWeeklyPlan   = errors.New("no weekly items to save")
)
