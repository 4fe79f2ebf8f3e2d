package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a referenced entity does not exist.
	ErrNotFound = errors.New("not found")

	ErrProductNotFound     = fmt.Errorf("product %w", ErrNotFound)
	ErrSponsorshipNotFound = fmt.Errorf("sponsorship %w", ErrNotFound)

	ErrInvalidStateTransition = errors.New("invalid state transition")
	ErrValidation             = errors.New("validation error")
)

// InvalidStateTransitionError is returned when an administrative action is
// requested from a status that does not permit it.
type InvalidStateTransitionError struct {
	SponsorshipID int64
	Action        Action
	From          Status
	To            Status
}

func (e *InvalidStateTransitionError) Error() string {
	return fmt.Sprintf("sponsorship %d: cannot %s from %s to %s",
		e.SponsorshipID, e.Action, e.From, e.To)
}

func (e *InvalidStateTransitionError) Is(target error) bool {
	return target == ErrInvalidStateTransition
}

// ValidationError reports malformed input rejected before persistence.
type ValidationError struct {
	Field  string
	Reason string
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
