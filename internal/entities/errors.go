package entities

import (
	"errors"
	"fmt"
)

var (
	// ErrOrderNotFound covers both a missing order and an unauthorized
	// caller: the two are indistinguishable on purpose so error text does
	// not leak whether an order exists.
	ErrOrderNotFound = errors.New("order not found")

	ErrMilestoneNotFound = errors.New("milestone not found")
	ErrInvalidStatus     = errors.New("invalid status")
	ErrPositionTaken     = errors.New("milestone position already taken")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// InvalidTransitionError names the concrete statuses involved. Unlike the
// authorization failures this detail is safe to show to the caller.
type InvalidTransitionError struct {
	From OrderStatus
	To   OrderStatus
}

func NewInvalidTransitionError(from, to OrderStatus) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot transition order from %q to %q", e.From, e.To)
}

func (e *InvalidTransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}
