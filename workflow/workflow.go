package workflow

import (
	"errors"
	"fmt"
)

// Status is the shared lifecycle state for assets and products.
type Status string

const (
	StatusDraft    Status = "draft"
	StatusInReview Status = "in_review"
	StatusApproved Status = "approved"
	StatusArchived Status = "archived"
)

var (
	ErrUnknownStatus     = errors.New("unknown status")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// transitions is the single source of truth for legal one-step moves.
// The graph is cyclic: archived re-enters draft.
var transitions = map[Status][]Status{
	StatusDraft:    {StatusInReview},
	StatusInReview: {StatusApproved, StatusDraft},
	StatusApproved: {StatusArchived},
	StatusArchived: {StatusDraft},
}

// AllStatuses lists every status in display order.
func AllStatuses() []Status {
	return []Status{StatusDraft, StatusInReview, StatusApproved, StatusArchived}
}

// Valid reports whether s is a known status.
func Valid(s Status) bool {
	_, ok := transitions[s]
	return ok
}

// Transitions returns the set of statuses reachable from current in one step.
// The returned slice is a copy; callers may mutate it freely.
func Transitions(current Status) []Status {
	next, ok := transitions[current]
	if !ok {
		return nil
	}
	out := make([]Status, len(next))
	copy(out, next)
	return out
}

// Validate checks that moving from current to requested is allowed by the
// transition table. It must be called before any write is attempted.
func Validate(current, requested Status) error {
	next, ok := transitions[current]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownStatus, current)
	}
	if !Valid(requested) {
		return fmt.Errorf("%w: %q", ErrUnknownStatus, requested)
	}
	for _, s := range next {
		if s == requested {
			return nil
		}
	}
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current, requested)
}
