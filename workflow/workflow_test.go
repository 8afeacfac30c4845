package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransitions(t *testing.T) {
	tests := []struct {
		current Status
		want    []Status
	}{
		{StatusDraft, []Status{StatusInReview}},
		{StatusInReview, []Status{StatusApproved, StatusDraft}},
		{StatusApproved, []Status{StatusArchived}},
		{StatusArchived, []Status{StatusDraft}},
	}

	for _, tt := range tests {
		t.Run(string(tt.current), func(t *testing.T) {
			assert.Equal(t, tt.want, Transitions(tt.current))
		})
	}

	assert.Nil(t, Transitions(Status("published")))
}

// TestValidateMatrix checks every (current, requested) pair against the
// transition table: Validate succeeds iff requested is reachable.
func TestValidateMatrix(t *testing.T) {
	allowed := map[Status]map[Status]bool{
		StatusDraft:    {StatusInReview: true},
		StatusInReview: {StatusApproved: true, StatusDraft: true},
		StatusApproved: {StatusArchived: true},
		StatusArchived: {StatusDraft: true},
	}

	for _, current := range AllStatuses() {
		for _, requested := range AllStatuses() {
			err := Validate(current, requested)
			if allowed[current][requested] {
				assert.NoError(t, err, "%s -> %s should be allowed", current, requested)
			} else {
				assert.ErrorIs(t, err, ErrInvalidTransition, "%s -> %s should be rejected", current, requested)
			}
		}
	}
}

func TestValidateRejectsApprovedToInReview(t *testing.T) {
	err := Validate(StatusApproved, StatusInReview)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestValidateUnknownStatus(t *testing.T) {
	assert.ErrorIs(t, Validate(Status("published"), StatusDraft), ErrUnknownStatus)
	assert.ErrorIs(t, Validate(StatusDraft, Status("published")), ErrUnknownStatus)
}

func TestArchivedReentersDraft(t *testing.T) {
	// The graph is cyclic, there is no terminal state.
	require.NoError(t, Validate(StatusArchived, StatusDraft))
	require.NoError(t, Validate(StatusDraft, StatusInReview))
}

func TestTransitionsReturnsCopy(t *testing.T) {
	first := Transitions(StatusInReview)
	first[0] = StatusArchived
	assert.Equal(t, []Status{StatusApproved, StatusDraft}, Transitions(StatusInReview))
}
