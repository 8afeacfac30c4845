package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func item(required, completed bool) ChecklistCore {
	return ChecklistCore{ID: uuid.New(), Title: "item", IsRequired: required, IsCompleted: completed}
}

func TestProgress(t *testing.T) {
	tests := []struct {
		name  string
		items []ChecklistCore
		want  ChecklistProgress
	}{
		{
			name:  "empty list is fully complete",
			items: nil,
			want:  ChecklistProgress{Percentage: 100},
		},
		{
			name:  "only optional items yields 100",
			items: []ChecklistCore{item(false, false), item(false, true)},
			want:  ChecklistProgress{CompletedOptional: 1, TotalOptional: 2, Percentage: 100},
		},
		{
			name:  "none of required complete",
			items: []ChecklistCore{item(true, false), item(true, false)},
			want:  ChecklistProgress{TotalRequired: 2, Percentage: 0},
		},
		{
			name:  "all required complete",
			items: []ChecklistCore{item(true, true), item(true, true), item(false, false)},
			want:  ChecklistProgress{CompletedRequired: 2, TotalRequired: 2, TotalOptional: 1, Percentage: 100},
		},
		{
			name:  "one of three required rounds to 33",
			items: []ChecklistCore{item(true, true), item(true, false), item(true, false)},
			want:  ChecklistProgress{CompletedRequired: 1, TotalRequired: 3, Percentage: 33},
		},
		{
			name:  "two of three required rounds to 67",
			items: []ChecklistCore{item(true, true), item(true, true), item(true, false)},
			want:  ChecklistProgress{CompletedRequired: 2, TotalRequired: 3, Percentage: 67},
		},
		{
			name: "optional items do not affect percentage",
			items: []ChecklistCore{
				item(true, true), item(true, false),
				item(false, true), item(false, true), item(false, true),
			},
			want: ChecklistProgress{CompletedRequired: 1, TotalRequired: 2, CompletedOptional: 3, TotalOptional: 3, Percentage: 50},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Progress(tt.items))
		})
	}
}

func TestDefaultQCChecklist(t *testing.T) {
	productID := uuid.New()
	items := DefaultQCChecklist(productID)

	assert.Len(t, items, 7)

	required := 0
	for i, it := range items {
		assert.Equal(t, productID, it.ProductID)
		assert.Equal(t, i, it.OrderIndex)
		assert.False(t, it.IsCompleted)
		if it.IsRequired {
			required++
		}
	}
	assert.Equal(t, 5, required)

	// Fresh template starts at zero percent.
	cores := make([]ChecklistCore, len(items))
	for i, it := range items {
		cores[i] = it.ChecklistCore
	}
	assert.Equal(t, 0, Progress(cores).Percentage)
}
