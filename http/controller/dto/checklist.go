package dto

type ToggleChecklistItemRequest struct {
	IsCompleted *bool `json:"is_completed" binding:"required"`
}
